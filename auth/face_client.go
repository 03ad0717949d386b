package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"face-chat/contract"
)

// FaceClient talks to the external face-recognition service. It only wraps
// the HTTP round-trip; deciding what to do with the result (active-session
// check, profile binding) belongs to the auth service.
type FaceClient struct {
	baseURL string
	client  *http.Client
}

func NewFaceClient(baseURL string, timeout time.Duration) *FaceClient {
	return &FaceClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Verify submits the image as a multipart form to /verify-face and decodes
// the {success, user, message} answer.
func (c *FaceClient) Verify(ctx context.Context, image []byte) (contract.VerifyResult, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("image", "face.jpg")
	if err != nil {
		return contract.VerifyResult{}, fmt.Errorf("building verify request: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return contract.VerifyResult{}, fmt.Errorf("building verify request: %w", err)
	}
	if err := form.Close(); err != nil {
		return contract.VerifyResult{}, fmt.Errorf("building verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/verify-face", &body)
	if err != nil {
		return contract.VerifyResult{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return contract.VerifyResult{}, fmt.Errorf("face verification call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return contract.VerifyResult{}, fmt.Errorf("face verification returned status %d", resp.StatusCode)
	}

	var result contract.VerifyResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return contract.VerifyResult{}, fmt.Errorf("decoding verify response: %w", err)
	}
	return result, nil
}
