package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"face-chat/contract"
)

func TestFaceClient_Verify(t *testing.T) {
	t.Run("should decode a successful verification", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req.Equal(http.MethodPost, r.Method)
			req.Equal("/verify-face", r.URL.Path)

			file, _, err := r.FormFile("image")
			req.NoError(err)
			defer func() { _ = file.Close() }()

			_ = json.NewEncoder(w).Encode(contract.VerifyResult{Success: true, User: "alice"})
		}))
		defer server.Close()

		client := NewFaceClient(server.URL, 2*time.Second)
		result, err := client.Verify(context.Background(), []byte{0xFF, 0xD8, 0xFF})

		req.NoError(err)
		req.True(result.Success)
		req.Equal("alice", result.User)
	})

	t.Run("should surface a non-200 answer as an error", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewFaceClient(server.URL, 2*time.Second)
		_, err := client.Verify(context.Background(), []byte("img"))
		req.Error(err)
	})

	t.Run("should respect context cancellation", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		client := NewFaceClient(server.URL, 2*time.Second)
		_, err := client.Verify(ctx, []byte("img"))
		req.Error(err)
	})
}
