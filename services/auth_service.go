package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"

	"face-chat/contract"
	"face-chat/errors"
)

// Error codes surfaced to the login page.
const (
	CodeUserAlreadyActive    = "USER_ALREADY_ACTIVE"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
)

// AuthResult is the answer of the face-authentication flow.
type AuthResult struct {
	Success      bool   `json:"success"`
	User         string `json:"user,omitempty"`
	Error        string `json:"error,omitempty"`
	Message      string `json:"message,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type IAuthService interface {
	Authenticate(ctx context.Context, image []byte) (AuthResult, error)
	CheckUser(username string) bool
}

// AuthService bridges the external face-verification service and the
// presence coordinator. It only checks or evicts existing sessions, never
// creates one: room join still happens through the normal websocket flow.
type AuthService struct {
	verifier contract.FaceVerifier
	profiles contract.ProfileStore
	presence contract.Presence
	log      *slog.Logger
}

func NewAuthService(log *slog.Logger, verifier contract.FaceVerifier,
	profiles contract.ProfileStore, presence contract.Presence) *AuthService {
	return &AuthService{
		verifier: verifier,
		profiles: profiles,
		presence: presence,
		log:      log,
	}
}

// Authenticate runs the full login flow for one uploaded image.
//
// The presence check happens as a discrete call after the network
// round-trip, without holding any registry lock across it. A join racing
// between this check and the client's subsequent joinRoom is accepted; the
// join guard catches it.
func (s *AuthService) Authenticate(ctx context.Context, image []byte) (AuthResult, error) {
	if len(image) == 0 {
		return AuthResult{}, errors.ErrNoImage
	}
	if kind := mimetype.Detect(image); !kind.Is("image/jpeg") && !kind.Is("image/png") {
		return AuthResult{}, fmt.Errorf("%w: got %s", errors.ErrUnsupportedImage, kind.String())
	}

	verdict, err := s.verifier.Verify(ctx, image)
	if err != nil {
		s.log.Error("Face verification call failed", "error", err)
		return AuthResult{}, fmt.Errorf("%w: %v", errors.ErrVerificationFail, err)
	}
	if !verdict.Success {
		return AuthResult{Success: false, Message: verdict.Message}, nil
	}

	username := verdict.User
	if s.presence.IsActive(username) {
		s.log.Warn("Login attempt for an already active user", "username", username)
		return AuthResult{
			Success: false,
			Error:   CodeUserAlreadyActive,
			Message: "This user is already logged in on another device.",
			User:    username,
		}, nil
	}

	ref := "/profile_images/" + username
	if _, err := s.profiles.StoreImage(username, image); err != nil {
		// The login itself still succeeds; the user just has no avatar.
		s.log.Error("Storing profile image failed", "username", username, "error", err)
		ref = ""
	} else {
		s.presence.UpdateProfile(username, ref)
	}

	return AuthResult{Success: true, User: username, ProfileImage: ref}, nil
}

// CheckUser reports whether a username currently holds a live session.
func (s *AuthService) CheckUser(username string) bool {
	return s.presence.IsActive(username)
}
