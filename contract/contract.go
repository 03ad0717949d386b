//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
)

// VerifyResult is the decoded answer of the face-recognition service.
type VerifyResult struct {
	Success bool   `json:"success"`
	User    string `json:"user"`
	Message string `json:"message"`
}

// FaceVerifier submits an image to the remote face-verification service.
// Implementations must not hold any registry lock across the call.
type FaceVerifier interface {
	Verify(ctx context.Context, image []byte) (VerifyResult, error)
}

// ProfileStore persists profile images keyed by username.
type ProfileStore interface {
	// StoreImage saves the raw image and returns its detected mime type.
	StoreImage(username string, data []byte) (string, error)
	GetImage(username string) (data []byte, mime string, err error)
}

// Presence is the slice of the coordinator the auth bridge consults.
// The check happens before the caller decides whether to proceed to a join;
// a race with a concurrent join is an accepted weak-consistency window.
type Presence interface {
	IsActive(username string) bool
	ForceEvict(username string) (string, bool)
	UpdateProfile(username, ref string) bool
}
