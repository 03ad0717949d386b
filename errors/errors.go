package errors

import "fmt"

var (
	// ErrUserAlreadyActive is returned when a join is attempted for a username
	// that already holds a live connection somewhere else.
	ErrUserAlreadyActive = fmt.Errorf("user already active on another connection")

	// ErrRejoinFailed wraps any internal failure during a room rejoin.
	// The client is expected to restart the join flow from scratch.
	ErrRejoinFailed = fmt.Errorf("room rejoin failed")

	ErrMissingRoom      = fmt.Errorf("room is required")
	ErrInvalidUsername  = fmt.Errorf("username is invalid")
	ErrNoImage          = fmt.Errorf("no image provided")
	ErrUnsupportedImage = fmt.Errorf("unsupported image format")
	ErrProfileNotFound  = fmt.Errorf("profile image not found")
	ErrVerificationFail = fmt.Errorf("face verification failed")
)
