package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"face-chat/errors"
)

var validate = validator.New()

// JoinRequest is the payload of both joinRoom and rejoinRoom events.
// Usernames are kept exactly as supplied; only their shape is checked.
type JoinRequest struct {
	Username string `json:"username" validate:"required,max=32"`
	Room     string `json:"room" validate:"required,max=64"`
}

// ValidateJoin checks a join/rejoin payload. Violations map to the typed
// presence errors so callers can degrade to a no-op answer instead of crashing.
func ValidateJoin(req JoinRequest) error {
	if err := validate.Struct(req); err != nil {
		if req.Username == "" || len([]rune(req.Username)) > 32 {
			return fmt.Errorf("%w: %v", errors.ErrInvalidUsername, err)
		}
		return fmt.Errorf("%w: %v", errors.ErrMissingRoom, err)
	}
	return nil
}
