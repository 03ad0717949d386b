package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"face-chat/errors"
)

func TestValidateJoin(t *testing.T) {
	t.Run("should accept a well-formed payload", func(t *testing.T) {
		req := require.New(t)
		req.NoError(ValidateJoin(JoinRequest{Username: "alice", Room: "general"}))
	})

	t.Run("should reject a missing username", func(t *testing.T) {
		req := require.New(t)
		err := ValidateJoin(JoinRequest{Room: "general"})
		req.ErrorIs(err, errors.ErrInvalidUsername)
	})

	t.Run("should reject an oversized username", func(t *testing.T) {
		req := require.New(t)
		err := ValidateJoin(JoinRequest{Username: strings.Repeat("a", 33), Room: "general"})
		req.ErrorIs(err, errors.ErrInvalidUsername)
	})

	t.Run("should reject a missing room", func(t *testing.T) {
		req := require.New(t)
		err := ValidateJoin(JoinRequest{Username: "alice"})
		req.ErrorIs(err, errors.ErrMissingRoom)
	})
}
