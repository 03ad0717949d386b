package services

import (
	"context"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"face-chat/contract"
	"face-chat/errors"
	"face-chat/mocks"
)

// Minimal JPEG header, enough for content sniffing.
var jpegImage = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockFaceVerifier(ctrl)
	profiles := mocks.NewMockProfileStore(ctrl)
	presence := mocks.NewMockPresence(ctrl)
	svc := NewAuthService(logs.GetLoggerFromString("INFO"), verifier, profiles, presence)

	t.Run("should authenticate and bind the profile image", func(t *testing.T) {
		req := require.New(t)

		verifier.EXPECT().
			Verify(gomock.Any(), jpegImage).
			Return(contract.VerifyResult{Success: true, User: "alice"}, nil).
			Times(1)
		presence.EXPECT().IsActive("alice").Return(false).Times(1)
		profiles.EXPECT().StoreImage("alice", jpegImage).Return("image/jpeg", nil).Times(1)
		presence.EXPECT().UpdateProfile("alice", "/profile_images/alice").Return(true).Times(1)

		result, err := svc.Authenticate(context.Background(), jpegImage)

		req.NoError(err)
		req.True(result.Success)
		req.Equal("alice", result.User)
		req.Equal("/profile_images/alice", result.ProfileImage)
	})

	t.Run("should refuse a user that is already active", func(t *testing.T) {
		req := require.New(t)

		verifier.EXPECT().
			Verify(gomock.Any(), jpegImage).
			Return(contract.VerifyResult{Success: true, User: "alice"}, nil).
			Times(1)
		presence.EXPECT().IsActive("alice").Return(true).Times(1)
		// The profile store must never be touched in that case
		profiles.EXPECT().StoreImage(gomock.Any(), gomock.Any()).Times(0)

		result, err := svc.Authenticate(context.Background(), jpegImage)

		req.NoError(err)
		req.False(result.Success)
		req.Equal(CodeUserAlreadyActive, result.Error)
		req.Equal("alice", result.User)
	})

	t.Run("should pass through a failed verification", func(t *testing.T) {
		req := require.New(t)

		verifier.EXPECT().
			Verify(gomock.Any(), jpegImage).
			Return(contract.VerifyResult{Success: false, Message: "no match"}, nil).
			Times(1)

		result, err := svc.Authenticate(context.Background(), jpegImage)

		req.NoError(err)
		req.False(result.Success)
		req.Equal("no match", result.Message)
	})

	t.Run("should reject an empty payload", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.Authenticate(context.Background(), nil)
		req.ErrorIs(err, errors.ErrNoImage)
	})

	t.Run("should reject a non-image payload", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.Authenticate(context.Background(), []byte("just some text"))
		req.ErrorIs(err, errors.ErrUnsupportedImage)
	})

	t.Run("should still succeed when the profile store fails", func(t *testing.T) {
		req := require.New(t)

		verifier.EXPECT().
			Verify(gomock.Any(), jpegImage).
			Return(contract.VerifyResult{Success: true, User: "alice"}, nil).
			Times(1)
		presence.EXPECT().IsActive("alice").Return(false).Times(1)
		profiles.EXPECT().StoreImage("alice", jpegImage).Return("", errors.ErrProfileNotFound).Times(1)
		presence.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Times(0)

		result, err := svc.Authenticate(context.Background(), jpegImage)

		req.NoError(err)
		req.True(result.Success)
		req.Empty(result.ProfileImage)
	})
}

func TestAuthService_CheckUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	presence := mocks.NewMockPresence(ctrl)
	svc := NewAuthService(logs.GetLoggerFromString("INFO"), nil, nil, presence)

	presence.EXPECT().IsActive("alice").Return(true).Times(1)
	presence.EXPECT().IsActive("bob").Return(false).Times(1)

	req.True(svc.CheckUser("alice"))
	req.False(svc.CheckUser("bob"))
}
