package storage

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"face-chat/errors"
)

var jpegImage = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func newRepository(t *testing.T) *ProfileRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewProfileRepository(db, logs.GetLoggerFromString("INFO"))
}

func TestProfileRepository_Store_And_Get(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)

	// When an image is stored
	mime, err := repo.StoreImage("Alice", jpegImage)
	req.NoError(err)
	req.Equal("image/jpeg", mime)

	// Then it is readable back, case-insensitively
	data, mime, err := repo.GetImage("alice")
	req.NoError(err)
	req.Equal(jpegImage, data)
	req.Equal("image/jpeg", mime)
}

func TestProfileRepository_Last_Write_Wins(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)

	first := append([]byte{}, jpegImage...)
	second := append(append([]byte{}, jpegImage...), 0x01, 0x02)

	_, err := repo.StoreImage("alice", first)
	req.NoError(err)
	_, err = repo.StoreImage("alice", second)
	req.NoError(err)

	data, _, err := repo.GetImage("alice")
	req.NoError(err)
	req.Equal(second, data)
}

func TestProfileRepository_Get_Unknown_User(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)

	_, _, err := repo.GetImage("nobody")
	req.ErrorIs(err, errors.ErrProfileNotFound)
}

func TestProfileRepository_Store_Rejects_Empty_Input(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)

	_, err := repo.StoreImage("", jpegImage)
	req.ErrorIs(err, errors.ErrNoImage)

	_, err = repo.StoreImage("alice", nil)
	req.ErrorIs(err, errors.ErrNoImage)
}
