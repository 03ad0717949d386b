package storage

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gabriel-vasile/mimetype"

	"face-chat/errors"
)

// profileRecord is the stored form of one profile image. Keys are lowercased
// usernames so that lookups are case-insensitive, matching how the face
// service names its known faces.
type profileRecord struct {
	Username  string    `json:"username"`
	Mime      string    `json:"mime"`
	Data      []byte    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileRepository persists profile images in BadgerDB. Presence state is
// deliberately volatile; profile images are the one thing worth keeping
// across restarts, so a returning user gets their avatar back immediately.
type ProfileRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewProfileRepository(db *badger.DB, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, log: log}
}

func profileKey(username string) []byte {
	return []byte("profile:" + strings.ToLower(username))
}

// StoreImage saves the raw image for a username, last write wins.
// It returns the detected mime type.
func (r *ProfileRepository) StoreImage(username string, data []byte) (string, error) {
	if username == "" || len(data) == 0 {
		return "", errors.ErrNoImage
	}

	record := profileRecord{
		Username:  username,
		Mime:      mimetype.Detect(data).String(),
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encoding profile record: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(username), encoded)
	})
	if err != nil {
		return "", fmt.Errorf("storing profile image: %w", err)
	}

	r.log.Debug("Stored profile image", "username", username, "mime", record.Mime, "size", len(data))
	return record.Mime, nil
}

// GetImage loads the stored image and its mime type for a username.
func (r *ProfileRepository) GetImage(username string) ([]byte, string, error) {
	var record profileRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(username))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &record)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, "", errors.ErrProfileNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("loading profile image: %w", err)
	}
	return record.Data, record.Mime, nil
}
