package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=4000"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS"`
	FaceRecognitionURL   string        `env:"FACE_RECOGNITION_URL,default=http://localhost:5001"`
	VerifyTimeout        time.Duration `env:"VERIFY_TIMEOUT,default=10s"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,default=./data/profiles"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
}

// Origins splits ALLOWED_ORIGINS; an empty value means every origin is
// accepted, matching the default browser-facing deployment.
func (c Config) Origins() []string {
	return splitList(c.AllowedOrigins)
}

// Words splits the configured censored word list.
func (c Config) Words() []string {
	return splitList(c.CensoredWords)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return lo.FilterMap(strings.Split(value, ","), func(part string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(part)
		return trimmed, trimmed != ""
	})
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
