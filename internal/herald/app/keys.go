package app

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heraldhq/herald/pkg/jwtx"
)

const signingSecretLength = 32

// InitSigningKey loads the HS256 signing secret and builds the key the
// token service signs and verifies with.
//
// Resolution order:
//  1. HERALD_JWT_SECRET, when set
//  2. the secret file, generated with a fresh random secret on first
//     boot if absent
//
// A regenerated secret invalidates every outstanding token, so the
// file should live on persistent storage in anything beyond dev.
func InitSigningKey(cfg Config, logger *slog.Logger) (*jwtx.HS256, error) {
	secret := cfg.Secret
	if secret == "" {
		loaded, err := loadOrGenerateSecret(cfg.SecretFile, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load signing secret: %w", err)
		}
		secret = loaded
	}

	key, err := jwtx.NewHS256([]byte(secret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	return key, nil
}

func loadOrGenerateSecret(file string, logger *slog.Logger) (string, error) {
	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		raw := make([]byte, signingSecretLength)
		if _, err := rand.Read(raw); err != nil {
			return "", err
		}
		secret := base64.RawURLEncoding.EncodeToString(raw)

		if err := os.WriteFile(file, []byte(secret), 0600); err != nil {
			return "", err
		}
		logger.Info("generated new signing secret", "file", file)
		return secret, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
