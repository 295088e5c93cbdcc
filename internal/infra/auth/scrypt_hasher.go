// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"accounts/config"
	"accounts/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	defaultSaltBytes = 8
	defaultKeyLength = 32
	defaultCostN     = 1 << 14
	defaultBlockR    = 8
	defaultParallelP = 1
)

// scryptHasher is a concrete implementation of the PasswordHasher interface using scrypt.
type scryptHasher struct {
	saltBytes int
	keyLength int
	n, r, p   int
}

// NewScryptHasher is the constructor used by Fx. Zero or missing config values fall back to defaults.
func NewScryptHasher(cfg *config.Config) service.PasswordHasher {
	var params config.ScryptConfig
	if cfg != nil && cfg.Auth != nil {
		params = cfg.Auth.Scrypt
	}

	return NewScryptHasherWithParams(params)
}

// NewScryptHasherWithParams builds a hasher from explicit cost parameters.
func NewScryptHasherWithParams(params config.ScryptConfig) service.PasswordHasher {
	h := &scryptHasher{
		saltBytes: defaultSaltBytes,
		keyLength: defaultKeyLength,
		n:         defaultCostN,
		r:         defaultBlockR,
		p:         defaultParallelP,
	}
	if params.SaltBytes > 0 {
		h.saltBytes = params.SaltBytes
	}
	if params.KeyLength > 0 {
		h.keyLength = params.KeyLength
	}
	if params.N > 1 {
		h.n = params.N
	}
	if params.R > 0 {
		h.r = params.R
	}
	if params.P > 0 {
		h.p = params.P
	}

	return h
}

// GenerateSalt returns saltBytes random bytes, hex encoded.
func (h *scryptHasher) GenerateSalt() (string, error) {
	buf := make([]byte, h.saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random salt")
	}

	return hex.EncodeToString(buf), nil
}

// HashWithSalt derives a hex encoded scrypt key from password and salt.
func (h *scryptHasher) HashWithSalt(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), h.n, h.r, h.p, h.keyLength)
	if err != nil {
		return "", errors.Wrap(err, "scrypt key derivation failed")
	}

	return hex.EncodeToString(key), nil
}

// Hash generates a fresh salt and returns "<salt>.<digest>".
func (h *scryptHasher) Hash(password string) (string, error) {
	salt, err := h.GenerateSalt()
	if err != nil {
		return "", err
	}

	digest, err := h.HashWithSalt(password, salt)
	if err != nil {
		return "", err
	}

	return salt + service.PasswordRecordDelimiter + digest, nil
}

// Check re-derives the digest with the stored salt and compares in constant time.
func (h *scryptHasher) Check(password, record string) (bool, error) {
	salt, storedDigest, found := strings.Cut(record, service.PasswordRecordDelimiter)
	if !found || salt == "" || storedDigest == "" {
		return false, errors.WithStack(service.ErrMalformedPasswordRecord)
	}

	digest, err := h.HashWithSalt(password, salt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1, nil
}
