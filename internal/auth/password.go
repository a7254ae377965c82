package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/argon2"

	"github.com/ktsk/conduit/domain"
)

// Argon2id parameters per the OWASP password storage cheat sheet.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// PasswordService hashes and verifies user passwords with argon2id.
// Every hash gets a fresh random salt, so hashing the same input twice
// yields different strings.
type PasswordService struct{}

func NewPasswordService() *PasswordService {
	return &PasswordService{}
}

// Hash derives an argon2id hash of plaintext and encodes it in PHC string
// format together with its parameters and salt.
func (s *PasswordService) Hash(plaintext string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		logrus.Errorf("failed to generate salt: %v", err)
		return "", domain.ErrInternalServerError
	}

	key := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify recomputes the hash of attempt with the stored parameters and salt
// and compares in constant time. A mismatch returns ErrUnauthorized; a
// malformed stored hash is an internal failure, not an auth failure.
func (s *PasswordService) Verify(stored, attempt string) error {
	salt, key, params, err := decodeHash(stored)
	if err != nil {
		logrus.Errorf("failed to decode stored password hash: %v", err)
		return domain.ErrInternalServerError
	}

	attemptKey := argon2.IDKey([]byte(attempt), salt, params.time, params.memory, params.threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, attemptKey) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decodeHash(encoded string) (salt, key []byte, params argonParams, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("not an argon2id hash")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, params, err
	}
	if version != argon2.Version {
		return nil, nil, params, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return nil, nil, params, err
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, nil, params, err
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, nil, params, err
	}
	return salt, key, params, nil
}
