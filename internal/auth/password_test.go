package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/auth"
)

func TestHashAndVerify(t *testing.T) {
	svc := auth.NewPasswordService()

	hashed, err := svc.Hash("s3cret-password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "$argon2id$"))

	err = svc.Verify(hashed, "s3cret-password")
	assert.NoError(t, err)
}

func TestVerifyWrongPassword(t *testing.T) {
	svc := auth.NewPasswordService()

	hashed, err := svc.Hash("s3cret-password")
	require.NoError(t, err)

	err = svc.Verify(hashed, "not-the-password")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestHashIsSalted(t *testing.T) {
	svc := auth.NewPasswordService()

	first, err := svc.Hash("same-password")
	require.NoError(t, err)
	second, err := svc.Hash("same-password")
	require.NoError(t, err)

	// a fresh random salt every time, so equal inputs never collide
	assert.NotEqual(t, first, second)
}

func TestVerifyMalformedHash(t *testing.T) {
	svc := auth.NewPasswordService()

	for _, stored := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=1,p=4$notbase64!!$alsonot",
		"$bcrypt$something",
	} {
		err := svc.Verify(stored, "whatever")
		assert.ErrorIs(t, err, domain.ErrInternalServerError, "stored=%q", stored)
	}
}
