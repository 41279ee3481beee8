package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestStaticVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	v := NewStaticVerifier("devsecret")

	token := signToken(t, "devsecret", jwt.RegisteredClaims{
		Subject:   "uid-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	subject, err := v.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "uid-42", subject)
}

func TestStaticVerifier_Verify_WrongSecret(t *testing.T) {
	ctx := context.Background()
	v := NewStaticVerifier("devsecret")

	token := signToken(t, "othersecret", jwt.RegisteredClaims{
		Subject:   "uid-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := v.Verify(ctx, token)
	assert.Error(t, err)
}

func TestStaticVerifier_Verify_Expired(t *testing.T) {
	ctx := context.Background()
	v := NewStaticVerifier("devsecret")

	token := signToken(t, "devsecret", jwt.RegisteredClaims{
		Subject:   "uid-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	_, err := v.Verify(ctx, token)
	assert.Error(t, err)
}

func TestStaticVerifier_Verify_NoSubject(t *testing.T) {
	ctx := context.Background()
	v := NewStaticVerifier("devsecret")

	token := signToken(t, "devsecret", jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := v.Verify(ctx, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subject")
}

func TestStaticVerifier_Verify_Garbage(t *testing.T) {
	ctx := context.Background()
	v := NewStaticVerifier("devsecret")

	_, err := v.Verify(ctx, "not-a-jwt")
	assert.Error(t, err)
}
