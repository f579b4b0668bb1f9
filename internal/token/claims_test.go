package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signTestToken builds a syntactically valid access token. The signing key is
// irrelevant because claims are decoded without verification.
func signTestToken(t *testing.T, claims *Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestDecodeClaims_Valid(t *testing.T) {
	raw := signTestToken(t, &Claims{
		UserType: "PERSON",
		Role:     "PERSON",
		Email:    "nurse@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := DecodeClaims(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID())
	assert.Equal(t, "PERSON", claims.UserType)
	assert.Equal(t, "PERSON", claims.Role)
	assert.Equal(t, "nurse@example.com", claims.Email)
}

func TestDecodeClaims_Garbage(t *testing.T) {
	_, err := DecodeClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestDecodeClaims_MissingSubject(t *testing.T) {
	raw := signTestToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := DecodeClaims(raw)
	assert.Error(t, err)
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()

	fresh := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}}
	assert.False(t, fresh.Expired(now))

	stale := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
	}}
	assert.True(t, stale.Expired(now))
}

func TestClaims_ExpiredWithoutExpiryClaim(t *testing.T) {
	c := &Claims{}
	assert.True(t, c.Expired(time.Now()))
}
