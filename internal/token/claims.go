package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload the backend embeds in an access token. The client
// decodes it without verifying the signature: the decode is advisory, used to
// rebuild a session at startup without a network round-trip. Signature
// verification is entirely the backend's job.
type Claims struct {
	UserType string `json:"type"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// Expired reports whether the expiry claim is in the past. A token without an
// expiry claim counts as expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return c.ExpiresAt.Before(now)
}

// DecodeClaims base64-decodes the access token payload without verifying the
// signature. Any syntactic problem is an error; the caller treats decode
// failure as "not logged in", never as fatal.
func DecodeClaims(accessToken string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("decode access token: %w", err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("access token missing subject claim")
	}
	return claims, nil
}
