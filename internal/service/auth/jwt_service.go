// Package auth implements the credential service: bcrypt password hashing
// and verification, and issuance/validation of HMAC-signed bearer tokens.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
// Tokens are stateless: there is no revocation list and no refresh flow.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given username.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns the claims if the token is valid, or an error if
	// validation fails (expired, invalid signature, malformed, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It mirrors the standard registered claims with the subject interpreted
// as the username.
type Claims struct {
	// Username is the subject the token was issued for.
	Username string `json:"sub,omitempty"`

	// IssuedAt is when the token was created.
	IssuedAt time.Time `json:"iat,omitempty"`

	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time `json:"exp,omitempty"`

	// ID is the unique token identifier (jti).
	ID string `json:"jti,omitempty"`
}
