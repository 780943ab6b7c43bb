package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function
// for predictable expiry testing. Test code only.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0, // No leeway so expiry tests are exact
	}
}
