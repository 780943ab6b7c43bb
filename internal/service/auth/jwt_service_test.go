package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 30 * time.Minute
	secret := "test-secret-that-is-long-enough-for-testing"

	svc := NewTestJWTService(secret, tokenLifetime, func() time.Time {
		return fixedTime
	})

	t.Run("generates valid token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), "alice")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, "alice", claims.Username)
		// Compare Unix timestamps to avoid timezone issues
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("tokens carry unique IDs", func(t *testing.T) {
		t.Parallel()
		first, err := svc.GenerateToken(context.Background(), "alice")
		require.NoError(t, err)
		second, err := svc.GenerateToken(context.Background(), "alice")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 30 * time.Minute
	secret := "test-secret-that-is-long-enough-for-testing"
	wrongSecret := "wrong-secret-that-is-long-enough-for-testing"

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(secret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := svc.GenerateToken(context.Background(), "alice")
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				// Create token at fixed time
				genSvc := NewTestJWTService(secret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := genSvc.GenerateToken(context.Background(), "alice")

				// Validate token at a later time (after expiry)
				valSvc := NewTestJWTService(secret, tokenLifetime, func() time.Time {
					return fixedTime.Add(tokenLifetime + time.Hour)
				})
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			setupFunc: func() (JWTService, string) {
				// Generate with one secret
				genSvc := NewTestJWTService(secret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := genSvc.GenerateToken(context.Background(), "alice")

				// Validate with different secret
				valSvc := NewTestJWTService(wrongSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(secret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return svc, "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(secret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return svc, ""
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc()

			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, claims)
			assert.Equal(t, "alice", claims.Username)
		})
	}
}

func TestNewJWTServiceSecretLength(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(configWithSecret("short"))
	require.Error(t, err)

	svc, err := NewJWTService(configWithSecret("a-sufficiently-long-secret-for-hmac-use"))
	require.NoError(t, err)
	require.NotNil(t, svc)
}
