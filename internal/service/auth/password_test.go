package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/config"
)

// configWithSecret builds an AuthConfig for service construction tests.
func configWithSecret(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 30,
	}
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("verify succeeds for the original password", func(t *testing.T) {
		t.Parallel()
		hashed, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hashed)

		verifier := NewBcryptVerifier()
		assert.NoError(t, verifier.Compare(hashed, "correct horse battery staple"))
	})

	t.Run("verify fails for a different password", func(t *testing.T) {
		t.Parallel()
		hashed, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)

		verifier := NewBcryptVerifier()
		assert.Error(t, verifier.Compare(hashed, "incorrect horse battery staple"))
	})

	t.Run("hashing salts per call", func(t *testing.T) {
		t.Parallel()
		first, err := HashPassword("pw123secret")
		require.NoError(t, err)
		second, err := HashPassword("pw123secret")
		require.NoError(t, err)

		// Distinct salts produce distinct hashes for the same input.
		assert.NotEqual(t, first, second)

		verifier := NewBcryptVerifier()
		assert.NoError(t, verifier.Compare(first, "pw123secret"))
		assert.NoError(t, verifier.Compare(second, "pw123secret"))
	})
}
