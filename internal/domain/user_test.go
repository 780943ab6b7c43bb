package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			username: "alice",
			email:    "alice@example.com",
			password: "pw123secret",
			wantErr:  nil,
		},
		{
			name:     "empty username",
			username: "",
			email:    "alice@example.com",
			password: "pw123secret",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "empty email",
			username: "alice",
			email:    "",
			password: "pw123secret",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			username: "alice",
			email:    "alice.example.com",
			password: "pw123secret",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			username: "alice",
			email:    "alice@examplecom",
			password: "pw123secret",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			username: "alice",
			email:    "alice@example.com",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.username, tt.email, tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.email, user.Email)
			assert.True(t, user.IsActive)
			assert.Zero(t, user.ID, "ID assignment belongs to the store")
		})
	}
}

func TestUserValidateWithoutPlaintext(t *testing.T) {
	t.Parallel()

	// Users loaded from storage carry only the hash.
	user := &User{
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:       true,
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
