package auth_test

import (
	"testing"

	"github.com/finpanel/go-finance-client/auth"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateCredentials(t *testing.T) {
	v := auth.NewValidator()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.ValidateCredentials("joao.silva@example.com", "secret"))
	})

	t.Run("empty email", func(t *testing.T) {
		require.ErrorIs(t, v.ValidateCredentials("", "secret"), auth.ErrInvalidEmail)
	})

	t.Run("no at sign", func(t *testing.T) {
		require.ErrorIs(t, v.ValidateCredentials("joao.example.com", "secret"), auth.ErrInvalidEmail)
	})

	t.Run("missing password", func(t *testing.T) {
		require.ErrorIs(t, v.ValidateCredentials("joao@example.com", ""), auth.ErrMissingPassword)
	})
}

func TestValidator_ValidatePasswordStrength(t *testing.T) {
	v := auth.NewValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"strong", "abc123!xyz", false},
		{"too short", "a1!", true},
		{"no digit", "abcdefg!", true},
		{"no symbol", "abcdefg1", true},
		{"no letter", "12345678!", true},
		{"exactly eight", "abcde1!f", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				require.ErrorIs(t, err, auth.ErrWeakPassword)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
