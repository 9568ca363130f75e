package token_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/finpanel/go-finance-client/token"
	"github.com/stretchr/testify/require"
)

// buildToken assembles an unsigned JWT-shaped string from a payload.
func buildToken(payload string) string {
	enc := base64.RawURLEncoding.EncodeToString
	header := enc([]byte(`{"alg":"none","typ":"JWT"}`))
	return header + "." + enc([]byte(payload)) + "." + enc([]byte("sig"))
}

func TestDecode(t *testing.T) {
	raw := buildToken(`{"sub":"user-1","email":"joao.silva@example.com","name":"Joao Silva","iat":1700000000,"exp":1700003600,"roles":["admin","viewer"]}`)

	claims, ok := token.Decode(raw)
	require.True(t, ok)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "joao.silva@example.com", claims.Email)
	require.Equal(t, "Joao Silva", claims.Name)
	require.Equal(t, []string{"admin", "viewer"}, claims.Roles)
	require.Equal(t, time.Unix(1700000000, 0).UTC(), claims.IssuedAt)
	require.Equal(t, time.Unix(1700003600, 0).UTC(), claims.ExpiresAt)
	require.Equal(t, "user-1", claims.Raw["sub"])
}

func TestDecode_Idempotent(t *testing.T) {
	raw := buildToken(`{"sub":"user-1","exp":1700003600}`)

	first, ok := token.Decode(raw)
	require.True(t, ok)
	second, ok := token.Decode(raw)
	require.True(t, ok)
	require.Equal(t, first, second)
}

func TestDecode_MalformedInputs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"not a jwt", "abc"},
		{"two segments", "abc.def"},
		{"invalid base64 payload", "aGVhZGVy.!!!.c2ln"},
		{"payload not json", buildToken(`not json`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, ok := token.Decode(tt.raw)
			require.False(t, ok)
			require.Equal(t, token.Claims{}, claims)

			// Same result on a second decode, never a panic.
			again, ok := token.Decode(tt.raw)
			require.False(t, ok)
			require.Equal(t, claims, again)
		})
	}
}

func TestClaims_ExpiredAt(t *testing.T) {
	raw := buildToken(`{"sub":"user-1","exp":1700003600}`)
	claims, ok := token.Decode(raw)
	require.True(t, ok)

	require.False(t, claims.ExpiredAt(time.Unix(1700000000, 0)))
	require.True(t, claims.ExpiredAt(time.Unix(1700007200, 0)))

	// No exp claim: never reported expired locally.
	noExp, ok := token.Decode(buildToken(`{"sub":"user-1"}`))
	require.True(t, ok)
	require.False(t, noExp.ExpiredAt(time.Now()))
}
