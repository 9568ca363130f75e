// Package token decodes the payload of a bearer token for display and
// diagnostics. Nothing here verifies a signature; the server remains the
// only authority on whether a token is valid.
package token

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/finpanel/go-finance-client/internal/utils"
)

// Claims is the decoded payload of a session token. Raw carries every
// claim; the named fields are the ones the UI chrome displays.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Raw       map[string]any
}

// Decode parses the payload segment of a dot-delimited token without
// verifying its signature. Any malformed input yields (Claims{}, false);
// Decode never panics. Advisory only, never an authorization decision.
func Decode(raw string) (Claims, bool) {
	if strings.TrimSpace(raw) == "" {
		return Claims{}, false
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return Claims{}, false
	}
	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return Claims{}, false
	}

	claims := Claims{Raw: map[string]any(mapClaims)}
	claims.Subject, _ = mapClaims["sub"].(string)
	claims.Email, _ = mapClaims["email"].(string)
	claims.Name, _ = mapClaims["name"].(string)

	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	if roles, ok := mapClaims["roles"].([]any); ok {
		claims.Roles = utils.ToStringSlice(roles)
	}
	return claims, true
}

// ExpiredAt reports whether the token's exp claim lies before now. An
// absent exp claim reports false; the gateway forwards such tokens and
// lets the server reject them.
func (c Claims) ExpiredAt(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
