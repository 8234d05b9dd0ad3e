//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"market-admin/internal/domain/session"
	"market-admin/internal/pkg/cookie"
	"market-admin/internal/pkg/patch"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// signingKey only has to produce well-formed tokens; the dashboard never verifies signatures.
var signingKey = []byte("test-signing-key")

// Token returns a JWT that expires at exp, as the admin API would issue it.
func Token(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		IssuedAt:  jwt.NewNumericDate(exp.Add(-24 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	require.NoError(t, err)
	return token
}

func ValidToken(t *testing.T) string {
	t.Helper()
	return Token(t, time.Now().Add(time.Hour))
}

func ExpiredToken(t *testing.T) string {
	t.Helper()
	return Token(t, time.Now().Add(-time.Minute))
}

// Profile returns an administrator; changed controls whether password_changed_at is set.
func Profile(changed bool) session.Profile {
	p := session.Profile{ID: "1", Name: "Ada Admin", Email: "ada@example.com", Role: "admin"}
	if changed {
		p.PasswordChangedAt = patch.Ptr("2025-01-01T00:00:00Z")
	}
	return p
}

// SessionCookies builds the cookies a signed-in browser sends. Empty parts are omitted.
func SessionCookies(t *testing.T, token string, profile *session.Profile) []*http.Cookie {
	t.Helper()
	var cookies []*http.Cookie
	if token != "" {
		cookies = append(cookies, &http.Cookie{Name: cookie.TokenCookieName, Value: token})
	}
	if profile != nil {
		encoded, err := session.EncodeProfile(*profile)
		require.NoError(t, err)
		cookies = append(cookies, &http.Cookie{Name: cookie.UserCookieName, Value: encoded})
	}
	return cookies
}

// DecodeUserCookie reads the profile back from a user cookie set by the server.
func DecodeUserCookie(t *testing.T, c *http.Cookie) session.Profile {
	t.Helper()
	require.NotNil(t, c, "user cookie not set")
	profile, err := session.DecodeProfile(c.Value)
	require.NoError(t, err)
	return profile
}
