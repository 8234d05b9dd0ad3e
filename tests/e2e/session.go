//go:build e2e

package e2e

import (
	"net/http"

	"market-admin/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

const LoginURL = "/api/auth/login"

// Login signs in through the dashboard and returns the session cookies it set.
func (s *SharedSuite) Login(email, password string) []*http.Cookie {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, LoginURL,
		map[string]string{"email": email, "password": password})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var cookies []*http.Cookie
	for _, name := range []string{"token", "user"} {
		c := httptest.ExtractCookie(w, name)
		require.NotNil(s.T(), c, "cookie %s not set", name)
		cookies = append(cookies, c)
	}
	return cookies
}
