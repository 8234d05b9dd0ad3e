//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market-admin/internal/pkg/config"
	"market-admin/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CookieConfig{Secure: true, SameSite: "Strict", MaxAge: 24 * time.Hour}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

	encoded := "%7B%22id%22%3A1%7D"
	cookie.SetSessionCookies(c, cfg, "tok", encoded)

	cookies := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		cookies[ck.Name] = ck
	}
	require.Contains(t, cookies, "token")
	require.Contains(t, cookies, "user")

	assert.Equal(t, "tok", cookies["token"].Value)
	assert.Equal(t, encoded, cookies["user"].Value)
	assert.Equal(t, 86400, cookies["user"].MaxAge)
	assert.Equal(t, "/", cookies["user"].Path)
	assert.True(t, cookies["user"].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies["user"].SameSite)
	assert.True(t, cookies["token"].HttpOnly)
	assert.False(t, cookies["user"].HttpOnly)
}

func TestGetToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cookie wins over header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: "token", Value: "from-cookie"})
		c.Request.Header.Set("Authorization", "Bearer from-header")
		assert.Equal(t, "from-cookie", cookie.GetToken(c))
	})

	t.Run("bearer header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer from-header")
		assert.Equal(t, "from-header", cookie.GetToken(c))
	})

	t.Run("user cookie absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := cookie.GetUser(c)
		assert.False(t, ok)
	})
}
