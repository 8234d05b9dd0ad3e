package cookie

import (
	"net/http"
	"strings"

	"market-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	TokenCookieName = "token"
	UserCookieName  = "user"
)

// SetSessionCookies persists the session the way the dashboard UI reads it. encodedUser is
// written verbatim; gin's SetCookie would escape it a second time.
func SetSessionCookies(c *gin.Context, cfg config.CookieConfig, token, encodedUser string) {
	maxAge := int(cfg.MaxAge.Seconds())
	write(c, cfg, TokenCookieName, token, maxAge, true)
	// readable by the browser UI
	write(c, cfg, UserCookieName, encodedUser, maxAge, false)
}

func ClearSessionCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, TokenCookieName, "", -1, true)
	write(c, cfg, UserCookieName, "", -1, false)
}

// GetToken reads the token cookie, falling back to an Authorization bearer header.
func GetToken(c *gin.Context) string {
	if raw, err := c.Request.Cookie(TokenCookieName); err == nil && raw.Value != "" {
		return raw.Value
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}

// GetUser returns the raw (still encoded) user cookie and whether it was sent.
func GetUser(c *gin.Context) (string, bool) {
	raw, err := c.Request.Cookie(UserCookieName)
	if err != nil || raw.Value == "" {
		return "", false
	}
	return raw.Value, true
}

func write(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int, httpOnly bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		Domain:   cfg.Domain,
		Secure:   cfg.Secure,
		HttpOnly: httpOnly,
		SameSite: getSameSite(cfg.SameSite),
	})
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
