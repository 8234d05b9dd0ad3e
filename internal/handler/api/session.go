package api

import (
	"context"
	"time"

	"market-admin/internal/domain/session"
	"market-admin/internal/pkg/config"
	"market-admin/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

// withSession attaches a session for routes that sit under the public prefix but still
// call the backend on behalf of the signed-in user.
func withSession(c *gin.Context, token string, profile *session.Profile) context.Context {
	return session.NewContext(c.Request.Context(), session.Session{Token: token, User: profile})
}

// refreshUserCookie records the password change so the guard stops forcing the change page.
func refreshUserCookie(c *gin.Context, cfg config.CookieConfig, token string, profile session.Profile) error {
	changedAt := time.Now().UTC().Format(time.RFC3339)
	profile.PasswordChangedAt = &changedAt
	encoded, err := session.EncodeProfile(profile)
	if err != nil {
		return err
	}
	cookie.SetSessionCookies(c, cfg, token, encoded)
	return nil
}
