package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"market-admin/internal/domain/session"
	"market-admin/internal/handler/httperr"
	"market-admin/internal/pkg/clock"
	"market-admin/internal/pkg/cookie"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/pkg/jwt"
	"market-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api"

type GuardMiddleware struct {
	paths     usecase.RoutePaths
	inspector *jwt.Inspector
	clock     clock.Clock
}

func NewGuardMiddleware(paths usecase.RoutePaths, inspector *jwt.Inspector, clk clock.Clock) *GuardMiddleware {
	return &GuardMiddleware{
		paths:     paths,
		inspector: inspector,
		clock:     clk,
	}
}

// Evaluate runs the route decision for path with the session material sent by the browser.
// Expired JWTs count as no token.
func (m *GuardMiddleware) Evaluate(c *gin.Context, path string) (usecase.GuardDecision, string) {
	token := cookie.GetToken(c)
	if token != "" && m.inspector.Expired(token, m.clock.Now()) {
		slog.DebugContext(c.Request.Context(), "ignoring expired session token", "path", path)
		token = ""
	}
	userCookie, _ := cookie.GetUser(c)

	decision := usecase.DecideRoute(m.paths, usecase.GuardRequest{
		Path:       path,
		Token:      token,
		UserCookie: userCookie,
	})
	return decision, token
}

// RequireSession guards every route it is mounted on. The decision uses the logical
// path, so /api/auth/... shares the public prefix of /auth/... pages.
func (m *GuardMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := LogicalPath(c.Request.URL.Path)
		decision, token := m.Evaluate(c, path)

		if !decision.Allow {
			m.deny(c, decision.Redirect)
			return
		}

		if token != "" {
			ctx := session.NewContext(c.Request.Context(), session.Session{Token: token, User: decision.Profile})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func (m *GuardMiddleware) deny(c *gin.Context, redirect string) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, redirect)
		c.Abort()
		return
	}

	status := http.StatusUnauthorized
	err := errs.ErrUnauthenticated
	msg := "Authentication required"
	if redirect == m.paths.ChangePasswordPath {
		status = http.StatusForbidden
		err = errs.Mark(errs.New("password change required"), errs.ErrUnauthenticated)
		msg = "Password change required"
	}
	httperr.AbortWithError(c, status, err, msg, gin.H{"redirect": redirect})
}

// LogicalPath strips the /api mount point.
func LogicalPath(path string) string {
	if path == apiPrefix {
		return "/"
	}
	if strings.HasPrefix(path, apiPrefix+"/") {
		return strings.TrimPrefix(path, apiPrefix)
	}
	return path
}

func wantsHTML(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, apiPrefix+"/") {
		return false
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
