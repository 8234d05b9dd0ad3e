//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"market-admin/internal/domain/session"
	"market-admin/internal/handler/middleware"
	"market-admin/internal/pkg/clock"
	"market-admin/internal/pkg/jwt"
	"market-admin/internal/usecase"
	"market-admin/tests/common/authtest"
	"market-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

var paths = usecase.RoutePaths{
	PublicPrefix:       "/auth",
	LoginPath:          "/auth/login",
	ChangePasswordPath: "/auth/change-password",
}

type GuardTestSuite struct {
	suite.Suite
	clock  *clock.MockClock
	router *gin.Engine
}

func TestGuardSuite(t *testing.T) {
	suite.Run(t, new(GuardTestSuite))
}

func (s *GuardTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	guard := middleware.NewGuardMiddleware(paths, jwt.NewInspector(), s.clock)

	s.router = gin.New()
	s.router.Use(guard.RequireSession())
	echoSession := func(c *gin.Context) {
		sess, _ := session.FromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"token": sess.Token, "has_user": sess.User != nil})
	}
	s.router.GET("/api/bookings", echoSession)
	s.router.POST("/api/auth/login", echoSession)
	s.router.NoRoute(func(c *gin.Context) { c.String(http.StatusOK, "page") })
}

func (s *GuardTestSuite) token() string {
	return authtest.Token(s.T(), s.clock.Now().Add(time.Hour))
}

func (s *GuardTestSuite) TestAPIWithoutSession() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil)
	httptest.AssertDenied(s.T(), w, http.StatusUnauthorized, "/auth/login")
}

func (s *GuardTestSuite) TestPageWithoutSessionRedirects() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, httptest.AsBrowser())
	httptest.AssertRedirect(s.T(), w, "/auth/login")
}

func (s *GuardTestSuite) TestNonBrowserPageRequestGetsJSON() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil)
	httptest.AssertDenied(s.T(), w, http.StatusUnauthorized, "/auth/login")
}

func (s *GuardTestSuite) TestAPIUnderAPIPrefixNeverRedirects() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, httptest.AsBrowser())
	httptest.AssertDenied(s.T(), w, http.StatusUnauthorized, "/auth/login")
}

func (s *GuardTestSuite) TestAuthenticatedSessionReachesHandler() {
	token := s.token()
	profile := authtest.Profile(true)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil,
		httptest.WithCookies(authtest.SessionCookies(s.T(), token, &profile)...))

	var body struct {
		Token   string `json:"token"`
		HasUser bool   `json:"has_user"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal(token, body.Token)
	s.True(body.HasUser)
}

func (s *GuardTestSuite) TestPasswordChangeRequired() {
	profile := authtest.Profile(false)
	cookies := authtest.SessionCookies(s.T(), s.token(), &profile)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, httptest.WithCookies(cookies...))
	httptest.AssertDenied(s.T(), w, http.StatusForbidden, "/auth/change-password")

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, httptest.WithCookies(cookies...), httptest.AsBrowser())
	httptest.AssertRedirect(s.T(), w, "/auth/change-password")

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/change-password", nil, httptest.WithCookies(cookies...), httptest.AsBrowser())
	s.Equal(http.StatusOK, w.Code, "the change-password page itself stays reachable")
}

func (s *GuardTestSuite) TestExpiredTokenCountsAsAbsent() {
	profile := authtest.Profile(true)
	token := authtest.Token(s.T(), s.clock.Now().Add(time.Minute))
	s.clock.Add(time.Minute)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil,
		httptest.WithCookies(authtest.SessionCookies(s.T(), token, &profile)...))
	httptest.AssertDenied(s.T(), w, http.StatusUnauthorized, "/auth/login")
}

func (s *GuardTestSuite) TestBearerHeaderWithoutUserCookie() {
	token := s.token()
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil,
		httptest.WithHeader("Authorization", "Bearer "+token))

	var body struct {
		Token   string `json:"token"`
		HasUser bool   `json:"has_user"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal(token, body.Token)
	s.False(body.HasUser)
}

func (s *GuardTestSuite) TestOpaqueTokenIsNeverExpired() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil,
		httptest.WithCookies(authtest.SessionCookies(s.T(), "opaque-sanctum-token", nil)...))
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *GuardTestSuite) TestMalformedUserCookieFailsClosed() {
	cookies := authtest.SessionCookies(s.T(), s.token(), nil)
	cookies = append(cookies, &http.Cookie{Name: "user", Value: "%7Bbroken"})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, httptest.WithCookies(cookies...))
	httptest.AssertDenied(s.T(), w, http.StatusUnauthorized, "/auth/login")
}

func (s *GuardTestSuite) TestPublicAPIRoutes() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", nil)
	s.Equal(http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/authors", nil, httptest.AsBrowser())
	httptest.AssertRedirect(s.T(), w, "/auth/login")
}

func TestLogicalPath(t *testing.T) {
	tests := map[string]string{
		"/api":                "/",
		"/api/bookings":       "/bookings",
		"/api/auth/login":     "/auth/login",
		"/apiary":             "/apiary",
		"/auth/login":         "/auth/login",
		"/bookings/7/details": "/bookings/7/details",
	}
	for in, want := range tests {
		assert.Equal(t, want, middleware.LogicalPath(in), in)
	}
}
