//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"market-admin/tests/common/authtest"
	"market-admin/tests/common/httptest"
	"market-admin/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	logoutURL         = "/api/auth/logout"
	changePasswordURL = "/api/auth/change-password"
	routeCheckURL     = "/api/auth/route-check"
	bookingsURL       = "/api/bookings"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		redirect       string
	}{
		{
			name:           "valid credentials",
			email:          e2e.AdminEmail,
			password:       e2e.AdminPassword,
			expectedStatus: http.StatusOK,
			redirect:       "/",
		},
		{
			name:           "password change pending",
			email:          e2e.NewcomerEmail,
			password:       e2e.NewcomerPassword,
			expectedStatus: http.StatusOK,
			redirect:       "/auth/change-password",
		},
		{
			name:           "wrong password",
			email:          e2e.AdminEmail,
			password:       "nope",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed email never reaches the backend",
			email:          "ada",
			password:       e2e.AdminPassword,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, e2e.LoginURL,
				map[string]string{"email": tt.email, "password": tt.password})

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tt.expectedStatus, "")
				s.Nil(httptest.ExtractCookie(w, "token"))
				if tt.expectedStatus == http.StatusBadRequest {
					s.Zero(s.Backend.Hits(http.MethodPost, "/login"))
				}
				return
			}

			var body struct {
				Redirect string `json:"redirect"`
			}
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
			s.Equal(tt.redirect, body.Redirect)

			token := httptest.ExtractCookie(w, "token")
			s.Require().NotNil(token)
			s.Equal(s.Backend.Token(tt.email), token.Value)
			s.Equal("/", token.Path)
			s.Equal(tt.email, authtest.DecodeUserCookie(s.T(), httptest.ExtractCookie(w, "user")).Email)
		})
	}
}

func (s *authSuite) TestGuard() {
	s.Run("api without session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil)
		httptest.AssertDenied(s.T(), w, http.StatusUnauthorized, "/auth/login")
		s.Zero(s.Backend.Hits(http.MethodGet, "/bookings"))
	})

	s.Run("page without session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/bookings", nil, httptest.AsBrowser())
		httptest.AssertRedirect(s.T(), w, "/auth/login")
	})

	s.Run("pending password change", func() {
		cookies := s.Login(e2e.NewcomerEmail, e2e.NewcomerPassword)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, httptest.WithCookies(cookies...))
		httptest.AssertDenied(s.T(), w, http.StatusForbidden, "/auth/change-password")
	})

	s.Run("route check", func() {
		cookies := s.Login(e2e.AdminEmail, e2e.AdminPassword)
		var body struct {
			Allow bool `json:"allow"`
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, routeCheckURL+"?path=/subscriptions", nil, httptest.WithCookies(cookies...))
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.True(body.Allow)
	})
}

func (s *authSuite) TestChangePasswordUnlocksDashboard() {
	cookies := s.Login(e2e.NewcomerEmail, e2e.NewcomerPassword)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, changePasswordURL, map[string]string{
		"current_password":      e2e.NewcomerPassword,
		"password":              "brand-new-password",
		"password_confirmation": "brand-new-password",
	}, httptest.WithCookies(cookies...))
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	s.Equal([]string{"Bearer " + s.Backend.Token(e2e.NewcomerEmail)},
		s.Backend.Authorizations(http.MethodPost, "/change-password"))

	refreshed := httptest.ExtractCookie(w, "user")
	s.False(authtest.DecodeUserCookie(s.T(), refreshed).MustChangePassword())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil,
		httptest.WithCookies(cookies[0], refreshed))
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *authSuite) TestChangePasswordRejected() {
	cookies := s.Login(e2e.NewcomerEmail, e2e.NewcomerPassword)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, changePasswordURL, map[string]string{
		"current_password":      "not-my-password",
		"password":              "brand-new-password",
		"password_confirmation": "brand-new-password",
	}, httptest.WithCookies(cookies...))
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Password change failed")
	s.Nil(httptest.ExtractCookie(w, "user"))
}

func (s *authSuite) TestLogout() {
	cookies := s.Login(e2e.AdminEmail, e2e.AdminPassword)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, httptest.WithCookies(cookies...))
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("", httptest.ExtractCookie(w, "token").Value)
}
