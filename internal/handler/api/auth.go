package api

import (
	"net/http"

	reqdto "market-admin/internal/handler/dto/request"
	resdto "market-admin/internal/handler/dto/response"
	"market-admin/internal/handler/httperr"
	"market-admin/internal/handler/middleware"
	"market-admin/internal/pkg/config"
	"market-admin/internal/pkg/cookie"
	"market-admin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds  commands.AuthCommands
	guard *middleware.GuardMiddleware
	cfg   config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, guard *middleware.GuardMiddleware, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, guard: guard, cfg: cfg}
}

// @Summary Admin login
// @Description Forwards credentials to the admin API and stores the session cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCredentials())
	if err != nil {
		abortWithUseCaseError(c, err, "Login failed")
		return
	}

	cookie.SetSessionCookies(c, h.cfg.Cookie, result.Session.Token, result.EncodedUser)

	redirect := "/"
	if result.Session.User.MustChangePassword() {
		redirect = h.cfg.Guard.ChangePasswordPath
	}
	c.JSON(http.StatusOK, resdto.LoginResponse{User: result.Session.User, Redirect: redirect})
}

// @Summary Admin logout
// @Description Clears the session cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ForgetPasswordRequest true "Email"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/forget-password [post]
func (h *AuthHandler) ForgetPassword(c *gin.Context) {
	var req reqdto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.ForgetPassword(c.Request.Context(), req.Email)
	if err != nil {
		abortWithUseCaseError(c, err, "Password reset failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEnvelope(*res))
}

// @Summary Change password
// @Description Changes the password of the signed-in administrator and refreshes the user cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ChangePasswordRequest true "Password change"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	decision, token := h.guard.Evaluate(c, "/")
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", gin.H{"redirect": h.cfg.Guard.LoginPath})
		return
	}

	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ctx := withSession(c, token, decision.Profile)
	res, err := h.cmds.ChangePassword(ctx, req.ToChange())
	if err != nil {
		abortWithUseCaseError(c, err, "Password change failed")
		return
	}

	if decision.Profile != nil {
		if err := refreshUserCookie(c, h.cfg.Cookie, token, *decision.Profile); err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
	}
	c.JSON(http.StatusOK, resdto.FromEnvelope(*res))
}

// @Summary Check a route
// @Description Evaluates the route guard for a UI path using the session cookies
// @Tags auth
// @Produce json
// @Param path query string true "UI path"
// @Success 200 {object} resdto.RouteDecisionResponse
// @Router /auth/route-check [get]
func (h *AuthHandler) RouteCheck(c *gin.Context) {
	var q reqdto.RouteCheckQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	decision, _ := h.guard.Evaluate(c, q.Path)
	c.JSON(http.StatusOK, resdto.RouteDecisionResponse{Allow: decision.Allow, Redirect: decision.Redirect})
}
