package controller

import (
	"errors"
	"fire_planner_backend/internal/config"
	"fire_planner_backend/internal/service"
	"fire_planner_backend/internal/util"
	"fire_planner_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Service *service.AuthService
	Config  *config.Config
}

func NewAuthController(svc *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Service: svc, Config: cfg}
}

// @Summary Whop OAuth callback
// @Description Called by Whop after checkout/login. Exchanges the code,
// @Description verifies membership, upserts the user and sets the session
// @Description cookie, then redirects into the questionnaire.
// @Tags auth
// @Param code query string false "authorization code"
// @Param error query string false "provider error"
// @Success 307
// @Router /auth/whop/callback [get]
func (c *AuthController) WhopCallback(ctx *gin.Context) {
	if provErr := ctx.Query("error"); provErr != "" {
		logger.Log.Warn("whop auth error", zap.String("error", provErr))
		c.redirectWithError(ctx, "auth_failed")
		return
	}

	code := ctx.Query("code")
	if code == "" {
		c.redirectWithError(ctx, "no_code")
		return
	}

	session, err := c.Service.HandleCallback(ctx.Request.Context(), code)
	if err != nil {
		logger.Log.Error("whop callback failed", zap.Error(err))
		if errors.Is(err, util.ErrNoActiveMembership) {
			c.redirectWithError(ctx, "no_active_membership")
			return
		}
		c.redirectWithError(ctx, "auth_failed")
		return
	}

	value, err := util.EncodeSession(session)
	if err != nil {
		c.redirectWithError(ctx, "unexpected")
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(
		c.Config.Session.CookieName,
		value,
		int(c.Config.Session.MaxAge.Seconds()),
		"/",
		"",
		c.Config.Session.Secure,
		true,
	)
	ctx.Redirect(http.StatusTemporaryRedirect, c.Config.Whop.AppURL+"/questionnaire")
}

func (c *AuthController) redirectWithError(ctx *gin.Context, code string) {
	ctx.Redirect(http.StatusTemporaryRedirect, c.Config.Whop.AppURL+"/?error="+code)
}

type verifyResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *sessionUser `json:"user,omitempty"`
}

type sessionUser struct {
	ID         string `json:"id"`
	WhopUserID string `json:"whopUserId"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
}

// @Summary Verify the current session
// @Tags auth
// @Produce json
// @Success 200 {object} verifyResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /auth/whop/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	// Membership validity was established at callback time; the cached check
	// keeps this endpoint from hitting the provider per request.
	if !c.Service.MembershipVerified(ctx.Request.Context(), session.WhopUserID) {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, verifyResponse{
		Authenticated: true,
		User: &sessionUser{
			ID:         session.UserID,
			WhopUserID: session.WhopUserID,
			Email:      session.Email,
			Name:       session.Name,
		},
	})
}

// @Summary Log out by clearing the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/whop/verify [delete]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(c.Config.Session.CookieName, "", -1, "/", "", c.Config.Session.Secure, true)
	util.Success(ctx, gin.H{"success": true})
}
