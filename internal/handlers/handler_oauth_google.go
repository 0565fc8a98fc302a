package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/middleware"
	"github.com/ledgerbooks/books_backend/internal/platform/config"
	"github.com/ledgerbooks/books_backend/internal/utils"
)

const oauthStateCookie = "oauth_state"

// googleOAuthHandler handles the Google sign-in flow.
type googleOAuthHandler struct {
	cfg          *config.Config
	oauthService portssvc.GoogleOAuthHandlerSvcFacade
	userService  portssvc.UserSvcFacade
	auth         *authHandler
}

// registerGoogleOAuthRoutes wires the Google OAuth endpoints. The routes are
// no-ops when no Google client is configured.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	if cfg.GoogleClientID == "" || services.GoogleOAuth == nil {
		return
	}

	h := &googleOAuthHandler{
		cfg:          cfg,
		oauthService: services.GoogleOAuth,
		userService:  services.User,
		auth:         newAuthHandler(cfg, services.User, services.Token),
	}

	rg.GET("/google/login", h.googleLogin)
	rg.GET("/google/callback", h.googleCallback)
}

// googleLogin godoc
// @Summary Begin Google sign-in
// @Description Redirects to the Google consent screen with a CSRF state cookie.
// @Tags auth
// @Success 307
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) googleLogin(c *gin.Context) {
	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate oauth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: genericErrorMessage})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/api/v1/auth", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// googleCallback godoc
// @Summary Complete Google sign-in
// @Description Exchanges the authorization code, verifies the ID token, provisions the user when new and issues tokens.
// @Tags auth
// @Produce json
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} MessageResponse
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || cookieState == "" || cookieState != c.Query("state") {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/api/v1/auth", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Authorization code missing"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Failed to exchange authorization code"})
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "ID token missing from Google response"})
		return
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		logger.Warn("Invalid Google ID token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Invalid ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Email missing from ID token"})
		return
	}
	if name == "" {
		name = email
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if errors.Is(err, apperrors.ErrNotFound) {
		// First sign-in: provision a user with an unguessable password.
		password, randErr := utils.GenerateSecureRandomString(24)
		if randErr != nil {
			logger.Error("Failed to generate placeholder password", slog.String("error", randErr.Error()))
			c.JSON(http.StatusInternalServerError, MessageResponse{Message: genericErrorMessage})
			return
		}
		user, err = h.userService.CreateUser(c.Request.Context(), dto.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: password,
		})
	}
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	h.auth.issueTokens(c, user)
}
