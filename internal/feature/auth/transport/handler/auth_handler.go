// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeshop_backend/internal/feature/auth/transport/http/dto"
	"coffeeshop_backend/internal/feature/auth/usecase"
	"coffeeshop_backend/internal/platform/session"
)

// AuthUsecase defines the authentication operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new coffee-shop owner and returns the new user ID.
	Register(ctx context.Context, in usecase.RegisterInput) (uint, error)
	// Login authenticates a user and returns an opaque session token.
	Login(ctx context.Context, email, password string, meta usecase.LoginMeta) (string, error)
	// Logout revokes the session for the given token.
	Logout(ctx context.Context, token string) error
}

// AuthHandler handles HTTP requests for registration, login and logout.
// The session token travels in an HttpOnly cookie set here and read back by
// the session middleware on protected routes.
type AuthHandler struct {
	auth    AuthUsecase
	cookies session.Config
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase, cookies session.Config) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// Register handles the user registration endpoint.
// - binds the registration form / JSON body
// - 400 on validation failure or malformed input
// - 409 when the email or shop name is already taken
// - 201 on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		ShopName: req.ShopName,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			slog.Warn("register rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists),
			errors.Is(err, usecase.ErrShopNameAlreadyExists):
			slog.Warn("register conflict", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	slog.Info("user registered", "user_id", userID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "ok", "user_id": userID})
}

// Login handles the user login endpoint.
// On success the session token is set as an HttpOnly cookie.
// Authentication failures always return the same 401 body, whether the email
// is unknown or the password is wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, usecase.LoginMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookies.CookieName, token, int(h.cookies.TTL.Seconds()), "/", "", h.cookies.Secure, true)

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Logout revokes the current session and clears the session cookie.
// The cookie is cleared even when the token is already gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookies.CookieName)

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookies.CookieName, "", -1, "/", "", h.cookies.Secure, true)

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
