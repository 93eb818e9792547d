// Package handler provides the HTTP handlers for the newsletter feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeshop_backend/internal/feature/newsletter/transport/http/dto"
	"coffeeshop_backend/internal/feature/newsletter/usecase"
)

// NewsletterUsecase defines the public newsletter operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, email string) error
	SubmitContact(ctx context.Context, email, message string) error
}

// NewsletterHandler handles the public subscribe and contact endpoints.
type NewsletterHandler struct {
	uc NewsletterUsecase
}

// NewNewsletterHandler creates a new NewsletterHandler instance.
func NewNewsletterHandler(uc NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

// Subscribe handles the newsletter signup endpoint.
// - 400 on a missing or malformed email
// - 409 when the email is already subscribed
// - 201 on success
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide a valid email address"})
		return
	}

	if err := h.uc.Subscribe(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadySubscribed):
			c.JSON(http.StatusConflict, gin.H{"error": "you are already subscribed"})
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("subscribe failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "ok"})
}

// Contact handles the contact form endpoint.
func (h *NewsletterHandler) Contact(c *gin.Context) {
	var req dto.ContactReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message and/or email not provided"})
		return
	}

	if err := h.uc.SubmitContact(c.Request.Context(), req.Email, req.Message); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("contact submission failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "ok"})
}
