// Package handler provides the HTTP handlers for the menu feature.
// All routes here sit behind the session middleware; the owner's user ID
// comes from the gin context, never from the request body.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeshop_backend/internal/feature/menu/domain/entity"
	"coffeeshop_backend/internal/feature/menu/transport/http/dto"
	"coffeeshop_backend/internal/feature/menu/usecase"
	"coffeeshop_backend/internal/platform/session"
)

// MenuUsecase defines the menu operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MenuUsecase interface {
	AddItem(ctx context.Context, userID uint, category, item, price string) (uint, error)
	ListItems(ctx context.Context, userID uint) ([]entity.MenuItem, error)
	RemoveItem(ctx context.Context, userID uint, item string) error
	DisplayMenu(ctx context.Context, userID uint, style entity.Style) (*usecase.Display, error)
}

// MenuHandler handles HTTP requests for the owner's menu.
type MenuHandler struct {
	uc MenuUsecase
}

// NewMenuHandler creates a new MenuHandler instance.
func NewMenuHandler(uc MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Add handles the add-menu-item endpoint.
// - 400 on missing fields, unknown category or non-numeric price
// - 201 with the new item's ID on success
func (h *MenuHandler) Add(c *gin.Context) {
	userID, ok := session.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	var req dto.AddItemReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itemID, err := h.uc.AddItem(c.Request.Context(), userID, req.Category, req.Item, req.Price)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCategory) || errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("add menu item failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "ok", "item_id": itemID})
}

// List returns all of the owner's menu items.
func (h *MenuHandler) List(c *gin.Context) {
	userID, ok := session.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	items, err := h.uc.ListItems(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list menu items failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]dto.MenuItemRes, 0, len(items))
	for _, it := range items {
		out = append(out, dto.MenuItemRes{ID: it.ID, Category: it.Category, Item: it.Item, Price: it.Price})
	}
	c.JSON(http.StatusOK, out)
}

// Remove handles the remove-menu-item endpoint.
// - 400 on missing item name
// - 404 when the owner has no item by that name
func (h *MenuHandler) Remove(c *gin.Context) {
	userID, ok := session.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	var req dto.RemoveItemReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.RemoveItem(c.Request.Context(), userID, req.Item); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			slog.Error("remove menu item failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Display handles the styled-menu endpoint. It validates the selected style
// and returns the data fields the rendering layer needs.
func (h *MenuHandler) Display(c *gin.Context) {
	userID, ok := session.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	var req dto.StyleReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	display, err := h.uc.DisplayMenu(c.Request.Context(), userID, entity.Style(req.Style))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStyle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("display menu failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	items := make([]dto.MenuItemRes, 0, len(display.Items))
	for _, it := range display.Items {
		items = append(items, dto.MenuItemRes{ID: it.ID, Category: it.Category, Item: it.Item, Price: it.Price})
	}
	c.JSON(http.StatusOK, dto.DisplayRes{
		Name:        display.ShopName,
		Address:     display.Address,
		PhoneNumber: display.Phone,
		Style:       string(display.Style),
		Config:      display.Config,
		Categories:  display.Categories,
		Items:       items,
	})
}
