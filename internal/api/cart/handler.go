package cartapi

import (
	"errors"
	"net/http"
	"strconv"

	"vastuguru-api/internal/domain/cart"
	"vastuguru-api/internal/domain/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	Repo     cart.Repository
	Services services.Repository
	Log      *zap.Logger
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	items, err := h.Repo.ListItems(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error("load cart", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	if items == nil {
		items = []cart.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /cart
func (h *Handler) AddToCart(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid itemId"})
		return
	}

	ctx := c.Request.Context()
	svc, err := h.Services.Get(ctx, body.ItemID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		h.Log.Error("load service for cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
		return
	}
	if !svc.IsActive {
		c.JSON(http.StatusConflict, gin.H{"error": "Service is not available"})
		return
	}

	item := cart.Item{UserID: userID, ItemID: svc.ID, Kind: cart.KindService}
	if err := h.Repo.AddItem(ctx, &item); err != nil {
		if errors.Is(err, cart.ErrAlreadyInCart) {
			c.JSON(http.StatusConflict, gin.H{"error": "Already in cart"})
			return
		}
		h.Log.Error("add to cart", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// DELETE /cart/:id
func (h *Handler) RemoveFromCart(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	if err := h.Repo.RemoveItem(c.Request.Context(), userID, uint(itemID)); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		h.Log.Error("remove from cart", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /cart/contains/:serviceId
func (h *Handler) ContainsService(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	items, err := h.Repo.ListItems(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error("load cart", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inCart": cart.ContainsService(items, c.Param("serviceId"))})
}
