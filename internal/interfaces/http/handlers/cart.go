// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/menu"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartStore *cart.Store
	config    *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartStore: cartStore,
		config:    cfg,
	}
}

// AddToCartRequest represents add to cart request. The client sends the
// menu item snapshot it is holding; any deal discount is applied here,
// before the item reaches the cart.
type AddToCartRequest struct {
	ItemID      string `json:"_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Discount    int    `json:"discount" binding:"omitempty,min=0,max=100"`
	Quantity    int    `json:"quantity" binding:"omitempty,min=1"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartStore.Get(c.Request.Context(), sessionID),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	item := menu.Item{
		ID:       req.ItemID,
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
		Discount: req.Discount,
	}

	view, err := h.cartStore.AddItem(c.Request.Context(), sessionID, item.Snapshot(), qty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    view,
	})
}

// IncreaseQuantity handles PUT /cart/items/:id/increase
func (h *CartHandler) IncreaseQuantity(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	view := h.cartStore.IncreaseQuantity(c.Request.Context(), sessionID, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    view,
	})
}

// DecreaseQuantity handles PUT /cart/items/:id/decrease
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	view := h.cartStore.DecreaseQuantity(c.Request.Context(), sessionID, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    view,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	view := h.cartStore.RemoveItem(c.Request.Context(), sessionID, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    view,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	if err := h.cartStore.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.cartStore.Count(c.Request.Context(), sessionID),
		},
	})
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(h.config.Session.CookieName)
	if err != nil || sessionID == "" {
		// Generate new session ID
		sessionID = uuid.New().String()

		c.SetCookie(h.config.Session.CookieName, sessionID,
			h.config.Session.CookieMaxAge, "/", "", false, true)
	}

	return sessionID
}
