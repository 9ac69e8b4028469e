// internal/interfaces/http/handlers/menu.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/menu"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// MenuHandler handles menu endpoints
type MenuHandler struct {
	menuService *menu.Service
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *menu.Service) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// GetMenu handles GET /menu
func (h *MenuHandler) GetMenu(c *gin.Context) {
	var req menu.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	items, err := h.menuService.List(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve menu",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu retrieved successfully",
		"data":    items,
	})
}

// GetDeals handles GET /menu/deals
func (h *MenuHandler) GetDeals(c *gin.Context) {
	items, err := h.menuService.Deals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve deals",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deals retrieved successfully",
		"data":    items,
	})
}

// AdminCreateMenuItem handles POST /admin/menu
func (h *MenuHandler) AdminCreateMenuItem(c *gin.Context) {
	var req menu.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.menuService.Create(c.Request.Context(), middleware.GetTokenFromContext(c), &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error saving menu item",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu item added successfully",
		"data":    item,
	})
}

// AdminUpdateMenuItem handles PUT /admin/menu/:id
func (h *MenuHandler) AdminUpdateMenuItem(c *gin.Context) {
	var req menu.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), middleware.GetTokenFromContext(c), c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error saving menu item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item updated successfully",
		"data":    item,
	})
}

// AdminDeleteMenuItem handles DELETE /admin/menu/:id
func (h *MenuHandler) AdminDeleteMenuItem(c *gin.Context) {
	if err := h.menuService.Delete(c.Request.Context(), middleware.GetTokenFromContext(c), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error deleting menu item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item deleted successfully",
	})
}
