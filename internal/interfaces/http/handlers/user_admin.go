// internal/interfaces/http/handlers/user_admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// UserAdminHandler handles user administration endpoints
type UserAdminHandler struct {
	sessionService *session.Service
}

// NewUserAdminHandler creates a new user admin handler
func NewUserAdminHandler(sessionService *session.Service) *UserAdminHandler {
	return &UserAdminHandler{
		sessionService: sessionService,
	}
}

// ListUsers handles GET /admin/users
func (h *UserAdminHandler) ListUsers(c *gin.Context) {
	users, err := h.sessionService.ListUsers(c.Request.Context(), middleware.GetTokenFromContext(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

// UpdateUserRoleRequest represents a role change request
type UpdateUserRoleRequest struct {
	Role session.Role `json:"role" binding:"required"`
}

// UpdateUserRole handles PUT /admin/users/:id/role
func (h *UserAdminHandler) UpdateUserRole(c *gin.Context) {
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid role",
		})
		return
	}

	if err := h.sessionService.UpdateUserRole(c.Request.Context(), middleware.GetTokenFromContext(c), c.Param("id"), req.Role); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error updating user role",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User role updated successfully",
	})
}

// DeleteUser handles DELETE /admin/users/:id
func (h *UserAdminHandler) DeleteUser(c *gin.Context) {
	if err := h.sessionService.DeleteUser(c.Request.Context(), middleware.GetTokenFromContext(c), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error deleting user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}
