// internal/interfaces/http/handlers/slides.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/slides"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// SlidesHandler handles hero banner slide endpoints
type SlidesHandler struct {
	slidesService *slides.Service
}

// NewSlidesHandler creates a new slides handler
func NewSlidesHandler(slidesService *slides.Service) *SlidesHandler {
	return &SlidesHandler{
		slidesService: slidesService,
	}
}

// GetSlides handles GET /slides
func (h *SlidesHandler) GetSlides(c *gin.Context) {
	result, err := h.slidesService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve slides",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Slides retrieved successfully",
		"data":    result,
	})
}

// AdminCreateSlide handles POST /admin/slides
func (h *SlidesHandler) AdminCreateSlide(c *gin.Context) {
	var req slides.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	slide, err := h.slidesService.Create(c.Request.Context(), middleware.GetTokenFromContext(c), &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error creating slide",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Slide created successfully",
		"data":    slide,
	})
}

// AdminDeleteSlide handles DELETE /admin/slides/:id
func (h *SlidesHandler) AdminDeleteSlide(c *gin.Context) {
	if err := h.slidesService.Delete(c.Request.Context(), middleware.GetTokenFromContext(c), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error deleting slide",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Slide deleted successfully",
	})
}
