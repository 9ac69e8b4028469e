// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

// CheckoutHandler handles order submission endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		config:          cfg,
	}
}

// Submit handles POST /checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req checkout.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sess, _ := middleware.GetSessionFromContext(c)

	result, err := h.checkoutService.Submit(c.Request.Context(), sessionID, sess, &req)
	if err != nil {
		h.renderSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"data":    result,
	})
}

// CreatePaymentSession handles POST /checkout/payment-session
func (h *CheckoutHandler) CreatePaymentSession(c *gin.Context) {
	sessionID := h.sessionID(c)

	paymentSession, err := h.checkoutService.CreatePaymentSession(c.Request.Context(), sessionID)
	if err != nil {
		var unavailable *checkout.PaymentUnavailableError
		if errors.As(err, &unavailable) {
			// Degrade gracefully: the client falls back to cash on delivery
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":    unavailable.Error(),
				"fallback": "cod",
			})
			return
		}

		var validationErr *checkout.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Checkout validation failed",
				"fields": validationErr.Fields,
			})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to create payment session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment session created successfully",
		"data":    paymentSession,
	})
}

func (h *CheckoutHandler) renderSubmitError(c *gin.Context, err error) {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Please fill all fields and add items to cart",
			"fields": validationErr.Fields,
		})
		return
	}

	if errors.Is(err, checkout.ErrLoginRequired) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Login first to place your order",
		})
		return
	}

	if errors.Is(err, checkout.ErrSubmissionInFlight) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Your order is already being placed",
		})
		return
	}

	var netErr *backend.NetworkError
	if errors.As(err, &netErr) {
		// The cart is preserved; the user can retry
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error placing order. Try again!",
		})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"error": "Error placing order. Try again!",
	})
}

func (h *CheckoutHandler) sessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(h.config.Session.CookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(h.config.Session.CookieName, sessionID,
			h.config.Session.CookieMaxAge, "/", "", false, true)
	}
	return sessionID
}
