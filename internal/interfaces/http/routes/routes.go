// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/menu"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/domain/slides"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// SetupMenuRoutes sets up menu browsing routes
func SetupMenuRoutes(rg *gin.RouterGroup, menuService *menu.Service) {
	menuHandler := handlers.NewMenuHandler(menuService)

	m := rg.Group("/menu")
	{
		m.GET("", menuHandler.GetMenu)
		m.GET("/deals", menuHandler.GetDeals)
	}
}

// SetupSlidesRoutes sets up hero banner routes
func SetupSlidesRoutes(rg *gin.RouterGroup, slidesService *slides.Service) {
	slidesHandler := handlers.NewSlidesHandler(slidesService)

	rg.GET("/slides", slidesHandler.GetSlides)
}

// SetupCartRoutes sets up cart routes. The cart works for guests and
// authenticated users alike; the session cookie identifies the cart.
func SetupCartRoutes(rg *gin.RouterGroup, cartStore *cart.Store, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cartStore, cfg)

	c := rg.Group("/cart")
	{
		c.GET("", cartHandler.GetCart)
		c.GET("/count", cartHandler.GetCartCount)
		c.POST("/items", cartHandler.AddToCart)
		c.PUT("/items/:id/increase", cartHandler.IncreaseQuantity)
		c.PUT("/items/:id/decrease", cartHandler.DecreaseQuantity)
		c.DELETE("/items/:id", cartHandler.RemoveFromCart)
		c.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout routes. Authentication is optional at
// the transport layer; the checkout service enforces login gating when it is
// enabled in configuration.
func SetupCheckoutRoutes(rg *gin.RouterGroup, checkoutService *checkout.Service, sessions *session.Service, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cfg)

	co := rg.Group("/checkout")
	co.Use(middleware.OptionalAuth(sessions))
	{
		co.POST("", checkoutHandler.Submit)
		co.POST("/payment-session", checkoutHandler.CreatePaymentSession)
	}
}

// SetupOrderRoutes sets up order tracking routes
func SetupOrderRoutes(rg *gin.RouterGroup, orderService *order.Service, sessions *session.Service) {
	orderHandler := handlers.NewOrderHandler(orderService)

	orders := rg.Group("/orders")
	orders.Use(middleware.RequireAuth(sessions))
	{
		orders.GET("", orderHandler.ListOrders)
	}
}

// SetupAdminRoutes sets up back-office routes
func SetupAdminRoutes(rg *gin.RouterGroup, menuService *menu.Service, orderService *order.Service, slidesService *slides.Service, sessions *session.Service) {
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	slidesHandler := handlers.NewSlidesHandler(slidesService)
	userHandler := handlers.NewUserAdminHandler(sessions)

	admin := rg.Group("/admin")
	admin.Use(middleware.RequireAuth(sessions))
	admin.Use(middleware.RequireRole(session.RoleAdmin, session.RoleSuperAdmin))
	{
		// Menu management
		m := admin.Group("/menu")
		{
			m.POST("", menuHandler.AdminCreateMenuItem)
			m.PUT("/:id", menuHandler.AdminUpdateMenuItem)
			m.DELETE("/:id", menuHandler.AdminDeleteMenuItem)
		}

		// Order management
		orders := admin.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.PUT("/:id/status", orderHandler.AdminUpdateOrderStatus)
			orders.DELETE("/:id", orderHandler.AdminDeleteOrder)
		}

		// Slide management
		s := admin.Group("/slides")
		{
			s.POST("", slidesHandler.AdminCreateSlide)
			s.DELETE("/:id", slidesHandler.AdminDeleteSlide)
		}

		// User management, restricted to super admins
		users := admin.Group("/users")
		users.Use(middleware.RequireRole(session.RoleSuperAdmin))
		{
			users.GET("", userHandler.ListUsers)
			users.PUT("/:id/role", userHandler.UpdateUserRole)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}
}
