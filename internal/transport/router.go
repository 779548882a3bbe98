package transport

import (
	"techstore-be/internal/logger"
	"techstore-be/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Setup mounts the storefront API on e.
func Setup(e *echo.Echo, h *Handler, rl *middleware.RateLimiter) {
	e.Use(
		logger.RequestID(),
		logger.RequestLogging(),
		echomw.CORS(),
		rl.Middleware(),
	)

	e.GET("/healthz", h.Health)
	e.GET("/confirmacao", h.Confirmation)

	api := e.Group("/api")

	api.GET("/products", h.ListProducts)
	api.GET("/products/facets", h.ProductFacets)
	api.GET("/products/:id", h.GetProduct)

	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddCartItem)
	api.PUT("/cart/items/:id", h.UpdateCartItem)
	api.DELETE("/cart/items/:id", h.RemoveCartItem)
	api.DELETE("/cart", h.ClearCart)
	api.POST("/cart/coupon", h.ApplyCoupon)

	api.GET("/checkout", h.GetCheckout)
	api.POST("/checkout/delivery", h.SubmitDelivery)
	api.POST("/checkout/payment", h.SubmitPayment)
	api.POST("/checkout/back", h.CheckoutBack)
	api.POST("/checkout/place", h.PlaceOrder)
}
