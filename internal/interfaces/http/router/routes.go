package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pobuilder/backend/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers mounted under the API prefix
type Handlers struct {
	Orders     *handler.PurchaseOrderHandler
	Pricing    *handler.PricingHandler
	Currencies *handler.CurrencyHandler
	System     *handler.SystemHandler
}

// NewAPIGroups builds the domain groups of the purchase order API.
// orderMiddleware runs only on the session routes.
func NewAPIGroups(h Handlers, orderMiddleware ...gin.HandlerFunc) []RouteRegistrar {
	currencies := NewDomainGroup("currencies", "/currencies")
	currencies.GET("", h.Currencies.List)

	pricing := NewDomainGroup("pricing", "/pricing")
	pricing.POST("/quote", h.Pricing.Quote)

	orders := NewDomainGroup("orders", "/orders").Use(orderMiddleware...)
	orders.POST("", h.Orders.Start).
		GET("/:session_id", h.Orders.Get).
		PATCH("/:session_id", h.Orders.UpdateField).
		DELETE("/:session_id", h.Orders.End).
		POST("/:session_id/reset", h.Orders.Reset)

	items := orders.Group("items", "/:session_id/items")
	items.POST("", h.Orders.AddItem).
		PATCH("/:item_id", h.Orders.UpdateItem).
		DELETE("/:item_id", h.Orders.DeleteItem)

	system := NewDomainGroup("system", "/system")
	system.GET("/info", h.System.GetSystemInfo).
		GET("/ping", h.System.Ping)

	return []RouteRegistrar{currencies, pricing, orders, system}
}
