package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/marcgerasmio/alaika2/internal/handlers"
	"github.com/marcgerasmio/alaika2/internal/handlers/cart"
	"github.com/marcgerasmio/alaika2/internal/service"
)

type Deps struct {
	DB                 *gorm.DB
	AuthHandler        *handlers.AuthHandler
	ProductHandler     *handlers.ProductHandler
	BranchHandler      *handlers.BranchHandler
	CartHandler        *cart.CartHandler
	TransactionHandler *handlers.TransactionHandler
	SearchHandler      *handlers.SearchHandler
	TokenService       *service.TokenService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.LogOut)

	v1.GET("/branches", d.BranchHandler.GetBranches)
	v1.GET("/search", d.SearchHandler.Search)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("/:id/checkout", d.ProductHandler.BuyNow, d.TokenService.AutoRefreshMiddleware)

	carts := v1.Group("/cart", d.TokenService.AutoRefreshMiddleware)
	carts.GET("", d.CartHandler.GetCart)
	carts.POST("", d.CartHandler.AddToCart)
	carts.POST("/checkout", d.CartHandler.Checkout)
	carts.DELETE("/:id", d.CartHandler.DeleteFromCart)

	v1.GET("/transactions", d.TransactionHandler.History, d.TokenService.AutoRefreshMiddleware)

	admin := v1.Group("/admin", d.TokenService.AutoRefreshMiddlewareAdmin)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	admin.GET("/transactions", d.TransactionHandler.ListTransactions)
	admin.GET("/sales/top", d.TransactionHandler.TopSales)
	admin.GET("/sales/daily", d.TransactionHandler.OrdersPerDay)
	admin.GET("/sales/branches", d.TransactionHandler.DashboardBranches)
}
