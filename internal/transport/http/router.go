package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/retail_shop/internal/handlers"
	authmw "github.com/Skotchmaster/retail_shop/internal/middleware/auth"
)

type Deps struct {
	DB             *gorm.DB
	JWTSecret      []byte
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	SearchHandler  *handlers.SearchHandler
	CartHandler    *handlers.CartHandler
	OrderHandler   *handlers.OrderHandler
	ReportHandler  *handlers.ReportHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)

	products := v1.Group("/products")
	products.GET("/:pid", d.ProductHandler.GetProduct)

	customer := v1.Group("", authmw.RequireLogin(d.JWTSecret))
	customer.GET("/search", d.SearchHandler.Handler)
	customer.GET("/cart", d.CartHandler.GetCart)
	customer.POST("/cart", d.CartHandler.AddToCart)
	customer.PATCH("/cart/:pid", d.CartHandler.SetQuantity)
	customer.PUT("/cart/:pid", d.CartHandler.SetQuantityStrict)
	customer.DELETE("/cart/:pid", d.CartHandler.RemoveFromCart)
	customer.DELETE("/cart", d.CartHandler.ClearCart)
	customer.POST("/cart/checkout", d.CartHandler.Checkout)
	customer.GET("/orders", d.OrderHandler.ListOrders)
	customer.GET("/orders/:ono", d.OrderHandler.GetOrderDetail)

	admin := v1.Group("/admin", authmw.SalesOnly(d.JWTSecret))
	admin.GET("/search", d.ProductHandler.AdminSearch)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:pid", d.ProductHandler.PatchProduct)
	admin.GET("/reports/weekly", d.ReportHandler.WeeklyReport)
	admin.GET("/reports/top-products", d.ReportHandler.TopProducts)
}
