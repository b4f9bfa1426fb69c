package router

import (
	"github.com/labstack/echo/v4"

	"autohost/internal/adapter/api/handler"
	"autohost/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	sellerProducts := e.Group("/v1/products")
	sellerProducts.Use(authMiddleware.Authenticate)
	sellerProducts.POST("", productHandler.CreateProduct)
	sellerProducts.PUT("/:id", productHandler.UpdateProduct)
	sellerProducts.DELETE("/:id", productHandler.DeleteProduct)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.GET("", productHandler.ListMyProducts)
}
