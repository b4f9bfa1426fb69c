package router

import (
	"github.com/labstack/echo/v4"

	"autohost/internal/adapter/api/handler"
	"autohost/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.Checkout)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/sales", orderHandler.ListMySales)
	orders.GET("/:id", orderHandler.GetOrder)
}
