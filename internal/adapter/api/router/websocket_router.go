package router

import (
	"github.com/labstack/echo/v4"

	"autohost/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo) {
	e.GET("/v1/ws", handler.GetWebSocketHandler().Handle)
}
