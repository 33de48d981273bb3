package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/handler"
	"unihostel/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	websocketHandler := handler.GetWebSocketHandler()

	ws := e.Group("/v1/ws")
	ws.Use(authMiddleware.Authenticate)
	ws.GET("", websocketHandler.HandleWebSocket)
}
