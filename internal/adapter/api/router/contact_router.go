package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/handler"
	"unihostel/internal/adapter/api/middleware"
)

func SetupContactRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	contactHandler := handler.GetContactHandler()

	// Anyone can reach out, signed in or not
	e.POST("/v1/contact", contactHandler.CreateMessage)

	admin := e.Group("/v1/admin/contact")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", contactHandler.ListMessages)
	admin.PATCH("/:id/read", contactHandler.MarkMessageRead)
	admin.DELETE("/:id", contactHandler.DeleteMessage)
}
