package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/handler"
	"unihostel/internal/adapter/api/middleware"
)

func SetupHostelRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	hostelHandler := handler.GetHostelHandler()

	// Public browse and search
	hostels := e.Group("/v1/hostels")
	hostels.GET("", hostelHandler.ListHostels)
	hostels.GET("/location/:location", hostelHandler.ListHostelsByLocation)
	hostels.GET("/:id", hostelHandler.GetHostel)

	// Owner submissions
	authenticated := e.Group("/v1/hostels")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.POST("", hostelHandler.CreateHostel)
	authenticated.PUT("/:id", hostelHandler.UpdateHostel)

	// Admin moderation
	admin := e.Group("/v1/admin/hostels")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", hostelHandler.ListAllHostels)
	admin.GET("/pending", hostelHandler.ListPendingHostels)
	admin.PATCH("/:id/approve", hostelHandler.ApproveHostel)
	admin.PATCH("/:id/reject", hostelHandler.RejectHostel)
	admin.DELETE("/:id", hostelHandler.DeleteHostel)
}
