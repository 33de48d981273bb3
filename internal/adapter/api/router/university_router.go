package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/handler"
	"unihostel/internal/adapter/api/middleware"
)

func SetupUniversityRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	universityHandler := handler.GetUniversityHandler()

	e.GET("/v1/universities", universityHandler.ListUniversities)

	admin := e.Group("/v1/admin/universities")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", universityHandler.CreateUniversity)
	admin.PUT("/:id", universityHandler.UpdateUniversity)
	admin.DELETE("/:id", universityHandler.DeleteUniversity)
}
