package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/handler"
	"unihostel/internal/adapter/api/middleware"
)

func SetupVerificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	verificationHandler := handler.GetVerificationHandler()

	verifications := e.Group("/v1/verifications")
	verifications.Use(authMiddleware.Authenticate)
	verifications.POST("", verificationHandler.SubmitVerification)
	verifications.GET("/me", verificationHandler.GetMyVerification)

	admin := e.Group("/v1/admin/verifications")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/pending", verificationHandler.ListPendingVerifications)
	admin.PATCH("/:id/approve", verificationHandler.ApproveVerification)
	admin.PATCH("/:id/reject", verificationHandler.RejectVerification)
}
