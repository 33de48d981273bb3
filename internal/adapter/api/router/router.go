package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupHostelRouter(e, authMiddleware, adminMiddleware)
	SetupRatingRouter(e, authMiddleware)
	SetupBookingRouter(e, authMiddleware, adminMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupVerificationRouter(e, authMiddleware, adminMiddleware)
	SetupContactRouter(e, authMiddleware, adminMiddleware)
	SetupUniversityRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
