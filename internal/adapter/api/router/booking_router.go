package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/handler"
	"unihostel/internal/adapter/api/middleware"
)

func SetupBookingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	bookingHandler := handler.GetBookingHandler()

	authenticated := e.Group("/v1/bookings")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.POST("", bookingHandler.CreateBooking)
	authenticated.GET("/me", bookingHandler.ListMyBookings)

	admin := e.Group("/v1/admin/bookings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", bookingHandler.ListAllBookings)
	admin.PATCH("/:id/approve", bookingHandler.ApproveBooking)
	admin.PATCH("/:id/reject", bookingHandler.RejectBooking)
	admin.DELETE("/:id", bookingHandler.DeleteBooking)
}
