package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/handler"
	"unihostel/internal/adapter/api/middleware"
)

func SetupRatingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	ratingHandler := handler.GetRatingHandler()

	// Public rating reads
	ratings := e.Group("/v1/hostels/:hostelId/ratings")
	ratings.GET("", ratingHandler.ListHostelRatings)
	ratings.GET("/stats", ratingHandler.GetHostelStats)

	// Submitting and reading your own rating requires sign-in
	authenticated := e.Group("/v1/hostels/:hostelId/ratings")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.POST("", ratingHandler.SubmitRating)
	authenticated.GET("/me", ratingHandler.GetUserRating)
}
