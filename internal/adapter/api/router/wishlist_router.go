package router

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/adapter/api/handler"
	"unihostel/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlist := e.Group("/v1/wishlist")
	wishlist.Use(authMiddleware.Authenticate)
	wishlist.GET("", wishlistHandler.GetMyWishlist)
	wishlist.POST("/:hostelId", wishlistHandler.AddToWishlist)
	wishlist.DELETE("/:hostelId", wishlistHandler.RemoveFromWishlist)
	wishlist.POST("/:hostelId/toggle", wishlistHandler.ToggleWishlist)
	wishlist.GET("/:hostelId", wishlistHandler.CheckWishlist)
}
