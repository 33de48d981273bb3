package handler

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/usecase"
	"unihostel/pkg/errors"
	"unihostel/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	hostelID := c.Param("hostelId")
	if hostelID == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	userID := c.Get("uid").(string)

	item, err := h.wishlistUseCase.AddToWishlist(c.Request().Context(), userID, hostelID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	hostelID := c.Param("hostelId")
	if hostelID == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.wishlistUseCase.RemoveFromWishlist(c.Request().Context(), userID, hostelID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "removed"})
}

func (h *WishlistHandler) ToggleWishlist(c echo.Context) error {
	hostelID := c.Param("hostelId")
	if hostelID == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	userID := c.Get("uid").(string)

	added, err := h.wishlistUseCase.ToggleWishlist(c.Request().Context(), userID, hostelID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"inWishlist": added})
}

func (h *WishlistHandler) CheckWishlist(c echo.Context) error {
	hostelID := c.Param("hostelId")
	if hostelID == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	userID := c.Get("uid").(string)

	exists, err := h.wishlistUseCase.IsInWishlist(c.Request().Context(), userID, hostelID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"inWishlist": exists})
}

func (h *WishlistHandler) GetMyWishlist(c echo.Context) error {
	userID := c.Get("uid").(string)

	items, err := h.wishlistUseCase.GetUserWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}
