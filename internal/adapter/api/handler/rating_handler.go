package handler

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/usecase"
	"unihostel/pkg/errors"
	"unihostel/pkg/response"
)

type RatingHandler struct {
	ratingUseCase *usecase.RatingUseCase
}

func NewRatingHandler(ratingUseCase *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
	}
}

type submitRatingRequest struct {
	Score    int    `json:"rating" validate:"required,min=1,max=5"`
	Review   string `json:"review,omitempty"`
	UserName string `json:"userName,omitempty"`
}

func (h *RatingHandler) SubmitRating(c echo.Context) error {
	hostelID := c.Param("hostelId")
	if hostelID == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	updated, err := h.ratingUseCase.SubmitRating(c.Request().Context(), hostelID, userID, req.UserName, req.Score, req.Review)
	if err != nil {
		return response.Error(c, err)
	}

	if updated {
		return response.Success(c, map[string]string{"status": "updated"})
	}
	return response.Created(c, map[string]string{"status": "created"})
}

func (h *RatingHandler) GetUserRating(c echo.Context) error {
	hostelID := c.Param("hostelId")
	if hostelID == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	userID := c.Get("uid").(string)

	rating, err := h.ratingUseCase.GetUserRating(c.Request().Context(), hostelID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	// rating is nil when the caller has not rated this hostel yet.
	return response.Success(c, rating)
}

func (h *RatingHandler) ListHostelRatings(c echo.Context) error {
	hostelID := c.Param("hostelId")
	if hostelID == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	ratings, err := h.ratingUseCase.ListHostelRatings(c.Request().Context(), hostelID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ratings)
}

func (h *RatingHandler) GetHostelStats(c echo.Context) error {
	hostelID := c.Param("hostelId")
	if hostelID == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	stats, err := h.ratingUseCase.GetHostelStats(c.Request().Context(), hostelID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
