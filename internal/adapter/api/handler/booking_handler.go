package handler

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/usecase"
	"unihostel/pkg/errors"
	"unihostel/pkg/response"
	"unihostel/pkg/utils"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	HostelID      string `json:"hostelId" validate:"required"`
	UserEmail     string `json:"userEmail" validate:"required,email"`
	UserName      string `json:"userName" validate:"required"`
	UserPhone     string `json:"userPhone" validate:"required,e164"`
	UserPhoto     string `json:"userPhoto" validate:"required"`
	UserAadhaar   string `json:"userAadhaar" validate:"required"`
	UserCollegeID string `json:"userCollegeId" validate:"required"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	booking, err := h.bookingUseCase.CreateBooking(c.Request().Context(), userID, usecase.CreateBookingInput{
		HostelID:      req.HostelID,
		UserEmail:     req.UserEmail,
		UserName:      req.UserName,
		UserPhone:     req.UserPhone,
		UserPhoto:     req.UserPhoto,
		UserAadhaar:   req.UserAadhaar,
		UserCollegeID: req.UserCollegeID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, booking)
}

func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID := c.Get("uid").(string)

	bookings, err := h.bookingUseCase.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) ListAllBookings(c echo.Context) error {
	if status := c.QueryParam("status"); status == "pending" {
		bookings, err := h.bookingUseCase.ListPendingBookings(c.Request().Context())
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, bookings)
	}

	bookings, err := h.bookingUseCase.ListAllBookings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	total := len(bookings)

	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return response.Paginated(c, bookings[start:end], int64(total), params.Page, params.PageSize)
}

func (h *BookingHandler) ApproveBooking(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Booking ID is required", nil))
	}

	if err := h.bookingUseCase.ApproveBooking(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "approved"})
}

func (h *BookingHandler) RejectBooking(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Booking ID is required", nil))
	}

	if err := h.bookingUseCase.RejectBooking(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "rejected"})
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Booking ID is required", nil))
	}

	if err := h.bookingUseCase.DeleteBooking(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
