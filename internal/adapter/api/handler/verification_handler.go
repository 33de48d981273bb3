package handler

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/usecase"
	"unihostel/pkg/errors"
	"unihostel/pkg/response"
)

type VerificationHandler struct {
	verificationUseCase *usecase.VerificationUseCase
}

func NewVerificationHandler(verificationUseCase *usecase.VerificationUseCase) *VerificationHandler {
	return &VerificationHandler{
		verificationUseCase: verificationUseCase,
	}
}

type submitVerificationRequest struct {
	UserName    string `json:"userName" validate:"required"`
	UserEmail   string `json:"userEmail" validate:"required,email"`
	AadhaarCard string `json:"aadhaarCard" validate:"required"`
	CollegeID   string `json:"collegeId" validate:"required"`
}

func (h *VerificationHandler) SubmitVerification(c echo.Context) error {
	var req submitVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	verification, err := h.verificationUseCase.SubmitVerification(c.Request().Context(), userID, usecase.SubmitVerificationInput{
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		AadhaarCard: req.AadhaarCard,
		CollegeID:   req.CollegeID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, verification)
}

func (h *VerificationHandler) GetMyVerification(c echo.Context) error {
	userID := c.Get("uid").(string)

	verification, err := h.verificationUseCase.GetUserVerification(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	// verification is nil when the caller has never submitted one.
	return response.Success(c, verification)
}

func (h *VerificationHandler) ListPendingVerifications(c echo.Context) error {
	verifications, err := h.verificationUseCase.ListPendingVerifications(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, verifications)
}

func (h *VerificationHandler) ApproveVerification(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Verification ID is required", nil))
	}

	adminID := c.Get("uid").(string)

	if err := h.verificationUseCase.ApproveVerification(c.Request().Context(), id, adminID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "approved"})
}

func (h *VerificationHandler) RejectVerification(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Verification ID is required", nil))
	}

	adminID := c.Get("uid").(string)

	if err := h.verificationUseCase.RejectVerification(c.Request().Context(), id, adminID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "rejected"})
}
