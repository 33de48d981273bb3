package handler

import (
	"github.com/labstack/echo/v4"

	"unihostel/internal/usecase"
	"unihostel/pkg/errors"
	"unihostel/pkg/response"
)

type UniversityHandler struct {
	universityUseCase *usecase.UniversityUseCase
}

func NewUniversityHandler(universityUseCase *usecase.UniversityUseCase) *UniversityHandler {
	return &UniversityHandler{
		universityUseCase: universityUseCase,
	}
}

type universityRequest struct {
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"shortName,omitempty"`
	Area      string `json:"area,omitempty"`
	City      string `json:"city" validate:"required"`
}

func (h *UniversityHandler) CreateUniversity(c echo.Context) error {
	var req universityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	university, err := h.universityUseCase.CreateUniversity(c.Request().Context(), usecase.UniversityInput{
		Name:      req.Name,
		ShortName: req.ShortName,
		Area:      req.Area,
		City:      req.City,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, university)
}

func (h *UniversityHandler) ListUniversities(c echo.Context) error {
	universities, err := h.universityUseCase.ListUniversities(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, universities)
}

func (h *UniversityHandler) UpdateUniversity(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("University ID is required", nil))
	}

	var req universityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.universityUseCase.UpdateUniversity(c.Request().Context(), id, usecase.UniversityInput{
		Name:      req.Name,
		ShortName: req.ShortName,
		Area:      req.Area,
		City:      req.City,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "updated"})
}

func (h *UniversityHandler) DeleteUniversity(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("University ID is required", nil))
	}

	if err := h.universityUseCase.DeleteUniversity(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
