package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"unihostel/internal/domain/service"
	"unihostel/internal/usecase"
	"unihostel/pkg/errors"
	"unihostel/pkg/response"
)

type HostelHandler struct {
	hostelUseCase *usecase.HostelUseCase
}

func NewHostelHandler(hostelUseCase *usecase.HostelUseCase) *HostelHandler {
	return &HostelHandler{
		hostelUseCase: hostelUseCase,
	}
}

type createHostelRequest struct {
	Name          string   `json:"name" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Price         int      `json:"price" validate:"required,gt=0"`
	Type          string   `json:"type" validate:"required,oneof=boys girls coed"`
	Images        []string `json:"images,omitempty"`
	Facilities    []string `json:"facilities,omitempty"`
	Description   string   `json:"description,omitempty"`
	Available     bool     `json:"available"`
	Distance      string   `json:"distance,omitempty"`
	GoogleMapLink string   `json:"googleMapLink,omitempty"`
	OwnerName     string   `json:"ownerName" validate:"required"`
	OwnerEmail    string   `json:"ownerEmail" validate:"required,email"`
	OwnerPhone    string   `json:"ownerPhone" validate:"required,e164"`
}

type updateHostelRequest struct {
	Name          string   `json:"name" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Price         int      `json:"price" validate:"required,gt=0"`
	Images        []string `json:"images,omitempty"`
	Facilities    []string `json:"facilities,omitempty"`
	Description   string   `json:"description,omitempty"`
	Available     bool     `json:"available"`
	Distance      string   `json:"distance,omitempty"`
	GoogleMapLink string   `json:"googleMapLink,omitempty"`
}

func (h *HostelHandler) CreateHostel(c echo.Context) error {
	var req createHostelRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	hostel, err := h.hostelUseCase.CreateHostel(c.Request().Context(), ownerID, usecase.CreateHostelInput{
		Name:          req.Name,
		Location:      req.Location,
		Address:       req.Address,
		Price:         req.Price,
		Type:          req.Type,
		Images:        req.Images,
		Facilities:    req.Facilities,
		Description:   req.Description,
		Available:     req.Available,
		Distance:      req.Distance,
		GoogleMapLink: req.GoogleMapLink,
		OwnerName:     req.OwnerName,
		OwnerEmail:    req.OwnerEmail,
		OwnerPhone:    req.OwnerPhone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, hostel)
}

// ListHostels returns approved hostels, optionally narrowed by query
// parameters. Every criterion is optional; "all" means no constraint.
func (h *HostelHandler) ListHostels(c echo.Context) error {
	criteria := service.FilterCriteria{
		Query:    c.QueryParam("q"),
		Location: c.QueryParam("location"),
		Type:     c.QueryParam("type"),
	}

	if facilities := c.QueryParam("facilities"); facilities != "" {
		for _, f := range strings.Split(facilities, ",") {
			if f = strings.TrimSpace(f); f != "" {
				criteria.Facilities = append(criteria.Facilities, f)
			}
		}
	}

	if minRatingStr := c.QueryParam("min_rating"); minRatingStr != "" {
		minRating, err := strconv.ParseFloat(minRatingStr, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			return response.Error(c, errors.BadRequest("Invalid min_rating value", nil))
		}
		criteria.MinRating = minRating
	}

	if availableStr := c.QueryParam("available"); availableStr != "" {
		available, err := strconv.ParseBool(availableStr)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid available value", nil))
		}
		criteria.AvailableOnly = available
	}

	hostels, err := h.hostelUseCase.SearchHostels(c.Request().Context(), criteria)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, hostels)
}

func (h *HostelHandler) ListHostelsByLocation(c echo.Context) error {
	location := c.Param("location")
	if location == "" {
		return response.Error(c, errors.BadRequest("Location is required", nil))
	}

	hostels, err := h.hostelUseCase.ListHostelsByLocation(c.Request().Context(), location)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, hostels)
}

func (h *HostelHandler) GetHostel(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	hostel, err := h.hostelUseCase.GetHostelByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, hostel)
}

func (h *HostelHandler) UpdateHostel(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	var req updateHostelRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	callerID := c.Get("uid").(string)

	hostel, err := h.hostelUseCase.UpdateHostel(c.Request().Context(), id, callerID, usecase.UpdateHostelInput{
		Name:          req.Name,
		Location:      req.Location,
		Address:       req.Address,
		Price:         req.Price,
		Images:        req.Images,
		Facilities:    req.Facilities,
		Description:   req.Description,
		Available:     req.Available,
		Distance:      req.Distance,
		GoogleMapLink: req.GoogleMapLink,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, hostel)
}

func (h *HostelHandler) ListPendingHostels(c echo.Context) error {
	hostels, err := h.hostelUseCase.ListPendingHostels(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, hostels)
}

func (h *HostelHandler) ListAllHostels(c echo.Context) error {
	hostels, err := h.hostelUseCase.ListAllHostels(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, hostels)
}

func (h *HostelHandler) ApproveHostel(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	if err := h.hostelUseCase.ApproveHostel(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "approved"})
}

func (h *HostelHandler) RejectHostel(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	if err := h.hostelUseCase.RejectHostel(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "rejected"})
}

func (h *HostelHandler) DeleteHostel(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Hostel ID is required", nil))
	}

	if err := h.hostelUseCase.DeleteHostel(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
