package usecase

import (
	"context"
	"time"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/internal/domain/service"
	"unihostel/pkg/errors"
)

type HostelUseCase struct {
	hostelRepo repository.HostelRepository
	notifier   Notifier
}

func NewHostelUseCase(hostelRepo repository.HostelRepository, notifier Notifier) *HostelUseCase {
	return &HostelUseCase{
		hostelRepo: hostelRepo,
		notifier:   notifier,
	}
}

type CreateHostelInput struct {
	Name          string
	Location      string
	Address       string
	Price         int
	Type          string
	Images        []string
	Facilities    []string
	Description   string
	Available     bool
	Distance      string
	GoogleMapLink string
	OwnerName     string
	OwnerEmail    string
	OwnerPhone    string
}

// CreateHostel records an owner submission. New hostels always start
// unapproved; only an admin decision makes them publicly visible.
func (uc *HostelUseCase) CreateHostel(ctx context.Context, ownerID string, input CreateHostelInput) (*entity.Hostel, error) {
	if input.Type != "boys" && input.Type != "girls" && input.Type != "coed" {
		return nil, errors.BadRequest("Hostel type must be boys, girls or coed", nil)
	}
	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be greater than zero", nil)
	}

	hostel := &entity.Hostel{
		Name:          input.Name,
		Location:      input.Location,
		Address:       input.Address,
		Price:         input.Price,
		Type:          input.Type,
		Images:        input.Images,
		Facilities:    input.Facilities,
		Description:   input.Description,
		Available:     input.Available,
		Distance:      input.Distance,
		GoogleMapLink: input.GoogleMapLink,
		OwnerID:       ownerID,
		OwnerName:     input.OwnerName,
		OwnerEmail:    input.OwnerEmail,
		OwnerPhone:    input.OwnerPhone,
		Approved:      false,
		Rating:        0,
		Reviews:       0,
	}

	if err := uc.hostelRepo.Create(ctx, hostel); err != nil {
		return nil, err
	}

	return hostel, nil
}

func (uc *HostelUseCase) ListHostels(ctx context.Context) ([]*entity.Hostel, error) {
	return uc.hostelRepo.ListApproved(ctx)
}

func (uc *HostelUseCase) ListHostelsByLocation(ctx context.Context, location string) ([]*entity.Hostel, error) {
	return uc.hostelRepo.ListApprovedByLocation(ctx, location)
}

func (uc *HostelUseCase) GetHostelByID(ctx context.Context, id string) (*entity.Hostel, error) {
	return uc.hostelRepo.GetByID(ctx, id)
}

// SearchHostels fetches the approved set and filters it in memory. The
// store only supports single-field equality, so every search criterion is
// applied client-side.
func (uc *HostelUseCase) SearchHostels(ctx context.Context, criteria service.FilterCriteria) ([]*entity.Hostel, error) {
	hostels, err := uc.hostelRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	return service.FilterHostels(hostels, criteria), nil
}

type UpdateHostelInput struct {
	Name          string
	Location      string
	Address       string
	Price         int
	Images        []string
	Facilities    []string
	Description   string
	Available     bool
	Distance      string
	GoogleMapLink string
}

func (uc *HostelUseCase) UpdateHostel(ctx context.Context, id, callerID string, input UpdateHostelInput) (*entity.Hostel, error) {
	hostel, err := uc.hostelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if hostel.OwnerID != "" && hostel.OwnerID != callerID {
		return nil, errors.Forbidden("You don't have permission to update this hostel", nil)
	}

	hostel.Name = input.Name
	hostel.Location = input.Location
	hostel.Address = input.Address
	hostel.Price = input.Price
	hostel.Images = input.Images
	hostel.Facilities = input.Facilities
	hostel.Description = input.Description
	hostel.Available = input.Available
	hostel.Distance = input.Distance
	hostel.GoogleMapLink = input.GoogleMapLink

	if err := uc.hostelRepo.Update(ctx, hostel); err != nil {
		return nil, err
	}

	return hostel, nil
}

// Admin operations.

func (uc *HostelUseCase) ListPendingHostels(ctx context.Context) ([]*entity.Hostel, error) {
	return uc.hostelRepo.ListPending(ctx)
}

func (uc *HostelUseCase) ListAllHostels(ctx context.Context) ([]*entity.Hostel, error) {
	return uc.hostelRepo.ListAll(ctx)
}

func (uc *HostelUseCase) ApproveHostel(ctx context.Context, id string) error {
	hostel, err := uc.hostelRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	err = uc.hostelRepo.UpdateFields(ctx, id, map[string]interface{}{
		"approved":   true,
		"approvedAt": now,
	})
	if err != nil {
		return err
	}

	uc.notifier.HostelDecision(hostel.OwnerID, hostel.Name, true)
	return nil
}

// RejectHostel removes the submission entirely, same as the admin delete.
func (uc *HostelUseCase) RejectHostel(ctx context.Context, id string) error {
	hostel, err := uc.hostelRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.hostelRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.notifier.HostelDecision(hostel.OwnerID, hostel.Name, false)
	return nil
}

func (uc *HostelUseCase) DeleteHostel(ctx context.Context, id string) error {
	if _, err := uc.hostelRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.hostelRepo.Delete(ctx, id)
}
