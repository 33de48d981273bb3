package repository

import (
	"context"

	"unihostel/internal/domain/entity"
)

type HostelRepository interface {
	Create(ctx context.Context, hostel *entity.Hostel) error
	GetByID(ctx context.Context, id string) (*entity.Hostel, error)
	// ListApproved returns approved hostels, newest first.
	ListApproved(ctx context.Context) ([]*entity.Hostel, error)
	// ListApprovedByLocation filters on approved=true AND location equality
	// server-side; sorting still happens client-side after the fetch.
	ListApprovedByLocation(ctx context.Context, location string) ([]*entity.Hostel, error)
	// ListAll returns every hostel regardless of approval, newest first.
	ListAll(ctx context.Context) ([]*entity.Hostel, error)
	ListPending(ctx context.Context) ([]*entity.Hostel, error)
	Update(ctx context.Context, hostel *entity.Hostel) error
	// UpdateFields performs a field-level merge, leaving all other hostel
	// fields untouched.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
