package repository

import (
	"context"

	"unihostel/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Booking, error)
	ListAll(ctx context.Context) ([]*entity.Booking, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Booking, error)
	// UpdateStatus writes the status field and its transition timestamp only.
	UpdateStatus(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
