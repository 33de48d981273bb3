package repository

import (
	"context"

	"unihostel/internal/domain/entity"
)

type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.StudentVerification) error
	GetByID(ctx context.Context, id string) (*entity.StudentVerification, error)
	GetByUser(ctx context.Context, userID string) (*entity.StudentVerification, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.StudentVerification, error)
	UpdateStatus(ctx context.Context, id string, fields map[string]interface{}) error
}
