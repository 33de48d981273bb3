package repository

import (
	"context"

	"unihostel/internal/domain/entity"
)

type UniversityRepository interface {
	Create(ctx context.Context, university *entity.University) error
	ListAll(ctx context.Context) ([]*entity.University, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
