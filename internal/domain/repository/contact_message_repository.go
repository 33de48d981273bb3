package repository

import (
	"context"

	"unihostel/internal/domain/entity"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	ListAll(ctx context.Context) ([]*entity.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
