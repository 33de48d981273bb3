package usecase

import (
	"context"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/pkg/logger"
)

type ContactUseCase struct {
	contactRepo repository.ContactMessageRepository
}

func NewContactUseCase(contactRepo repository.ContactMessageRepository) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
	}
}

type CreateContactMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (uc *ContactUseCase) CreateMessage(ctx context.Context, input CreateContactMessageInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := uc.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	// Email forwarding is a stub: no delivery is implemented.
	logger.Info("Contact message %s from %s (%s): %s", message.ID, message.Name, message.Email, message.Subject)

	return message, nil
}

func (uc *ContactUseCase) ListMessages(ctx context.Context) ([]*entity.ContactMessage, error) {
	return uc.contactRepo.ListAll(ctx)
}

func (uc *ContactUseCase) MarkMessageRead(ctx context.Context, id string) error {
	return uc.contactRepo.MarkRead(ctx, id)
}

func (uc *ContactUseCase) DeleteMessage(ctx context.Context, id string) error {
	return uc.contactRepo.Delete(ctx, id)
}
