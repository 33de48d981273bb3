package usecase

import (
	"context"
	"time"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/pkg/errors"
	"unihostel/pkg/logger"
)

type VerificationUseCase struct {
	verificationRepo repository.VerificationRepository
	userRepo         repository.UserRepository
	notifier         Notifier
	maxImageBytes    int64
}

func NewVerificationUseCase(
	verificationRepo repository.VerificationRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	maxInlineImageKB int64,
) *VerificationUseCase {
	return &VerificationUseCase{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		maxImageBytes:    maxInlineImageKB * 1024,
	}
}

type SubmitVerificationInput struct {
	UserName    string
	UserEmail   string
	AadhaarCard string
	CollegeID   string
}

func (uc *VerificationUseCase) SubmitVerification(ctx context.Context, userID string, input SubmitVerificationInput) (*entity.StudentVerification, error) {
	if userID == "" {
		return nil, errors.Unauthorized("You must be signed in to submit verification", nil)
	}

	for _, doc := range []struct {
		label string
		data  string
	}{
		{"aadhaar card", input.AadhaarCard},
		{"college ID", input.CollegeID},
	} {
		if doc.data == "" {
			return nil, errors.BadRequest("Please upload your "+doc.label, nil)
		}
		if err := validateInlineImage(doc.label, doc.data, uc.maxImageBytes); err != nil {
			return nil, err
		}
	}

	existing, err := uc.verificationRepo.GetByUser(ctx, userID)
	if err == nil && existing != nil && existing.Status != entity.VerificationStatusRejected {
		return nil, errors.Conflict("A verification request already exists for this account")
	}

	verification := &entity.StudentVerification{
		UserID:      userID,
		UserName:    input.UserName,
		UserEmail:   input.UserEmail,
		AadhaarCard: input.AadhaarCard,
		CollegeID:   input.CollegeID,
		Status:      entity.VerificationStatusPending,
	}

	if err := uc.verificationRepo.Create(ctx, verification); err != nil {
		return nil, err
	}

	return verification, nil
}

func (uc *VerificationUseCase) GetUserVerification(ctx context.Context, userID string) (*entity.StudentVerification, error) {
	verification, err := uc.verificationRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, nil
		}
		return nil, err
	}
	return verification, nil
}

// Admin operations.

func (uc *VerificationUseCase) ListPendingVerifications(ctx context.Context) ([]*entity.StudentVerification, error) {
	return uc.verificationRepo.ListByStatus(ctx, entity.VerificationStatusPending)
}

func (uc *VerificationUseCase) ApproveVerification(ctx context.Context, id, adminID string) error {
	verification, err := uc.verificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = uc.verificationRepo.UpdateStatus(ctx, id, map[string]interface{}{
		"status":     entity.VerificationStatusApproved,
		"reviewedBy": adminID,
		"reviewedAt": time.Now(),
	})
	if err != nil {
		return err
	}

	// Mirror the approval onto the user record; a failure here is logged and
	// the verification decision stands.
	if err := uc.userRepo.UpdateFields(ctx, verification.UserID, map[string]interface{}{
		"verified": true,
	}); err != nil {
		logger.Warn("Failed to mark user %s verified: %v", verification.UserID, err)
	}

	uc.notifier.VerificationDecision(verification.UserID, true)
	return nil
}

func (uc *VerificationUseCase) RejectVerification(ctx context.Context, id, adminID string) error {
	verification, err := uc.verificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = uc.verificationRepo.UpdateStatus(ctx, id, map[string]interface{}{
		"status":     entity.VerificationStatusRejected,
		"reviewedBy": adminID,
		"reviewedAt": time.Now(),
	})
	if err != nil {
		return err
	}

	uc.notifier.VerificationDecision(verification.UserID, false)
	return nil
}
