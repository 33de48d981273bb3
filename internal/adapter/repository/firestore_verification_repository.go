package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/pkg/errors"
)

const verificationsCollection = "studentVerifications"

type firestoreVerificationRepository struct {
	client *firestore.Client
}

func NewFirestoreVerificationRepository(client *firestore.Client) repository.VerificationRepository {
	return &firestoreVerificationRepository{
		client: client,
	}
}

func (r *firestoreVerificationRepository) Create(ctx context.Context, verification *entity.StudentVerification) error {
	if verification.ID == "" {
		verification.ID = uuid.New().String()
	}

	verification.CreatedAt = time.Now()

	_, err := r.client.Collection(verificationsCollection).Doc(verification.ID).Set(ctx, verification)
	if err != nil {
		return errors.Internal("Failed to create verification", err)
	}

	return nil
}

func (r *firestoreVerificationRepository) GetByID(ctx context.Context, id string) (*entity.StudentVerification, error) {
	doc, err := r.client.Collection(verificationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Verification", err)
		}
		return nil, errors.Internal("Failed to get verification", err)
	}

	var verification entity.StudentVerification
	if err := doc.DataTo(&verification); err != nil {
		return nil, errors.Internal("Failed to parse verification data", err)
	}
	verification.ID = doc.Ref.ID

	return &verification, nil
}

func (r *firestoreVerificationRepository) GetByUser(ctx context.Context, userID string) (*entity.StudentVerification, error) {
	query := r.client.Collection(verificationsCollection).
		Where("userId", "==", userID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Verification", nil)
		}
		return nil, errors.Internal("Failed to query verification", err)
	}

	var verification entity.StudentVerification
	if err := doc.DataTo(&verification); err != nil {
		return nil, errors.Internal("Failed to parse verification data", err)
	}
	verification.ID = doc.Ref.ID

	return &verification, nil
}

func (r *firestoreVerificationRepository) ListByStatus(ctx context.Context, status string) ([]*entity.StudentVerification, error) {
	query := r.client.Collection(verificationsCollection).Where("status", "==", status)

	iter := query.Documents(ctx)
	var verifications []*entity.StudentVerification

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate verifications", err)
		}

		var verification entity.StudentVerification
		if err := doc.DataTo(&verification); err != nil {
			return nil, errors.Internal("Failed to parse verification data", err)
		}
		verification.ID = doc.Ref.ID
		verifications = append(verifications, &verification)
	}

	sort.SliceStable(verifications, func(i, j int) bool {
		return verifications[i].CreatedAt.After(verifications[j].CreatedAt)
	})

	return verifications, nil
}

func (r *firestoreVerificationRepository) UpdateStatus(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := r.client.Collection(verificationsCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Verification", err)
		}
		return errors.Internal("Failed to update verification status", err)
	}

	return nil
}
