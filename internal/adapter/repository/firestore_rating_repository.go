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

const ratingsCollection = "ratings"

type firestoreRatingRepository struct {
	client *firestore.Client
}

func NewFirestoreRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
	}
}

func (r *firestoreRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}

	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now

	_, err := r.client.Collection(ratingsCollection).Doc(rating.ID).Set(ctx, rating)
	if err != nil {
		return errors.Internal("Failed to create rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	rating.UpdatedAt = time.Now()

	_, err := r.client.Collection(ratingsCollection).Doc(rating.ID).Set(ctx, rating)
	if err != nil {
		return errors.Internal("Failed to update rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) GetByHostelAndUser(ctx context.Context, hostelID, userID string) (*entity.Rating, error) {
	query := r.client.Collection(ratingsCollection).
		Where("hostelId", "==", hostelID).
		Where("userId", "==", userID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Rating", nil)
		}
		return nil, errors.Internal("Failed to query rating", err)
	}

	var rating entity.Rating
	if err := doc.DataTo(&rating); err != nil {
		return nil, errors.Internal("Failed to parse rating data", err)
	}
	rating.ID = doc.Ref.ID

	return &rating, nil
}

func (r *firestoreRatingRepository) ListByHostel(ctx context.Context, hostelID string) ([]*entity.Rating, error) {
	query := r.client.Collection(ratingsCollection).Where("hostelId", "==", hostelID)

	iter := query.Documents(ctx)
	var ratings []*entity.Rating

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate ratings", err)
		}

		var rating entity.Rating
		if err := doc.DataTo(&rating); err != nil {
			return nil, errors.Internal("Failed to parse rating data", err)
		}
		rating.ID = doc.Ref.ID
		ratings = append(ratings, &rating)
	}

	// Newest first, sorted here rather than by the store.
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].CreatedAt.After(ratings[j].CreatedAt)
	})

	return ratings, nil
}
