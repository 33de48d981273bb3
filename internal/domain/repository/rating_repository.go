package repository

import (
	"context"

	"unihostel/internal/domain/entity"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	Update(ctx context.Context, rating *entity.Rating) error
	// GetByHostelAndUser returns the user's existing rating for the hostel,
	// or a NOT_FOUND error when the user has not rated it yet.
	GetByHostelAndUser(ctx context.Context, hostelID, userID string) (*entity.Rating, error)
	// ListByHostel returns all ratings for a hostel, newest first.
	ListByHostel(ctx context.Context, hostelID string) ([]*entity.Rating, error)
}
