package usecase

import (
	"context"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/internal/domain/service"
	"unihostel/pkg/errors"
	"unihostel/pkg/logger"
)

type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	hostelRepo repository.HostelRepository
}

func NewRatingUseCase(ratingRepo repository.RatingRepository, hostelRepo repository.HostelRepository) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		hostelRepo: hostelRepo,
	}
}

// SubmitRating upserts the caller's rating for a hostel and refreshes the
// hostel's aggregate. A user re-rating a hostel overwrites their previous
// submission in place; no duplicate is created. The returned flag reports
// whether this was an update of an existing rating.
//
// The aggregate write-back is deliberately best-effort and separate from the
// submission write: if it fails, the submission stays committed and the
// hostel's displayed rating is stale until the next successful recompute.
// Two near-simultaneous submissions can race on the aggregate; the last
// write wins, which is acceptable for a display statistic.
func (uc *RatingUseCase) SubmitRating(ctx context.Context, hostelID, userID, userName string, score int, review string) (bool, error) {
	if userID == "" {
		return false, errors.Unauthorized("You must be signed in to rate a hostel", nil)
	}
	if score < 1 || score > 5 {
		return false, errors.BadRequest("Rating must be between 1 and 5 stars", nil)
	}
	if hostelID == "" {
		return false, errors.BadRequest("Hostel ID is required", nil)
	}

	existing, err := uc.ratingRepo.GetByHostelAndUser(ctx, hostelID, userID)

	updated := false
	switch {
	case err == nil:
		existing.Score = score
		existing.Review = review
		existing.UserName = userName
		if err := uc.ratingRepo.Update(ctx, existing); err != nil {
			return false, err
		}
		updated = true

	case errors.Is(err, "NOT_FOUND"):
		rating := &entity.Rating{
			HostelID: hostelID,
			UserID:   userID,
			UserName: userName,
			Score:    score,
			Review:   review,
		}
		if err := uc.ratingRepo.Create(ctx, rating); err != nil {
			return false, err
		}

	default:
		return false, err
	}

	uc.refreshHostelStats(ctx, hostelID)

	return updated, nil
}

// refreshHostelStats recomputes the aggregate over all of the hostel's
// ratings and writes exactly the rating and reviews fields back onto the
// hostel document. Failures are logged, never propagated: the submission
// that triggered the refresh has already been committed.
func (uc *RatingUseCase) refreshHostelStats(ctx context.Context, hostelID string) {
	ratings, err := uc.ratingRepo.ListByHostel(ctx, hostelID)
	if err != nil {
		logger.Warn("Failed to load ratings for hostel %s: %v", hostelID, err)
		return
	}

	stats := service.ComputeRatingStats(ratings)

	err = uc.hostelRepo.UpdateFields(ctx, hostelID, map[string]interface{}{
		"rating":  stats.AverageRating,
		"reviews": stats.TotalRatings,
	})
	if err != nil {
		logger.Warn("Failed to update rating stats for hostel %s: %v", hostelID, err)
	}
}

// GetUserRating returns the caller's own rating for a hostel, or nil when
// they have not rated it.
func (uc *RatingUseCase) GetUserRating(ctx context.Context, hostelID, userID string) (*entity.Rating, error) {
	rating, err := uc.ratingRepo.GetByHostelAndUser(ctx, hostelID, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, nil
		}
		return nil, err
	}
	return rating, nil
}

func (uc *RatingUseCase) ListHostelRatings(ctx context.Context, hostelID string) ([]*entity.Rating, error) {
	return uc.ratingRepo.ListByHostel(ctx, hostelID)
}

func (uc *RatingUseCase) GetHostelStats(ctx context.Context, hostelID string) (entity.RatingStats, error) {
	ratings, err := uc.ratingRepo.ListByHostel(ctx, hostelID)
	if err != nil {
		return entity.RatingStats{}, err
	}
	return service.ComputeRatingStats(ratings), nil
}
