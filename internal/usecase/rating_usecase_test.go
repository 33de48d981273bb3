package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unihostel/internal/domain/entity"
	"unihostel/pkg/errors"
)

type fakeRatingRepo struct {
	ratings map[string]*entity.Rating // keyed by hostelID+"_"+userID
	creates int
	updates int
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[string]*entity.Rating)}
}

func (f *fakeRatingRepo) key(hostelID, userID string) string {
	return hostelID + "_" + userID
}

func (f *fakeRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == "" {
		rating.ID = fmt.Sprintf("r%d", len(f.ratings)+1)
	}
	copied := *rating
	f.ratings[f.key(rating.HostelID, rating.UserID)] = &copied
	f.creates++
	return nil
}

func (f *fakeRatingRepo) Update(ctx context.Context, rating *entity.Rating) error {
	copied := *rating
	f.ratings[f.key(rating.HostelID, rating.UserID)] = &copied
	f.updates++
	return nil
}

func (f *fakeRatingRepo) GetByHostelAndUser(ctx context.Context, hostelID, userID string) (*entity.Rating, error) {
	rating, ok := f.ratings[f.key(hostelID, userID)]
	if !ok {
		return nil, errors.NotFound("Rating", nil)
	}
	copied := *rating
	return &copied, nil
}

func (f *fakeRatingRepo) ListByHostel(ctx context.Context, hostelID string) ([]*entity.Rating, error) {
	var result []*entity.Rating
	for _, rating := range f.ratings {
		if rating.HostelID == hostelID {
			copied := *rating
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeHostelRepo struct {
	hostels      map[string]*entity.Hostel
	fieldUpdates []map[string]interface{}
	failUpdates  bool
}

func newFakeHostelRepo() *fakeHostelRepo {
	return &fakeHostelRepo{hostels: make(map[string]*entity.Hostel)}
}

func (f *fakeHostelRepo) Create(ctx context.Context, hostel *entity.Hostel) error {
	f.hostels[hostel.ID] = hostel
	return nil
}

func (f *fakeHostelRepo) GetByID(ctx context.Context, id string) (*entity.Hostel, error) {
	hostel, ok := f.hostels[id]
	if !ok {
		return nil, errors.NotFound("Hostel", nil)
	}
	return hostel, nil
}

func (f *fakeHostelRepo) ListApproved(ctx context.Context) ([]*entity.Hostel, error) { return nil, nil }
func (f *fakeHostelRepo) ListApprovedByLocation(ctx context.Context, location string) ([]*entity.Hostel, error) {
	return nil, nil
}
func (f *fakeHostelRepo) ListAll(ctx context.Context) ([]*entity.Hostel, error)     { return nil, nil }
func (f *fakeHostelRepo) ListPending(ctx context.Context) ([]*entity.Hostel, error) { return nil, nil }
func (f *fakeHostelRepo) Update(ctx context.Context, hostel *entity.Hostel) error   { return nil }
func (f *fakeHostelRepo) Delete(ctx context.Context, id string) error               { return nil }

func (f *fakeHostelRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if f.failUpdates {
		return errors.Internal("Failed to update hostel fields", nil)
	}
	f.fieldUpdates = append(f.fieldUpdates, fields)
	if hostel, ok := f.hostels[id]; ok {
		if rating, ok := fields["rating"].(float64); ok {
			hostel.Rating = rating
		}
		if reviews, ok := fields["reviews"].(int); ok {
			hostel.Reviews = reviews
		}
	}
	return nil
}

func newRatingUseCaseForTest() (*RatingUseCase, *fakeRatingRepo, *fakeHostelRepo) {
	ratingRepo := newFakeRatingRepo()
	hostelRepo := newFakeHostelRepo()
	hostelRepo.hostels["h1"] = &entity.Hostel{ID: "h1", Name: "Sunrise", Approved: true}
	return NewRatingUseCase(ratingRepo, hostelRepo), ratingRepo, hostelRepo
}

func TestSubmitRatingCreatesAndAggregates(t *testing.T) {
	uc, ratingRepo, hostelRepo := newRatingUseCaseForTest()

	updated, err := uc.SubmitRating(context.Background(), "h1", "u1", "Asha", 4, "clean rooms")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 1, ratingRepo.creates)

	assert.Equal(t, 4.0, hostelRepo.hostels["h1"].Rating)
	assert.Equal(t, 1, hostelRepo.hostels["h1"].Reviews)
}

func TestSubmitRatingUpsertIsIdempotent(t *testing.T) {
	uc, ratingRepo, hostelRepo := newRatingUseCaseForTest()

	_, err := uc.SubmitRating(context.Background(), "h1", "u1", "Asha", 4, "")
	require.NoError(t, err)

	updated, err := uc.SubmitRating(context.Background(), "h1", "u1", "Asha", 4, "")
	require.NoError(t, err)
	assert.True(t, updated)

	// Re-rating must not create a second submission or change the aggregate.
	assert.Equal(t, 1, ratingRepo.creates)
	assert.Equal(t, 1, ratingRepo.updates)
	assert.Equal(t, 4.0, hostelRepo.hostels["h1"].Rating)
	assert.Equal(t, 1, hostelRepo.hostels["h1"].Reviews)
}

func TestSubmitRatingOverwritesOnRerate(t *testing.T) {
	uc, ratingRepo, hostelRepo := newRatingUseCaseForTest()

	_, err := uc.SubmitRating(context.Background(), "h1", "u1", "Asha", 2, "noisy")
	require.NoError(t, err)

	updated, err := uc.SubmitRating(context.Background(), "h1", "u1", "Asha", 5, "much better now")
	require.NoError(t, err)
	assert.True(t, updated)

	stored := ratingRepo.ratings["h1_u1"]
	assert.Equal(t, 5, stored.Score)
	assert.Equal(t, "much better now", stored.Review)
	assert.Equal(t, 5.0, hostelRepo.hostels["h1"].Rating)
	assert.Equal(t, 1, hostelRepo.hostels["h1"].Reviews)
}

func TestSubmitRatingRejectsOutOfRangeScores(t *testing.T) {
	uc, ratingRepo, hostelRepo := newRatingUseCaseForTest()

	for _, score := range []int{0, 6, -1} {
		_, err := uc.SubmitRating(context.Background(), "h1", "u1", "Asha", score, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"), "score %d should be rejected", score)
	}

	// No store write of any kind happened.
	assert.Equal(t, 0, ratingRepo.creates)
	assert.Equal(t, 0, ratingRepo.updates)
	assert.Empty(t, hostelRepo.fieldUpdates)
}

func TestSubmitRatingRequiresAuthentication(t *testing.T) {
	uc, ratingRepo, _ := newRatingUseCaseForTest()

	_, err := uc.SubmitRating(context.Background(), "h1", "", "Anonymous", 5, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Equal(t, 0, ratingRepo.creates)
}

func TestSubmitRatingSurvivesAggregateWriteFailure(t *testing.T) {
	uc, ratingRepo, hostelRepo := newRatingUseCaseForTest()
	hostelRepo.failUpdates = true

	// The submission commits even though the aggregate write-back fails;
	// the displayed rating is stale until the next successful recompute.
	updated, err := uc.SubmitRating(context.Background(), "h1", "u1", "Asha", 3, "")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 1, ratingRepo.creates)
	assert.Equal(t, 0.0, hostelRepo.hostels["h1"].Rating)
}

func TestSubmitRatingAveragesAcrossUsers(t *testing.T) {
	uc, _, hostelRepo := newRatingUseCaseForTest()

	scores := map[string]int{"u1": 5, "u2": 5, "u3": 4, "u4": 4, "u5": 4}
	for userID, score := range scores {
		_, err := uc.SubmitRating(context.Background(), "h1", userID, "user", score, "")
		require.NoError(t, err)
	}

	assert.Equal(t, 4.4, hostelRepo.hostels["h1"].Rating)
	assert.Equal(t, 5, hostelRepo.hostels["h1"].Reviews)
}

func TestGetUserRatingReturnsNilWhenAbsent(t *testing.T) {
	uc, _, _ := newRatingUseCaseForTest()

	rating, err := uc.GetUserRating(context.Background(), "h1", "u1")
	require.NoError(t, err)
	assert.Nil(t, rating)
}
