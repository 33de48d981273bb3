package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unihostel/internal/domain/entity"
)

func ratingsWithScores(scores ...int) []*entity.Rating {
	ratings := make([]*entity.Rating, 0, len(scores))
	for _, score := range scores {
		ratings = append(ratings, &entity.Rating{Score: score})
	}
	return ratings
}

func TestComputeRatingStatsEmpty(t *testing.T) {
	stats := ComputeRatingStats(nil)

	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, 0, stats.TotalRatings)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.Distribution)
}

func TestComputeRatingStatsAverage(t *testing.T) {
	stats := ComputeRatingStats(ratingsWithScores(5, 5, 4, 4, 4))

	assert.Equal(t, 4.4, stats.AverageRating)
	assert.Equal(t, 5, stats.TotalRatings)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 3, 5: 2}, stats.Distribution)
}

func TestComputeRatingStatsRoundsHalfAwayFromZero(t *testing.T) {
	// 4.5 stays 4.5 at one decimal.
	stats := ComputeRatingStats(ratingsWithScores(5, 4))
	assert.Equal(t, 4.5, stats.AverageRating)

	// (5+4+4+4)/4 = 4.25 rounds up to 4.3, not down.
	stats = ComputeRatingStats(ratingsWithScores(5, 4, 4, 4))
	assert.Equal(t, 4.3, stats.AverageRating)

	// (1+2)/2 = 1.5 rounds away from zero at the half boundary too.
	stats = ComputeRatingStats(ratingsWithScores(1, 2))
	assert.Equal(t, 1.5, stats.AverageRating)
}

func TestComputeRatingStatsDistributionAlwaysComplete(t *testing.T) {
	stats := ComputeRatingStats(ratingsWithScores(3, 3, 3))

	for score := 1; score <= 5; score++ {
		_, ok := stats.Distribution[score]
		assert.True(t, ok, "distribution missing key %d", score)
	}
	assert.Equal(t, 3, stats.Distribution[3])
}

func TestComputeRatingStatsSingleRating(t *testing.T) {
	stats := ComputeRatingStats(ratingsWithScores(2))

	assert.Equal(t, 2.0, stats.AverageRating)
	assert.Equal(t, 1, stats.TotalRatings)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 0, 4: 0, 5: 0}, stats.Distribution)
}
