package service

import (
	"math"

	"unihostel/internal/domain/entity"
)

// ComputeRatingStats recomputes a hostel's aggregate from the full set of
// its ratings. The average is rounded to one decimal, half away from zero
// (4.25 rounds to 4.3). An empty input yields average 0 and a zero-filled
// distribution, never a sparse map.
func ComputeRatingStats(ratings []*entity.Rating) entity.RatingStats {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	if len(ratings) == 0 {
		return entity.RatingStats{
			AverageRating: 0,
			TotalRatings:  0,
			Distribution:  distribution,
		}
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating.Score
		distribution[rating.Score]++
	}

	average := float64(sum) / float64(len(ratings))

	return entity.RatingStats{
		AverageRating: math.Round(average*10) / 10,
		TotalRatings:  len(ratings),
		Distribution:  distribution,
	}
}
