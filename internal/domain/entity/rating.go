package entity

import (
	"time"
)

// Rating is a single user's rating of a hostel. There is at most one rating
// per (hostel, user) pair; re-rating overwrites the existing document.
type Rating struct {
	ID        string    `json:"id" firestore:"id"`
	HostelID  string    `json:"hostel_id" firestore:"hostelId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Score     int       `json:"score" firestore:"rating"` // 1-5
	Review    string    `json:"review,omitempty" firestore:"review"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// RatingStats is the aggregate recomputed from all of a hostel's ratings.
// Distribution always carries all five keys, even when a score never occurs.
type RatingStats struct {
	AverageRating float64     `json:"average_rating"`
	TotalRatings  int         `json:"total_ratings"`
	Distribution  map[int]int `json:"distribution"`
}
