package entity

import (
	"time"
)

// WishlistItem is a denormalized snapshot of a hostel taken when the user
// saves it. The snapshot keeps the wishlist renderable without refetching
// every hostel.
type WishlistItem struct {
	ID             string    `json:"id" firestore:"id"`
	UserID         string    `json:"user_id" firestore:"userId"`
	HostelID       string    `json:"hostel_id" firestore:"hostelId"`
	HostelName     string    `json:"hostel_name" firestore:"hostelName"`
	HostelImage    string    `json:"hostel_image" firestore:"hostelImage"`
	HostelPrice    int       `json:"hostel_price" firestore:"hostelPrice"`
	HostelLocation string    `json:"hostel_location" firestore:"hostelLocation"`
	HostelRating   float64   `json:"hostel_rating" firestore:"hostelRating"`
	HostelReviews  int       `json:"hostel_reviews" firestore:"hostelReviews"`
	AddedAt        time.Time `json:"added_at" firestore:"addedAt"`
}
