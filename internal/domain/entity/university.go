package entity

import (
	"time"
)

// University is an admin-managed campus reference. The list feeds the
// location filter options on the listings page.
type University struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	ShortName string    `json:"short_name,omitempty" firestore:"shortName,omitempty"`
	Area      string    `json:"area" firestore:"area"`
	City      string    `json:"city" firestore:"city"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
