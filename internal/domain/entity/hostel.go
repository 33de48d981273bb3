package entity

import (
	"time"
)

// Hostel is a student accommodation listing. A hostel is visible on the
// public listing and search surfaces only when Approved is true.
type Hostel struct {
	ID            string   `json:"id" firestore:"id"`
	Name          string   `json:"name" firestore:"name"`
	Location      string   `json:"location" firestore:"location"`
	Address       string   `json:"address" firestore:"address"`
	Price         int      `json:"price" firestore:"price"` // whole rupees per month
	Rating        float64  `json:"rating" firestore:"rating"`
	Reviews       int      `json:"reviews" firestore:"reviews"`
	Type          string   `json:"type" firestore:"type"` // "boys", "girls", "coed"
	Images        []string `json:"images" firestore:"images"`
	Facilities    []string `json:"facilities" firestore:"facilities"`
	Description   string   `json:"description" firestore:"description"`
	Available     bool     `json:"available" firestore:"available"`
	Distance      string   `json:"distance" firestore:"distance"`
	GoogleMapLink string   `json:"google_map_link,omitempty" firestore:"googleMapLink,omitempty"`

	OwnerID    string `json:"owner_id,omitempty" firestore:"ownerId,omitempty"`
	OwnerName  string `json:"owner_name,omitempty" firestore:"ownerName,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty" firestore:"ownerEmail,omitempty"`
	OwnerPhone string `json:"owner_phone,omitempty" firestore:"ownerPhone,omitempty"`

	Approved   bool       `json:"approved" firestore:"approved"`
	ApprovedAt *time.Time `json:"approved_at,omitempty" firestore:"approvedAt,omitempty"`
	CreatedAt  time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// FacilityLabels maps facility tags to their display names.
var FacilityLabels = map[string]string{
	"wifi":     "WiFi",
	"food":     "Meals Included",
	"ac":       "Air Conditioning",
	"laundry":  "Laundry",
	"parking":  "Parking",
	"gym":      "Gym",
	"security": "24/7 Security",
	"library":  "Library",
}
