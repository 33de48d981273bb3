package entity

import (
	"time"
)

const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
)

// Booking is a stay request for a hostel. Listing attributes are copied onto
// the booking at creation time so the record stays readable after the hostel
// changes or is removed. Identity documents are stored inline as base64 data
// URLs, capped app-side; they never go to the object store.
type Booking struct {
	ID         string   `json:"id" firestore:"id"`
	HostelID   string   `json:"hostel_id" firestore:"hostelId"`
	HostelName string   `json:"hostel_name" firestore:"hostelName"`
	UserID     string   `json:"user_id" firestore:"userId"`
	UserEmail  string   `json:"user_email" firestore:"userEmail"`
	UserName   string   `json:"user_name" firestore:"userName"`
	UserPhone  string   `json:"user_phone" firestore:"userPhone"`
	Location   string   `json:"location" firestore:"location"`
	Address    string   `json:"address" firestore:"address"`
	Price      int      `json:"price" firestore:"price"`
	Type       string   `json:"type" firestore:"type"`
	Facilities []string `json:"facilities" firestore:"facilities"`

	UserPhoto     string `json:"user_photo,omitempty" firestore:"userPhoto,omitempty"`
	UserAadhaar   string `json:"user_aadhaar,omitempty" firestore:"userAadhaar,omitempty"`
	UserCollegeID string `json:"user_college_id,omitempty" firestore:"userCollegeId,omitempty"`

	Status     string     `json:"status" firestore:"status"` // pending, approved, rejected
	CreatedAt  time.Time  `json:"created_at" firestore:"createdAt"`
	ApprovedAt *time.Time `json:"approved_at,omitempty" firestore:"approvedAt,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty" firestore:"rejectedAt,omitempty"`
}
