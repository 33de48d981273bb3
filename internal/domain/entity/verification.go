package entity

import (
	"time"
)

const (
	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"
)

// StudentVerification is an identity verification request. Documents are
// inline base64 data URLs, same as booking documents.
type StudentVerification struct {
	ID          string     `json:"id" firestore:"id"`
	UserID      string     `json:"user_id" firestore:"userId"`
	UserName    string     `json:"user_name" firestore:"userName"`
	UserEmail   string     `json:"user_email" firestore:"userEmail"`
	AadhaarCard string     `json:"aadhaar_card" firestore:"aadhaarCard"`
	CollegeID   string     `json:"college_id" firestore:"collegeId"`
	Status      string     `json:"status" firestore:"status"` // pending, approved, rejected
	ReviewedBy  string     `json:"reviewed_by,omitempty" firestore:"reviewedBy,omitempty"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty" firestore:"reviewedAt,omitempty"`
}
