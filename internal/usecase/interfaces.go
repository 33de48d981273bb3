package usecase

import "context"

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GenerateToken(ctx context.Context, uid string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

// Notifier delivers fire-and-forget decision notifications. Implementations
// must not block and must not fail the calling operation.
type Notifier interface {
	BookingDecision(userID, hostelName string, approved bool)
	VerificationDecision(userID string, approved bool)
	HostelDecision(ownerID, hostelName string, approved bool)
}
