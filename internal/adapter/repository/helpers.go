package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether a Firestore error is a missing-document error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
