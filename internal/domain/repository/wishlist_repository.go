package repository

import (
	"context"

	"unihostel/internal/domain/entity"
)

type WishlistRepository interface {
	// Add stores the hostel snapshot in the user's wishlist.
	Add(ctx context.Context, item *entity.WishlistItem) error

	// Remove deletes the (user, hostel) entry.
	Remove(ctx context.Context, userID, hostelID string) error

	// IsInWishlist reports whether the hostel is already saved by the user.
	IsInWishlist(ctx context.Context, userID, hostelID string) (bool, error)

	// ListByUser returns the user's wishlist, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error)
}
