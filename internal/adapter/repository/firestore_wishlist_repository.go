package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"google.golang.org/api/iterator"

	"cloud.google.com/go/firestore"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/pkg/errors"
)

const wishlistCollection = "wishlist"

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

// Wishlist documents are keyed "<userID>_<hostelID>" so the duplicate check
// is a single document read instead of a query.
func wishlistDocID(userID, hostelID string) string {
	return fmt.Sprintf("%s_%s", userID, hostelID)
}

func (r *firestoreWishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	item.ID = wishlistDocID(item.UserID, item.HostelID)
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	_, err := r.client.Collection(wishlistCollection).Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to add to wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, userID, hostelID string) error {
	_, err := r.client.Collection(wishlistCollection).Doc(wishlistDocID(userID, hostelID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) IsInWishlist(ctx context.Context, userID, hostelID string) (bool, error) {
	doc, err := r.client.Collection(wishlistCollection).Doc(wishlistDocID(userID, hostelID)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check wishlist", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreWishlistRepository) ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	query := r.client.Collection(wishlistCollection).Where("userId", "==", userID)

	iter := query.Documents(ctx)
	var items []*entity.WishlistItem

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate wishlist", err)
		}

		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse wishlist item", err)
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AddedAt.After(items[j].AddedAt)
	})

	return items, nil
}
