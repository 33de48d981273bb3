package usecase

import (
	"context"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/pkg/errors"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	hostelRepo   repository.HostelRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, hostelRepo repository.HostelRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		hostelRepo:   hostelRepo,
	}
}

// AddToWishlist snapshots the hostel into the user's wishlist. Duplicate
// saves are rejected rather than silently overwritten.
func (uc *WishlistUseCase) AddToWishlist(ctx context.Context, userID, hostelID string) (*entity.WishlistItem, error) {
	exists, err := uc.wishlistRepo.IsInWishlist(ctx, userID, hostelID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Hostel already in wishlist")
	}

	hostel, err := uc.hostelRepo.GetByID(ctx, hostelID)
	if err != nil {
		return nil, err
	}

	firstImage := ""
	if len(hostel.Images) > 0 {
		firstImage = hostel.Images[0]
	}

	item := &entity.WishlistItem{
		UserID:         userID,
		HostelID:       hostel.ID,
		HostelName:     hostel.Name,
		HostelImage:    firstImage,
		HostelPrice:    hostel.Price,
		HostelLocation: hostel.Location,
		HostelRating:   hostel.Rating,
		HostelReviews:  hostel.Reviews,
	}

	if err := uc.wishlistRepo.Add(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *WishlistUseCase) RemoveFromWishlist(ctx context.Context, userID, hostelID string) error {
	exists, err := uc.wishlistRepo.IsInWishlist(ctx, userID, hostelID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Wishlist item", nil)
	}

	return uc.wishlistRepo.Remove(ctx, userID, hostelID)
}

func (uc *WishlistUseCase) IsInWishlist(ctx context.Context, userID, hostelID string) (bool, error) {
	return uc.wishlistRepo.IsInWishlist(ctx, userID, hostelID)
}

func (uc *WishlistUseCase) GetUserWishlist(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	return uc.wishlistRepo.ListByUser(ctx, userID)
}

// ToggleWishlist adds the hostel when absent and removes it when present.
// The returned flag reports whether the hostel is in the wishlist afterward.
func (uc *WishlistUseCase) ToggleWishlist(ctx context.Context, userID, hostelID string) (bool, error) {
	exists, err := uc.wishlistRepo.IsInWishlist(ctx, userID, hostelID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := uc.wishlistRepo.Remove(ctx, userID, hostelID); err != nil {
			return true, err
		}
		return false, nil
	}

	if _, err := uc.AddToWishlist(ctx, userID, hostelID); err != nil {
		return false, err
	}
	return true, nil
}
