package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/pkg/errors"
)

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	hostelRepo  repository.HostelRepository
	notifier    Notifier

	// maxImageBytes caps the decoded size of each inline document image.
	// Identity documents are small enough to live inside the record store
	// as base64 data URLs instead of going to the object store.
	maxImageBytes int64
}

func NewBookingUseCase(bookingRepo repository.BookingRepository, hostelRepo repository.HostelRepository, notifier Notifier, maxInlineImageKB int64) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo:   bookingRepo,
		hostelRepo:    hostelRepo,
		notifier:      notifier,
		maxImageBytes: maxInlineImageKB * 1024,
	}
}

type CreateBookingInput struct {
	HostelID      string
	UserEmail     string
	UserName      string
	UserPhone     string
	UserPhoto     string
	UserAadhaar   string
	UserCollegeID string
}

// CreateBooking files a stay request. Listing attributes are copied from the
// current hostel document so the booking stays self-contained.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, userID string, input CreateBookingInput) (*entity.Booking, error) {
	if userID == "" {
		return nil, errors.Unauthorized("You must be signed in to book a hostel", nil)
	}
	if input.UserName == "" || input.UserPhone == "" {
		return nil, errors.BadRequest("Name and phone number are required", nil)
	}

	for _, doc := range []struct {
		label string
		data  string
	}{
		{"photo", input.UserPhoto},
		{"aadhaar card", input.UserAadhaar},
		{"college ID", input.UserCollegeID},
	} {
		if doc.data == "" {
			return nil, errors.BadRequest("Please upload your "+doc.label, nil)
		}
		if err := validateInlineImage(doc.label, doc.data, uc.maxImageBytes); err != nil {
			return nil, err
		}
	}

	hostel, err := uc.hostelRepo.GetByID(ctx, input.HostelID)
	if err != nil {
		return nil, err
	}
	if !hostel.Approved {
		return nil, errors.BadRequest("This hostel is not accepting bookings", nil)
	}

	booking := &entity.Booking{
		HostelID:      hostel.ID,
		HostelName:    hostel.Name,
		UserID:        userID,
		UserEmail:     input.UserEmail,
		UserName:      input.UserName,
		UserPhone:     input.UserPhone,
		Location:      hostel.Location,
		Address:       hostel.Address,
		Price:         hostel.Price,
		Type:          hostel.Type,
		Facilities:    hostel.Facilities,
		UserPhoto:     input.UserPhoto,
		UserAadhaar:   input.UserAadhaar,
		UserCollegeID: input.UserCollegeID,
		Status:        entity.BookingStatusPending,
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// validateInlineImage checks a base64 data URL against the inline size cap.
func validateInlineImage(label, dataURL string, maxBytes int64) error {
	payload := dataURL
	if idx := strings.Index(dataURL, ","); idx >= 0 {
		payload = dataURL[idx+1:]
	}

	// Decoded size of base64 is 3/4 of the encoded length.
	decodedSize := int64(len(payload)) / 4 * 3
	if decodedSize > maxBytes {
		return errors.BadRequest(fmt.Sprintf("The %s image must be under %dKB", label, maxBytes/1024), nil)
	}

	return nil
}

func (uc *BookingUseCase) ListUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	if userID == "" {
		return nil, errors.Unauthorized("Authentication required", nil)
	}
	return uc.bookingRepo.ListByUser(ctx, userID)
}

// Admin operations.

func (uc *BookingUseCase) ListAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	return uc.bookingRepo.ListAll(ctx)
}

func (uc *BookingUseCase) ListPendingBookings(ctx context.Context) ([]*entity.Booking, error) {
	return uc.bookingRepo.ListByStatus(ctx, entity.BookingStatusPending)
}

func (uc *BookingUseCase) ApproveBooking(ctx context.Context, id string) error {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = uc.bookingRepo.UpdateStatus(ctx, id, map[string]interface{}{
		"status":     entity.BookingStatusApproved,
		"approvedAt": time.Now(),
	})
	if err != nil {
		return err
	}

	uc.notifier.BookingDecision(booking.UserID, booking.HostelName, true)
	return nil
}

func (uc *BookingUseCase) RejectBooking(ctx context.Context, id string) error {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = uc.bookingRepo.UpdateStatus(ctx, id, map[string]interface{}{
		"status":     entity.BookingStatusRejected,
		"rejectedAt": time.Now(),
	})
	if err != nil {
		return err
	}

	uc.notifier.BookingDecision(booking.UserID, booking.HostelName, false)
	return nil
}

func (uc *BookingUseCase) DeleteBooking(ctx context.Context, id string) error {
	if _, err := uc.bookingRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.bookingRepo.Delete(ctx, id)
}
