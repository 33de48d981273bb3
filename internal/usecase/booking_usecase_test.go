package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unihostel/internal/domain/entity"
	"unihostel/pkg/errors"
)

type fakeBookingRepo struct {
	bookings map[string]*entity.Booking
	statuses []map[string]interface{}
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		booking.ID = "b1"
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, errors.NotFound("Booking", nil)
	}
	return booking, nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]*entity.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, fields map[string]interface{}) error {
	f.statuses = append(f.statuses, fields)
	if booking, ok := f.bookings[id]; ok {
		if status, ok := fields["status"].(string); ok {
			booking.Status = status
		}
	}
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	delete(f.bookings, id)
	return nil
}

type fakeNotifier struct {
	bookingCalls      []bool
	verificationCalls []bool
	hostelCalls       []bool
}

func (f *fakeNotifier) BookingDecision(userID, hostelName string, approved bool) {
	f.bookingCalls = append(f.bookingCalls, approved)
}

func (f *fakeNotifier) VerificationDecision(userID string, approved bool) {
	f.verificationCalls = append(f.verificationCalls, approved)
}

func (f *fakeNotifier) HostelDecision(ownerID, hostelName string, approved bool) {
	f.hostelCalls = append(f.hostelCalls, approved)
}

func smallImage() string {
	return "data:image/png;base64," + strings.Repeat("A", 1024)
}

func oversizedImage() string {
	// Encoded length decoding past the 500KB cap.
	return "data:image/png;base64," + strings.Repeat("A", 700*1024)
}

func validBookingInput() CreateBookingInput {
	return CreateBookingInput{
		HostelID:      "h1",
		UserEmail:     "asha@example.com",
		UserName:      "Asha",
		UserPhone:     "+919876543210",
		UserPhoto:     smallImage(),
		UserAadhaar:   smallImage(),
		UserCollegeID: smallImage(),
	}
}

func newBookingUseCaseForTest() (*BookingUseCase, *fakeBookingRepo, *fakeNotifier) {
	bookingRepo := newFakeBookingRepo()
	hostelRepo := newFakeHostelRepo()
	hostelRepo.hostels["h1"] = &entity.Hostel{
		ID:         "h1",
		Name:       "Sunrise",
		Location:   "Near LU",
		Address:    "12 College Road",
		Price:      8000,
		Type:       "coed",
		Facilities: []string{"wifi", "ac"},
		Approved:   true,
	}
	notifier := &fakeNotifier{}
	return NewBookingUseCase(bookingRepo, hostelRepo, notifier, 500), bookingRepo, notifier
}

func TestCreateBookingCopiesHostelSnapshot(t *testing.T) {
	uc, _, _ := newBookingUseCaseForTest()

	booking, err := uc.CreateBooking(context.Background(), "u1", validBookingInput())
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "Sunrise", booking.HostelName)
	assert.Equal(t, "Near LU", booking.Location)
	assert.Equal(t, 8000, booking.Price)
	assert.Equal(t, []string{"wifi", "ac"}, booking.Facilities)
}

func TestCreateBookingRejectsOversizedDocument(t *testing.T) {
	uc, bookingRepo, _ := newBookingUseCaseForTest()

	input := validBookingInput()
	input.UserAadhaar = oversizedImage()

	_, err := uc.CreateBooking(context.Background(), "u1", input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, bookingRepo.bookings)
}

func TestCreateBookingHonorsConfiguredImageCap(t *testing.T) {
	uc, bookingRepo, _ := newBookingUseCaseForTest()
	// The fixture images decode to 768 bytes; a 512 byte cap rejects them.
	uc.maxImageBytes = 512

	_, err := uc.CreateBooking(context.Background(), "u1", validBookingInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, bookingRepo.bookings)
}

func TestCreateBookingRequiresAuthentication(t *testing.T) {
	uc, bookingRepo, _ := newBookingUseCaseForTest()

	_, err := uc.CreateBooking(context.Background(), "", validBookingInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Empty(t, bookingRepo.bookings)
}

func TestCreateBookingRequiresAllDocuments(t *testing.T) {
	uc, _, _ := newBookingUseCaseForTest()

	input := validBookingInput()
	input.UserCollegeID = ""

	_, err := uc.CreateBooking(context.Background(), "u1", input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestApproveBookingSetsStatusAndNotifies(t *testing.T) {
	uc, bookingRepo, notifier := newBookingUseCaseForTest()

	booking, err := uc.CreateBooking(context.Background(), "u1", validBookingInput())
	require.NoError(t, err)

	require.NoError(t, uc.ApproveBooking(context.Background(), booking.ID))

	assert.Equal(t, entity.BookingStatusApproved, bookingRepo.bookings[booking.ID].Status)
	assert.Equal(t, []bool{true}, notifier.bookingCalls)
}

func TestRejectBookingSetsStatusAndNotifies(t *testing.T) {
	uc, bookingRepo, notifier := newBookingUseCaseForTest()

	booking, err := uc.CreateBooking(context.Background(), "u1", validBookingInput())
	require.NoError(t, err)

	require.NoError(t, uc.RejectBooking(context.Background(), booking.ID))

	assert.Equal(t, entity.BookingStatusRejected, bookingRepo.bookings[booking.ID].Status)
	assert.Equal(t, []bool{false}, notifier.bookingCalls)
}
