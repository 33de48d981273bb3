package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/pkg/errors"
)

const bookingsCollection = "bookings"

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		doc := r.client.Collection(bookingsCollection).NewDoc()
		booking.ID = doc.ID
	}

	booking.CreatedAt = time.Now()

	_, err := r.client.Collection(bookingsCollection).Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to create booking", err)
	}

	return nil
}

func (r *firestoreBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	doc, err := r.client.Collection(bookingsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Booking", err)
		}
		return nil, errors.Internal("Failed to get booking", err)
	}

	var booking entity.Booking
	if err := doc.DataTo(&booking); err != nil {
		return nil, errors.Internal("Failed to parse booking data", err)
	}
	booking.ID = doc.Ref.ID

	return &booking, nil
}

func (r *firestoreBookingRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	query := r.client.Collection(bookingsCollection).Where("userId", "==", userID)
	return r.listBookings(query.Documents(ctx))
}

func (r *firestoreBookingRepository) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	return r.listBookings(r.client.Collection(bookingsCollection).Documents(ctx))
}

func (r *firestoreBookingRepository) ListByStatus(ctx context.Context, status string) ([]*entity.Booking, error) {
	query := r.client.Collection(bookingsCollection).Where("status", "==", status)
	return r.listBookings(query.Documents(ctx))
}

func (r *firestoreBookingRepository) listBookings(iter *firestore.DocumentIterator) ([]*entity.Booking, error) {
	var bookings []*entity.Booking

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate bookings", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, errors.Internal("Failed to parse booking data", err)
		}
		booking.ID = doc.Ref.ID
		bookings = append(bookings, &booking)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

func (r *firestoreBookingRepository) UpdateStatus(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := r.client.Collection(bookingsCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Booking", err)
		}
		return errors.Internal("Failed to update booking status", err)
	}

	return nil
}

func (r *firestoreBookingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(bookingsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete booking", err)
	}

	return nil
}
