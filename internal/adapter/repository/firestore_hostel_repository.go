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

const hostelsCollection = "hostels"

type firestoreHostelRepository struct {
	client *firestore.Client
}

func NewFirestoreHostelRepository(client *firestore.Client) repository.HostelRepository {
	return &firestoreHostelRepository{
		client: client,
	}
}

func (r *firestoreHostelRepository) Create(ctx context.Context, hostel *entity.Hostel) error {
	if hostel.ID == "" {
		doc := r.client.Collection(hostelsCollection).NewDoc()
		hostel.ID = doc.ID
	}

	now := time.Now()
	if hostel.CreatedAt.IsZero() {
		hostel.CreatedAt = now
	}
	hostel.UpdatedAt = now

	_, err := r.client.Collection(hostelsCollection).Doc(hostel.ID).Set(ctx, hostel)
	if err != nil {
		return errors.Internal("Failed to create hostel", err)
	}

	return nil
}

func (r *firestoreHostelRepository) GetByID(ctx context.Context, id string) (*entity.Hostel, error) {
	doc, err := r.client.Collection(hostelsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Hostel", err)
		}
		return nil, errors.Internal("Failed to get hostel", err)
	}

	var hostel entity.Hostel
	if err := doc.DataTo(&hostel); err != nil {
		return nil, errors.Internal("Failed to parse hostel data", err)
	}
	hostel.ID = doc.Ref.ID

	return &hostel, nil
}

func (r *firestoreHostelRepository) ListApproved(ctx context.Context) ([]*entity.Hostel, error) {
	query := r.client.Collection(hostelsCollection).Where("approved", "==", true)
	return r.listHostels(ctx, query.Documents(ctx))
}

func (r *firestoreHostelRepository) ListApprovedByLocation(ctx context.Context, location string) ([]*entity.Hostel, error) {
	query := r.client.Collection(hostelsCollection).
		Where("approved", "==", true).
		Where("location", "==", location)
	return r.listHostels(ctx, query.Documents(ctx))
}

func (r *firestoreHostelRepository) ListAll(ctx context.Context) ([]*entity.Hostel, error) {
	return r.listHostels(ctx, r.client.Collection(hostelsCollection).Documents(ctx))
}

func (r *firestoreHostelRepository) ListPending(ctx context.Context) ([]*entity.Hostel, error) {
	query := r.client.Collection(hostelsCollection).Where("approved", "==", false)
	return r.listHostels(ctx, query.Documents(ctx))
}

// listHostels drains the iterator and sorts newest first. Sorting always
// happens client-side: combining Where filters with OrderBy needs composite
// indexes and has proven unreliable, so the store is never asked to sort.
func (r *firestoreHostelRepository) listHostels(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.Hostel, error) {
	var hostels []*entity.Hostel

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate hostels", err)
		}

		var hostel entity.Hostel
		if err := doc.DataTo(&hostel); err != nil {
			return nil, errors.Internal("Failed to parse hostel data", err)
		}
		hostel.ID = doc.Ref.ID
		hostels = append(hostels, &hostel)
	}

	sort.SliceStable(hostels, func(i, j int) bool {
		return hostels[i].CreatedAt.After(hostels[j].CreatedAt)
	})

	return hostels, nil
}

func (r *firestoreHostelRepository) Update(ctx context.Context, hostel *entity.Hostel) error {
	hostel.UpdatedAt = time.Now()

	_, err := r.client.Collection(hostelsCollection).Doc(hostel.ID).Set(ctx, hostel)
	if err != nil {
		return errors.Internal("Failed to update hostel", err)
	}

	return nil
}

func (r *firestoreHostelRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	_, err := r.client.Collection(hostelsCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Hostel", err)
		}
		return errors.Internal("Failed to update hostel fields", err)
	}

	return nil
}

func (r *firestoreHostelRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(hostelsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete hostel", err)
	}

	return nil
}
