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

const universitiesCollection = "universities"

type firestoreUniversityRepository struct {
	client *firestore.Client
}

func NewFirestoreUniversityRepository(client *firestore.Client) repository.UniversityRepository {
	return &firestoreUniversityRepository{
		client: client,
	}
}

func (r *firestoreUniversityRepository) Create(ctx context.Context, university *entity.University) error {
	if university.ID == "" {
		doc := r.client.Collection(universitiesCollection).NewDoc()
		university.ID = doc.ID
	}

	university.CreatedAt = time.Now()

	_, err := r.client.Collection(universitiesCollection).Doc(university.ID).Set(ctx, university)
	if err != nil {
		return errors.Internal("Failed to create university", err)
	}

	return nil
}

func (r *firestoreUniversityRepository) ListAll(ctx context.Context) ([]*entity.University, error) {
	iter := r.client.Collection(universitiesCollection).Documents(ctx)
	var universities []*entity.University

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate universities", err)
		}

		var university entity.University
		if err := doc.DataTo(&university); err != nil {
			return nil, errors.Internal("Failed to parse university data", err)
		}
		university.ID = doc.Ref.ID
		universities = append(universities, &university)
	}

	sort.SliceStable(universities, func(i, j int) bool {
		return universities[i].Name < universities[j].Name
	})

	return universities, nil
}

func (r *firestoreUniversityRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := r.client.Collection(universitiesCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("University", err)
		}
		return errors.Internal("Failed to update university", err)
	}

	return nil
}

func (r *firestoreUniversityRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(universitiesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete university", err)
	}

	return nil
}
