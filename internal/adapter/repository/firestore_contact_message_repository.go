package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
	"unihostel/pkg/errors"
)

const contactMessagesCollection = "contactMessages"

type firestoreContactMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreContactMessageRepository(client *firestore.Client) repository.ContactMessageRepository {
	return &firestoreContactMessageRepository{
		client: client,
	}
}

func (r *firestoreContactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	message.Read = false
	message.CreatedAt = time.Now()

	_, err := r.client.Collection(contactMessagesCollection).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create contact message", err)
	}

	return nil
}

func (r *firestoreContactMessageRepository) ListAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	iter := r.client.Collection(contactMessagesCollection).Documents(ctx)
	var messages []*entity.ContactMessage

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate contact messages", err)
		}

		var message entity.ContactMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse contact message", err)
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreContactMessageRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection(contactMessagesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Contact message", err)
		}
		return errors.Internal("Failed to mark message as read", err)
	}

	return nil
}

func (r *firestoreContactMessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(contactMessagesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete contact message", err)
	}

	return nil
}
