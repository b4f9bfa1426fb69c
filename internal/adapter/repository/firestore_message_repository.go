package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
	"autohost/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListBySender(ctx context.Context, userID string) ([]*entity.Message, error) {
	return r.listByField(ctx, "senderId", userID)
}

func (r *firestoreMessageRepository) ListByReceiver(ctx context.Context, userID string) ([]*entity.Message, error) {
	return r.listByField(ctx, "receiverId", userID)
}

func (r *firestoreMessageRepository) listByField(ctx context.Context, field, userID string) ([]*entity.Message, error) {
	iter := r.client.Collection("messages").Where(field, "==", userID).Documents(ctx)

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreMessageRepository) ListThread(ctx context.Context, productID, userID, otherUserID string) ([]*entity.Message, error) {
	participants := []string{userID, otherUserID}

	query := r.client.Collection("messages").
		Where("productId", "==", productID).
		Where("senderId", "in", participants).
		OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate thread messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}

		// Firestore cannot apply two "in" filters, so third parties who
		// messaged about the same product are filtered out here.
		between := (message.SenderID == userID && message.ReceiverID == otherUserID) ||
			(message.SenderID == otherUserID && message.ReceiverID == userID)
		if between {
			messages = append(messages, &message)
		}
	}

	return messages, nil
}
