package repository

import (
	"context"

	"autohost/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	ListBySender(ctx context.Context, userID string) ([]*entity.Message, error)
	ListByReceiver(ctx context.Context, userID string) ([]*entity.Message, error)
	// ListThread returns the messages between two users about one product,
	// ordered by creation time ascending.
	ListThread(ctx context.Context, productID, userID, otherUserID string) ([]*entity.Message, error)
}
