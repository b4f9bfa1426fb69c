package repository

import (
	"context"

	"autohost/internal/domain/entity"
)

type CartRepository interface {
	ListItems(ctx context.Context, userID string) ([]*entity.CartItem, error)
	GetItem(ctx context.Context, userID, productID string) (*entity.CartItem, error)
	SetItem(ctx context.Context, userID string, item *entity.CartItem) error
	DeleteItem(ctx context.Context, userID, productID string) error
}
