package repository

import (
	"context"

	"autohost/internal/domain/entity"
)

type OrderRepository interface {
	// CreateAndClearCart commits the order document and the removal of the
	// buyer's cart lines as one atomic write.
	CreateAndClearCart(ctx context.Context, order *entity.Order, cartProductIDs []string) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error)
}
