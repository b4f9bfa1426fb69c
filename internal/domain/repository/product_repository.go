package repository

import (
	"context"

	"autohost/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// DecrementStock subtracts qty only while stock covers it; returns false
	// when the guard fails.
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
}
