package usecase

import (
	"context"
	"time"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
	"autohost/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type Cart struct {
	Items []*entity.CartItem `json:"items"`
	Total float64            `json:"total"`
}

func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*Cart, error) {
	items, err := uc.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &Cart{Items: items}
	if cart.Items == nil {
		cart.Items = []*entity.CartItem{}
	}
	for _, item := range items {
		cart.Total += item.TotalPrice
	}

	return cart, nil
}

// AddItem puts a product line into the user's cart, merging with an existing
// line for the same product. The merged quantity may not exceed the product's
// current stock.
func (uc *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID == userID {
		return nil, errors.BadRequest("You cannot buy your own product", nil)
	}
	if product.Stock < 1 {
		return nil, errors.BadRequest("Product is out of stock", nil)
	}

	now := time.Now()
	item := &entity.CartItem{
		ProductID:    productID,
		Name:         product.Name,
		ImageURL:     product.ImageURL,
		PricePerUnit: product.Price,
		Quantity:     quantity,
		SellerID:     product.SellerID,
		SellerEmail:  product.SellerEmail,
		AddedAt:      now,
		UpdatedAt:    now,
	}

	existing, err := uc.cartRepo.GetItem(ctx, userID, productID)
	if err == nil {
		item.Quantity += existing.Quantity
		item.AddedAt = existing.AddedAt
	} else if !errors.Is(err, errors.CodeNotFound) {
		return nil, err
	}

	if item.Quantity > product.Stock {
		return nil, errors.BadRequest("Not enough stock available", nil)
	}
	item.TotalPrice = float64(item.Quantity) * item.PricePerUnit

	if err := uc.cartRepo.SetItem(ctx, userID, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	item, err := uc.cartRepo.GetItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err == nil && quantity > product.Stock {
		return nil, errors.BadRequest("Not enough stock available", nil)
	}

	item.Quantity = quantity
	item.TotalPrice = float64(quantity) * item.PricePerUnit
	item.UpdatedAt = time.Now()

	if err := uc.cartRepo.SetItem(ctx, userID, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) error {
	if _, err := uc.cartRepo.GetItem(ctx, userID, productID); err != nil {
		return err
	}

	return uc.cartRepo.DeleteItem(ctx, userID, productID)
}
