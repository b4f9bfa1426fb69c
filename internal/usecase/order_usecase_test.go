package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autohost/internal/domain/entity"
	"autohost/pkg/errors"
)

func newOrderFixture() (*OrderUseCase, *fakeOrderRepo, *fakeCartRepo, *fakeProductRepo) {
	orderRepo := &fakeOrderRepo{}
	cartRepo := &fakeCartRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {Name: "Alternador", Price: 1200, Stock: 5, SellerID: "seller-a"},
		"prod-2": {Name: "Espejo", Price: 450, Stock: 2, SellerID: "seller-b"},
	}}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"buyer": {ID: "buyer", Email: "buyer@example.com"},
	}}

	uc := NewOrderUseCase(orderRepo, cartRepo, productRepo, userRepo)
	return uc, orderRepo, cartRepo, productRepo
}

func fillCart(cartRepo *fakeCartRepo) {
	cartRepo.items = map[string]*entity.CartItem{
		"prod-1": {
			ProductID:    "prod-1",
			Name:         "Alternador",
			PricePerUnit: 1200,
			Quantity:     2,
			TotalPrice:   2400,
			SellerID:     "seller-a",
			SellerEmail:  "a@example.com",
		},
		"prod-2": {
			ProductID:    "prod-2",
			Name:         "Espejo",
			PricePerUnit: 450,
			Quantity:     1,
			TotalPrice:   450,
			SellerID:     "seller-b",
			SellerEmail:  "b@example.com",
		},
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()

	_, err := uc.Checkout(context.Background(), "buyer")
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
	assert.Empty(t, orderRepo.createdOrders)
}

func TestCheckoutBuildsSnapshot(t *testing.T) {
	uc, orderRepo, cartRepo, productRepo := newOrderFixture()
	fillCart(cartRepo)

	order, err := uc.Checkout(context.Background(), "buyer")
	require.NoError(t, err)

	assert.Equal(t, "buyer", order.BuyerID)
	assert.Equal(t, "buyer@example.com", order.BuyerEmail)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, 2850.0, order.Total)
	assert.Len(t, order.Items, 2)
	assert.ElementsMatch(t, []string{"seller-a", "seller-b"}, order.SellerIDs)

	// The order repo received both cart lines to clear.
	require.Len(t, orderRepo.clearedCarts, 1)
	assert.ElementsMatch(t, []string{"prod-1", "prod-2"}, orderRepo.clearedCarts[0])

	// Stock was decremented per line.
	assert.Equal(t, 2, productRepo.decremented["prod-1"])
	assert.Equal(t, 1, productRepo.decremented["prod-2"])
	assert.Equal(t, 3, productRepo.products["prod-1"].Stock)
}

func TestCheckoutDeduplicatesSellerIDs(t *testing.T) {
	uc, _, cartRepo, productRepo := newOrderFixture()
	productRepo.products["prod-3"] = &entity.Product{Name: "Rin", Price: 900, Stock: 4, SellerID: "seller-a"}
	fillCart(cartRepo)
	cartRepo.items["prod-3"] = &entity.CartItem{
		ProductID:    "prod-3",
		Name:         "Rin",
		PricePerUnit: 900,
		Quantity:     1,
		TotalPrice:   900,
		SellerID:     "seller-a",
	}

	order, err := uc.Checkout(context.Background(), "buyer")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"seller-a", "seller-b"}, order.SellerIDs)
}

func TestCheckoutSurvivesFailedDecrement(t *testing.T) {
	uc, _, cartRepo, productRepo := newOrderFixture()
	fillCart(cartRepo)
	productRepo.products["prod-2"].Stock = 0

	// A stale stock never blocks a committed order.
	order, err := uc.Checkout(context.Background(), "buyer")
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Zero(t, productRepo.decremented["prod-2"])
}

func TestGetOrderAccess(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()
	orderRepo.orders = map[string]*entity.Order{
		"order-1": {
			ID:        "order-1",
			BuyerID:   "buyer",
			SellerIDs: []string{"seller-a"},
		},
	}

	_, err := uc.GetOrder(context.Background(), "buyer", "order-1")
	assert.NoError(t, err)

	_, err = uc.GetOrder(context.Background(), "seller-a", "order-1")
	assert.NoError(t, err)

	_, err = uc.GetOrder(context.Background(), "stranger", "order-1")
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	_, err = uc.GetOrder(context.Background(), "buyer", "missing")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestListMySalesFiltersToOwnLines(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()
	orderRepo.orders = map[string]*entity.Order{
		"order-1": {
			ID:         "order-1",
			BuyerID:    "buyer",
			BuyerEmail: "buyer@example.com",
			SellerIDs:  []string{"seller-a", "seller-b"},
			Status:     entity.OrderStatusConfirmed,
			CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Items: []entity.OrderItem{
				{ProductID: "prod-1", SellerID: "seller-a", TotalPrice: 2400},
				{ProductID: "prod-2", SellerID: "seller-b", TotalPrice: 450},
			},
		},
	}

	sales, err := uc.ListMySales(context.Background(), "seller-a")
	require.NoError(t, err)
	require.Len(t, sales, 1)

	sale := sales[0]
	assert.Equal(t, "order-1", sale.OrderID)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "prod-1", sale.Items[0].ProductID)
	assert.Equal(t, 2400.0, sale.SellerTotal)

	sales, err = uc.ListMySales(context.Background(), "seller-c")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestListMyOrdersNeverNil(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	orders, err := uc.ListMyOrders(context.Background(), "buyer")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
