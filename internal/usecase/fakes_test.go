package usecase

import (
	"context"

	"autohost/internal/domain/entity"
	"autohost/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.users == nil {
		f.users = map[string]*entity.User{}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeProductRepo struct {
	products    map[string]*entity.Product
	decremented map[string]int
	created     []*entity.Product
	updated     []*entity.Product
	deleted     []string
	lastFilter  map[string]interface{}
	lastSort    string
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.created = append(f.created, product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if product, ok := f.products[id]; ok {
		return product, nil
	}
	return nil, errors.NotFound("Product", nil)
}

func (f *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	f.lastFilter = filter
	f.lastSort = sort
	return nil, 0, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	f.updated = append(f.updated, product)
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	product, ok := f.products[id]
	if !ok {
		return false, nil
	}
	if product.Stock < qty {
		return false, nil
	}
	product.Stock -= qty
	if f.decremented == nil {
		f.decremented = map[string]int{}
	}
	f.decremented[id] += qty
	return true, nil
}

type fakeCartRepo struct {
	items map[string]*entity.CartItem
}

func (f *fakeCartRepo) ListItems(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	var items []*entity.CartItem
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeCartRepo) GetItem(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	if item, ok := f.items[productID]; ok {
		return item, nil
	}
	return nil, errors.NotFound("Cart item", nil)
}

func (f *fakeCartRepo) SetItem(ctx context.Context, userID string, item *entity.CartItem) error {
	if f.items == nil {
		f.items = map[string]*entity.CartItem{}
	}
	f.items[item.ProductID] = item
	return nil
}

func (f *fakeCartRepo) DeleteItem(ctx context.Context, userID, productID string) error {
	delete(f.items, productID)
	return nil
}

type fakeOrderRepo struct {
	orders        map[string]*entity.Order
	clearedCarts  [][]string
	createdOrders []*entity.Order
}

func (f *fakeOrderRepo) CreateAndClearCart(ctx context.Context, order *entity.Order, cartProductIDs []string) error {
	if order.ID == "" {
		order.ID = "order-1"
	}
	if f.orders == nil {
		f.orders = map[string]*entity.Order{}
	}
	f.orders[order.ID] = order
	f.createdOrders = append(f.createdOrders, order)
	f.clearedCarts = append(f.clearedCarts, cartProductIDs)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if order, ok := f.orders[id]; ok {
		return order, nil
	}
	return nil, errors.NotFound("Order", nil)
}

func (f *fakeOrderRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range f.orders {
		if order.BuyerID == buyerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range f.orders {
		for _, id := range order.SellerIDs {
			if id == sellerID {
				orders = append(orders, order)
				break
			}
		}
	}
	return orders, nil
}
