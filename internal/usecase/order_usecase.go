package usecase

import (
	"context"
	"time"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
	"autohost/pkg/errors"
	"autohost/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Checkout turns the buyer's cart into a confirmed order. The order write and
// the cart clear happen in one batch; stock decrements afterwards are
// best-effort and never fail a placed order.
func (uc *OrderUseCase) Checkout(ctx context.Context, buyerID string) (*entity.Order, error) {
	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	items, err := uc.cartRepo.ListItems(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.BadRequest("Your cart is empty", nil)
	}

	order := &entity.Order{
		BuyerID:    buyerID,
		BuyerEmail: buyer.Email,
		Status:     entity.OrderStatusConfirmed,
		CreatedAt:  time.Now(),
	}

	productIDs := make([]string, 0, len(items))
	seenSellers := make(map[string]bool)

	for _, item := range items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID:    item.ProductID,
			Name:         item.Name,
			ImageURL:     item.ImageURL,
			PricePerUnit: item.PricePerUnit,
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice,
			SellerID:     item.SellerID,
			SellerEmail:  item.SellerEmail,
		})
		order.Total += item.TotalPrice
		productIDs = append(productIDs, item.ProductID)

		if !seenSellers[item.SellerID] {
			seenSellers[item.SellerID] = true
			order.SellerIDs = append(order.SellerIDs, item.SellerID)
		}
	}

	if err := uc.orderRepo.CreateAndClearCart(ctx, order, productIDs); err != nil {
		return nil, err
	}

	for _, item := range items {
		ok, err := uc.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			logger.Warn("stock decrement failed for product %s on order %s: %v", item.ProductID, order.ID, err)
			continue
		}
		if !ok {
			logger.Warn("insufficient stock to decrement product %s on order %s", item.ProductID, order.ID)
		}
	}

	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}

// Sale is a seller's view of an order: only their own lines and the revenue
// those lines add up to.
type Sale struct {
	OrderID     string             `json:"order_id"`
	BuyerID     string             `json:"buyer_id"`
	BuyerEmail  string             `json:"buyer_email"`
	Items       []entity.OrderItem `json:"items"`
	SellerTotal float64            `json:"seller_total"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (uc *OrderUseCase) ListMySales(ctx context.Context, sellerID string) ([]*Sale, error) {
	orders, err := uc.orderRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	sales := make([]*Sale, 0, len(orders))
	for _, order := range orders {
		sale := &Sale{
			OrderID:    order.ID,
			BuyerID:    order.BuyerID,
			BuyerEmail: order.BuyerEmail,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt,
		}

		for _, item := range order.Items {
			if item.SellerID != sellerID {
				continue
			}
			sale.Items = append(sale.Items, item)
			sale.SellerTotal += item.TotalPrice
		}

		if len(sale.Items) > 0 {
			sales = append(sales, sale)
		}
	}

	return sales, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID == userID {
		return order, nil
	}
	for _, sellerID := range order.SellerIDs {
		if sellerID == userID {
			return order, nil
		}
	}

	return nil, errors.Forbidden("You do not have access to this order", nil)
}
