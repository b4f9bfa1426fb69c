package entity

import "time"

const OrderStatusConfirmed = "confirmed"

// OrderItem is an immutable snapshot of a cart line taken at checkout.
type OrderItem struct {
	ProductID    string  `json:"product_id" firestore:"productId"`
	Name         string  `json:"name" firestore:"name"`
	ImageURL     string  `json:"image_url" firestore:"imageUrl"`
	PricePerUnit float64 `json:"price_per_unit" firestore:"pricePerUnit"`
	Quantity     int     `json:"quantity" firestore:"quantity"`
	TotalPrice   float64 `json:"total_price" firestore:"totalPrice"`
	SellerID     string  `json:"seller_id" firestore:"sellerId"`
	SellerEmail  string  `json:"seller_email" firestore:"sellerEmail"`
}

type Order struct {
	ID         string      `json:"id" firestore:"id"`
	BuyerID    string      `json:"buyer_id" firestore:"buyerId"`
	BuyerEmail string      `json:"buyer_email" firestore:"buyerEmail"`
	Items      []OrderItem `json:"items" firestore:"items"`
	Total      float64     `json:"total" firestore:"total"`
	Status     string      `json:"status" firestore:"status"`
	// SellerIDs holds the distinct sellers involved so sales queries can use
	// an array-contains filter.
	SellerIDs []string  `json:"seller_ids" firestore:"sellerIds"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
