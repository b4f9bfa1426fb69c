package entity

import "time"

// CartItem is a per-user line entry stored under carts/{uid}/items/{productId}.
type CartItem struct {
	ProductID    string    `json:"product_id" firestore:"productId"`
	Name         string    `json:"name" firestore:"name"`
	ImageURL     string    `json:"image_url" firestore:"imageUrl"`
	PricePerUnit float64   `json:"price_per_unit" firestore:"pricePerUnit"`
	Quantity     int       `json:"quantity" firestore:"quantity"`
	TotalPrice   float64   `json:"total_price" firestore:"totalPrice"`
	SellerID     string    `json:"seller_id" firestore:"sellerId"`
	SellerEmail  string    `json:"seller_email" firestore:"sellerEmail"`
	AddedAt      time.Time `json:"added_at" firestore:"addedAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}
