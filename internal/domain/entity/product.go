package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SellerID    string             `json:"seller_id" bson:"sellerId"`
	SellerEmail string             `json:"seller_email" bson:"sellerEmail"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	Category    string             `json:"category" bson:"category"`
	Condition   string             `json:"condition" bson:"condition"`

	// Auto part specifics.
	Brand      string `json:"brand,omitempty" bson:"brand,omitempty"`
	Side       string `json:"side,omitempty" bson:"side,omitempty"`
	PartNumber string `json:"part_number,omitempty" bson:"partNumber,omitempty"`

	IsOnOffer          bool    `json:"is_on_offer" bson:"isOnOffer"`
	OriginalPrice      float64 `json:"original_price,omitempty" bson:"originalPrice,omitempty"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty" bson:"discountPercentage,omitempty"`

	ImageURL  string    `json:"image_url" bson:"imageUrl"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}
