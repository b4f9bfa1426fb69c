package entity

import (
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

type Address struct {
	Street string `json:"street,omitempty" firestore:"street,omitempty"`
	City   string `json:"city,omitempty" firestore:"city,omitempty"`
	State  string `json:"state,omitempty" firestore:"state,omitempty"`
	Zip    string `json:"zip,omitempty" firestore:"zip,omitempty"`
}

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	FullName string `json:"full_name" firestore:"fullName"`
	Phone    string `json:"phone" firestore:"phone"`
	Role     string `json:"role" firestore:"role"`

	// Seller-only fields collected by the registration wizard.
	BusinessName string `json:"business_name,omitempty" firestore:"businessName,omitempty"`
	RFC          string `json:"rfc,omitempty" firestore:"rfc,omitempty"`
	Clabe        string `json:"clabe,omitempty" firestore:"clabe,omitempty"`

	Address Address `json:"address,omitempty" firestore:"address,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
