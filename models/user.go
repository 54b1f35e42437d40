package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is one shipping address in a user's address book.
type Address struct {
	FullName   string `json:"fullName,omitempty" bson:"full_name,omitempty"`
	Street     string `json:"street,omitempty" bson:"street,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postal_code,omitempty"`
	Country    string `json:"country" bson:"country"`
}

// User is a registered customer. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        uuid.UUID `json:"id" bson:"_id"`
	FirstName string    `json:"firstName" bson:"first_name"`
	LastName  string    `json:"lastName" bson:"last_name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	Phone     string    `json:"phone" bson:"phone"`
	Address   []Address `json:"address" bson:"address"`
	IsActive  bool      `json:"isActive" bson:"is_active"`
	IsDeleted bool      `json:"-" bson:"is_deleted"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// CreateUserRequest is the payload for POST /api/user.
type CreateUserRequest struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone"`
	Address   []Address `json:"address"`
}

// UpdateUserRequest is the payload for PUT /api/user/:id. Empty fields keep
// their previous values; a supplied password is re-hashed.
type UpdateUserRequest struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone"`
	Address   []Address `json:"address"`
	IsActive  *bool     `json:"isActive"`
}
