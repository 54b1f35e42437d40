package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID             uuid.UUID  `json:"id" bson:"_id"`
	Name           string     `json:"name" bson:"name"`
	Description    string     `json:"description,omitempty" bson:"description,omitempty"`
	ParentCategory *uuid.UUID `json:"parentCategory,omitempty" bson:"parent_category,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" bson:"updated_at"`
}

// CategoryDetail is a category with its parent resolved at read time.
type CategoryDetail struct {
	Category
	ParentDetail *CategoryRef `json:"parentDetail,omitempty"`
}

// CategoryRequest is the payload for creating or updating a category.
// On update, empty fields keep their previous values.
type CategoryRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	ParentCategory string `json:"parentCategory"`
}
