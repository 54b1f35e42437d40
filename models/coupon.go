package models

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a promotional code. Code is generated server-side and unique
// across the collection.
type Coupon struct {
	ID                 uuid.UUID `json:"id" bson:"_id"`
	Code               string    `json:"code" bson:"code"`
	DiscountPercentage float64   `json:"discountPercentage" bson:"discount_percentage"`
	ValidUntil         time.Time `json:"validUntil" bson:"valid_until"`
	UsageLimit         int       `json:"usageLimit" bson:"usage_limit"`
	UsedCount          int       `json:"usedCount" bson:"used_count"`
}

// CreateCouponRequest is the payload for POST /api/coupon. The code is never
// client-supplied on create.
type CreateCouponRequest struct {
	DiscountPercentage *float64   `json:"discountPercentage"`
	ValidUntil         *time.Time `json:"validUntil"`
	UsageLimit         *int       `json:"usageLimit"`
}

// UpdateCouponRequest is the payload for PUT /api/coupon/:id. Empty fields
// keep their previous values.
type UpdateCouponRequest struct {
	Code               string     `json:"code"`
	DiscountPercentage *float64   `json:"discountPercentage"`
	ValidUntil         *time.Time `json:"validUntil"`
	UsageLimit         *int       `json:"usageLimit"`
}

// ApplyCouponRequest is the payload for POST /api/coupon/apply.
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// ApplyCouponResult reports the discount granted by a valid coupon.
type ApplyCouponResult struct {
	DiscountPercentage float64 `json:"discountPercentage"`
}
