package repository

import (
	"context"
	"errors"

	"storefront-backend/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate key")
	// ErrVersionConflict is returned by conditional cart replaces when the
	// stored version no longer matches.
	ErrVersionConflict = errors.New("version conflict")
)

// CartRepo is the persistence contract for carts. FindByUser returns
// (nil, nil) when the user has no cart; Save has upsert semantics.
type CartRepo interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	// ReplaceIfVersion is the optimistic-concurrency extension point. It is
	// not used by the default last-write-wins flow.
	ReplaceIfVersion(ctx context.Context, cart *models.Cart, expected int64) error
}

// ProductRepo defines the product operations used by services. Plain Go
// types only, so adapters can be swapped.
type ProductRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Replace(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CouponRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error)
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	FindAll(ctx context.Context) ([]models.Coupon, error)
	Create(ctx context.Context, coupon *models.Coupon) error
	Replace(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindRecent(ctx context.Context, limit int) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Replace(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WarehouseRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	FindAll(ctx context.Context) ([]models.Warehouse, error)
	FindActive(ctx context.Context) ([]models.Warehouse, error)
	FindByMinInventory(ctx context.Context, min int) ([]models.Warehouse, error)
	Create(ctx context.Context, warehouse *models.Warehouse) error
	Replace(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]models.User, int64, error)
	Create(ctx context.Context, user *models.User) error
	Replace(ctx context.Context, user *models.User) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	EnsureIndexes(ctx context.Context) error
}
