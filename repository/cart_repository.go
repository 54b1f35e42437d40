package repository

import (
	"context"
	"errors"
	"time"

	"storefront-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartRepository stores carts in the "carts" collection, one document per
// user. Save is an unsynchronized read-modify-write upsert: concurrent
// writers to the same cart last-write-win. ReplaceIfVersion is available for
// callers that want compare-and-swap instead.
type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{collection: db.Collection("carts")}
}

func (r *CartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	now := time.Now().UTC()
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	cart.Version++

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"user_id": cart.UserID}, cart, opts)
	return err
}

// ReplaceIfVersion writes the cart only if the stored document still carries
// the expected version. It never upserts; a missing or newer document yields
// ErrVersionConflict.
func (r *CartRepository) ReplaceIfVersion(ctx context.Context, cart *models.Cart, expected int64) error {
	cart.UpdatedAt = time.Now().UTC()
	cart.Version = expected + 1

	res, err := r.collection.ReplaceOne(ctx,
		bson.M{"user_id": cart.UserID, "version": expected}, cart)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}
