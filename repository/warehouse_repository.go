package repository

import (
	"context"
	"errors"
	"time"

	"storefront-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type WarehouseRepository struct {
	collection *mongo.Collection
}

func NewWarehouseRepository(db *mongo.Database) *WarehouseRepository {
	return &WarehouseRepository{collection: db.Collection("warehouses")}
}

func (r *WarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&warehouse)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *WarehouseRepository) FindAll(ctx context.Context) ([]models.Warehouse, error) {
	return r.find(ctx, bson.M{})
}

func (r *WarehouseRepository) FindActive(ctx context.Context) ([]models.Warehouse, error) {
	return r.find(ctx, bson.M{"is_active": true})
}

func (r *WarehouseRepository) FindByMinInventory(ctx context.Context, min int) ([]models.Warehouse, error) {
	return r.find(ctx, bson.M{"inventory_count": bson.M{"$gte": min}})
}

func (r *WarehouseRepository) find(ctx context.Context, filter bson.M) ([]models.Warehouse, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var warehouses []models.Warehouse
	if err := cursor.All(ctx, &warehouses); err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *WarehouseRepository) Create(ctx context.Context, warehouse *models.Warehouse) error {
	now := time.Now().UTC()
	if warehouse.ID == uuid.Nil {
		warehouse.ID = uuid.New()
	}
	warehouse.CreatedAt = now
	warehouse.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, warehouse)
	return err
}

func (r *WarehouseRepository) Replace(ctx context.Context, warehouse *models.Warehouse) error {
	warehouse.UpdatedAt = time.Now().UTC()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": warehouse.ID}, warehouse)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *WarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
