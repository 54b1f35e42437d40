package services

import (
	"context"

	"storefront-backend/models"
	"storefront-backend/repository"

	"go.uber.org/zap"
)

type WarehouseService interface {
	CreateWarehouse(ctx context.Context, req *models.WarehouseRequest) (*models.Warehouse, *ServiceError)
	GetWarehouse(ctx context.Context, id string) (*models.Warehouse, *ServiceError)
	ListWarehouses(ctx context.Context) ([]models.Warehouse, *ServiceError)
	ListActiveWarehouses(ctx context.Context) ([]models.Warehouse, *ServiceError)
	ListWarehousesByMinInventory(ctx context.Context, min int, minSupplied bool) ([]models.Warehouse, *ServiceError)
	UpdateWarehouse(ctx context.Context, id string, req *models.WarehouseRequest) (*models.Warehouse, *ServiceError)
	DeleteWarehouse(ctx context.Context, id string) *ServiceError
}

type warehouseServiceImpl struct {
	repo   repository.WarehouseRepo
	logger *zap.Logger
}

func NewWarehouseService(repo repository.WarehouseRepo, logger *zap.Logger) WarehouseService {
	return &warehouseServiceImpl{repo: repo, logger: logger}
}

func (s *warehouseServiceImpl) CreateWarehouse(ctx context.Context, req *models.WarehouseRequest) (*models.Warehouse, *ServiceError) {
	var fields []models.FieldError
	if req.Name == "" {
		fields = append(fields, models.FieldError{Field: "name", Message: "is required"})
	}
	if req.Location == nil || req.Location.City == "" {
		fields = append(fields, models.FieldError{Field: "location.city", Message: "is required"})
	}
	if req.Location == nil || req.Location.Country == "" {
		fields = append(fields, models.FieldError{Field: "location.country", Message: "is required"})
	}
	if len(fields) > 0 {
		return nil, validationError("Name, city, and country are required.", fields...)
	}

	warehouse := &models.Warehouse{
		Name:     req.Name,
		Location: *req.Location,
		IsActive: true,
	}
	if req.Capacity != nil {
		warehouse.Capacity = *req.Capacity
	}
	if req.Manager != nil {
		warehouse.Manager = *req.Manager
	}
	if req.InventoryCount != nil {
		warehouse.InventoryCount = *req.InventoryCount
	}
	if req.IsActive != nil {
		warehouse.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, warehouse); err != nil {
		s.logger.Error("warehouse create failed", zap.String("name", req.Name), zap.Error(err))
		return nil, unexpected("Failed to create warehouse.")
	}

	s.logger.Info("warehouse created", zap.String("warehouse", warehouse.ID.String()), zap.String("name", warehouse.Name))
	return warehouse, nil
}

func (s *warehouseServiceImpl) GetWarehouse(ctx context.Context, rawID string) (*models.Warehouse, *ServiceError) {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return nil, validationError("Warehouse id is required.", fields...)
	}
	warehouse, err := s.repo.FindByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, notFound("Warehouse not found")
	}
	if err != nil {
		s.logger.Error("warehouse lookup failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to retrieve warehouse.")
	}
	return warehouse, nil
}

func (s *warehouseServiceImpl) ListWarehouses(ctx context.Context) ([]models.Warehouse, *ServiceError) {
	warehouses, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("warehouse list failed", zap.Error(err))
		return nil, unexpected("Failed to retrieve warehouses.")
	}
	return warehouses, nil
}

func (s *warehouseServiceImpl) ListActiveWarehouses(ctx context.Context) ([]models.Warehouse, *ServiceError) {
	warehouses, err := s.repo.FindActive(ctx)
	if err != nil {
		s.logger.Error("active warehouse list failed", zap.Error(err))
		return nil, unexpected("Failed to retrieve warehouses.")
	}
	return warehouses, nil
}

// ListWarehousesByMinInventory requires an explicit threshold and responds
// 404 when nothing clears it.
func (s *warehouseServiceImpl) ListWarehousesByMinInventory(ctx context.Context, min int, minSupplied bool) ([]models.Warehouse, *ServiceError) {
	if !minSupplied {
		return nil, badRequest("Minimum inventory threshold is required.")
	}
	warehouses, err := s.repo.FindByMinInventory(ctx, min)
	if err != nil {
		s.logger.Error("warehouse inventory query failed", zap.Int("min", min), zap.Error(err))
		return nil, unexpected("Failed to retrieve warehouses.")
	}
	if len(warehouses) == 0 {
		return nil, notFound("No warehouses matching the inventory threshold")
	}
	return warehouses, nil
}

func (s *warehouseServiceImpl) UpdateWarehouse(ctx context.Context, rawID string, req *models.WarehouseRequest) (*models.Warehouse, *ServiceError) {
	warehouse, svcErr := s.GetWarehouse(ctx, rawID)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.Name != "" {
		warehouse.Name = req.Name
	}
	if req.Location != nil {
		warehouse.Location = *req.Location
	}
	if req.Capacity != nil {
		warehouse.Capacity = *req.Capacity
	}
	if req.Manager != nil {
		warehouse.Manager = *req.Manager
	}
	if req.InventoryCount != nil {
		warehouse.InventoryCount = *req.InventoryCount
	}
	if req.IsActive != nil {
		warehouse.IsActive = *req.IsActive
	}

	if err := s.repo.Replace(ctx, warehouse); err != nil {
		s.logger.Error("warehouse update failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to update warehouse.")
	}
	return warehouse, nil
}

func (s *warehouseServiceImpl) DeleteWarehouse(ctx context.Context, rawID string) *ServiceError {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return validationError("Warehouse id is required.", fields...)
	}
	err := s.repo.Delete(ctx, id)
	if err == repository.ErrNotFound {
		return notFound("Warehouse not found")
	}
	if err != nil {
		s.logger.Error("warehouse delete failed", zap.String("id", rawID), zap.Error(err))
		return unexpected("Failed to delete warehouse.")
	}
	return nil
}
