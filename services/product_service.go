package services

import (
	"context"

	"storefront-backend/models"
	"storefront-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	GetProduct(ctx context.Context, id string) (*models.ProductDetail, *ServiceError)
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id string, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	DeleteProduct(ctx context.Context, id string) *ServiceError
}

type productServiceImpl struct {
	products   repository.ProductRepo
	categories repository.CategoryRepo
	cache      *ProductCache
	logger     *zap.Logger
}

func NewProductService(products repository.ProductRepo, categories repository.CategoryRepo, cache *ProductCache, logger *zap.Logger) ProductService {
	return &productServiceImpl{products: products, categories: categories, cache: cache, logger: logger}
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	var fields []models.FieldError
	if req.Name == "" {
		fields = append(fields, models.FieldError{Field: "name", Message: "is required"})
	}
	if req.Description == "" {
		fields = append(fields, models.FieldError{Field: "description", Message: "is required"})
	}
	if req.Currency == "" {
		fields = append(fields, models.FieldError{Field: "currency", Message: "is required"})
	}
	if req.Price == nil || *req.Price <= 0 {
		fields = append(fields, models.FieldError{Field: "price", Message: "must be a positive number"})
	}
	if req.Stock == nil || *req.Stock < 0 {
		fields = append(fields, models.FieldError{Field: "stock", Message: "must be zero or greater"})
	}
	if len(fields) > 0 {
		return nil, validationError("Name, description, price, stock, and currency are required.", fields...)
	}

	category, svcErr := optionalID(req.Category, "category")
	if svcErr != nil {
		return nil, svcErr
	}
	warehouse, svcErr := optionalID(req.Warehouse, "warehouse")
	if svcErr != nil {
		return nil, svcErr
	}

	discount := 0.0
	if req.Discount != nil {
		discount = *req.Discount
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Price:       *req.Price,
		Currency:    req.Currency,
		Stock:       *req.Stock,
		Discount:    discount,
		Warehouse:   warehouse,
		Images:      req.Images,
	}
	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("product create failed", zap.String("name", req.Name), zap.Error(err))
		return nil, unexpected("Failed to create product.")
	}

	s.logger.Info("product created", zap.String("product", product.ID.String()), zap.String("name", product.Name))
	return product, nil
}

// GetProduct serves from the cache when possible and falls back to the
// store, joining the category projection on the way out.
func (s *productServiceImpl) GetProduct(ctx context.Context, rawID string) (*models.ProductDetail, *ServiceError) {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return nil, validationError("Product id is required.", fields...)
	}

	product, hit := s.cache.Get(ctx, rawID)
	if !hit {
		var err error
		product, err = s.products.FindByID(ctx, id)
		if err == repository.ErrNotFound {
			return nil, notFound("Product not found")
		}
		if err != nil {
			s.logger.Error("product lookup failed", zap.String("id", rawID), zap.Error(err))
			return nil, unexpected("Failed to retrieve product.")
		}
		s.cache.SetAsync(rawID, product)
	}

	detail := &models.ProductDetail{Product: *product}
	if product.Category != nil {
		category, err := s.categories.FindByID(ctx, *product.Category)
		if err == nil {
			detail.CategoryDetail = &models.CategoryRef{
				ID:          category.ID,
				Name:        category.Name,
				Description: category.Description,
			}
		} else if err != repository.ErrNotFound {
			s.logger.Warn("category join failed", zap.String("product", rawID), zap.Error(err))
		}
	}
	return detail, nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		s.logger.Error("product list failed", zap.Error(err))
		return nil, unexpected("Failed to retrieve products.")
	}
	return products, nil
}

// UpdateProduct applies only the fields present in the request and drops the
// cached copy so the next read observes the change.
func (s *productServiceImpl) UpdateProduct(ctx context.Context, rawID string, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return nil, validationError("Product id is required.", fields...)
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Currency != "" {
		updates["currency"] = req.Currency
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, validationError("Price must be a positive number.",
				models.FieldError{Field: "price", Message: "must be a positive number"})
		}
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, validationError("Stock must be zero or greater.",
				models.FieldError{Field: "stock", Message: "must be zero or greater"})
		}
		updates["stock"] = *req.Stock
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.Category != "" {
		category, svcErr := optionalID(req.Category, "category")
		if svcErr != nil {
			return nil, svcErr
		}
		updates["category"] = *category
	}
	if req.Warehouse != "" {
		warehouse, svcErr := optionalID(req.Warehouse, "warehouse")
		if svcErr != nil {
			return nil, svcErr
		}
		updates["warehouse"] = *warehouse
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if len(updates) == 0 {
		return nil, badRequest("No fields to update.")
	}

	err := s.products.Update(ctx, id, updates)
	if err == repository.ErrNotFound {
		return nil, notFound("Product not found")
	}
	if err != nil {
		s.logger.Error("product update failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to update product.")
	}
	s.cache.Invalidate(ctx, rawID)

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("product reload failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to retrieve product.")
	}
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, rawID string) *ServiceError {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return validationError("Product id is required.", fields...)
	}
	err := s.products.Delete(ctx, id)
	if err == repository.ErrNotFound {
		return notFound("Product not found")
	}
	if err != nil {
		s.logger.Error("product delete failed", zap.String("id", rawID), zap.Error(err))
		return unexpected("Failed to delete product.")
	}
	s.cache.Invalidate(ctx, rawID)
	return nil
}

// optionalID parses a reference field that may be absent. Empty means nil;
// anything else must be a valid UUID.
func optionalID(raw, field string) (*uuid.UUID, *ServiceError) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, validationError("Invalid "+field+" id.",
			models.FieldError{Field: field, Message: "must be a valid id"})
	}
	return &id, nil
}
