package services

import (
	"context"

	"storefront-backend/models"
	"storefront-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, *ServiceError)
	GetCategory(ctx context.Context, id string) (*models.Category, *ServiceError)
	ListCategories(ctx context.Context) ([]models.CategoryDetail, *ServiceError)
	UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.Category, *ServiceError)
	DeleteCategory(ctx context.Context, id string) *ServiceError
}

type categoryServiceImpl struct {
	repo   repository.CategoryRepo
	logger *zap.Logger
}

func NewCategoryService(repo repository.CategoryRepo, logger *zap.Logger) CategoryService {
	return &categoryServiceImpl{repo: repo, logger: logger}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, *ServiceError) {
	if req.Name == "" {
		return nil, validationError("Category name is required.",
			models.FieldError{Field: "name", Message: "is required"})
	}
	parent, svcErr := optionalID(req.ParentCategory, "parentCategory")
	if svcErr != nil {
		return nil, svcErr
	}

	category := &models.Category{
		Name:           req.Name,
		Description:    req.Description,
		ParentCategory: parent,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		if err == repository.ErrDuplicate {
			return nil, badRequest("Category with this name already exists.")
		}
		s.logger.Error("category create failed", zap.String("name", req.Name), zap.Error(err))
		return nil, unexpected("Failed to create category.")
	}
	return category, nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, rawID string) (*models.Category, *ServiceError) {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return nil, validationError("Category id is required.", fields...)
	}
	category, err := s.repo.FindByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, notFound("Category not found")
	}
	if err != nil {
		s.logger.Error("category lookup failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to retrieve category.")
	}
	return category, nil
}

// ListCategories resolves each parent reference from the same result set,
// so the join costs no extra reads.
func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]models.CategoryDetail, *ServiceError) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("category list failed", zap.Error(err))
		return nil, unexpected("Failed to retrieve categories.")
	}

	byID := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	details := make([]models.CategoryDetail, 0, len(categories))
	for _, c := range categories {
		detail := models.CategoryDetail{Category: c}
		if c.ParentCategory != nil {
			if parent, ok := byID[*c.ParentCategory]; ok {
				detail.ParentDetail = &models.CategoryRef{
					ID:          parent.ID,
					Name:        parent.Name,
					Description: parent.Description,
				}
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, rawID string, req *models.CategoryRequest) (*models.Category, *ServiceError) {
	category, svcErr := s.GetCategory(ctx, rawID)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.ParentCategory != "" {
		parent, svcErr := optionalID(req.ParentCategory, "parentCategory")
		if svcErr != nil {
			return nil, svcErr
		}
		category.ParentCategory = parent
	}

	if err := s.repo.Replace(ctx, category); err != nil {
		if err == repository.ErrDuplicate {
			return nil, badRequest("Category with this name already exists.")
		}
		s.logger.Error("category update failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to update category.")
	}
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, rawID string) *ServiceError {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return validationError("Category id is required.", fields...)
	}
	err := s.repo.Delete(ctx, id)
	if err == repository.ErrNotFound {
		return notFound("Category not found")
	}
	if err != nil {
		s.logger.Error("category delete failed", zap.String("id", rawID), zap.Error(err))
		return unexpected("Failed to delete category.")
	}
	return nil
}
