package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// CategoryController handles HTTP requests for categories.
type CategoryController struct {
	categoryService services.CategoryService
}

func NewCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// CreateCategory handles POST /api/category.
func (cc *CategoryController) CreateCategory(ctx *gin.Context) {
	var req models.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	category, svcErr := cc.categoryService.CreateCategory(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusCreated, "Category created successfully.", "category", category)
}

// GetCategory handles GET /api/category/:id.
func (cc *CategoryController) GetCategory(ctx *gin.Context) {
	category, svcErr := cc.categoryService.GetCategory(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Category retrieved successfully.", "category", category)
}

// ListCategories handles GET /api/category.
func (cc *CategoryController) ListCategories(ctx *gin.Context) {
	categories, svcErr := cc.categoryService.ListCategories(ctx.Request.Context())
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Categories retrieved successfully.", "categories", categories)
}

// UpdateCategory handles PUT /api/category/:id.
func (cc *CategoryController) UpdateCategory(ctx *gin.Context) {
	var req models.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	category, svcErr := cc.categoryService.UpdateCategory(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Category updated successfully.", "category", category)
}

// DeleteCategory handles DELETE /api/category/:id.
func (cc *CategoryController) DeleteCategory(ctx *gin.Context) {
	if svcErr := cc.categoryService.DeleteCategory(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Category deleted successfully.")
}
