package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests for the product catalog.
type ProductController struct {
	productService services.ProductService
}

func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// CreateProduct handles POST /api/product.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	product, svcErr := pc.productService.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusCreated, "Product created successfully.", "product", product)
}

// GetProduct handles GET /api/product/:id.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	product, svcErr := pc.productService.GetProduct(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Product retrieved successfully.", "product", product)
}

// ListProducts handles GET /api/product.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products, svcErr := pc.productService.ListProducts(ctx.Request.Context())
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Products retrieved successfully.", "products", products, "count", len(products))
}

// UpdateProduct handles PUT /api/product/:id.
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	product, svcErr := pc.productService.UpdateProduct(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Product updated successfully.", "product", product)
}

// DeleteProduct handles DELETE /api/product/:id.
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	if svcErr := pc.productService.DeleteProduct(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Product deleted successfully.")
}
