package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// CartController handles HTTP requests for cart operations.
type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// AddItem handles POST /api/cart.
func (cc *CartController) AddItem(ctx *gin.Context) {
	var req models.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	cart, svcErr := cc.cartService.AddItem(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Item added to cart successfully.", "cart", cart)
}

// RemoveItem handles POST /api/cart/remove/item.
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	var req models.RemoveItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	cart, svcErr := cc.cartService.RemoveItem(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Item removed from cart successfully.", "cart", cart)
}

// UpdateQuantity handles PUT /api/cart/update/qty.
func (cc *CartController) UpdateQuantity(ctx *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	cart, svcErr := cc.cartService.UpdateQuantity(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Item quantity updated successfully.", "cart", cart)
}

// ApplyDiscount handles POST /api/cart/apply/discount.
func (cc *CartController) ApplyDiscount(ctx *gin.Context) {
	var req models.ApplyDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	cart, svcErr := cc.cartService.ApplyDiscount(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Cart discount applied successfully.", "cart", cart)
}

// GetCart handles GET /api/cart/:userId.
func (cc *CartController) GetCart(ctx *gin.Context) {
	cart, svcErr := cc.cartService.GetCart(ctx.Request.Context(), ctx.Param("userId"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Cart retrieved successfully.", "cart", cart)
}
