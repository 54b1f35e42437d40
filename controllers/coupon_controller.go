package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// CouponController handles HTTP requests for coupons.
type CouponController struct {
	couponService services.CouponService
}

func NewCouponController(couponService services.CouponService) *CouponController {
	return &CouponController{couponService: couponService}
}

// CreateCoupon handles POST /api/coupon.
func (cc *CouponController) CreateCoupon(ctx *gin.Context) {
	var req models.CreateCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	coupon, svcErr := cc.couponService.CreateCoupon(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusCreated, "Coupon created successfully.", "coupon", coupon)
}

// GetCoupon handles GET /api/coupon/:id.
func (cc *CouponController) GetCoupon(ctx *gin.Context) {
	coupon, svcErr := cc.couponService.GetCoupon(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Coupon retrieved successfully.", "coupon", coupon)
}

// ListCoupons handles GET /api/coupon.
func (cc *CouponController) ListCoupons(ctx *gin.Context) {
	coupons, svcErr := cc.couponService.ListCoupons(ctx.Request.Context())
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Coupons retrieved successfully.", "coupons", coupons)
}

// UpdateCoupon handles PUT /api/coupon/:id.
func (cc *CouponController) UpdateCoupon(ctx *gin.Context) {
	var req models.UpdateCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	coupon, svcErr := cc.couponService.UpdateCoupon(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Coupon updated successfully.", "coupon", coupon)
}

// DeleteCoupon handles DELETE /api/coupon/:id.
func (cc *CouponController) DeleteCoupon(ctx *gin.Context) {
	if svcErr := cc.couponService.DeleteCoupon(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Coupon deleted successfully.")
}

// ApplyCoupon handles POST /api/coupon/apply.
func (cc *CouponController) ApplyCoupon(ctx *gin.Context) {
	var req models.ApplyCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	result, svcErr := cc.couponService.ApplyCoupon(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Coupon applied successfully.", "discountPercentage", result.DiscountPercentage)
}
