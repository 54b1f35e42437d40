package services

import (
	"context"
	"math/rand"
	"time"

	"storefront-backend/models"
	"storefront-backend/repository"

	"go.uber.org/zap"
)

const couponCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const couponCodeLength = 8

type CouponService interface {
	CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, *ServiceError)
	GetCoupon(ctx context.Context, id string) (*models.Coupon, *ServiceError)
	ListCoupons(ctx context.Context) ([]models.Coupon, *ServiceError)
	UpdateCoupon(ctx context.Context, id string, req *models.UpdateCouponRequest) (*models.Coupon, *ServiceError)
	DeleteCoupon(ctx context.Context, id string) *ServiceError
	ApplyCoupon(ctx context.Context, req *models.ApplyCouponRequest) (*models.ApplyCouponResult, *ServiceError)
}

type couponServiceImpl struct {
	repo   repository.CouponRepo
	logger *zap.Logger
	now    func() time.Time
}

func NewCouponService(repo repository.CouponRepo, logger *zap.Logger) CouponService {
	return &couponServiceImpl{repo: repo, logger: logger, now: time.Now}
}

// CreateCoupon generates a fresh unique code: draw a random 8-character
// candidate and retry on collision until the store reports no match. The
// unique index on code backs this up against races between the check and the
// insert.
func (s *couponServiceImpl) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, *ServiceError) {
	if req.DiscountPercentage == nil || req.ValidUntil == nil {
		return nil, badRequest("Discount percentage and validUntil are required.")
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		s.logger.Error("coupon code generation failed", zap.Error(err))
		return nil, unexpected("Failed to create coupon.")
	}

	usageLimit := 1
	if req.UsageLimit != nil {
		usageLimit = *req.UsageLimit
	}

	coupon := &models.Coupon{
		Code:               code,
		DiscountPercentage: *req.DiscountPercentage,
		ValidUntil:         *req.ValidUntil,
		UsageLimit:         usageLimit,
		UsedCount:          0,
	}
	if err := s.repo.Create(ctx, coupon); err != nil {
		s.logger.Error("coupon create failed", zap.String("code", code), zap.Error(err))
		return nil, unexpected("Failed to create coupon.")
	}

	s.logger.Info("coupon created", zap.String("code", coupon.Code))
	return coupon, nil
}

func (s *couponServiceImpl) GetCoupon(ctx context.Context, rawID string) (*models.Coupon, *ServiceError) {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return nil, validationError("Coupon id is required.", fields...)
	}
	coupon, err := s.repo.FindByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, notFound("Coupon not found")
	}
	if err != nil {
		s.logger.Error("coupon lookup failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to retrieve coupon.")
	}
	return coupon, nil
}

func (s *couponServiceImpl) ListCoupons(ctx context.Context) ([]models.Coupon, *ServiceError) {
	coupons, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("coupon list failed", zap.Error(err))
		return nil, unexpected("Failed to retrieve coupons.")
	}
	return coupons, nil
}

// UpdateCoupon merges the supplied fields into the stored coupon; empty
// fields keep their previous values.
func (s *couponServiceImpl) UpdateCoupon(ctx context.Context, rawID string, req *models.UpdateCouponRequest) (*models.Coupon, *ServiceError) {
	coupon, svcErr := s.GetCoupon(ctx, rawID)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.Code != "" {
		coupon.Code = req.Code
	}
	if req.DiscountPercentage != nil {
		coupon.DiscountPercentage = *req.DiscountPercentage
	}
	if req.ValidUntil != nil {
		coupon.ValidUntil = *req.ValidUntil
	}
	if req.UsageLimit != nil {
		coupon.UsageLimit = *req.UsageLimit
	}

	if err := s.repo.Replace(ctx, coupon); err != nil {
		if err == repository.ErrDuplicate {
			return nil, badRequest("Coupon code must be unique.")
		}
		s.logger.Error("coupon update failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to update coupon.")
	}
	return coupon, nil
}

func (s *couponServiceImpl) DeleteCoupon(ctx context.Context, rawID string) *ServiceError {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return validationError("Coupon id is required.", fields...)
	}
	err := s.repo.Delete(ctx, id)
	if err == repository.ErrNotFound {
		return notFound("Coupon not found")
	}
	if err != nil {
		s.logger.Error("coupon delete failed", zap.String("id", rawID), zap.Error(err))
		return unexpected("Failed to delete coupon.")
	}
	return nil
}

// ApplyCoupon checks a code without consuming it: usage accounting belongs to
// order placement, which is out of scope here.
func (s *couponServiceImpl) ApplyCoupon(ctx context.Context, req *models.ApplyCouponRequest) (*models.ApplyCouponResult, *ServiceError) {
	if req.Code == "" {
		return nil, badRequest("Coupon code is required.")
	}

	coupon, err := s.repo.FindByCode(ctx, req.Code)
	if err == repository.ErrNotFound {
		return nil, notFound("Invalid coupon code.")
	}
	if err != nil {
		s.logger.Error("coupon lookup failed", zap.String("code", req.Code), zap.Error(err))
		return nil, unexpected("Failed to apply coupon.")
	}

	if coupon.UsedCount >= coupon.UsageLimit {
		return nil, badRequest("Coupon usage limit reached.")
	}
	if s.now().After(coupon.ValidUntil) {
		return nil, badRequest("Coupon has expired.")
	}

	return &models.ApplyCouponResult{DiscountPercentage: coupon.DiscountPercentage}, nil
}

func (s *couponServiceImpl) uniqueCode(ctx context.Context) (string, error) {
	for {
		code := randomCouponCode()
		_, err := s.repo.FindByCode(ctx, code)
		if err == repository.ErrNotFound {
			return code, nil
		}
		if err != nil {
			return "", err
		}
		// collision, draw again
	}
}

func randomCouponCode() string {
	buf := make([]byte, couponCodeLength)
	for i := range buf {
		buf[i] = couponCodeAlphabet[rand.Intn(len(couponCodeAlphabet))]
	}
	return string(buf)
}
