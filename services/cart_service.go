package services

import (
	"context"

	"storefront-backend/models"
	"storefront-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService owns the mapping from a user to their active cart and keeps the
// derived total consistent with the line items and cart discount.
//
// Every mutating operation is a single unsynchronized read-modify-write
// against the cart document: two concurrent requests for the same user can
// lose an update. That matches the observed contract; callers that need
// stronger guarantees can build on CartRepo.ReplaceIfVersion.
type CartService interface {
	AddItem(ctx context.Context, req *models.AddItemRequest) (*models.Cart, *ServiceError)
	RemoveItem(ctx context.Context, req *models.RemoveItemRequest) (*models.Cart, *ServiceError)
	UpdateQuantity(ctx context.Context, req *models.UpdateQuantityRequest) (*models.Cart, *ServiceError)
	ApplyDiscount(ctx context.Context, req *models.ApplyDiscountRequest) (*models.Cart, *ServiceError)
	GetCart(ctx context.Context, userID string) (*models.CartView, *ServiceError)
}

type cartServiceImpl struct {
	carts    repository.CartRepo
	products repository.ProductRepo
	logger   *zap.Logger
}

func NewCartService(carts repository.CartRepo, products repository.ProductRepo, logger *zap.Logger) CartService {
	return &cartServiceImpl{carts: carts, products: products, logger: logger}
}

// AddItem resolves the product, lazily creates the user's cart, and either
// increments the existing line's quantity or appends a new line priced at the
// product's current price. The snapshot price of an existing line is never
// refreshed.
func (s *cartServiceImpl) AddItem(ctx context.Context, req *models.AddItemRequest) (*models.Cart, *ServiceError) {
	var fields []models.FieldError
	userID, fields := requireID(req.User, "user", fields)
	productID, fields := requireID(req.Product, "product", fields)
	if req.Quantity == nil || *req.Quantity <= 0 {
		fields = append(fields, models.FieldError{Field: "quantity", Message: "must be a positive number"})
	}
	if len(fields) > 0 {
		return nil, validationError("User, product, and quantity are required.", fields...)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err == repository.ErrNotFound {
		return nil, notFound("Product not found.")
	}
	if err != nil {
		s.logger.Error("product lookup failed", zap.String("product", req.Product), zap.Error(err))
		return nil, unexpected("Failed to add item to cart.")
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("cart lookup failed", zap.String("user", req.User), zap.Error(err))
		return nil, unexpected("Failed to add item to cart.")
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += *req.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:    productID,
			UnitPrice:    product.Price,
			Quantity:     *req.Quantity,
			ItemDiscount: 0,
		})
	}

	recomputeTotal(cart)
	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("cart save failed", zap.String("user", req.User), zap.Error(err))
		return nil, unexpected("Failed to add item to cart.")
	}
	return cart, nil
}

// RemoveItem filters the product out of the cart. Removing a product that is
// not in the cart is a silent no-op at the item level; the cart is still
// recomputed and re-saved.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, req *models.RemoveItemRequest) (*models.Cart, *ServiceError) {
	var fields []models.FieldError
	userID, fields := requireID(req.User, "user", fields)
	productID, fields := requireID(req.Product, "product", fields)
	if len(fields) > 0 {
		return nil, validationError("User and product are required.", fields...)
	}

	cart, svcErr := s.mustFindCart(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	recomputeTotal(cart)
	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("cart save failed", zap.String("user", req.User), zap.Error(err))
		return nil, unexpected("Failed to remove item from cart.")
	}
	return cart, nil
}

// UpdateQuantity overwrites a line item's quantity. The value is an absolute
// set, not an increment, and zero or negative quantities are accepted
// unchanged.
func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, req *models.UpdateQuantityRequest) (*models.Cart, *ServiceError) {
	var fields []models.FieldError
	userID, fields := requireID(req.User, "user", fields)
	productID, fields := requireID(req.Product, "product", fields)
	if req.Quantity == nil {
		fields = append(fields, models.FieldError{Field: "quantity", Message: "must be a number"})
	}
	if len(fields) > 0 {
		return nil, validationError("User, product, and a valid quantity are required.", fields...)
	}

	cart, svcErr := s.mustFindCart(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, notFound("Item not found in cart.")
	}
	cart.Items[idx].Quantity = *req.Quantity

	recomputeTotal(cart)
	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("cart save failed", zap.String("user", req.User), zap.Error(err))
		return nil, unexpected("Failed to update item quantity.")
	}
	return cart, nil
}

// ApplyDiscount overwrites the flat cart-level discount. No bound check is
// applied: the recomputed total may go negative.
func (s *cartServiceImpl) ApplyDiscount(ctx context.Context, req *models.ApplyDiscountRequest) (*models.Cart, *ServiceError) {
	var fields []models.FieldError
	userID, fields := requireID(req.User, "user", fields)
	if req.CartDiscount == nil {
		fields = append(fields, models.FieldError{Field: "cartDiscount", Message: "must be a number"})
	}
	if len(fields) > 0 {
		return nil, validationError("User and a valid cart discount are required.", fields...)
	}

	cart, svcErr := s.mustFindCart(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	cart.CartDiscount = *req.CartDiscount

	recomputeTotal(cart)
	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("cart save failed", zap.String("user", req.User), zap.Error(err))
		return nil, unexpected("Failed to apply cart discount.")
	}
	return cart, nil
}

// GetCart returns the cart with each line's product resolved into a display
// projection. The join happens at read time; nothing is persisted.
func (s *cartServiceImpl) GetCart(ctx context.Context, rawUserID string) (*models.CartView, *ServiceError) {
	var fields []models.FieldError
	userID, fields := requireID(rawUserID, "userId", fields)
	if len(fields) > 0 {
		return nil, validationError("User ID is required.", fields...)
	}

	cart, svcErr := s.mustFindCart(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("product join failed", zap.String("user", rawUserID), zap.Error(err))
		return nil, unexpected("Failed to retrieve cart.")
	}

	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := &models.CartView{
		ID:           cart.ID,
		UserID:       cart.UserID,
		Items:        make([]models.CartItemView, 0, len(cart.Items)),
		CartDiscount: cart.CartDiscount,
		TotalPrice:   cart.TotalPrice,
		CreatedAt:    cart.CreatedAt,
		UpdatedAt:    cart.UpdatedAt,
	}
	for _, item := range cart.Items {
		projection := models.CartProduct{ID: item.ProductID}
		if p, ok := byID[item.ProductID]; ok {
			projection.Name = p.Name
			projection.Price = p.Price
			projection.Images = p.Images
		}
		view.Items = append(view.Items, models.CartItemView{
			Product:      projection,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			ItemDiscount: item.ItemDiscount,
		})
	}
	return view, nil
}

func (s *cartServiceImpl) mustFindCart(ctx context.Context, userID uuid.UUID) (*models.Cart, *ServiceError) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("cart lookup failed", zap.String("user", userID.String()), zap.Error(err))
		return nil, unexpected("Failed to load cart.")
	}
	if cart == nil {
		return nil, notFound("Cart not found.")
	}
	return cart, nil
}

// recomputeTotal rebuilds the derived total from scratch:
//
//	totalPrice = sum of (unitPrice - itemDiscount) * quantity, minus cartDiscount
//
// Plain float64 arithmetic, summed in item order, no rounding. The result is
// not clamped: a discount larger than the items sum drives it negative.
func recomputeTotal(cart *models.Cart) {
	var sum float64
	for _, item := range cart.Items {
		sum += (item.UnitPrice - item.ItemDiscount) * float64(item.Quantity)
	}
	cart.TotalPrice = sum - cart.CartDiscount
}

// requireID parses a required identifier field, accumulating a field error
// when it is missing or malformed.
func requireID(raw, field string, fields []models.FieldError) (uuid.UUID, []models.FieldError) {
	if raw == "" {
		return uuid.Nil, append(fields, models.FieldError{Field: field, Message: "is required"})
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, append(fields, models.FieldError{Field: field, Message: "must be a valid id"})
	}
	return id, fields
}
