package services

import (
	"context"
	"encoding/json"
	"time"

	"storefront-backend/events"
	"storefront-backend/models"
	"storefront-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultRecentOrdersLimit = 10

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	GetOrder(ctx context.Context, id string) (*models.OrderDetail, *ServiceError)
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, *ServiceError)
	ListOrdersByStatus(ctx context.Context, status string) ([]models.Order, *ServiceError)
	RecentOrders(ctx context.Context, limit int) ([]models.Order, *ServiceError)
	UpdateOrderStatus(ctx context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id string) *ServiceError
}

type orderServiceImpl struct {
	repo      repository.OrderRepo
	products  repository.ProductRepo
	users     repository.UserRepo
	publisher events.Publisher
	logger    *zap.Logger
}

func NewOrderService(repo repository.OrderRepo, products repository.ProductRepo, users repository.UserRepo, publisher events.Publisher, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repo: repo, products: products, users: users, publisher: publisher, logger: logger}
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	var fields []models.FieldError
	userID, fields := requireID(req.User, "user", fields)
	if len(req.Products) == 0 {
		fields = append(fields, models.FieldError{Field: "products", Message: "must not be empty"})
	}
	if req.TotalAmount == nil {
		fields = append(fields, models.FieldError{Field: "totalAmount", Message: "is required"})
	}
	if len(fields) > 0 {
		return nil, validationError("User, products, and total amount are required.", fields...)
	}

	for _, p := range req.Products {
		if p.ProductID == uuid.Nil {
			return nil, validationError("Each order line needs a valid product id.",
				models.FieldError{Field: "products.product", Message: "is required"})
		}
	}

	status := models.OrderStatusPending
	if req.Status != "" {
		if !models.ValidOrderStatus(req.Status) {
			return nil, badRequest("Invalid order status.")
		}
		status = req.Status
	}

	order := &models.Order{
		UserID:      userID,
		Products:    req.Products,
		TotalAmount: *req.TotalAmount,
		Status:      status,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("order create failed", zap.String("user", req.User), zap.Error(err))
		return nil, unexpected("Failed to create order.")
	}

	s.publishCreated(ctx, order)

	s.logger.Info("order created",
		zap.String("order", order.ID.String()),
		zap.String("user", order.UserID.String()),
		zap.Float64("total", order.TotalAmount))
	return order, nil
}

// publishCreated emits the order-created event. Publishing failures are
// logged and swallowed: the order is already persisted and the response must
// not depend on broker availability.
func (s *orderServiceImpl) publishCreated(ctx context.Context, order *models.Order) {
	event := models.OrderCreatedEvent{
		Event:       "order_created",
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		Products:    order.Products,
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("order event marshal failed", zap.String("order", order.ID.String()), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, order.UserID.String(), payload); err != nil {
		s.logger.Error("order event publish failed", zap.String("order", order.ID.String()), zap.Error(err))
	}
}

// GetOrder resolves the buyer and each line's product into display
// projections at read time. A missing referent degrades to a bare id, never
// an error.
func (s *orderServiceImpl) GetOrder(ctx context.Context, rawID string) (*models.OrderDetail, *ServiceError) {
	order, svcErr := s.findOrder(ctx, rawID)
	if svcErr != nil {
		return nil, svcErr
	}

	detail := &models.OrderDetail{
		Order:          *order,
		ProductDetails: make([]models.OrderItemView, 0, len(order.Products)),
	}

	if user, err := s.users.FindByID(ctx, order.UserID); err == nil {
		detail.UserDetail = &models.OrderUserRef{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		}
	} else if err != repository.ErrNotFound {
		s.logger.Warn("user join failed", zap.String("order", rawID), zap.Error(err))
	}

	ids := make([]uuid.UUID, 0, len(order.Products))
	for _, item := range order.Products {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("product join failed", zap.String("order", rawID), zap.Error(err))
		return nil, unexpected("Failed to retrieve order.")
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, item := range order.Products {
		projection := models.CartProduct{ID: item.ProductID}
		if p, ok := byID[item.ProductID]; ok {
			projection.Name = p.Name
			projection.Price = p.Price
			projection.Images = p.Images
		}
		detail.ProductDetails = append(detail.ProductDetails, models.OrderItemView{
			Product:  projection,
			Quantity: item.Quantity,
		})
	}
	return detail, nil
}

func (s *orderServiceImpl) findOrder(ctx context.Context, rawID string) (*models.Order, *ServiceError) {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return nil, validationError("Order id is required.", fields...)
	}
	order, err := s.repo.FindByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, notFound("Order not found")
	}
	if err != nil {
		s.logger.Error("order lookup failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to retrieve order.")
	}
	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("order list failed", zap.Error(err))
		return nil, unexpected("Failed to retrieve orders.")
	}
	return orders, nil
}

func (s *orderServiceImpl) ListOrdersByUser(ctx context.Context, rawUserID string) ([]models.Order, *ServiceError) {
	userID, fields := requireID(rawUserID, "user", nil)
	if len(fields) > 0 {
		return nil, validationError("User id is required.", fields...)
	}
	orders, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("order list by user failed", zap.String("user", rawUserID), zap.Error(err))
		return nil, unexpected("Failed to retrieve orders.")
	}
	if len(orders) == 0 {
		return nil, notFound("No orders found for this user")
	}
	return orders, nil
}

func (s *orderServiceImpl) ListOrdersByStatus(ctx context.Context, status string) ([]models.Order, *ServiceError) {
	if !models.ValidOrderStatus(models.OrderStatus(status)) {
		return nil, badRequest("Invalid order status.")
	}
	orders, err := s.repo.FindByStatus(ctx, models.OrderStatus(status))
	if err != nil {
		s.logger.Error("order list by status failed", zap.String("status", status), zap.Error(err))
		return nil, unexpected("Failed to retrieve orders.")
	}
	return orders, nil
}

func (s *orderServiceImpl) RecentOrders(ctx context.Context, limit int) ([]models.Order, *ServiceError) {
	if limit <= 0 {
		limit = defaultRecentOrdersLimit
	}
	orders, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		s.logger.Error("recent order list failed", zap.Int("limit", limit), zap.Error(err))
		return nil, unexpected("Failed to retrieve orders.")
	}
	return orders, nil
}

func (s *orderServiceImpl) UpdateOrderStatus(ctx context.Context, rawID string, req *models.UpdateOrderStatusRequest) (*models.Order, *ServiceError) {
	if !models.ValidOrderStatus(req.Status) {
		return nil, badRequest("Invalid order status.")
	}
	order, svcErr := s.findOrder(ctx, rawID)
	if svcErr != nil {
		return nil, svcErr
	}

	order.Status = req.Status
	if err := s.repo.Replace(ctx, order); err != nil {
		s.logger.Error("order status update failed", zap.String("id", rawID), zap.Error(err))
		return nil, unexpected("Failed to update order status.")
	}
	return order, nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, rawID string) *ServiceError {
	id, fields := requireID(rawID, "id", nil)
	if len(fields) > 0 {
		return validationError("Order id is required.", fields...)
	}
	err := s.repo.Delete(ctx, id)
	if err == repository.ErrNotFound {
		return notFound("Order not found")
	}
	if err != nil {
		s.logger.Error("order delete failed", zap.String("id", rawID), zap.Error(err))
		return unexpected("Failed to delete order.")
	}
	return nil
}
