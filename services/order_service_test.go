package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"testing"

	"storefront-backend/models"
	"storefront-backend/repository"
	"storefront-backend/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --- Mock Repository ---

type mockOrderRepo struct {
	orders map[uuid.UUID]*models.Order
	seq    int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (m *mockOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

func (m *mockOrderRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]models.Order, error) {
	var result []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	m.sortNewestFirst(result)
	return result, nil
}

func (m *mockOrderRepo) FindByStatus(_ context.Context, status models.OrderStatus) ([]models.Order, error) {
	var result []models.Order
	for _, o := range m.orders {
		if o.Status == status {
			result = append(result, *o)
		}
	}
	m.sortNewestFirst(result)
	return result, nil
}

func (m *mockOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	var result []models.Order
	for _, o := range m.orders {
		result = append(result, *o)
	}
	m.sortNewestFirst(result)
	return result, nil
}

func (m *mockOrderRepo) FindRecent(_ context.Context, limit int) ([]models.Order, error) {
	result, _ := m.FindAll(context.Background())
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	m.seq++
	o.CreatedAt = o.CreatedAt.AddDate(0, 0, m.seq)
	m.orders[o.ID] = o
	return nil
}

func (m *mockOrderRepo) Replace(_ context.Context, o *models.Order) error {
	if _, ok := m.orders[o.ID]; !ok {
		return repository.ErrNotFound
	}
	m.orders[o.ID] = o
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepo) sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// --- Capture Publisher ---

type capturePublisher struct {
	keys     []string
	payloads [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, key string, payload []byte) error {
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

// --- Mock User Repository ---

type mockUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok || u.IsDeleted {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) FindAll(_ context.Context, _, _ int) ([]models.User, int64, error) {
	var result []models.User
	for _, u := range m.users {
		if !u.IsDeleted {
			result = append(result, *u)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) Replace(_ context.Context, u *models.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range m.users {
		if existing.ID != u.ID && existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := m.users[id]
	if !ok || u.IsDeleted {
		return repository.ErrNotFound
	}
	u.IsDeleted = true
	return nil
}

func (m *mockUserRepo) EnsureIndexes(_ context.Context) error { return nil }

// --- Helpers ---

func newTestOrderService(repo repository.OrderRepo, pub *capturePublisher) services.OrderService {
	return services.NewOrderService(repo, newMockProductRepo(), newMockUserRepo(), pub, zap.NewNop())
}

func orderRequest(user uuid.UUID, total float64) *models.CreateOrderRequest {
	return &models.CreateOrderRequest{
		User:        user.String(),
		Products:    []models.OrderItem{{ProductID: uuid.New(), Quantity: 2}},
		TotalAmount: &total,
	}
}

// --- Create ---

func TestCreateOrderDefaultsToPending(t *testing.T) {
	repo := newMockOrderRepo()
	pub := &capturePublisher{}
	svc := newTestOrderService(repo, pub)
	user := uuid.New()

	order, svcErr := svc.CreateOrder(context.Background(), orderRequest(user, 99.5))

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 99.5, order.TotalAmount)
	assert.Equal(t, user, order.UserID)
}

func TestCreateOrderPublishesEvent(t *testing.T) {
	repo := newMockOrderRepo()
	pub := &capturePublisher{}
	svc := newTestOrderService(repo, pub)
	user := uuid.New()

	order, svcErr := svc.CreateOrder(context.Background(), orderRequest(user, 42))

	assert.Nil(t, svcErr)
	assert.Len(t, pub.payloads, 1)
	assert.Equal(t, user.String(), pub.keys[0])

	var event models.OrderCreatedEvent
	assert.NoError(t, json.Unmarshal(pub.payloads[0], &event))
	assert.Equal(t, "order_created", event.Event)
	assert.Equal(t, order.ID.String(), event.OrderID)
	assert.Equal(t, 42.0, event.TotalAmount)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newTestOrderService(newMockOrderRepo(), &capturePublisher{})

	_, svcErr := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Len(t, svcErr.Fields, 3)
}

func TestCreateOrderRejectsUnknownStatus(t *testing.T) {
	svc := newTestOrderService(newMockOrderRepo(), &capturePublisher{})
	user := uuid.New()
	req := orderRequest(user, 10)
	req.Status = "Teleported"

	_, svcErr := svc.CreateOrder(context.Background(), req)

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

// --- Status ---

func TestUpdateOrderStatus(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newTestOrderService(repo, &capturePublisher{})
	order, _ := svc.CreateOrder(context.Background(), orderRequest(uuid.New(), 10))

	updated, svcErr := svc.UpdateOrderStatus(context.Background(), order.ID.String(),
		&models.UpdateOrderStatusRequest{Status: models.OrderStatusShipped})

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)
}

func TestUpdateOrderStatusRejectsUnknown(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newTestOrderService(repo, &capturePublisher{})
	order, _ := svc.CreateOrder(context.Background(), orderRequest(uuid.New(), 10))

	_, svcErr := svc.UpdateOrderStatus(context.Background(), order.ID.String(),
		&models.UpdateOrderStatusRequest{Status: "Lost"})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

// --- Queries ---

func TestListOrdersByUserNewestFirst(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newTestOrderService(repo, &capturePublisher{})
	user := uuid.New()

	first, _ := svc.CreateOrder(context.Background(), orderRequest(user, 10))
	second, _ := svc.CreateOrder(context.Background(), orderRequest(user, 20))
	_, _ = svc.CreateOrder(context.Background(), orderRequest(uuid.New(), 30))

	orders, svcErr := svc.ListOrdersByUser(context.Background(), user.String())

	assert.Nil(t, svcErr)
	assert.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestListOrdersByUserEmptyIsNotFound(t *testing.T) {
	svc := newTestOrderService(newMockOrderRepo(), &capturePublisher{})

	_, svcErr := svc.ListOrdersByUser(context.Background(), uuid.NewString())

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestListOrdersByStatus(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newTestOrderService(repo, &capturePublisher{})

	order, _ := svc.CreateOrder(context.Background(), orderRequest(uuid.New(), 10))
	_, _ = svc.UpdateOrderStatus(context.Background(), order.ID.String(),
		&models.UpdateOrderStatusRequest{Status: models.OrderStatusDelivered})
	_, _ = svc.CreateOrder(context.Background(), orderRequest(uuid.New(), 20))

	delivered, svcErr := svc.ListOrdersByStatus(context.Background(), "Delivered")

	assert.Nil(t, svcErr)
	assert.Len(t, delivered, 1)
	assert.Equal(t, order.ID, delivered[0].ID)
}

func TestRecentOrdersDefaultsLimit(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newTestOrderService(repo, &capturePublisher{})
	for i := 0; i < 15; i++ {
		_, _ = svc.CreateOrder(context.Background(), orderRequest(uuid.New(), float64(i)))
	}

	orders, svcErr := svc.RecentOrders(context.Background(), 0)

	assert.Nil(t, svcErr)
	assert.Len(t, orders, 10)
}

func TestGetOrderJoinsUserAndProducts(t *testing.T) {
	repo := newMockOrderRepo()
	product := testProduct(30)
	user := &models.User{ID: uuid.New(), FirstName: "Ada", LastName: "Byron", Email: "ada@example.com"}
	svc := services.NewOrderService(repo, newMockProductRepo(product), newMockUserRepo(user), &capturePublisher{}, zap.NewNop())

	total := 60.0
	order, svcErr := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		User:        user.ID.String(),
		Products:    []models.OrderItem{{ProductID: product.ID, Quantity: 2}},
		TotalAmount: &total,
	})
	assert.Nil(t, svcErr)

	detail, svcErr := svc.GetOrder(context.Background(), order.ID.String())

	assert.Nil(t, svcErr)
	assert.NotNil(t, detail.UserDetail)
	assert.Equal(t, "ada@example.com", detail.UserDetail.Email)
	assert.Len(t, detail.ProductDetails, 1)
	assert.Equal(t, product.Name, detail.ProductDetails[0].Product.Name)
	assert.Equal(t, 2, detail.ProductDetails[0].Quantity)
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc := newTestOrderService(newMockOrderRepo(), &capturePublisher{})

	svcErr := svc.DeleteOrder(context.Background(), uuid.NewString())

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}
