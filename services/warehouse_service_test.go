package services_test

import (
	"context"
	"net/http"
	"testing"

	"storefront-backend/models"
	"storefront-backend/repository"
	"storefront-backend/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --- Mock Repository ---

type mockWarehouseRepo struct {
	warehouses map[uuid.UUID]*models.Warehouse
}

func newMockWarehouseRepo() *mockWarehouseRepo {
	return &mockWarehouseRepo{warehouses: make(map[uuid.UUID]*models.Warehouse)}
}

func (m *mockWarehouseRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Warehouse, error) {
	w, ok := m.warehouses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return w, nil
}

func (m *mockWarehouseRepo) FindAll(_ context.Context) ([]models.Warehouse, error) {
	var result []models.Warehouse
	for _, w := range m.warehouses {
		result = append(result, *w)
	}
	return result, nil
}

func (m *mockWarehouseRepo) FindActive(_ context.Context) ([]models.Warehouse, error) {
	var result []models.Warehouse
	for _, w := range m.warehouses {
		if w.IsActive {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (m *mockWarehouseRepo) FindByMinInventory(_ context.Context, min int) ([]models.Warehouse, error) {
	var result []models.Warehouse
	for _, w := range m.warehouses {
		if w.InventoryCount >= min {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (m *mockWarehouseRepo) Create(_ context.Context, w *models.Warehouse) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	m.warehouses[w.ID] = w
	return nil
}

func (m *mockWarehouseRepo) Replace(_ context.Context, w *models.Warehouse) error {
	if _, ok := m.warehouses[w.ID]; !ok {
		return repository.ErrNotFound
	}
	m.warehouses[w.ID] = w
	return nil
}

func (m *mockWarehouseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.warehouses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.warehouses, id)
	return nil
}

// --- Helpers ---

func newTestWarehouseService(repo repository.WarehouseRepo) services.WarehouseService {
	return services.NewWarehouseService(repo, zap.NewNop())
}

func warehouseRequest(name string, inventory int) *models.WarehouseRequest {
	return &models.WarehouseRequest{
		Name:           name,
		Location:       &models.WarehouseLocation{City: "Rotterdam", Country: "NL"},
		InventoryCount: intPtr(inventory),
	}
}

func boolPtr(v bool) *bool { return &v }

// --- Tests ---

func TestCreateWarehouseRequiresNameAndLocation(t *testing.T) {
	svc := newTestWarehouseService(newMockWarehouseRepo())

	_, svcErr := svc.CreateWarehouse(context.Background(), &models.WarehouseRequest{})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Len(t, svcErr.Fields, 3)
}

func TestCreateWarehouseDefaultsToActive(t *testing.T) {
	svc := newTestWarehouseService(newMockWarehouseRepo())

	warehouse, svcErr := svc.CreateWarehouse(context.Background(), warehouseRequest("Central", 100))

	assert.Nil(t, svcErr)
	assert.True(t, warehouse.IsActive)
}

func TestCreateWarehouseExplicitInactive(t *testing.T) {
	svc := newTestWarehouseService(newMockWarehouseRepo())

	req := warehouseRequest("Mothballed", 0)
	req.IsActive = boolPtr(false)
	warehouse, svcErr := svc.CreateWarehouse(context.Background(), req)

	assert.Nil(t, svcErr)
	assert.False(t, warehouse.IsActive)
}

func TestUpdateWarehouseExplicitFalseSurvivesMerge(t *testing.T) {
	repo := newMockWarehouseRepo()
	svc := newTestWarehouseService(repo)

	warehouse, svcErr := svc.CreateWarehouse(context.Background(), warehouseRequest("Central", 100))
	assert.Nil(t, svcErr)
	assert.True(t, warehouse.IsActive)

	updated, svcErr := svc.UpdateWarehouse(context.Background(), warehouse.ID.String(),
		&models.WarehouseRequest{IsActive: boolPtr(false)})
	assert.Nil(t, svcErr)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Central", updated.Name)
	assert.Equal(t, 100, updated.InventoryCount)

	// A nil pointer on a later update must not flip it back.
	updated, svcErr = svc.UpdateWarehouse(context.Background(), warehouse.ID.String(),
		&models.WarehouseRequest{Name: "Central East"})
	assert.Nil(t, svcErr)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Central East", updated.Name)
}

func TestListActiveWarehousesFiltersInactive(t *testing.T) {
	repo := newMockWarehouseRepo()
	svc := newTestWarehouseService(repo)

	_, svcErr := svc.CreateWarehouse(context.Background(), warehouseRequest("Central", 100))
	assert.Nil(t, svcErr)
	inactive := warehouseRequest("Mothballed", 0)
	inactive.IsActive = boolPtr(false)
	_, svcErr = svc.CreateWarehouse(context.Background(), inactive)
	assert.Nil(t, svcErr)

	active, svcErr := svc.ListActiveWarehouses(context.Background())
	assert.Nil(t, svcErr)
	assert.Len(t, active, 1)
	assert.Equal(t, "Central", active[0].Name)
}

func TestMinInventoryRequiresThreshold(t *testing.T) {
	svc := newTestWarehouseService(newMockWarehouseRepo())

	_, svcErr := svc.ListWarehousesByMinInventory(context.Background(), 0, false)

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestMinInventoryNoMatchIs404(t *testing.T) {
	repo := newMockWarehouseRepo()
	svc := newTestWarehouseService(repo)

	_, svcErr := svc.CreateWarehouse(context.Background(), warehouseRequest("Central", 50))
	assert.Nil(t, svcErr)

	_, svcErr = svc.ListWarehousesByMinInventory(context.Background(), 100, true)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestMinInventoryFiltersBelowThreshold(t *testing.T) {
	repo := newMockWarehouseRepo()
	svc := newTestWarehouseService(repo)

	_, svcErr := svc.CreateWarehouse(context.Background(), warehouseRequest("Central", 500))
	assert.Nil(t, svcErr)
	_, svcErr = svc.CreateWarehouse(context.Background(), warehouseRequest("Satellite", 20))
	assert.Nil(t, svcErr)

	matched, svcErr := svc.ListWarehousesByMinInventory(context.Background(), 100, true)
	assert.Nil(t, svcErr)
	assert.Len(t, matched, 1)
	assert.Equal(t, "Central", matched[0].Name)
}
