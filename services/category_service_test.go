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

type mockCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (m *mockCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	var result []models.Category
	for _, c := range m.categories {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Category) error {
	for _, existing := range m.categories {
		if existing.Name == c.Name {
			return repository.ErrDuplicate
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) Replace(_ context.Context, c *models.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range m.categories {
		if existing.ID != c.ID && existing.Name == c.Name {
			return repository.ErrDuplicate
		}
	}
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func newTestCategoryService(repo repository.CategoryRepo) services.CategoryService {
	return services.NewCategoryService(repo, zap.NewNop())
}

// --- Tests ---

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := newTestCategoryService(newMockCategoryRepo())

	_, svcErr := svc.CreateCategory(context.Background(), &models.CategoryRequest{Description: "no name"})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Len(t, svcErr.Fields, 1)
	assert.Equal(t, "name", svcErr.Fields[0].Field)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := newTestCategoryService(repo)

	_, svcErr := svc.CreateCategory(context.Background(), &models.CategoryRequest{Name: "Electronics"})
	assert.Nil(t, svcErr)

	_, svcErr = svc.CreateCategory(context.Background(), &models.CategoryRequest{Name: "Electronics"})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Category with this name already exists.", svcErr.Message)
}

func TestUpdateCategoryDuplicateName(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := newTestCategoryService(repo)

	_, svcErr := svc.CreateCategory(context.Background(), &models.CategoryRequest{Name: "Electronics"})
	assert.Nil(t, svcErr)
	books, svcErr := svc.CreateCategory(context.Background(), &models.CategoryRequest{Name: "Books"})
	assert.Nil(t, svcErr)

	_, svcErr = svc.UpdateCategory(context.Background(), books.ID.String(), &models.CategoryRequest{Name: "Electronics"})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Category with this name already exists.", svcErr.Message)
}

func TestUpdateCategoryMergesFields(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := newTestCategoryService(repo)

	created, svcErr := svc.CreateCategory(context.Background(), &models.CategoryRequest{
		Name:        "Electronics",
		Description: "gadgets",
	})
	assert.Nil(t, svcErr)

	updated, svcErr := svc.UpdateCategory(context.Background(), created.ID.String(),
		&models.CategoryRequest{Description: "gadgets and gear"})
	assert.Nil(t, svcErr)
	assert.Equal(t, "Electronics", updated.Name)
	assert.Equal(t, "gadgets and gear", updated.Description)
}

func TestListCategoriesJoinsParent(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := newTestCategoryService(repo)

	parent, svcErr := svc.CreateCategory(context.Background(), &models.CategoryRequest{
		Name:        "Electronics",
		Description: "gadgets",
	})
	assert.Nil(t, svcErr)
	child, svcErr := svc.CreateCategory(context.Background(), &models.CategoryRequest{
		Name:           "Phones",
		ParentCategory: parent.ID.String(),
	})
	assert.Nil(t, svcErr)

	details, svcErr := svc.ListCategories(context.Background())
	assert.Nil(t, svcErr)
	assert.Len(t, details, 2)

	for _, d := range details {
		switch d.ID {
		case parent.ID:
			assert.Nil(t, d.ParentDetail)
		case child.ID:
			if assert.NotNil(t, d.ParentDetail) {
				assert.Equal(t, parent.ID, d.ParentDetail.ID)
				assert.Equal(t, "Electronics", d.ParentDetail.Name)
			}
		}
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := newTestCategoryService(newMockCategoryRepo())

	svcErr := svc.DeleteCategory(context.Background(), uuid.NewString())

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}
