package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-backend/controllers"
	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- Stub Service ---

type stubCartService struct {
	cart   *models.Cart
	view   *models.CartView
	err    *services.ServiceError
	gotReq interface{}
}

func (s *stubCartService) AddItem(_ context.Context, req *models.AddItemRequest) (*models.Cart, *services.ServiceError) {
	s.gotReq = req
	return s.cart, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, req *models.RemoveItemRequest) (*models.Cart, *services.ServiceError) {
	s.gotReq = req
	return s.cart, s.err
}

func (s *stubCartService) UpdateQuantity(_ context.Context, req *models.UpdateQuantityRequest) (*models.Cart, *services.ServiceError) {
	s.gotReq = req
	return s.cart, s.err
}

func (s *stubCartService) ApplyDiscount(_ context.Context, req *models.ApplyDiscountRequest) (*models.Cart, *services.ServiceError) {
	s.gotReq = req
	return s.cart, s.err
}

func (s *stubCartService) GetCart(_ context.Context, userID string) (*models.CartView, *services.ServiceError) {
	s.gotReq = userID
	return s.view, s.err
}

// --- Helpers ---

func newTestRouter(svc services.CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cc := controllers.NewCartController(svc)
	router.GET("/api/cart/:userId", cc.GetCart)
	router.POST("/api/cart", cc.AddItem)
	router.POST("/api/cart/remove/item", cc.RemoveItem)
	router.PUT("/api/cart/update/qty", cc.UpdateQuantity)
	router.POST("/api/cart/apply/discount", cc.ApplyDiscount)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// --- Tests ---

func TestAddItemReturnsEnvelope(t *testing.T) {
	cart := &models.Cart{ID: uuid.New(), UserID: uuid.New(), TotalPrice: 20}
	svc := &stubCartService{cart: cart}
	router := newTestRouter(svc)

	rec := doJSON(router, http.MethodPost, "/api/cart", gin.H{
		"user": cart.UserID.String(), "product": uuid.NewString(), "quantity": 2,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Item added to cart successfully.", body["message"])
	assert.NotNil(t, body["cart"])
}

func TestAddItemBindsQuantity(t *testing.T) {
	svc := &stubCartService{cart: &models.Cart{}}
	router := newTestRouter(svc)

	doJSON(router, http.MethodPost, "/api/cart", gin.H{
		"user": uuid.NewString(), "product": uuid.NewString(), "quantity": 3,
	})

	req, ok := svc.gotReq.(*models.AddItemRequest)
	assert.True(t, ok)
	assert.NotNil(t, req.Quantity)
	assert.Equal(t, 3, *req.Quantity)
}

func TestAddItemMalformedBody(t *testing.T) {
	svc := &stubCartService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Nil(t, svc.gotReq)
}

func TestServiceErrorRendersFields(t *testing.T) {
	svc := &stubCartService{err: &services.ServiceError{
		StatusCode: http.StatusBadRequest,
		Message:    "User, product, and quantity are required.",
		Fields: []models.FieldError{
			{Field: "quantity", Message: "must be a positive number"},
		},
	}}
	router := newTestRouter(svc)

	rec := doJSON(router, http.MethodPost, "/api/cart", gin.H{"user": uuid.NewString()})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User, product, and quantity are required.", body["message"])
	errs, ok := body["errors"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, errs, 1)
}

func TestGetCartPassesPathParam(t *testing.T) {
	user := uuid.New()
	svc := &stubCartService{view: &models.CartView{UserID: user}}
	router := newTestRouter(svc)

	rec := doJSON(router, http.MethodGet, "/api/cart/"+user.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.String(), svc.gotReq)
	body := decodeBody(t, rec)
	assert.Equal(t, "Cart retrieved successfully.", body["message"])
}

func TestGetCartNotFound(t *testing.T) {
	svc := &stubCartService{err: &services.ServiceError{
		StatusCode: http.StatusNotFound,
		Message:    "Cart not found.",
	}}
	router := newTestRouter(svc)

	rec := doJSON(router, http.MethodGet, "/api/cart/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Cart not found.", body["message"])
}

func TestUpdateQuantityRoute(t *testing.T) {
	svc := &stubCartService{cart: &models.Cart{}}
	router := newTestRouter(svc)

	rec := doJSON(router, http.MethodPut, "/api/cart/update/qty", gin.H{
		"user": uuid.NewString(), "product": uuid.NewString(), "quantity": 0,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	req, ok := svc.gotReq.(*models.UpdateQuantityRequest)
	assert.True(t, ok)
	// zero must arrive as an explicit value, not as a missing field
	assert.NotNil(t, req.Quantity)
	assert.Equal(t, 0, *req.Quantity)
}

func TestApplyDiscountRoute(t *testing.T) {
	svc := &stubCartService{cart: &models.Cart{CartDiscount: 5, TotalPrice: -5}}
	router := newTestRouter(svc)

	rec := doJSON(router, http.MethodPost, "/api/cart/apply/discount", gin.H{
		"user": uuid.NewString(), "cartDiscount": 5,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Cart discount applied successfully.", body["message"])
}
