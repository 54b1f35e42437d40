package controllers

import (
	"net/http"
	"strconv"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	orderService services.OrderService
}

func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder handles POST /api/order.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	order, svcErr := oc.orderService.CreateOrder(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusCreated, "Order created successfully.", "order", order)
}

// GetOrder handles GET /api/order/:id.
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Order retrieved successfully.", "order", order)
}

// ListOrders handles GET /api/order.
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	orders, svcErr := oc.orderService.ListOrders(ctx.Request.Context())
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Orders retrieved successfully.", "orders", orders)
}

// ListUserOrders handles GET /api/order/user/:userId.
func (oc *OrderController) ListUserOrders(ctx *gin.Context) {
	orders, svcErr := oc.orderService.ListOrdersByUser(ctx.Request.Context(), ctx.Param("userId"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Orders retrieved successfully.", "orders", orders)
}

// ListOrdersByStatus handles GET /api/order/status/:status.
func (oc *OrderController) ListOrdersByStatus(ctx *gin.Context) {
	orders, svcErr := oc.orderService.ListOrdersByStatus(ctx.Request.Context(), ctx.Param("status"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Orders retrieved successfully.", "orders", orders)
}

// RecentOrders handles GET /api/order/recent/orders.
func (oc *OrderController) RecentOrders(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	orders, svcErr := oc.orderService.RecentOrders(ctx.Request.Context(), limit)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Orders retrieved successfully.", "orders", orders)
}

// UpdateOrderStatus handles PUT /api/order/:id/status.
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	order, svcErr := oc.orderService.UpdateOrderStatus(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Order status updated successfully.", "order", order)
}

// DeleteOrder handles DELETE /api/order/:id.
func (oc *OrderController) DeleteOrder(ctx *gin.Context) {
	if svcErr := oc.orderService.DeleteOrder(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Order deleted successfully.")
}
