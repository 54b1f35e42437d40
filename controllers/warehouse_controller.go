package controllers

import (
	"net/http"
	"strconv"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// WarehouseController handles HTTP requests for warehouses.
type WarehouseController struct {
	warehouseService services.WarehouseService
}

func NewWarehouseController(warehouseService services.WarehouseService) *WarehouseController {
	return &WarehouseController{warehouseService: warehouseService}
}

// CreateWarehouse handles POST /api/warehouse.
func (wc *WarehouseController) CreateWarehouse(ctx *gin.Context) {
	var req models.WarehouseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	warehouse, svcErr := wc.warehouseService.CreateWarehouse(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusCreated, "Warehouse created successfully.", "warehouse", warehouse)
}

// GetWarehouse handles GET /api/warehouse/:id.
func (wc *WarehouseController) GetWarehouse(ctx *gin.Context) {
	warehouse, svcErr := wc.warehouseService.GetWarehouse(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Warehouse retrieved successfully.", "warehouse", warehouse)
}

// ListWarehouses handles GET /api/warehouse.
func (wc *WarehouseController) ListWarehouses(ctx *gin.Context) {
	warehouses, svcErr := wc.warehouseService.ListWarehouses(ctx.Request.Context())
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Warehouses retrieved successfully.", "warehouses", warehouses)
}

// ListActiveWarehouses handles GET /api/warehouse/active.
func (wc *WarehouseController) ListActiveWarehouses(ctx *gin.Context) {
	warehouses, svcErr := wc.warehouseService.ListActiveWarehouses(ctx.Request.Context())
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Warehouses retrieved successfully.", "warehouses", warehouses)
}

// ListWarehousesByInventory handles GET /api/warehouse/inventory?min=N.
func (wc *WarehouseController) ListWarehousesByInventory(ctx *gin.Context) {
	raw, supplied := ctx.GetQuery("min")
	min, err := strconv.Atoi(raw)
	if supplied && err != nil {
		respondBadBody(ctx, err)
		return
	}

	warehouses, svcErr := wc.warehouseService.ListWarehousesByMinInventory(ctx.Request.Context(), min, supplied)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Warehouses retrieved successfully.", "warehouses", warehouses)
}

// UpdateWarehouse handles PUT /api/warehouse/:id.
func (wc *WarehouseController) UpdateWarehouse(ctx *gin.Context) {
	var req models.WarehouseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	warehouse, svcErr := wc.warehouseService.UpdateWarehouse(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Warehouse updated successfully.", "warehouse", warehouse)
}

// DeleteWarehouse handles DELETE /api/warehouse/:id.
func (wc *WarehouseController) DeleteWarehouse(ctx *gin.Context) {
	if svcErr := wc.warehouseService.DeleteWarehouse(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Warehouse deleted successfully.")
}
