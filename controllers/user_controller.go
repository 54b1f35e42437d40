package controllers

import (
	"net/http"
	"strconv"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// UserController handles HTTP requests for user accounts.
type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser handles POST /api/user.
func (uc *UserController) CreateUser(ctx *gin.Context) {
	var req models.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	user, svcErr := uc.userService.CreateUser(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusCreated, "User created successfully.", "user", user)
}

// GetUser handles GET /api/user/:id.
func (uc *UserController) GetUser(ctx *gin.Context) {
	user, svcErr := uc.userService.GetUser(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "User retrieved successfully.", "user", user)
}

// ListUsers handles GET /api/user/get/users?page=N&limit=N.
func (uc *UserController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	list, svcErr := uc.userService.ListUsers(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "Users retrieved successfully.",
		"users", list.Users, "total", list.Total, "page", list.Page, "limit", list.Limit)
}

// UpdateUser handles PUT /api/user/:id.
func (uc *UserController) UpdateUser(ctx *gin.Context) {
	var req models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	user, svcErr := uc.userService.UpdateUser(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "User updated successfully.", "user", user)
}

// DeleteUser handles DELETE /api/user/:id.
func (uc *UserController) DeleteUser(ctx *gin.Context) {
	if svcErr := uc.userService.DeleteUser(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	respond(ctx, http.StatusOK, "User deleted successfully.")
}
