// Package controllers maps HTTP requests onto the service layer and renders
// the response envelope.
package controllers

import (
	"net/http"

	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// respond writes the success envelope. data is an optional key/value pair
// merged into the body, e.g. "cart" -> *models.CartView.
func respond(ctx *gin.Context, status int, message string, data ...interface{}) {
	body := gin.H{"success": true, "message": message}
	for i := 0; i+1 < len(data); i += 2 {
		body[data[i].(string)] = data[i+1]
	}
	ctx.JSON(status, body)
}

// respondError renders a ServiceError, including field-level detail when the
// service attached any.
func respondError(ctx *gin.Context, svcErr *services.ServiceError) {
	body := gin.H{"success": false, "message": svcErr.Message}
	if len(svcErr.Fields) > 0 {
		body["errors"] = svcErr.Fields
	}
	ctx.JSON(svcErr.StatusCode, body)
}

// respondBadBody handles JSON binding failures before the service is ever
// consulted.
func respondBadBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request body.",
		"details": err.Error(),
	})
}
