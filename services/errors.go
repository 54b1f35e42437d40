package services

import (
	"net/http"

	"storefront-backend/models"
)

// ServiceError is a typed error with an HTTP status code. Validation
// failures additionally carry field-level detail for the response envelope.
type ServiceError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError
}

func (e *ServiceError) Error() string {
	return e.Message
}

func validationError(message string, fields ...models.FieldError) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: message, Fields: fields}
}

func notFound(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: message}
}

func badRequest(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: message}
}

// unexpected classifies any collaborator failure that is not otherwise
// handled. The original message is logged by the caller, never surfaced.
func unexpected(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: message}
}
