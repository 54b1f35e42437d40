package models

// FieldError is one field-level validation failure in an error response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
