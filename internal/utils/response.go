package utils

import (
	"time"

	"ticketeiro/internal/schema"
)

// APIResponse is the JSON envelope every handler writes. Fields carries
// the per-field detail when the failure came out of validation.
type APIResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Data      interface{}         `json:"data,omitempty"`
	Error     string              `json:"error,omitempty"`
	Fields    []schema.FieldError `json:"fields,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func ErrorResponse(message, detail string) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   message,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// ValidationErrorResponse reports a failed validation with the dotted
// field paths the form layer binds errors to.
func ValidationErrorResponse(message string, fields []schema.FieldError) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   message,
		Fields:    fields,
		Timestamp: time.Now(),
	}
}
