package response

import (
	"encoding/json"
	"net/http"
)

// Body is the envelope every endpoint returns.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta carries paging information for list endpoints.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta derives the page count from the total row count.
func NewMeta(page, limit int, total int64) *Meta {
	return &Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}
}

func write(w http.ResponseWriter, statusCode int, body Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	write(w, statusCode, Body{Success: true, Message: message, Data: data})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	write(w, statusCode, Body{Success: true, Message: message, Data: data, Meta: meta})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	write(w, statusCode, Body{Success: false, Message: message, Error: err})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	Error(w, http.StatusBadRequest, "Validation failed", errors)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, fallback(message, "Unauthorized"), nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, fallback(message, "Forbidden"), nil)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, fallback(message, "Resource not found"), nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, fallback(message, "Internal server error"), nil)
}

func fallback(message, def string) string {
	if message == "" {
		return def
	}
	return message
}
