// Package httpjson centraliza las respuestas JSON del servicio.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Códigos de error expuestos en el campo "error".
const (
	ErrCodeNotFound         = "Resource not found"
	ErrCodeBadRequest       = "Bad request"
	ErrCodeMethodNotAllowed = "Method not allowed"
	ErrCodeInternal         = "Internal server error"
)

// ErrorResponse es el cuerpo de toda respuesta de error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse se usa para confirmaciones simples (ej: delete).
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, ErrCodeNotFound, message)
}

func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// WriteInternalError nunca expone el error real; eso va al log.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
}
