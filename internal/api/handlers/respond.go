// Package handlers содержит общие helpers для HTTP handlers
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

const msgInternalError = "Erro interno do servidor."

// ErrorResponse стандартное тело ошибки API
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorItem одна ошибка валидации поля формы
type FieldErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse тело ответа при ошибках валидации формы.
// Сообщения приходят на языке продукта и показываются как есть.
type ValidationErrorResponse struct {
	Error  string           `json:"error"`
	Fields []FieldErrorItem `json:"fields"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// RespondJSON пишет JSON ответ с заданным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет тело ошибки с заданным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409 с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет 500 с нейтральным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidationError пишет 422 со списком ошибок полей
func RespondValidationError(w http.ResponseWriter, fields []domain.FieldError) {
	items := make([]FieldErrorItem, 0, len(fields))
	for _, f := range fields {
		items = append(items, FieldErrorItem{Field: f.Field, Message: f.Message})
	}
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  "validation failed",
		Fields: items,
	})
}
