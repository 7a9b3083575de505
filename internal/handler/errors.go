package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"socialfeed/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой.
// Code различает причины отказа аутентификации машинно.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ValidationResponse - все нарушенные правила разом, не только первое
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteAuthError - отказ аутентификации с кодом причины
func WriteAuthError(w http.ResponseWriter, message, code string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}

// WriteValidationErrors - ответ на нарушение правил валидации
func WriteValidationErrors(w http.ResponseWriter, messages []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ValidationResponse{Errors: messages})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// validationMessages переводит ошибки валидатора в список сообщений
func validationMessages(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{"Неверные данные"}
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Field() {
		case "Name":
			messages = append(messages, "Имя обязательно")
		case "Email":
			messages = append(messages, "Неверный формат email")
		case "Password":
			if fieldErr.Tag() == "min" {
				messages = append(messages, "Пароль должен быть не менее 6 символов")
			} else {
				messages = append(messages, "Пароль обязателен")
			}
		case "Text":
			messages = append(messages, "Текст обязателен")
		default:
			messages = append(messages, fmt.Sprintf("Неверное значение поля %s", fieldErr.Field()))
		}
	}

	return messages
}

// writeDomainError отображает доменные ошибки в HTTP-ответ.
// Неизвестные ошибки логируются и уходят клиенту без деталей.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrPostNotFound):
		WriteError(w, "Пост не найден", http.StatusNotFound)
	case errors.Is(err, models.ErrCommentNotFound):
		WriteError(w, "Комментарий не найден", http.StatusNotFound)
	case errors.Is(err, models.ErrUserNotFound):
		WriteError(w, "Пользователь не найден", http.StatusNotFound)
	case errors.Is(err, models.ErrNotOwner):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, models.ErrAlreadyLiked):
		WriteError(w, "Пост уже отмечен", http.StatusBadRequest)
	case errors.Is(err, models.ErrNotLiked):
		WriteError(w, "Пост не был отмечен", http.StatusBadRequest)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
