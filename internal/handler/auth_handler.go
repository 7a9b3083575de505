package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// все нарушенные правила возвращаются одним списком
	if err := h.Validate.Struct(req); err != nil {
		WriteValidationErrors(w, validationMessages(err))
		return
	}

	serviceReq := repository.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	// registering a user in the service
	_, token, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			WriteError(w, "Пользователь уже существует", http.StatusBadRequest)
		} else {
			writeDomainError(w, err)
		}
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationErrors(w, validationMessages(err))
		return
	}

	// неизвестный email и неверный пароль дают одинаковый ответ
	_, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			WriteError(w, "Неверный email или пароль", http.StatusBadRequest)
		} else {
			writeDomainError(w, err)
		}
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	// get user by id
	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// forming the response, без хеша пароля
	response := UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}

	WriteSuccess(w, response, http.StatusOK)
}
