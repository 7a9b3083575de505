package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"socialfeed/internal/config"
	"socialfeed/internal/database"
	"socialfeed/internal/repository"
	"socialfeed/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	UserRepo    repository.UserRepository
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: service.Auth,
		PostService: service.Post,
		UserRepo:    repo.User,
		DB:          db,
		Cfg:         config,
		Validate:    validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Message: "API работает"})
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "ok"}, http.StatusOK)
}
