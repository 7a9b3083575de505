package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"socialfeed/cmd/app"
	"socialfeed/internal/config"
	handlers "socialfeed/internal/handler"
	"socialfeed/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/users", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/identity", handler.GetCurrentUser).Methods(http.MethodGet)

	router.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/like/{id}", handler.LikePost).Methods(http.MethodPut)
	router.HandleFunc("/posts/unlike/{id}", handler.UnlikePost).Methods(http.MethodPut)
	router.HandleFunc("/posts/comment/{id}", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/posts/comment/{id}/{commentId}", handler.DeleteComment).Methods(http.MethodDelete)
	router.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	// CORS снаружи, чтобы preflight не упирался в проверку токена
	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.AuthMiddleware(services.Auth),
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
