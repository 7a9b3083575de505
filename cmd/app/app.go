package app

import (
	"log"
	"socialfeed/internal/config"
	"socialfeed/internal/database"
	"socialfeed/internal/repository"
	"socialfeed/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg)

	return db, repo, services
}
