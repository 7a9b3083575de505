package service

import (
	"socialfeed/internal/config"
	"socialfeed/internal/repository"
)

type Service struct {
	Auth AuthService
	Post PostService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		Post: NewPostService(rep.Post, rep.User, cfg),
	}
}
