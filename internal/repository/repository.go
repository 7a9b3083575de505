package repository

import (
	"context"
	"socialfeed/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, postID string) error
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	AddComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, postID, commentID string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

type Repository struct {
	User UserRepository
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Post: NewPostRepository(db),
	}
}
