package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	"socialfeed/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type CreateCommentRequest struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (post_id, user_id, text, name, avatar, created_at)
        VALUES (:post_id, :user_id, :text, :name, :avatar, :created_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	post.Likes = []models.Like{}
	post.Comments = []models.Comment{}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPostNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	if err := r.loadChildren(ctx, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// GetAll возвращает ленту: новые посты первыми
func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY created_at DESC`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	for i := range posts {
		if err := r.loadChildren(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (r *PostRepositoryImpl) loadChildren(ctx context.Context, post *models.Post) error {
	post.Likes = []models.Like{}
	err := r.db.SelectContext(ctx, &post.Likes,
		`SELECT * FROM likes WHERE post_id = $1 ORDER BY created_at DESC`, post.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при получении лайков: %w", err)
	}

	post.Comments = []models.Comment{}
	err = r.db.SelectContext(ctx, &post.Comments,
		`SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at DESC`, post.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrPostNotFound
	}

	return nil
}

func (r *PostRepositoryImpl) AddLike(ctx context.Context, postID, userID string) error {
	query := `INSERT INTO likes (post_id, user_id, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, postID, userID, time.Now())
	if err != nil {
		// составной ключ (post_id, user_id) не даёт поставить лайк дважды
		if strings.Contains(err.Error(), "duplicate key value") {
			return models.ErrAlreadyLiked
		}
		return fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) RemoveLike(ctx context.Context, postID, userID string) error {
	query := `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotLiked
	}

	return nil
}

func (r *PostRepositoryImpl) AddComment(ctx context.Context, comment *models.Comment) error {
	query := `
        INSERT INTO comments (comment_id, post_id, user_id, text, name, avatar, created_at)
        VALUES (:comment_id, :post_id, :user_id, :text, :name, :avatar, :created_at)
    `

	if comment.CommentID == "" {
		comment.CommentID = xid.New().String()
	}
	comment.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении комментария: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetCommentByID(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE post_id = $1 AND comment_id = $2`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, postID, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCommentNotFound
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

// DeleteComment удаляет по ключу комментария, не по позиции в списке
func (r *PostRepositoryImpl) DeleteComment(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrCommentNotFound
	}

	return nil
}
