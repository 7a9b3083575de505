package service

import (
	"context"
	"fmt"

	"socialfeed/internal/config"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, callerID string) error
	LikePost(ctx context.Context, postID, callerID string) error
	UnlikePost(ctx context.Context, postID, callerID string) error
	AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID, callerID string) error
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	// снимок имени и аватара автора хранится в самом посте
	user, err := p.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: user.UserID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) DeletePost(ctx context.Context, postID, callerID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	// id сравниваются как строки, владелец поста неизменяем
	if post.UserID != callerID {
		return models.ErrNotOwner
	}

	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) LikePost(ctx context.Context, postID, callerID string) error {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	return p.postRepo.AddLike(ctx, postID, callerID)
}

func (p *postService) UnlikePost(ctx context.Context, postID, callerID string) error {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	return p.postRepo.RemoveLike(ctx, postID, callerID)
}

func (p *postService) AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	_, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	user, err := p.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: req.PostID,
		UserID: user.UserID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	err = p.postRepo.AddComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("ошибка при добавлении комментария: %w", err)
	}

	return comment, nil
}

// DeleteComment разрешён только автору комментария,
// владелец поста здесь прав не имеет
func (p *postService) DeleteComment(ctx context.Context, postID, commentID, callerID string) error {
	comment, err := p.postRepo.GetCommentByID(ctx, postID, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != callerID {
		return models.ErrNotOwner
	}

	return p.postRepo.DeleteComment(ctx, commentID)
}
