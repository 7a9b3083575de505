package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type stubPostRepo struct {
	posts          map[string]*models.Post
	comments       map[string]*models.Comment
	deletedPost    string
	deletedComment string
	likeErr        error
	unlikeErr      error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	post.PostID = "generated-post-id"
	post.CreatedAt = time.Now()
	return nil
}

func (s *stubPostRepo) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	if post, ok := s.posts[postID]; ok {
		return post, nil
	}
	return nil, models.ErrPostNotFound
}

func (s *stubPostRepo) GetAll(ctx context.Context) ([]models.Post, error) {
	return nil, nil
}

func (s *stubPostRepo) Delete(ctx context.Context, postID string) error {
	s.deletedPost = postID
	return nil
}

func (s *stubPostRepo) AddLike(ctx context.Context, postID, userID string) error {
	return s.likeErr
}

func (s *stubPostRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	return s.unlikeErr
}

func (s *stubPostRepo) AddComment(ctx context.Context, comment *models.Comment) error {
	comment.CommentID = "generated-comment-id"
	comment.CreatedAt = time.Now()
	return nil
}

func (s *stubPostRepo) GetCommentByID(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	if comment, ok := s.comments[commentID]; ok && comment.PostID == postID {
		return comment, nil
	}
	return nil, models.ErrCommentNotFound
}

func (s *stubPostRepo) DeleteComment(ctx context.Context, commentID string) error {
	s.deletedComment = commentID
	return nil
}

func TestCreatePost_SnapshotsAuthor(t *testing.T) {
	userRepo := &stubUserRepo{byID: map[string]*models.User{
		"user-123": {UserID: "user-123", Name: "Alice", Avatar: "avatar-url"},
	}}
	svc := NewPostService(&stubPostRepo{}, userRepo, testConfig(time.Hour))

	post, err := svc.CreatePost(context.Background(), repository.CreatePostRequest{
		UserID: "user-123",
		Text:   "первый пост",
	})

	require.NoError(t, err)
	// имя и аватар автора снимаются в момент создания
	assert.Equal(t, "user-123", post.UserID)
	assert.Equal(t, "Alice", post.Name)
	assert.Equal(t, "avatar-url", post.Avatar)
}

func TestDeletePost_Ownership(t *testing.T) {
	repo := &stubPostRepo{posts: map[string]*models.Post{
		"post-1": {PostID: "post-1", UserID: "user-123"},
	}}
	svc := NewPostService(repo, &stubUserRepo{}, testConfig(time.Hour))

	t.Run("Чужой пост удалить нельзя", func(t *testing.T) {
		err := svc.DeletePost(context.Background(), "post-1", "user-456")

		assert.True(t, errors.Is(err, models.ErrNotOwner))
		assert.Empty(t, repo.deletedPost)
	})

	t.Run("Владелец удаляет пост", func(t *testing.T) {
		err := svc.DeletePost(context.Background(), "post-1", "user-123")

		assert.NoError(t, err)
		assert.Equal(t, "post-1", repo.deletedPost)
	})

	t.Run("Пост не найден", func(t *testing.T) {
		err := svc.DeletePost(context.Background(), "missing", "user-123")

		assert.True(t, errors.Is(err, models.ErrPostNotFound))
	})
}

func TestLikePost_NotFound(t *testing.T) {
	svc := NewPostService(&stubPostRepo{}, &stubUserRepo{}, testConfig(time.Hour))

	err := svc.LikePost(context.Background(), "missing", "user-123")

	assert.True(t, errors.Is(err, models.ErrPostNotFound))
}

func TestLikePost_Duplicate(t *testing.T) {
	repo := &stubPostRepo{
		posts:   map[string]*models.Post{"post-1": {PostID: "post-1", UserID: "user-123"}},
		likeErr: models.ErrAlreadyLiked,
	}
	svc := NewPostService(repo, &stubUserRepo{}, testConfig(time.Hour))

	err := svc.LikePost(context.Background(), "post-1", "user-123")

	assert.True(t, errors.Is(err, models.ErrAlreadyLiked))
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	repo := &stubPostRepo{
		posts: map[string]*models.Post{
			"post-1": {PostID: "post-1", UserID: "post-owner"},
		},
		comments: map[string]*models.Comment{
			"comment-1": {CommentID: "comment-1", PostID: "post-1", UserID: "commenter"},
		},
	}
	svc := NewPostService(repo, &stubUserRepo{}, testConfig(time.Hour))

	t.Run("Владелец поста не автор комментария", func(t *testing.T) {
		err := svc.DeleteComment(context.Background(), "post-1", "comment-1", "post-owner")

		assert.True(t, errors.Is(err, models.ErrNotOwner))
		assert.Empty(t, repo.deletedComment)
	})

	t.Run("Автор удаляет комментарий", func(t *testing.T) {
		err := svc.DeleteComment(context.Background(), "post-1", "comment-1", "commenter")

		assert.NoError(t, err)
		assert.Equal(t, "comment-1", repo.deletedComment)
	})

	t.Run("Комментарий не найден", func(t *testing.T) {
		err := svc.DeleteComment(context.Background(), "post-1", "missing", "commenter")

		assert.True(t, errors.Is(err, models.ErrCommentNotFound))
	})
}
