package models

import (
	"time"
)

type User struct {
	UserID       string `json:"userId" db:"user_id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Avatar       string `json:"avatar" db:"avatar"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Likes     []Like    `json:"likes" db:"-"`
	Comments  []Comment `json:"comments" db:"-"`
}

// Like: пара (post_id, user_id) уникальна
type Like struct {
	PostID    string    `json:"-" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"-" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
