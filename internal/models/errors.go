package models

import "errors"

// Ошибки домена. Обработчики различают их через errors.Is,
// чтобы not found / conflict / forbidden не смешивались в один ответ.
var (
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrEmailTaken         = errors.New("пользователь уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrPostNotFound       = errors.New("пост не найден")
	ErrCommentNotFound    = errors.New("комментарий не найден")
	ErrNotOwner           = errors.New("нет прав на это действие")
	ErrAlreadyLiked       = errors.New("пост уже отмечен")
	ErrNotLiked           = errors.New("пост не был отмечен")
)
