package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"socialfeed/internal/config"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, "", models.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return nil, "", fmt.Errorf("ошибка при проверке email: %w", err)
	}

	user := &models.User{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: GravatarURL(req.Email),
	}

	// пароль хешируется в репозитории, в открытом виде не сохраняется
	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

func (s *authService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.UserID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(s.cfg.TokenDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// ValidateToken проверяет подпись и срок действия и возвращает id пользователя.
// Любая ошибка проверки означает отказ, анонимного результата не бывает.
func (s *authService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return "", fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("неверный формат claims")
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("токен не содержит id пользователя")
	}

	return userID, nil
}

// GravatarURL строит детерминированный адрес аватара по email
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(hash[:]))
}
