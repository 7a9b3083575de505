package middleware

import (
	"context"
	"log"
	"net/http"

	handlers "socialfeed/internal/handler"
	"socialfeed/internal/service"
)

const tokenHeader = "x-auth-token"

type Middleware func(http.Handler) http.Handler

// AuthMiddleware проверяет токен из заголовка x-auth-token
// и добавляет id пользователя в контекст запроса.
// Отсутствие токена и недействительный токен дают разные коды причины.
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skipping public endpoints
			publicPaths := []string{
				"/users",
				"/login",
				"/health",
				"/",
			}

			for _, path := range publicPaths {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Extracting the token from the header
			tokenString := r.Header.Get(tokenHeader)
			if tokenString == "" {
				handlers.WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
				return
			}

			// Проверка подписи и срока действия в Token Service
			userID, err := authService.ValidateToken(tokenString)
			if err != nil {
				handlers.WriteAuthError(w, "Недействительный токен", "invalid_token", http.StatusUnauthorized)
				return
			}

			// Adding user data to the context
			ctx := context.WithValue(r.Context(), "userID", userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-auth-token")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
