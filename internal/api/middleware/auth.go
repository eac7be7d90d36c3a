package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/harbourline/yacht-booking-service/internal/api/handlers"
	"github.com/harbourline/yacht-booking-service/internal/domain"
)

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя,
	// проставляется API-шлюзом после проверки токена
	HeaderUserID = "X-User-ID"

	// HeaderUserRole заголовок с ролью пользователя
	HeaderUserRole = "X-User-Role"

	msgMissingAuth = "authentication required"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Auth проверяет заголовки аутентификации и кладет идентификатор
// и роль пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		if rawID == "" {
			handlers.RespondUnauthorized(w, msgMissingAuth)
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingAuth)
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		if role == "" {
			role = domain.RoleCustomer
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserRole извлекает роль пользователя из контекста запроса
func GetUserRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	return role, ok
}
