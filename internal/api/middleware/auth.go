package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
)

const (
	msgMissingToken = "authentification requise"
	msgInvalidToken = "jeton invalide ou expiré"
	msgForbidden    = "accès réservé aux administrateurs"
)

type editorKey struct{}

// AdminClaims claims токена администратора
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth проверяет bearer токен (HMAC) и роль; subject токена кладется в контекст
func AdminAuth(secret, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims := &AdminClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			if claims.Role != role {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), editorKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EditorFromContext subject администратора из контекста запроса
func EditorFromContext(ctx context.Context) (string, bool) {
	editor, ok := ctx.Value(editorKey{}).(string)
	return editor, ok && editor != ""
}

// WithEditor кладет администратора в контекст (для тестов обработчиков)
func WithEditor(ctx context.Context, editor string) context.Context {
	return context.WithValue(ctx, editorKey{}, editor)
}
