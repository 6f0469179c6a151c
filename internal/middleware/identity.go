package middleware

import (
	"RecipeBox/internal/model"
	"RecipeBox/internal/service"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// HeaderUser: заголовок с именем пользователя.
const HeaderUser = "X-User"

type ctxKey int

const identityKey ctxKey = iota

// IdentityResolver находит пользователя по имени из заголовка.
type IdentityResolver interface {
	Resolve(ctx context.Context, username string) (*model.User, error)
}

// WithIdentity читает X-User и кладёт Identity в контекст запроса.
// required=true: нет заголовка или неизвестный пользователь дают 401.
// required=false: такие запросы проходят без Identity.
func WithIdentity(resolver IdentityResolver, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := strings.TrimSpace(r.Header.Get(HeaderUser))
			if username == "" {
				if required {
					writeJSONError(w, http.StatusUnauthorized, "Missing X-User header")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolver.Resolve(r.Context(), username)
			switch {
			case errors.Is(err, service.ErrNotFound):
				if required {
					writeJSONError(w, http.StatusUnauthorized, "No such user. Register first.")
					return
				}
				next.ServeHTTP(w, r)
				return
			case err != nil:
				sugar.Errorw("resolve identity failed", "username", username, "err", err)
				writeJSONError(w, http.StatusInternalServerError, "internal error")
				return
			}

			id := model.Identity{UserID: user.ID, Username: user.Username}
			next.ServeHTTP(w, r.WithContext(WithIdentityContext(r.Context(), id)))
		})
	}
}

// WithIdentityContext возвращает контекст с Identity.
func WithIdentityContext(ctx context.Context, id model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity достаёт Identity из контекста.
func GetIdentity(ctx context.Context) (*model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(model.Identity)
	if !ok {
		return nil, false
	}
	return &id, true
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
