package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/rennabyte/strumhaus/app/utils/sessions"
)

// SessionAuthMiddleware resolves the current identity from the signed
// session cookie. Anonymous requests pass through without context values;
// route-level guards decide whether that is acceptable.
func SessionAuthMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("SessionAuthMiddleware: session user %s not found: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func LoginRequiredMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if helpers.CurrentUserID(r) == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PermissionRequiredMiddleware gates staff-only catalog writes. The check
// runs before the handler and answers with an explicit denial instead of a
// redirect.
func PermissionRequiredMiddleware(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := helpers.CurrentUser(r)
			if user == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if !user.Can(permission) {
				log.Printf("PermissionRequiredMiddleware: user %s denied %s on %s", user.ID, permission, r.URL.Path)
				http.Error(w, "permission denied", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CartCountMiddleware annotates reads with the badge count for the current
// user's cart. Failures degrade to zero rather than failing the request.
func CartCountMiddleware(cartRepo repositories.CartRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := helpers.CurrentUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			count := 0
			cart, err := cartRepo.GetByUserID(r.Context(), userID)
			if err == nil && cart != nil {
				if n, countErr := cartRepo.ItemCount(r.Context(), cart.ID); countErr == nil {
					count = n
				}
			} else if err != nil && !errors.Is(err, models.ErrNotFound) {
				log.Printf("CartCountMiddleware: failed to load cart for user %s: %v", userID, err)
			}

			ctx := context.WithValue(r.Context(), helpers.CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
