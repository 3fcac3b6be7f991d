package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/stretchr/testify/assert"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func requestAs(user *models.User) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if user == nil {
		return r
	}
	ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
	ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
	return r.WithContext(ctx)
}

func TestLoginRequiredRejectsAnonymous(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	LoginRequiredMiddleware(next).ServeHTTP(rec, requestAs(nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestLoginRequiredPassesAuthenticated(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()
	user := &models.User{ID: "u1", Role: models.RoleCustomer}

	LoginRequiredMiddleware(next).ServeHTTP(rec, requestAs(user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestPermissionRequiredDeniesCustomer(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()
	user := &models.User{ID: "u1", Role: models.RoleCustomer}

	PermissionRequiredMiddleware(models.PermAddProduct)(next).ServeHTTP(rec, requestAs(user))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called, "denial must be explicit, not a silent pass-through")
}

func TestPermissionRequiredAllowsStaff(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()
	user := &models.User{ID: "u1", Role: models.RoleStaff}

	PermissionRequiredMiddleware(models.PermAddProduct)(next).ServeHTTP(rec, requestAs(user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestPermissionRequiredRejectsAnonymous(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	PermissionRequiredMiddleware(models.PermAddProduct)(next).ServeHTTP(rec, requestAs(nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestMethodOverrideRewritesPost(t *testing.T) {
	var seenMethod string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenMethod = r.Method
	})

	form := url.Values{"_method": {"delete"}}
	r := httptest.NewRequest(http.MethodPost, "/comments/c1", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	MethodOverrideMiddleware(next).ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, http.MethodDelete, seenMethod)
}

func TestMethodOverrideIgnoresGet(t *testing.T) {
	var seenMethod string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenMethod = r.Method
	})

	r := httptest.NewRequest(http.MethodGet, "/?_method=DELETE", nil)
	MethodOverrideMiddleware(next).ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, http.MethodGet, seenMethod)
}
