package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/leekchan/accounting"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/shopspring/decimal"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
	CartCountKey     contextKey = "cart_count"
)

var priceFormatter = accounting.Accounting{Symbol: "€", Precision: 2}

func FormatPrice(amount decimal.Decimal) string {
	return priceFormatter.FormatMoney(amount)
}

// CurrentUser returns the authenticated user from the request context, or
// nil when the request is anonymous.
func CurrentUser(r *http.Request) *models.User {
	if userVal := r.Context().Value(ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok {
			return user
		}
	}
	return nil
}

func CurrentUserID(r *http.Request) string {
	if idVal := r.Context().Value(ContextKeyUserID); idVal != nil {
		if id, ok := idVal.(string); ok {
			return id
		}
	}
	return ""
}

// GetBaseData decorates a response payload with the fields every page
// carries: cart count and the requesting identity.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["CartCount"]; !exists {
		pageSpecificData["CartCount"] = 0
	}
	if cartCountVal := r.Context().Value(CartCountKey); cartCountVal != nil {
		if count, ok := cartCountVal.(int); ok {
			pageSpecificData["CartCount"] = count
		}
	}

	pageSpecificData["IsLoggedIn"] = false
	if user := CurrentUser(r); user != nil {
		pageSpecificData["IsLoggedIn"] = true
		pageSpecificData["Username"] = user.Username
		pageSpecificData["UserID"] = user.ID
	}

	return pageSpecificData
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

func GenerateSlug(s string) string {
	return slug.Make(s)
}

// PageParams resolves the page query parameter against a configured page
// size. Pages are 1-based; anything unparsable falls back to page 1.
func PageParams(r *http.Request, perPage int) (limit, offset int) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}
	return perPage, (page - 1) * perPage
}
