package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/unrolled/render"
)

// renderError maps the shared error kinds onto HTTP statuses. Validation
// problems go back to the caller for correction; everything unexpected is a
// 500 and only logged server-side.
func renderError(rnd *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		_ = rnd.JSON(w, http.StatusNotFound, map[string]interface{}{"error": "not found"})
	case errors.Is(err, models.ErrForbidden):
		_ = rnd.JSON(w, http.StatusForbidden, map[string]interface{}{"error": "forbidden"})
	case errors.Is(err, models.ErrValidation):
		_ = rnd.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"error": err.Error()})
	default:
		log.Printf("handler error: %v", err)
		_ = rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "internal server error"})
	}
}

func renderValidationErrors(rnd *render.Render, w http.ResponseWriter, errs validator.ValidationErrors) {
	_ = rnd.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  "validation failed",
		"fields": helpers.FormatValidationErrors(errs),
	})
}
