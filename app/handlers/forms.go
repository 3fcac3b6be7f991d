package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

var validate = validator.New()

type CategoryForm struct {
	Title string `validate:"required,max=100"`
	Slug  string `validate:"omitempty,max=100"`
}

type ProductTypeForm struct {
	Title      string `validate:"required,max=100"`
	Slug       string `validate:"omitempty,max=100"`
	CategoryID string `validate:"required"`
}

type ProductForm struct {
	Title          string `validate:"required,max=255"`
	Description    string `validate:"required"`
	Parameters     string
	CategoryID     string `validate:"required"`
	ProductTypeID  string `validate:"required"`
	ManufacturerID string
	Price          decimal.Decimal
	PubDate        time.Time
}

type ManufacturerForm struct {
	Name string `validate:"required,max=128"`
}

type CommentForm struct {
	Text string `validate:"required"`
}

func parseCategoryForm(r *http.Request) CategoryForm {
	return CategoryForm{
		Title: r.FormValue("title"),
		Slug:  r.FormValue("slug"),
	}
}

func parseProductTypeForm(r *http.Request) ProductTypeForm {
	return ProductTypeForm{
		Title:      r.FormValue("title"),
		Slug:       r.FormValue("slug"),
		CategoryID: r.FormValue("category_id"),
	}
}

// parseProductForm validates the money and date fields itself since their
// failures carry ErrValidation rather than validator tags.
func parseProductForm(r *http.Request) (ProductForm, error) {
	form := ProductForm{
		Title:          r.FormValue("title"),
		Description:    r.FormValue("description"),
		Parameters:     r.FormValue("parameters"),
		CategoryID:     r.FormValue("category_id"),
		ProductTypeID:  r.FormValue("product_type_id"),
		ManufacturerID: r.FormValue("manufacturer_id"),
	}

	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		return form, fmt.Errorf("%w: price must be a number", models.ErrValidation)
	}
	if price.IsNegative() {
		return form, fmt.Errorf("%w: price cannot be negative", models.ErrValidation)
	}
	form.Price = price

	form.PubDate = time.Now()
	if raw := r.FormValue("pub_date"); raw != "" {
		pubDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return form, fmt.Errorf("%w: pub_date must be RFC3339", models.ErrValidation)
		}
		form.PubDate = pubDate
	}

	return form, nil
}

// validateProductForm runs the tag validation and writes the response on
// failure; a non-nil return tells the handler to stop.
func validateProductForm(rnd *render.Render, w http.ResponseWriter, form ProductForm) error {
	if err := validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			renderValidationErrors(rnd, w, errs)
			return err
		}
		renderError(rnd, w, err)
		return err
	}
	return nil
}
