package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/configs"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductTypeHandler struct {
	productTypeRepo repositories.ProductTypeRepositoryImpl
	productRepo     repositories.ProductRepositoryImpl
	render          *render.Render
	pagination      configs.PaginationConfig
}

func NewProductTypeHandler(
	productTypeRepo repositories.ProductTypeRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	render *render.Render,
	pagination configs.PaginationConfig,
) *ProductTypeHandler {
	return &ProductTypeHandler{
		productTypeRepo: productTypeRepo,
		productRepo:     productRepo,
		render:          render,
		pagination:      pagination,
	}
}

// parseProductFilter reads the optional max_price and manufacturer query
// parameters. Both are independent; a malformed max_price is a validation
// error rather than a silently dropped filter.
func parseProductFilter(r *http.Request) (repositories.ProductFilter, error) {
	var filter repositories.ProductFilter

	if raw := r.URL.Query().Get("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: max_price must be a number", models.ErrValidation)
		}
		if maxPrice.IsNegative() {
			return filter, fmt.Errorf("%w: max_price cannot be negative", models.ErrValidation)
		}
		filter.MaxPrice = &maxPrice
	}

	filter.ManufacturerID = r.URL.Query().Get("manufacturer")

	return filter, nil
}

// Detail lists a product type's visible products narrowed by the optional
// filters; both predicates apply together when supplied.
func (h *ProductTypeHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["product_type"]

	productType, err := h.productTypeRepo.GetBySlug(ctx, slug)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	filter, err := parseProductFilter(r)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	limit, offset := helpers.PageParams(r, h.pagination.Products)
	products, total, err := h.productRepo.GetByTypeFiltered(ctx, productType.ID, filter, time.Now(), limit, offset)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"product_type": productType,
		"products":     products,
		"total":        total,
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}

func (h *ProductTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	form := parseProductTypeForm(r)
	if err := validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			renderValidationErrors(h.render, w, errs)
			return
		}
		renderError(h.render, w, err)
		return
	}

	slug := form.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(form.Title)
	}

	productType := &models.ProductType{
		Title:      form.Title,
		Slug:       slug,
		CategoryID: form.CategoryID,
		Publishable: models.Publishable{
			IsPublished: r.FormValue("is_published") != "false",
		},
	}

	if err := h.productTypeRepo.Create(r.Context(), productType); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"product_type": productType})
}

func (h *ProductTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["product_type"]

	productType, err := h.productTypeRepo.GetBySlug(ctx, slug)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	form := parseProductTypeForm(r)
	if err := validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			renderValidationErrors(h.render, w, errs)
			return
		}
		renderError(h.render, w, err)
		return
	}

	productType.Title = form.Title
	productType.CategoryID = form.CategoryID
	if v := r.FormValue("is_published"); v != "" {
		productType.IsPublished = v != "false"
	}

	if err := h.productTypeRepo.Update(ctx, productType); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"product_type": productType})
}

func (h *ProductTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["product_type"]

	productType, err := h.productTypeRepo.GetBySlug(ctx, slug)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := h.productTypeRepo.Delete(ctx, productType.ID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": productType.ID})
}
