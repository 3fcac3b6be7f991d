package handlers

import (
	"net/http"
	"time"

	"github.com/rennabyte/strumhaus/app/configs"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
	pagination   configs.PaginationConfig
}

func NewHomeHandler(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	render *render.Render,
	pagination configs.PaginationConfig,
) *HomeHandler {
	return &HomeHandler{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		render:       render,
		pagination:   pagination,
	}
}

// Home lists visible products ascending by publication time, alongside the
// published categories for navigation.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset := helpers.PageParams(r, h.pagination.Products)
	products, total, err := h.productRepo.GetVisiblePaginated(ctx, time.Now(), limit, offset)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	categories, _, err := h.categoryRepo.GetPublishedPaginated(ctx, h.pagination.Categories, 0)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"products":   products,
		"total":      total,
		"categories": categories,
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}

// Search matches the query case-insensitively against product titles,
// visible products only.
func (h *HomeHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	limit, offset := helpers.PageParams(r, h.pagination.Products)
	products, total, err := h.productRepo.SearchVisiblePaginated(ctx, query, time.Now(), limit, offset)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"query":    query,
		"products": products,
		"total":    total,
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}
