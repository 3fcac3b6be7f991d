package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/configs"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/rennabyte/strumhaus/app/utils/storage"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	categoryRepo    repositories.CategoryRepositoryImpl
	productTypeRepo repositories.ProductTypeRepositoryImpl
	productRepo     repositories.ProductRepositoryImpl
	mediaStore      storage.Store
	render          *render.Render
	pagination      configs.PaginationConfig
}

func NewCategoryHandler(
	categoryRepo repositories.CategoryRepositoryImpl,
	productTypeRepo repositories.ProductTypeRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	mediaStore storage.Store,
	render *render.Render,
	pagination configs.PaginationConfig,
) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo:    categoryRepo,
		productTypeRepo: productTypeRepo,
		productRepo:     productRepo,
		mediaStore:      mediaStore,
		render:          render,
		pagination:      pagination,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset := helpers.PageParams(r, h.pagination.Categories)
	categories, total, err := h.categoryRepo.GetPublishedPaginated(ctx, limit, offset)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"categories": categories,
		"total":      total,
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}

func (h *CategoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["category"]

	category, err := h.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	productTypes, err := h.productTypeRepo.GetByCategoryID(ctx, category.ID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	products, err := h.productRepo.GetByCategoryID(ctx, category.ID, time.Now())
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"category":      category,
		"product_types": productTypes,
		"products":      products,
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form", http.StatusBadRequest)
			return
		}
	}

	form := parseCategoryForm(r)
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

	category := &models.Category{
		Title: form.Title,
		Slug:  slug,
		Publishable: models.Publishable{
			IsPublished: r.FormValue("is_published") != "false",
		},
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		ref, saveErr := h.mediaStore.Save("category", header.Filename, file)
		if saveErr != nil {
			renderError(h.render, w, saveErr)
			return
		}
		category.ImagePath = ref
	}

	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"category": category})
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["category"]

	category, err := h.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	form := parseCategoryForm(r)
	if err := validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			renderValidationErrors(h.render, w, errs)
			return
		}
		renderError(h.render, w, err)
		return
	}

	// The slug stays immutable once referenced by URLs; only the title and
	// visibility change here.
	category.Title = form.Title
	if v := r.FormValue("is_published"); v != "" {
		category.IsPublished = v != "false"
	}

	if err := h.categoryRepo.Update(ctx, category); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"category": category})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["category"]

	category, err := h.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := h.mediaStore.Delete(category.ImagePath); err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := h.categoryRepo.Delete(ctx, category.ID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": category.ID})
}
