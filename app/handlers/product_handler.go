package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/rennabyte/strumhaus/app/services"
	"github.com/rennabyte/strumhaus/app/utils/storage"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	productRepo repositories.ProductRepositoryImpl
	commentSvc  *services.CommentService
	ratingSvc   *services.RatingService
	mediaStore  storage.Store
	render      *render.Render
}

func NewProductHandler(
	productRepo repositories.ProductRepositoryImpl,
	commentSvc *services.CommentService,
	ratingSvc *services.RatingService,
	mediaStore storage.Store,
	render *render.Render,
) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
		commentSvc:  commentSvc,
		ratingSvc:   ratingSvc,
		mediaStore:  mediaStore,
		render:      render,
	}
}

// Detail returns the product with its comment thread (oldest first) and the
// current average rating.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	product, err := h.productRepo.GetByID(ctx, productID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	comments, err := h.commentSvc.ListForProduct(ctx, productID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	average, err := h.ratingSvc.Average(ctx, productID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"product":        product,
		"comments":       comments,
		"average_rating": average,
		"display_price":  helpers.FormatPrice(product.Price),
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form", http.StatusBadRequest)
			return
		}
	}

	form, err := parseProductForm(r)
	if err != nil {
		renderError(h.render, w, err)
		return
	}
	if err := validateProductForm(h.render, w, form); err != nil {
		return
	}

	slug := r.FormValue("slug")
	if slug == "" {
		slug = helpers.GenerateSlug(form.Title)
	}

	product := &models.Product{
		Title:         form.Title,
		Slug:          slug,
		Description:   form.Description,
		Parameters:    form.Parameters,
		Price:         form.Price,
		PubDate:       form.PubDate,
		CategoryID:    form.CategoryID,
		ProductTypeID: form.ProductTypeID,
		Publishable: models.Publishable{
			IsPublished: r.FormValue("is_published") != "false",
		},
	}
	if form.ManufacturerID != "" {
		product.ManufacturerID = &form.ManufacturerID
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		ref, saveErr := h.mediaStore.Save("product", header.Filename, file)
		if saveErr != nil {
			renderError(h.render, w, saveErr)
			return
		}
		product.ImagePath = ref
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"product": product})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	product, err := h.productRepo.GetByID(ctx, productID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		renderError(h.render, w, err)
		return
	}
	if err := validateProductForm(h.render, w, form); err != nil {
		return
	}

	product.Title = form.Title
	product.Description = form.Description
	product.Parameters = form.Parameters
	product.Price = form.Price
	product.PubDate = form.PubDate
	product.CategoryID = form.CategoryID
	product.ProductTypeID = form.ProductTypeID
	product.ManufacturerID = nil
	if form.ManufacturerID != "" {
		product.ManufacturerID = &form.ManufacturerID
	}
	if v := r.FormValue("is_published"); v != "" {
		product.IsPublished = v != "false"
	}

	if err := h.productRepo.Update(ctx, product); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"product": product})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	product, err := h.productRepo.GetByID(ctx, productID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := h.mediaStore.Delete(product.ImagePath); err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := h.productRepo.Delete(ctx, product.ID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": product.ID})
}
