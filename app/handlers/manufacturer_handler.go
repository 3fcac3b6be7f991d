package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/unrolled/render"
)

type ManufacturerHandler struct {
	manufacturerRepo repositories.ManufacturerRepositoryImpl
	render           *render.Render
}

func NewManufacturerHandler(
	manufacturerRepo repositories.ManufacturerRepositoryImpl,
	render *render.Render,
) *ManufacturerHandler {
	return &ManufacturerHandler{
		manufacturerRepo: manufacturerRepo,
		render:           render,
	}
}

func (h *ManufacturerHandler) List(w http.ResponseWriter, r *http.Request) {
	manufacturers, err := h.manufacturerRepo.GetAll(r.Context())
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"manufacturers": manufacturers,
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}

func (h *ManufacturerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	form := ManufacturerForm{Name: r.FormValue("name")}
	if err := validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			renderValidationErrors(h.render, w, errs)
			return
		}
		renderError(h.render, w, err)
		return
	}

	manufacturer := &models.Manufacturer{Name: form.Name}
	if err := h.manufacturerRepo.Create(r.Context(), manufacturer); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"manufacturer": manufacturer})
}

func (h *ManufacturerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["manufacturer_id"]

	manufacturer, err := h.manufacturerRepo.GetByID(ctx, id)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	if err := h.manufacturerRepo.Delete(ctx, manufacturer.ID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": manufacturer.ID})
}
