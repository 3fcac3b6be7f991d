package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/services"
	"github.com/unrolled/render"
)

type RatingHandler struct {
	ratingSvc *services.RatingService
	render    *render.Render
}

func NewRatingHandler(ratingSvc *services.RatingService, render *render.Render) *RatingHandler {
	return &RatingHandler{
		ratingSvc: ratingSvc,
		render:    render,
	}
}

func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	productID := mux.Vars(r)["product_id"]
	userID := helpers.CurrentUserID(r)

	stars, err := strconv.Atoi(r.FormValue("stars"))
	if err != nil {
		renderError(h.render, w, fmt.Errorf("%w: stars must be a number", models.ErrValidation))
		return
	}

	average, err := h.ratingSvc.Rate(r.Context(), userID, productID, stars)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product_id":     productID,
		"average_rating": average,
	})
}
