package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/services"
	"github.com/unrolled/render"
)

type FavoriteHandler struct {
	favoriteSvc *services.FavoriteService
	render      *render.Render
}

func NewFavoriteHandler(favoriteSvc *services.FavoriteService, render *render.Render) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteSvc: favoriteSvc,
		render:      render,
	}
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID := helpers.CurrentUserID(r)

	view, err := h.favoriteSvc.View(r.Context(), userID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"items": view.Items,
		"count": view.Count,
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}

func (h *FavoriteHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]
	userID := helpers.CurrentUserID(r)

	if err := h.favoriteSvc.AddProduct(r.Context(), userID, productID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"added": productID})
}

func (h *FavoriteHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]
	userID := helpers.CurrentUserID(r)

	if err := h.favoriteSvc.RemoveProduct(r.Context(), userID, productID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"removed": productID})
}
