package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, render *render.Render) *CartHandler {
	return &CartHandler{
		cartSvc: cartSvc,
		render:  render,
	}
}

// GetCart returns the cart contents and total. The total is computed from
// current product prices on every call, so price changes made after an add
// are reflected immediately.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := helpers.CurrentUserID(r)

	view, err := h.cartSvc.View(r.Context(), userID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"items":         view.Items,
		"count":         view.Count,
		"total":         view.Total,
		"display_total": helpers.FormatPrice(view.Total),
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]
	userID := helpers.CurrentUserID(r)

	if err := h.cartSvc.AddProduct(r.Context(), userID, productID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"added": productID})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]
	userID := helpers.CurrentUserID(r)

	if err := h.cartSvc.RemoveProduct(r.Context(), userID, productID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"removed": productID})
}
