package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/rennabyte/strumhaus/app/services"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	checkoutSvc *services.CheckoutService
	userRepo    repositories.UserRepositoryImpl
	render      *render.Render
}

func NewOrderHandler(
	checkoutSvc *services.CheckoutService,
	userRepo repositories.UserRepositoryImpl,
	render *render.Render,
) *OrderHandler {
	return &OrderHandler{
		checkoutSvc: checkoutSvc,
		userRepo:    userRepo,
		render:      render,
	}
}

// Checkout snapshots the named user's cart into order history. The path
// names the cart owner; the session names the requester — the service
// rejects a mismatch with a 403 instead of silently continuing.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := mux.Vars(r)["username"]
	requesterID := helpers.CurrentUserID(r)

	targetUser, err := h.userRepo.FindByUsername(ctx, username)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	order, err := h.checkoutSvc.Checkout(ctx, requesterID, targetUser.ID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"order":         order,
		"display_total": helpers.FormatPrice(order.Total),
	})
}

func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := helpers.CurrentUserID(r)

	orders, err := h.checkoutSvc.ListHistory(r.Context(), userID)
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"orders": orders,
	})
	_ = h.render.JSON(w, http.StatusOK, datas)
}
