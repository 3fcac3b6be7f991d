package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rennabyte/strumhaus/app/helpers"
	"github.com/rennabyte/strumhaus/app/services"
	"github.com/unrolled/render"
)

type CommentHandler struct {
	commentSvc *services.CommentService
	render     *render.Render
}

func NewCommentHandler(commentSvc *services.CommentService, render *render.Render) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
		render:     render,
	}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	productID := mux.Vars(r)["product_id"]
	authorID := helpers.CurrentUserID(r)

	comment, err := h.commentSvc.Create(r.Context(), authorID, productID, r.FormValue("text"))
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"comment": comment})
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	commentID := mux.Vars(r)["comment_id"]
	requesterID := helpers.CurrentUserID(r)

	comment, err := h.commentSvc.Edit(r.Context(), requesterID, commentID, r.FormValue("text"))
	if err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"comment": comment})
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["comment_id"]
	requesterID := helpers.CurrentUserID(r)

	if err := h.commentSvc.Delete(r.Context(), requesterID, commentID); err != nil {
		renderError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": commentID})
}
