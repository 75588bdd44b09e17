package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleSubscribe resolves the subscription for the `email` and optional
// `id` (campaign) query parameters and renders its management page. Visiting
// the same link again shows the same subscription; nothing is reset.
func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var campaignID *string
	if q.Has("id") {
		id := q.Get("id")
		campaignID = &id
	}

	view, err := h.svc.Subscribe(r.Context(), q.Get("email"), campaignID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "manage.html", newManagePage(view))
}

// handleManage renders the management page of the subscription bound to the
// {token} path parameter. Unknown tokens get the invalid link page.
func (h *Handler) handleManage(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Manage(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "manage.html", newManagePage(view))
}
