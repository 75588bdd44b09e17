package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"unsub-site/internal/core/domain"
)

// handleUpdate applies the posted choice to the subscription bound to
// {token}. The generic page posts an `action` button, campaign pages post a
// `choice` radio; `action` wins when both are present.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, msgInvalidAction)
		return
	}
	raw := r.PostForm.Get("action")
	if raw == "" {
		raw = r.PostForm.Get("choice")
	}
	action, err := domain.ParseAction(raw)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if _, err = h.svc.ApplyAction(r.Context(), chi.URLParam(r, "token"), action); err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "success.html", messagePage{Message: confirmation(action)})
}
