package httpadapter

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"unsub-site/internal/core/domain"
	"unsub-site/internal/core/port"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// User-facing messages. Internal errors are never shown verbatim.
const (
	msgInvalidLink   = "Invalid subscription link."
	msgInvalidAction = "Invalid action."
	msgMissingEmail  = "An email address is required to manage your subscription."
	msgInternal      = "Something went wrong. Please try again later."
	msgUnsubscribed  = "You have been successfully unsubscribed."
	msgResubscribed  = "You have been successfully resubscribed."
)

type managePage struct {
	Token        string
	Email        string
	IsSubscribed bool
	// Custom is set when campaign wording applies; the page then offers a
	// yes/no choice instead of a single toggle button.
	Custom bool
	Header string
	Footer string
	Yes    string
	No     string
}

func newManagePage(v *port.ManageView) managePage {
	wording := v.Wording()
	return managePage{
		Token:        v.Subscription.Token,
		Email:        v.Subscription.Email,
		IsSubscribed: v.Subscription.IsSubscribed,
		Custom:       v.Campaign != nil,
		Header:       wording.HeaderText,
		Footer:       wording.FooterText,
		Yes:          wording.YesText,
		No:           wording.NoText,
	}
}

type messagePage struct {
	Message string
}

func confirmation(a domain.Action) string {
	if a == domain.ActionUnsubscribe {
		return msgUnsubscribed
	}
	return msgResubscribed
}

// render executes a page into a buffer first so a template failure still
// produces a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render template", slog.String("template", name), slog.Any("error", err))
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderError(w http.ResponseWriter, status int, message string) {
	h.render(w, status, "error.html", messagePage{Message: message})
}

// fail maps a use case error onto the error page. Only the user-recoverable
// kinds get a specific message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		h.renderError(w, http.StatusBadRequest, msgMissingEmail)
	case errors.Is(err, port.ErrNotFound):
		h.renderError(w, http.StatusNotFound, msgInvalidLink)
	case errors.Is(err, port.ErrInvalidAction):
		h.renderError(w, http.StatusBadRequest, msgInvalidAction)
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.Any("error", err),
		)
		h.renderError(w, http.StatusInternalServerError, msgInternal)
	}
}
