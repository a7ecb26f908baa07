package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/prospecta/internal/dispatch"
	"github.com/prospecta/internal/model"
)

type dispatcher interface {
	Run(ctx context.Context) (dispatch.Result, error)
}

// DispatchHandler exposes the "run dispatch now" trigger.
type DispatchHandler struct {
	BaseHandler
	contacts   contactStore
	dispatcher dispatcher
}

func NewDispatchHandler(logger *slog.Logger, contacts contactStore, d dispatcher, tmpl *template.Template) *DispatchHandler {
	return &DispatchHandler{BaseHandler: BaseHandler{Logger: logger, Templates: tmpl}, contacts: contacts, dispatcher: d}
}

type dispatchPageData struct {
	Flash   *Flash
	Pending []model.Contact
}

// Page shows the pending set and the confirm button.
func (h *DispatchHandler) Page(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, "dispatch.html", dispatchPageData{
		Flash:   popFlash(w, r),
		Pending: model.Pending(contacts),
	})
}

// Run executes one dispatch pass. A precondition failure sends the user to
// the settings page with the cause; otherwise the summary line is flashed
// over the remaining pending set.
func (h *DispatchHandler) Run(w http.ResponseWriter, r *http.Request) {
	result, err := h.dispatcher.Run(r.Context())
	if err != nil {
		setFlash(w, "danger", "Dispatch failed: "+err.Error())
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}
	setFlash(w, "info", result.Summary())
	http.Redirect(w, r, "/contacts/pending", http.StatusSeeOther)
}
