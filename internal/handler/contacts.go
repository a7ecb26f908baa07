package handler

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prospecta/internal/model"
	"github.com/prospecta/internal/store"
)

type contactStore interface {
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, i int) (model.Contact, error)
	Append(ctx context.Context, c model.Contact) error
	Update(ctx context.Context, i int, c model.Contact) error
	Delete(ctx context.Context, i int) error
}

// ContactsHandler serves the contact CRUD surface. Contacts are addressed by
// position, so every mutation redirects back to the list and the page never
// holds an index across a delete.
type ContactsHandler struct {
	BaseHandler
	contacts contactStore
}

func NewContactsHandler(logger *slog.Logger, contacts contactStore, tmpl *template.Template) *ContactsHandler {
	return &ContactsHandler{BaseHandler: BaseHandler{Logger: logger, Templates: tmpl}, contacts: contacts}
}

type indexedContact struct {
	ID int
	model.Contact
}

type contactListData struct {
	Flash    *Flash
	Contacts []indexedContact
	Pending  bool
}

// List shows the full collection, sent and pending alike.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	data := contactListData{Flash: popFlash(w, r)}
	for i, c := range contacts {
		data.Contacts = append(data.Contacts, indexedContact{ID: i, Contact: c})
	}
	h.render(w, r, "contacts.html", data)
}

// Pending shows only the contacts that have not been sent to yet.
func (h *ContactsHandler) Pending(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	data := contactListData{Flash: popFlash(w, r), Pending: true}
	for i, c := range contacts {
		if c.Sent {
			continue
		}
		data.Contacts = append(data.Contacts, indexedContact{ID: i, Contact: c})
	}
	h.render(w, r, "contacts.html", data)
}

type contactFormData struct {
	Flash   *Flash
	ID      int
	Contact model.Contact
	Edit    bool
}

// NewForm renders the empty create form.
func (h *ContactsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "contact_form.html", contactFormData{Flash: popFlash(w, r)})
}

// Create appends a contact. Name and email are required; everything else is
// optional template material.
func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	c := contactFromForm(r)
	if c.Name == "" || c.Email == "" {
		setFlash(w, "danger", "Name and email are required.")
		http.Redirect(w, r, "/contacts/new", http.StatusSeeOther)
		return
	}
	if err := h.contacts.Append(r.Context(), c); err != nil {
		h.serverError(w, r, err)
		return
	}
	setFlash(w, "success", "Contact added.")
	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}

// EditForm renders the edit form for the contact at {id}.
func (h *ContactsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.render(w, r, "contact_form.html", contactFormData{Flash: popFlash(w, r), ID: id, Contact: c, Edit: true})
}

// Update replaces the editable fields of the contact at {id}. The sent flag
// is carried over untouched; only the dispatch engine flips it.
func (h *ContactsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, current, ok := h.lookup(w, r)
	if !ok {
		return
	}
	c := contactFromForm(r)
	c.Sent = current.Sent
	if err := h.contacts.Update(r.Context(), id, c); err != nil {
		h.serverError(w, r, err)
		return
	}
	setFlash(w, "success", "Contact updated.")
	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}

// Delete removes the contact at {id}. Later indices shift down.
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.contacts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			setFlash(w, "danger", "Contact not found.")
			http.Redirect(w, r, "/contacts", http.StatusSeeOther)
			return
		}
		h.serverError(w, r, err)
		return
	}
	setFlash(w, "success", "Contact deleted.")
	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}

func (h *ContactsHandler) lookup(w http.ResponseWriter, r *http.Request) (int, model.Contact, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return 0, model.Contact{}, false
	}
	c, err := h.contacts.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		setFlash(w, "danger", "Contact not found.")
		http.Redirect(w, r, "/contacts", http.StatusSeeOther)
		return 0, model.Contact{}, false
	}
	if err != nil {
		h.serverError(w, r, err)
		return 0, model.Contact{}, false
	}
	return id, c, true
}

func contactFromForm(r *http.Request) model.Contact {
	return model.Contact{
		Name:        strings.TrimSpace(r.FormValue("nombre")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Sector:      strings.TrimSpace(r.FormValue("sector")),
		City:        strings.TrimSpace(r.FormValue("ciudad")),
		ContactName: strings.TrimSpace(r.FormValue("nombre_contacto")),
	}
}
