package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/prospecta/internal/mailer"
	"github.com/prospecta/internal/model"
)

type settingsStore interface {
	Load(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
}

// SettingsHandler serves the transport credentials and template form.
type SettingsHandler struct {
	BaseHandler
	settings settingsStore
	dial     mailer.DialFunc
}

func NewSettingsHandler(logger *slog.Logger, settings settingsStore, dial mailer.DialFunc, tmpl *template.Template) *SettingsHandler {
	if dial == nil {
		dial = mailer.Dial
	}
	return &SettingsHandler{BaseHandler: BaseHandler{Logger: logger, Templates: tmpl}, settings: settings, dial: dial}
}

type settingsPageData struct {
	Flash    *Flash
	Settings *model.Settings
}

// Page renders the settings form.
func (h *SettingsHandler) Page(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Load(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, "settings.html", settingsPageData{Flash: popFlash(w, r), Settings: s})
}

// Save persists the submitted settings. An unparsable port falls back to the
// submission default, 587.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	port, err := strconv.Atoi(strings.TrimSpace(r.FormValue("smtp_puerto")))
	if err != nil {
		port = 587
	}
	s := &model.Settings{
		FromAddress: strings.TrimSpace(r.FormValue("email_origen")),
		Password:    strings.TrimSpace(r.FormValue("password")),
		SMTPHost:    strings.TrimSpace(r.FormValue("smtp_servidor")),
		SMTPPort:    port,
		Template:    strings.TrimSpace(r.FormValue("plantilla")),
	}
	if s.SMTPHost == "" {
		s.SMTPHost = "smtp.gmail.com"
	}
	if err := h.settings.Save(r.Context(), s); err != nil {
		h.serverError(w, r, err)
		return
	}
	setFlash(w, "success", "Settings saved.")
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

// Test opens and closes one transport session with the stored credentials,
// so a bad relay or password shows up here instead of mid-dispatch.
func (h *SettingsHandler) Test(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Load(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !s.HasCredentials() {
		setFlash(w, "danger", "Set the sender email and password before testing.")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}
	session, err := h.dial(mailer.Config{
		Host:     s.SMTPHost,
		Port:     s.SMTPPort,
		Username: s.FromAddress,
		Password: s.Password,
	})
	if err != nil {
		slog.Error("settings: connection test failed", "err", err)
		setFlash(w, "danger", "Connection failed: "+err.Error())
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}
	session.Close()
	setFlash(w, "success", "Connection and login succeeded.")
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
