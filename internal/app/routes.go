package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/prospecta/internal/handler"
	"github.com/prospecta/internal/web"
)

func (app *App) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS))))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/contacts", http.StatusFound)
	})

	contactsHandler := handler.NewContactsHandler(app.logger, app.contacts, web.Templates)
	r.Get("/contacts", contactsHandler.List)
	r.Get("/contacts/pending", contactsHandler.Pending)
	r.Get("/contacts/new", contactsHandler.NewForm)
	r.Post("/contacts/new", contactsHandler.Create)
	r.Get("/contacts/{id}/edit", contactsHandler.EditForm)
	r.Post("/contacts/{id}/edit", contactsHandler.Update)
	r.Post("/contacts/{id}/delete", contactsHandler.Delete)

	settingsHandler := handler.NewSettingsHandler(app.logger, app.settings, nil, web.Templates)
	r.Get("/settings", settingsHandler.Page)
	r.Post("/settings", settingsHandler.Save)
	r.Post("/settings/test", settingsHandler.Test)

	dispatchHandler := handler.NewDispatchHandler(app.logger, app.contacts, app.dispatcher, web.Templates)
	r.Get("/dispatch", dispatchHandler.Page)
	r.Post("/dispatch", dispatchHandler.Run)

	return r
}
