package handler

import (
	"html/template"
	"log/slog"
	"net/http"
)

type BaseHandler struct {
	Logger    *slog.Logger
	Templates *template.Template
}

func (h *BaseHandler) logError(r *http.Request, err error) {
	h.Logger.Error(err.Error(), "method", r.Method, "uri", r.URL.RequestURI())
}

func (h *BaseHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (h *BaseHandler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.Templates.ExecuteTemplate(w, name, data); err != nil {
		h.logError(r, err)
	}
}
