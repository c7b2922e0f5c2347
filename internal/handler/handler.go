package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
)

// TemplateRenderer renders named page templates.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// SessionStore resolves a session id to its form controller.
// An empty or unknown id yields a new session with a fresh id.
type SessionStore interface {
	Get(id string) (string, *gift.Controller)
}

// HistoryLister lists recently generated suggestions.
type HistoryLister interface {
	Recent(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	sessions     SessionStore
	history      HistoryLister
	tmpl         TemplateRenderer
	historyLimit int
	markdown     bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithHistoryLimit sets how many entries the history page shows.
func WithHistoryLimit(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.historyLimit = n
		}
	}
}

// WithMarkdown renders suggestion text as sanitized markdown instead of
// showing it verbatim.
func WithMarkdown(enabled bool) Option {
	return func(h *Handler) {
		h.markdown = enabled
	}
}

// New creates a new Handler. history may be nil, which disables /history.
func New(sessions SessionStore, history HistoryLister, tmpl TemplateRenderer, opts ...Option) (*Handler, error) {
	if sessions == nil {
		return nil, errors.New("session store is required")
	}
	if tmpl == nil {
		return nil, errors.New("templates are required")
	}

	h := &Handler{
		sessions:     sessions,
		history:      history,
		tmpl:         tmpl,
		historyLimit: config.DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// RegisterRoutes registers all HTTP routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("POST /{$}", h.UpdateForm)
	mux.HandleFunc("POST /try-again", h.TryAgain)
	mux.HandleFunc("GET /history", h.History)
	mux.HandleFunc("GET /healthz", h.Health)
}

// render executes a page into a buffer so a template error never leaves a
// half-written response.
func (h *Handler) render(w http.ResponseWriter, name string, data any) bool {
	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return false
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
	return true
}
