package handler

import (
	"log/slog"
	"net/http"

	"github.com/mtlprog/giftideas/internal/model"
	"github.com/mtlprog/giftideas/internal/template"
)

// History handles GET /history. Responds 404 when history storage is disabled.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.NotFound(w, r)
		return
	}

	entries, err := h.history.Recent(r.Context(), h.historyLimit)
	if err != nil {
		slog.Error("failed to fetch history", "limit", h.historyLimit, "error", err)
		http.Error(w, "Failed to fetch history", http.StatusInternalServerError)
		return
	}

	h.render(w, template.PageHistory, model.HistoryPageData{
		Page:     model.PageHistory,
		Entries:  entries,
		Markdown: h.markdown,
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
