package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
)

const (
	// maxBodyBytes caps the size of JSON request bodies.
	maxBodyBytes = 64 << 10

	maxHistoryLimit = 200
)

// historyLister lists recently generated suggestions.
type historyLister interface {
	Recent(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

// Handler holds dependencies for API handlers.
type Handler struct {
	gen        gift.Generator
	initial    model.FormInput
	history    historyLister
	bufferPool *sync.Pool // Pool of bytes.Buffer for JSON encoding
}

// New creates a new API Handler. initial supplies values for fields a
// request omits. history can be nil (feature is optional).
func New(gen gift.Generator, initial model.FormInput, history historyLister) (*Handler, error) {
	if gen == nil {
		return nil, errors.New("gift generator is required")
	}
	return &Handler{
		gen:     gen,
		initial: initial,
		history: history,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/gift-ideas", h.GenerateIdeas)
	mux.HandleFunc("GET /api/v1/history", h.ListHistory)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}

func parseIntParam(r *http.Request, name string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
