package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
)

// GenerateIdeas handles POST /api/v1/gift-ideas.
//
//	@Summary		Generate gift ideas
//	@Description	Coerces the criteria like the web form does and asks the suggestion service for ideas.
//	@Description	Numeric fields accept JSON numbers or strings; malformed or negative values become 0.
//	@Tags			gift-ideas
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GiftIdeasRequest	true	"Gift criteria"
//	@Success		200		{object}	GiftIdeasResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/v1/gift-ideas [post]
func (h *Handler) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	var req GiftIdeasRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	ctrl := gift.NewController(h.gen, h.initial)
	values := req.values()
	for _, field := range model.Fields {
		if v := values[field]; v.Set {
			ctrl.UpdateField(field, v.Raw)
		}
	}

	done, err := ctrl.Submit(r.Context())
	if err != nil {
		slog.Error("api: failed to submit", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	state := <-done
	if state.Status != gift.StatusResult {
		h.writeError(w, http.StatusBadGateway, config.FailureMessage)
		return
	}

	h.writeJSON(w, http.StatusOK, GiftIdeasResponse{
		Result: state.Result,
		Input:  echoInput(state.Form),
	})
}

// ListHistory handles GET /api/v1/history.
//
//	@Summary		List recent suggestions
//	@Description	Returns the newest stored suggestions. Responds 404 when history storage is disabled.
//	@Tags			history
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of items (default 50, max 200)"
//	@Success		200		{object}	HistoryResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/history [get]
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		h.writeError(w, http.StatusNotFound, "history is disabled")
		return
	}

	limit := parseIntParam(r, "limit", config.DefaultHistoryLimit, maxHistoryLimit)

	entries, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("api: failed to fetch history", "limit", limit, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to fetch history")
		return
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{
			ID:        e.ID,
			Input:     echoInput(e.Form),
			Result:    e.Result,
			CreatedAt: e.CreatedAt,
		})
	}

	h.writeJSON(w, http.StatusOK, HistoryResponse{Data: items, Limit: limit})
}
