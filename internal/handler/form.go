package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
	"github.com/mtlprog/giftideas/internal/template"
)

// Home handles GET / and renders the page for the session's current state.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctrl := h.controller(w, r)
	state := ctrl.State()

	switch state.Status {
	case gift.StatusLoading:
		h.render(w, template.PageLoading, model.LoadingPageData{
			Page:           model.PageLoading,
			RefreshSeconds: config.LoadingRefreshSeconds,
		})

	case gift.StatusResult:
		h.render(w, template.PageResult, model.ResultPageData{
			Page:     model.PageResult,
			Result:   state.Result,
			Form:     state.Form,
			Markdown: h.markdown,
		})

	default:
		data := model.FormPageData{
			Page:           model.PageForm,
			Form:           state.Form,
			Genders:        model.Genders,
			Alert:          state.Alert,
			HistoryEnabled: h.history != nil,
		}
		if h.render(w, template.PageForm, data) && state.Alert != "" {
			ctrl.DismissAlert()
		}
	}
}

// UpdateForm handles POST /. Every posted field is applied as a user edit;
// action=submit then starts the request. Always redirects back to /.
func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ctrl := h.controller(w, r)

	for _, field := range model.Fields {
		if values, ok := r.PostForm[string(field)]; ok && len(values) > 0 {
			ctrl.UpdateField(field, values[0])
		}
	}

	if r.PostForm.Get("action") == "submit" {
		// The request outlives this HTTP exchange; the loading page polls for it.
		if _, err := ctrl.Submit(context.WithoutCancel(r.Context())); err != nil {
			if !errors.Is(err, gift.ErrNotEditable) {
				slog.Error("failed to submit form", "error", err)
			}
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// TryAgain handles POST /try-again.
func (h *Handler) TryAgain(w http.ResponseWriter, r *http.Request) {
	ctrl := h.controller(w, r)

	if _, err := ctrl.TryAgain(); err != nil {
		slog.Debug("try again ignored", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
