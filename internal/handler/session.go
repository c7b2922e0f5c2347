package handler

import (
	"net/http"

	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/gift"
)

// controller returns the form controller for the request's session,
// issuing a new session cookie when the store hands out a different id.
func (h *Handler) controller(w http.ResponseWriter, r *http.Request) *gift.Controller {
	var current string
	if c, err := r.Cookie(config.SessionCookie); err == nil {
		current = c.Value
	}

	id, ctrl := h.sessions.Get(current)
	if id != current {
		http.SetCookie(w, &http.Cookie{
			Name:     config.SessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return ctrl
}
