package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/techreviews/backend/internal/core/port"
	"github.com/techreviews/backend/pkg/apperr"
)

type NewsletterHandler struct {
	manager port.NewsletterManager
}

func RegisterNewsletter(mux *http.ServeMux, manager port.NewsletterManager) {
	h := NewsletterHandler{manager}
	mux.HandleFunc("POST /api/newsletter/subscribe", h.Subscribe)
	mux.HandleFunc("POST /api/newsletter/unsubscribe", h.Unsubscribe)
}

func (h NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("body").WithCause(err))
		return
	}

	sub, err := h.manager.Subscribe(r.Context(), req.Email, localeOf(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, SubscribeResponse{
		Email:  sub.Email,
		Token:  sub.Token,
		Status: string(sub.Status),
	})
}

func (h NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req UnsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("body").WithCause(err))
		return
	}
	if req.Token == "" {
		writeError(w, r, apperr.InvalidInput("token"))
		return
	}

	if err := h.manager.Unsubscribe(r.Context(), req.Token); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
