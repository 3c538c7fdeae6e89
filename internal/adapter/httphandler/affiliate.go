package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/port"
	"github.com/techreviews/backend/pkg/apperr"
)

type AffiliateHandler struct {
	clicks port.ClickTracker
	prices port.PriceProvider
}

func RegisterAffiliate(
	mux *http.ServeMux, clicks port.ClickTracker, prices port.PriceProvider,
) {
	h := AffiliateHandler{clicks, prices}
	mux.HandleFunc("POST /api/affiliate/track-click", h.TrackClick)
	mux.HandleFunc("GET /api/affiliate/prices/{id}", h.Prices)
}

func (h AffiliateHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	var req TrackClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("body").WithCause(err))
		return
	}

	ev, err := h.clicks.TrackClick(r.Context(), domain.ClickEvent{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		UserID:    req.UserID,
		Locale:    localeOf(r).String(),
		Price:     domain.Price{Amount: req.Amount, Currency: req.Currency},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusAccepted, TrackClickResponse{
		ClickID:     ev.ClickID,
		ProductSlug: ev.ProductSlug,
		OccurredAt:  ev.OccurredAt.Format(time.RFC3339),
	})
}

func (h AffiliateHandler) Prices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.prices.AffiliatePrices(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toStorePrices(prices, localeOf(r)))
}
