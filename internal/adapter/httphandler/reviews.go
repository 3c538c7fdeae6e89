package httphandler

import (
	"net/http"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/port"
)

const defaultLatestReviews = 10

type ReviewsHandler struct {
	provider port.ReviewProvider
}

func RegisterReviews(mux *http.ServeMux, provider port.ReviewProvider) {
	h := ReviewsHandler{provider}
	mux.HandleFunc("GET /api/reviews/product/{id}", h.ByProduct)
	mux.HandleFunc("GET /api/reviews/latest", h.Latest)
}

func (h ReviewsHandler) ByProduct(w http.ResponseWriter, r *http.Request) {
	rs, err := h.provider.ProductReviews(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, h.toResponse(rs, r))
}

func (h ReviewsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultLatestReviews)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rs, err := h.provider.LatestReviews(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, h.toResponse(rs, r))
}

func (h ReviewsHandler) toResponse(rs []domain.Review, r *http.Request) []Review {
	l := localeOf(r)
	out := make([]Review, 0, len(rs))
	for _, review := range rs {
		out = append(out, toReview(review, l))
	}
	return out
}
