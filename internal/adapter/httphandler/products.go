package httphandler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/port"
	"github.com/techreviews/backend/pkg/apperr"
)

const defaultListingLimit = 8

type ProductsHandler struct {
	provider port.ProductProvider
}

func RegisterProducts(mux *http.ServeMux, provider port.ProductProvider) {
	h := ProductsHandler{provider}
	mux.HandleFunc("GET /api/products", h.List)
	mux.HandleFunc("GET /api/products/search", h.Search)
	mux.HandleFunc("GET /api/products/featured", h.Featured)
	mux.HandleFunc("GET /api/products/new", h.New)
	mux.HandleFunc("GET /api/products/deals", h.Deals)
	mux.HandleFunc("GET /api/products/slug/{slug}", h.BySlug)
	mux.HandleFunc("GET /api/products/{id}", h.ByID)
	mux.HandleFunc("GET /api/products/{id}/related", h.Related)
}

func (h ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseProductQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.provider.SearchProducts(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSearchResult(res, localeOf(r)))
}

// Search is List with a mandatory q parameter.
func (h ProductsHandler) Search(w http.ResponseWriter, r *http.Request) {
	if strings.TrimSpace(r.URL.Query().Get("q")) == "" {
		writeError(w, r, apperr.InvalidInput("q"))
		return
	}
	h.List(w, r)
}

func (h ProductsHandler) ByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.provider.ProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toProduct(p, localeOf(r)))
}

func (h ProductsHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.provider.ProductBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toProduct(p, localeOf(r)))
}

func (h ProductsHandler) Featured(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.provider.FeaturedProducts)
}

func (h ProductsHandler) New(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.provider.NewProducts)
}

func (h ProductsHandler) Deals(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, h.provider.DealProducts)
}

func (h ProductsHandler) listing(
	w http.ResponseWriter, r *http.Request,
	fetch func(context.Context, int) ([]domain.ProductSummary, error),
) {
	limit, err := intParam(r, "limit", defaultListingLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ps, err := fetch(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summariesResponse(ps, r))
}

func (h ProductsHandler) Related(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultListingLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ps, err := h.provider.RelatedProducts(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summariesResponse(ps, r))
}

func parseProductQuery(r *http.Request) (domain.ProductQuery, error) {
	values := r.URL.Query()
	q := domain.ProductQuery{
		Query:    strings.TrimSpace(values.Get("q")),
		Category: strings.TrimSpace(values.Get("category")),
	}

	for _, b := range values["brand"] {
		for _, name := range strings.Split(b, ",") {
			if name = strings.TrimSpace(name); name != "" {
				q.Brands = append(q.Brands, name)
			}
		}
	}

	sortKey, ok := domain.ParseSortKey(values.Get("sort"))
	if !ok {
		return domain.ProductQuery{}, apperr.InvalidInput("sort")
	}
	q.SortBy = sortKey

	var err error
	if q.Page, err = intValue(values.Get("page"), 0); err != nil {
		return domain.ProductQuery{}, apperr.InvalidInput("page")
	}
	if q.Limit, err = intValue(values.Get("limit"), 0); err != nil {
		return domain.ProductQuery{}, apperr.InvalidInput("limit")
	}

	minPrice, err := floatValue(values.Get("minPrice"))
	if err != nil {
		return domain.ProductQuery{}, apperr.InvalidInput("minPrice")
	}
	maxPrice, err := floatValue(values.Get("maxPrice"))
	if err != nil {
		return domain.ProductQuery{}, apperr.InvalidInput("maxPrice")
	}
	if minPrice > 0 || maxPrice > 0 {
		q.PriceRange = &domain.PriceRange{Min: minPrice, Max: maxPrice}
	}

	if q.MinRating, err = floatValue(values.Get("minRating")); err != nil {
		return domain.ProductQuery{}, apperr.InvalidInput("minRating")
	}

	return q, nil
}

func intValue(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

func floatValue(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	n, err := intValue(r.URL.Query().Get(name), fallback)
	if err != nil {
		return 0, apperr.InvalidInput(name)
	}
	return n, nil
}

func summariesResponse(ps []domain.ProductSummary, r *http.Request) []ProductSummary {
	l := localeOf(r)
	out := make([]ProductSummary, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductSummary(p, l))
	}
	return out
}
