package httphandler

import (
	"net/http"
	"strings"

	"github.com/techreviews/backend/internal/core/port"
	"github.com/techreviews/backend/pkg/apperr"
)

type CategoriesHandler struct {
	provider port.CategoryProvider
}

func RegisterCategories(mux *http.ServeMux, provider port.CategoryProvider) {
	h := CategoriesHandler{provider}
	mux.HandleFunc("GET /api/categories", h.Tree)
	mux.HandleFunc("GET /api/categories/search", h.Search)
	mux.HandleFunc("GET /api/categories/{slug}", h.BySlug)
	mux.HandleFunc("GET /api/categories/{slug}/products", h.Products)
	mux.HandleFunc("GET /api/categories/{slug}/breadcrumbs", h.Breadcrumbs)
}

func (h CategoriesHandler) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.provider.CategoryTree(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	l := localeOf(r)
	out := make([]CategoryNavItem, 0, len(tree))
	for _, n := range tree {
		out = append(out, toNavItem(n, l))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h CategoriesHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	c, err := h.provider.CategoryBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toCategory(c, localeOf(r)))
}

func (h CategoriesHandler) Products(w http.ResponseWriter, r *http.Request) {
	q, err := parseProductQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.provider.CategoryProducts(r.Context(), r.PathValue("slug"), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSearchResult(res, localeOf(r)))
}

func (h CategoriesHandler) Breadcrumbs(w http.ResponseWriter, r *http.Request) {
	l := localeOf(r)
	crumbs, err := h.provider.Breadcrumbs(r.Context(), r.PathValue("slug"), l)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]Breadcrumb, 0, len(crumbs))
	for _, c := range crumbs {
		out = append(out, Breadcrumb(c))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h CategoriesHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, apperr.InvalidInput("q"))
		return
	}

	l := localeOf(r)
	cats, err := h.provider.SearchCategories(r.Context(), query, l)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategory(c, l))
	}
	writeJSON(w, r, http.StatusOK, out)
}
