// Package httphandler is the JSON API surface of the site backend.
package httphandler

import (
	"net/http"

	"github.com/techreviews/backend/internal/core/port"
)

// Deps are the core ports the API serves from.
type Deps struct {
	Products   port.ProductProvider
	Categories port.CategoryProvider
	Reviews    port.ReviewProvider
	Clicks     port.ClickTracker
	Prices     port.PriceProvider
	Newsletter port.NewsletterManager
}

// NewRouter assembles the API mux with the shared middleware chain.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	RegisterProducts(mux, deps.Products)
	RegisterCategories(mux, deps.Categories)
	RegisterReviews(mux, deps.Reviews)
	RegisterAffiliate(mux, deps.Clicks, deps.Prices)
	RegisterNewsletter(mux, deps.Newsletter)

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	return ResolveLocale(AllowJSON(mux))
}
