// Package port declares the interfaces between the core service and
// its adapters.
package port

import (
	"context"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/pkg/i18n"
)

// Inbound ports: what the transport layer asks of the core.

type ProductProvider interface {
	SearchProducts(context.Context, domain.ProductQuery) (domain.SearchResult, error)
	ProductByID(context.Context, string) (domain.Product, error)
	ProductBySlug(context.Context, string) (domain.Product, error)
	FeaturedProducts(context.Context, int) ([]domain.ProductSummary, error)
	NewProducts(context.Context, int) ([]domain.ProductSummary, error)
	DealProducts(context.Context, int) ([]domain.ProductSummary, error)
	RelatedProducts(ctx context.Context, productID string, limit int) ([]domain.ProductSummary, error)
}

type CategoryProvider interface {
	CategoryTree(context.Context) ([]domain.CategoryNavItem, error)
	CategoryBySlug(context.Context, string) (domain.Category, error)
	CategoryProducts(context.Context, string, domain.ProductQuery) (domain.SearchResult, error)
	Breadcrumbs(ctx context.Context, slug string, locale i18n.Locale) ([]domain.Breadcrumb, error)
	SearchCategories(ctx context.Context, query string, locale i18n.Locale) ([]domain.Category, error)
}

type ReviewProvider interface {
	ProductReviews(context.Context, string) ([]domain.Review, error)
	LatestReviews(context.Context, int) ([]domain.Review, error)
}

type ClickTracker interface {
	TrackClick(context.Context, domain.ClickEvent) (domain.ClickEvent, error)
}

type PriceProvider interface {
	AffiliatePrices(context.Context, string) ([]domain.StorePrice, error)
}

type NewsletterManager interface {
	Subscribe(ctx context.Context, email string, locale i18n.Locale) (domain.Subscription, error)
	Unsubscribe(ctx context.Context, token string) error
}

// Outbound ports: what the core asks of its adapters.

type CatalogReader interface {
	Products(context.Context) ([]domain.Product, error)
	FindProductByID(context.Context, string) (domain.Product, error)
	FindProductBySlug(context.Context, string) (domain.Product, error)
	Categories(context.Context) ([]domain.Category, error)
	FindCategoryBySlug(context.Context, string) (domain.Category, error)
	ReviewsByProduct(context.Context, string) ([]domain.Review, error)
	Reviews(context.Context) ([]domain.Review, error)
}

type ClickProducer interface {
	ProduceClick(context.Context, domain.ClickEvent) error
}

// PopularityReader serves live click counts aggregated from the
// click stream. Implementations may be unavailable; callers treat a
// zero count as "no signal".
type PopularityReader interface {
	ClickCount(productID string) int64
}

type PriceFetcher interface {
	FetchPrices(context.Context, string) ([]domain.StorePrice, error)
}

type SubscriberStore interface {
	Save(context.Context, domain.Subscription) error
	ByEmail(context.Context, string) (domain.Subscription, bool)
	ByToken(context.Context, string) (domain.Subscription, bool)
	SetStatus(ctx context.Context, token string, status domain.SubscriptionStatus) error
}

type Mailer interface {
	SendConfirmation(context.Context, domain.Subscription) error
	SendGoodbye(context.Context, domain.Subscription) error
}
