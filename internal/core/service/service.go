// Package service holds the site's core use cases: product search and
// listings, category navigation, editorial content, affiliate click
// tracking, live prices and the newsletter. It depends only on ports.
package service

import (
	"log/slog"

	"github.com/techreviews/backend/internal/core/port"
)

var _ port.ProductProvider = (*Service)(nil)
var _ port.CategoryProvider = (*Service)(nil)
var _ port.ReviewProvider = (*Service)(nil)
var _ port.ClickTracker = (*Service)(nil)
var _ port.PriceProvider = (*Service)(nil)
var _ port.NewsletterManager = (*Service)(nil)

type Service struct {
	log         *slog.Logger
	catalog     port.CatalogReader
	clicks      port.ClickProducer
	popularity  port.PopularityReader
	prices      port.PriceFetcher
	subscribers port.SubscriberStore
	mailer      port.Mailer
}

type Opt func(*Service)

// WithClickProducer enables affiliate click dispatch. Without it
// clicks are still acknowledged but only logged.
func WithClickProducer(p port.ClickProducer) Opt {
	return func(s *Service) { s.clicks = p }
}

// WithPopularityReader feeds live click counts into the popular sort.
func WithPopularityReader(r port.PopularityReader) Opt {
	return func(s *Service) { s.popularity = r }
}

func WithPriceFetcher(f port.PriceFetcher) Opt {
	return func(s *Service) { s.prices = f }
}

func WithNewsletter(store port.SubscriberStore, mailer port.Mailer) Opt {
	return func(s *Service) {
		s.subscribers = store
		s.mailer = mailer
	}
}

func New(log *slog.Logger, catalog port.CatalogReader, opts ...Opt) *Service {
	s := &Service{log: log, catalog: catalog}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
