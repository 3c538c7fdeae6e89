package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/pkg/apperr"
)

// TrackClick registers an outbound affiliate click. The event gets an
// id and timestamp here, then goes to the click stream. A missing
// producer degrades to a log line so outbound redirects never break.
func (s *Service) TrackClick(
	ctx context.Context, ev domain.ClickEvent,
) (domain.ClickEvent, error) {
	const op = "Service.TrackClick"
	log := s.log.With("op", op)

	if ev.ProductID == "" {
		return domain.ClickEvent{}, fmt.Errorf("%s: %w", op, apperr.InvalidInput("productId"))
	}
	if ev.StoreID == "" {
		return domain.ClickEvent{}, fmt.Errorf("%s: %w", op, apperr.InvalidInput("storeId"))
	}

	p, err := s.catalog.FindProductByID(ctx, ev.ProductID)
	if err != nil {
		return domain.ClickEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	ev.ClickID = uuid.NewString()
	ev.ProductSlug = p.Slug
	ev.OccurredAt = time.Now().UTC()
	if ev.Price.Amount == 0 {
		ev.Price = p.CurrentPrice
	}

	if s.clicks == nil {
		log.InfoContext(ctx, "click stream disabled, event not produced",
			"clickID", ev.ClickID, "productID", ev.ProductID, "storeID", ev.StoreID)
		return ev, nil
	}

	if err := s.clicks.ProduceClick(ctx, ev); err != nil {
		return domain.ClickEvent{}, fmt.Errorf("%s: %w", op, err)
	}
	log.DebugContext(ctx, "click produced", "clickID", ev.ClickID)
	return ev, nil
}

// AffiliatePrices returns the live store offers for a product. When
// the price API is unavailable, the snapshot offers are served and
// flagged stale so the page can disclose their age.
func (s *Service) AffiliatePrices(
	ctx context.Context, productID string,
) ([]domain.StorePrice, error) {
	const op = "Service.AffiliatePrices"
	log := s.log.With("op", op)

	p, err := s.catalog.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.prices != nil {
		live, err := s.prices.FetchPrices(ctx, productID)
		if err == nil {
			return live, nil
		}
		if !apperr.IsOperational(err) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.WarnContext(ctx, "live prices unavailable, serving snapshot",
			"productID", productID, "error", err)
	}

	out := make([]domain.StorePrice, 0, len(p.AffiliateLinks))
	for _, l := range p.AffiliateLinks {
		out = append(out, domain.StorePrice{
			StoreID:      l.StoreID,
			URL:          l.URL,
			Price:        l.Price,
			Availability: l.Availability,
			TrackingID:   l.TrackingID,
			FetchedAt:    l.LastUpdated,
			Stale:        true,
		})
	}
	return out, nil
}
