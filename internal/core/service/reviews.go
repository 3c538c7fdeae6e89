package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/techreviews/backend/internal/core/domain"
)

// ProductReviews lists the editorial content published for a product,
// newest first. The product must exist.
func (s *Service) ProductReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	const op = "Service.ProductReviews"

	if _, err := s.catalog.FindProductByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rs, err := s.catalog.ReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].PublishedAt.After(rs[j].PublishedAt)
	})
	return rs, nil
}

func (s *Service) LatestReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	const op = "Service.LatestReviews"

	rs, err := s.catalog.Reviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].PublishedAt.After(rs[j].PublishedAt)
	})
	if limit > 0 && len(rs) > limit {
		rs = rs[:limit]
	}
	return rs, nil
}
