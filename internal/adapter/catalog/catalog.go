// Package catalog is the in-memory, read-only content snapshot the
// site serves from. In production the snapshot is loaded at startup;
// there is no write path.
package catalog

import (
	"context"
	"fmt"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/port"
	"github.com/techreviews/backend/pkg/apperr"
)

var _ port.CatalogReader = (*Store)(nil)

// Store holds the catalog snapshot. Entries are treated as immutable;
// every read hands out a fresh slice so callers can never observe a
// shared mutation.
type Store struct {
	products   []domain.Product
	categories []domain.Category
	reviews    []domain.Review

	productsByID   map[string]int
	productsBySlug map[string]int
	categoryBySlug map[string]int
}

func New(
	products []domain.Product,
	categories []domain.Category,
	reviews []domain.Review,
) *Store {
	s := &Store{
		products:       products,
		categories:     categories,
		reviews:        reviews,
		productsByID:   make(map[string]int, len(products)),
		productsBySlug: make(map[string]int, len(products)),
		categoryBySlug: make(map[string]int, len(categories)),
	}
	for i, p := range products {
		s.productsByID[p.ID] = i
		s.productsBySlug[p.Slug] = i
	}
	for i, c := range categories {
		s.categoryBySlug[c.Slug] = i
	}
	return s
}

// NewFromSample builds the store over the bundled sample content.
func NewFromSample() *Store {
	return New(sampleProducts(), sampleCategories(), sampleReviews())
}

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "catalog.Store.Products"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Store) FindProductByID(ctx context.Context, id string) (domain.Product, error) {
	const op = "catalog.Store.FindProductByID"
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	i, ok := s.productsByID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w", op, apperr.ProductNotFound(id))
	}
	return s.products[i], nil
}

func (s *Store) FindProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	const op = "catalog.Store.FindProductBySlug"
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	i, ok := s.productsBySlug[slug]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w", op, apperr.ProductNotFound(slug))
	}
	return s.products[i], nil
}

func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "catalog.Store.Categories"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *Store) FindCategoryBySlug(ctx context.Context, slug string) (domain.Category, error) {
	const op = "catalog.Store.FindCategoryBySlug"
	if err := ctx.Err(); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	i, ok := s.categoryBySlug[slug]
	if !ok {
		return domain.Category{}, fmt.Errorf("%s: %w", op, apperr.CategoryNotFound(slug))
	}
	return s.categories[i], nil
}

func (s *Store) ReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	const op = "catalog.Store.ReviewsByProduct"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var out []domain.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) Reviews(ctx context.Context) ([]domain.Review, error) {
	const op = "catalog.Store.Reviews"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}
