package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/techreviews/backend/internal/core/domain"
)

// priceBuckets are the fixed price facet boundaries, in whole shekels.
// A zero Max means open-ended.
var priceBuckets = []domain.PriceBucket{
	{Min: 0, Max: 1000},
	{Min: 1000, Max: 3000},
	{Min: 3000, Max: 5000},
	{Min: 5000, Max: 0},
}

var ratingSteps = []float64{4, 3, 2}

// SearchProducts filters, sorts and paginates the catalog. Facets are
// computed over the filtered set before pagination, so they describe
// everything the query matched, not just the current page.
func (s *Service) SearchProducts(
	ctx context.Context, q domain.ProductQuery,
) (domain.SearchResult, error) {
	const op = "Service.SearchProducts"

	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	all, err := s.catalog.Products(ctx)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	filtered := filterProducts(all, q)
	s.sortProducts(filtered, q.SortBy)

	facets, err := s.buildFacets(ctx, filtered)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	page, limit := q.PageOrDefault(), q.LimitOrDefault()
	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	summaries := make([]domain.ProductSummary, 0, end-start)
	for _, p := range filtered[start:end] {
		summaries = append(summaries, p.Summary())
	}

	return domain.SearchResult{
		Products:   summaries,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Facets:     facets,
	}, nil
}

// filterProducts applies constraints in a fixed order: category,
// brand, price, rating, then free text.
func filterProducts(ps []domain.Product, q domain.ProductQuery) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if !p.IsActive || p.IsDiscontinued {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if len(q.Brands) > 0 && !matchesBrand(p.Brand, q.Brands) {
			continue
		}
		if q.PriceRange != nil && !matchesPrice(p.CurrentPrice.Amount, *q.PriceRange) {
			continue
		}
		if q.MinRating > 0 && p.Rating.Overall < q.MinRating {
			continue
		}
		if q.Query != "" && !matchesText(p, q.Query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesBrand(brand string, wanted []string) bool {
	for _, w := range wanted {
		if strings.EqualFold(brand, w) {
			return true
		}
	}
	return false
}

func matchesPrice(amount float64, r domain.PriceRange) bool {
	if amount < r.Min {
		return false
	}
	if r.Max > 0 && amount > r.Max {
		return false
	}
	return true
}

// matchesText is a case-insensitive substring match over both
// localized names and the brand.
func matchesText(p domain.Product, query string) bool {
	needle := strings.ToLower(query)
	for _, hay := range []string{p.Name.He, p.Name.En, p.Brand} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func (s *Service) sortProducts(ps []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].CurrentPrice.Amount < ps[j].CurrentPrice.Amount
		})
	case domain.SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].CurrentPrice.Amount > ps[j].CurrentPrice.Amount
		})
	case domain.SortRating:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Rating.Overall > ps[j].Rating.Overall
		})
	case domain.SortNewest:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].PublishedAt.After(ps[j].PublishedAt)
		})
	case domain.SortPopular:
		sort.SliceStable(ps, func(i, j int) bool {
			return s.popularityScore(ps[i]) > s.popularityScore(ps[j])
		})
	}
}

// popularityScore merges the stored view count with live click counts
// when the click stream aggregate is available.
func (s *Service) popularityScore(p domain.Product) int64 {
	score := p.ViewCount
	if s.popularity != nil {
		score += s.popularity.ClickCount(p.ID)
	}
	return score
}

func (s *Service) buildFacets(
	ctx context.Context, ps []domain.Product,
) (domain.Facets, error) {
	brandCounts := make(map[string]int)
	categoryCounts := make(map[string]int)
	for _, p := range ps {
		brandCounts[p.Brand]++
		categoryCounts[p.Category]++
	}

	brands := make([]domain.BrandFacet, 0, len(brandCounts))
	for name, n := range brandCounts {
		brands = append(brands, domain.BrandFacet{Name: name, Count: n})
	}
	sort.Slice(brands, func(i, j int) bool {
		if brands[i].Count != brands[j].Count {
			return brands[i].Count > brands[j].Count
		}
		return brands[i].Name < brands[j].Name
	})

	categories, err := s.categoryFacets(ctx, categoryCounts)
	if err != nil {
		return domain.Facets{}, err
	}

	prices := make([]domain.PriceBucket, len(priceBuckets))
	copy(prices, priceBuckets)
	for _, p := range ps {
		for i, b := range prices {
			if p.CurrentPrice.Amount >= b.Min && (b.Max == 0 || p.CurrentPrice.Amount < b.Max) {
				prices[i].Count++
				break
			}
		}
	}

	ratings := make([]domain.RatingFacet, 0, len(ratingSteps))
	for _, min := range ratingSteps {
		n := 0
		for _, p := range ps {
			if p.Rating.Overall >= min {
				n++
			}
		}
		ratings = append(ratings, domain.RatingFacet{Min: min, Count: n})
	}

	return domain.Facets{
		Brands:      brands,
		Categories:  categories,
		PriceRanges: prices,
		Ratings:     ratings,
	}, nil
}

func (s *Service) categoryFacets(
	ctx context.Context, counts map[string]int,
) ([]domain.CategoryFacet, error) {
	if len(counts) == 0 {
		return nil, nil
	}
	cats, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]domain.Category, len(cats))
	for _, c := range cats {
		names[c.Slug] = c
	}

	out := make([]domain.CategoryFacet, 0, len(counts))
	for slug, n := range counts {
		f := domain.CategoryFacet{ID: slug, Count: n}
		if c, ok := names[slug]; ok {
			f.Name = c.Name
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Service) ProductByID(ctx context.Context, id string) (domain.Product, error) {
	const op = "Service.ProductByID"

	p, err := s.catalog.FindProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *Service) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	const op = "Service.ProductBySlug"

	p, err := s.catalog.FindProductBySlug(ctx, slug)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *Service) FeaturedProducts(ctx context.Context, limit int) ([]domain.ProductSummary, error) {
	const op = "Service.FeaturedProducts"

	summaries, err := s.pickSummaries(ctx, limit, func(p domain.Product) bool {
		return p.IsFeatured
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return summaries, nil
}

func (s *Service) NewProducts(ctx context.Context, limit int) ([]domain.ProductSummary, error) {
	const op = "Service.NewProducts"

	summaries, err := s.pickSummaries(ctx, limit, func(p domain.Product) bool {
		return p.IsNew
	}, func(ps []domain.Product) {
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].PublishedAt.After(ps[j].PublishedAt)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return summaries, nil
}

// DealProducts lists discounted products, deepest discount first.
func (s *Service) DealProducts(ctx context.Context, limit int) ([]domain.ProductSummary, error) {
	const op = "Service.DealProducts"

	summaries, err := s.pickSummaries(ctx, limit, func(p domain.Product) bool {
		return p.DiscountPercent() > 0
	}, func(ps []domain.Product) {
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].DiscountPercent() > ps[j].DiscountPercent()
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return summaries, nil
}

// RelatedProducts lists other products sharing the subject's category
// or brand, category-and-brand mates first.
func (s *Service) RelatedProducts(
	ctx context.Context, productID string, limit int,
) ([]domain.ProductSummary, error) {
	const op = "Service.RelatedProducts"

	subject, err := s.catalog.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summaries, err := s.pickSummaries(ctx, limit, func(p domain.Product) bool {
		if p.ID == subject.ID {
			return false
		}
		return p.Category == subject.Category || p.Brand == subject.Brand
	}, func(ps []domain.Product) {
		sort.SliceStable(ps, func(i, j int) bool {
			iSame := ps[i].Brand == subject.Brand
			jSame := ps[j].Brand == subject.Brand
			if iSame != jSame {
				return iSame
			}
			return ps[i].Rating.Overall > ps[j].Rating.Overall
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return summaries, nil
}

func (s *Service) pickSummaries(
	ctx context.Context, limit int,
	keep func(domain.Product) bool,
	order func([]domain.Product),
) ([]domain.ProductSummary, error) {
	all, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	var picked []domain.Product
	for _, p := range all {
		if p.IsActive && !p.IsDiscontinued && keep(p) {
			picked = append(picked, p)
		}
	}
	if order != nil {
		order(picked)
	}
	if limit > 0 && len(picked) > limit {
		picked = picked[:limit]
	}

	out := make([]domain.ProductSummary, 0, len(picked))
	for _, p := range picked {
		out = append(out, p.Summary())
	}
	return out, nil
}
