package domain

import "github.com/techreviews/backend/pkg/i18n"

type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
	SortPopular   SortKey = "popular"
)

// ParseSortKey validates a raw sort value. An empty value is valid
// and means "keep insertion order".
func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(raw) {
	case "", SortPriceAsc, SortPriceDesc, SortRating, SortNewest, SortPopular:
		return SortKey(raw), true
	}
	return "", false
}

type PriceRange struct {
	Min float64
	Max float64
}

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// ProductQuery is the constraint set a product listing accepts.
// Zero values mean "no constraint".
type ProductQuery struct {
	Query      string
	Category   string
	Brands     []string
	PriceRange *PriceRange
	MinRating  float64
	SortBy     SortKey
	Page       int
	Limit      int
}

func (q ProductQuery) PageOrDefault() int {
	if q.Page < 1 {
		return DefaultPage
	}
	return q.Page
}

func (q ProductQuery) LimitOrDefault() int {
	if q.Limit < 1 {
		return DefaultLimit
	}
	return q.Limit
}

type (
	BrandFacet struct {
		Name  string
		Count int
	}

	CategoryFacet struct {
		ID    string
		Name  i18n.LocalizedString
		Count int
	}

	// PriceBucket counts products in [Min, Max); Max 0 means open-ended.
	PriceBucket struct {
		Min   float64
		Max   float64
		Count int
	}

	RatingFacet struct {
		Min   float64
		Count int
	}

	Facets struct {
		Brands      []BrandFacet
		Categories  []CategoryFacet
		PriceRanges []PriceBucket
		Ratings     []RatingFacet
	}
)

type SearchResult struct {
	Products   []ProductSummary
	TotalCount int
	Page       int
	Limit      int
	TotalPages int
	Facets     Facets
}
