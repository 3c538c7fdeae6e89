package domain

import (
	"errors"
	"time"

	"github.com/techreviews/backend/pkg/i18n"
)

// ErrHierarchyCycle marks a category that is its own transitive
// ancestor. This is a data-integrity fault, never tolerated.
var ErrHierarchyCycle = errors.New("category hierarchy contains a cycle")

type CategoryFilterType string

const (
	FilterRange       CategoryFilterType = "range"
	FilterSelect      CategoryFilterType = "select"
	FilterMultiSelect CategoryFilterType = "multiselect"
	FilterBoolean     CategoryFilterType = "boolean"
	FilterRating      CategoryFilterType = "rating"
)

type (
	FilterOption struct {
		Value string
		Label i18n.LocalizedString
		Count int
	}

	CategoryFilter struct {
		ID      string
		Type    CategoryFilterType
		Key     string
		Label   i18n.LocalizedString
		Unit    string
		Order   int
		Min     float64
		Max     float64
		Step    float64
		Options []FilterOption
	}

	SortOption struct {
		Key       SortKey
		Label     i18n.LocalizedString
		IsDefault bool
		Order     int
	}

	// CategoryHierarchy describes the category's place in the tree.
	// Path holds ancestor ids root-first and never includes the
	// category itself.
	CategoryHierarchy struct {
		Level       int
		Path        []string
		ChildrenIDs []string
	}

	CategoryStats struct {
		ProductCount  int
		PopularBrands []string
		PriceRange    PriceRange
		Currency      string
	}

	Category struct {
		ID               string
		Slug             string
		Name             i18n.LocalizedString
		Description      i18n.LocalizedString
		Icon             string
		ParentID         string
		SortOrder        int
		Hierarchy        CategoryHierarchy
		Filters          []CategoryFilter
		SortOptions      []SortOption
		FeaturedProducts []string
		PopularProducts  []string
		NewProducts      []string
		DealProducts     []string
		IsMainCategory   bool
		IsFeatured       bool
		IsActive         bool
		Stats            CategoryStats
		CreatedAt        time.Time
		UpdatedAt        time.Time
	}
)

// CategoryNavItem is the menu projection of a Category, nested by
// the parent/child relation.
type CategoryNavItem struct {
	ID           string
	Slug         string
	Name         i18n.LocalizedString
	Icon         string
	ProductCount int
	IsActive     bool
	IsFeatured   bool
	Children     []CategoryNavItem
}

type Breadcrumb struct {
	ID   string
	Slug string
	Name string
}
