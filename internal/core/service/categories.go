package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/i18n"
)

// CategoryTree assembles the navigation tree in two passes: build a
// node per active category, then attach children to parents. A node
// whose parent id resolves to nothing is promoted to a root rather
// than dropped. Siblings are ordered by SortOrder at every level.
func (s *Service) CategoryTree(ctx context.Context) ([]domain.CategoryNavItem, error) {
	const op = "Service.CategoryTree"

	cats, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	type slot struct {
		cat  domain.Category
		node domain.CategoryNavItem
	}

	slots := make([]slot, 0, len(cats))
	index := make(map[string]int, len(cats))
	for _, c := range cats {
		if !c.IsActive {
			continue
		}
		index[c.ID] = len(slots)
		slots = append(slots, slot{cat: c, node: domain.CategoryNavItem{
			ID:           c.ID,
			Slug:         c.Slug,
			Name:         c.Name,
			Icon:         c.Icon,
			ProductCount: c.Stats.ProductCount,
			IsActive:     c.IsActive,
			IsFeatured:   c.IsFeatured,
		}})
	}

	childIDs := make(map[string][]string, len(slots))
	var rootIDs []string
	for _, sl := range slots {
		parent := sl.cat.ParentID
		if parent == "" {
			rootIDs = append(rootIDs, sl.cat.ID)
			continue
		}
		if _, ok := index[parent]; !ok {
			rootIDs = append(rootIDs, sl.cat.ID)
			continue
		}
		childIDs[parent] = append(childIDs[parent], sl.cat.ID)
	}

	sortOrder := func(ids []string) {
		sort.SliceStable(ids, func(i, j int) bool {
			return slots[index[ids[i]]].cat.SortOrder < slots[index[ids[j]]].cat.SortOrder
		})
	}

	var build func(id string) domain.CategoryNavItem
	build = func(id string) domain.CategoryNavItem {
		node := slots[index[id]].node
		kids := childIDs[id]
		sortOrder(kids)
		for _, kid := range kids {
			node.Children = append(node.Children, build(kid))
		}
		return node
	}

	sortOrder(rootIDs)
	tree := make([]domain.CategoryNavItem, 0, len(rootIDs))
	for _, id := range rootIDs {
		tree = append(tree, build(id))
	}
	return tree, nil
}

func (s *Service) CategoryBySlug(ctx context.Context, slug string) (domain.Category, error) {
	const op = "Service.CategoryBySlug"

	c, err := s.catalog.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// CategoryProducts runs a product search pinned to one category. The
// category must exist; an unknown slug is a not-found, not an empty
// result.
func (s *Service) CategoryProducts(
	ctx context.Context, slug string, q domain.ProductQuery,
) (domain.SearchResult, error) {
	const op = "Service.CategoryProducts"

	c, err := s.catalog.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	q.Category = c.Slug
	res, err := s.SearchProducts(ctx, q)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Breadcrumbs walks parent links from the named category up to its
// root and returns the chain root-first. Revisiting a category means
// the stored hierarchy has a cycle; that is corrupt data and the walk
// fails rather than serving a truncated trail.
func (s *Service) Breadcrumbs(
	ctx context.Context, slug string, locale i18n.Locale,
) ([]domain.Breadcrumb, error) {
	const op = "Service.Breadcrumbs"

	start, err := s.catalog.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cats, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	byID := make(map[string]domain.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}

	var chain []domain.Category
	visited := make(map[string]bool)
	for cur, ok := start, true; ok; {
		if visited[cur.ID] {
			cycleErr := fmt.Errorf("%w: at category %s", domain.ErrHierarchyCycle, cur.ID)
			return nil, fmt.Errorf("%s: %w", op,
				apperr.Internal("category hierarchy cycle").WithCause(cycleErr))
		}
		visited[cur.ID] = true
		chain = append(chain, cur)
		cur, ok = byID[cur.ParentID]
	}

	crumbs := make([]domain.Breadcrumb, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		crumbs = append(crumbs, domain.Breadcrumb{
			ID:   c.ID,
			Slug: c.Slug,
			Name: c.Name.Get(locale),
		})
	}
	return crumbs, nil
}

// SearchCategories is a case-insensitive substring match over both
// localized category names.
func (s *Service) SearchCategories(
	ctx context.Context, query string, locale i18n.Locale,
) ([]domain.Category, error) {
	const op = "Service.SearchCategories"

	cats, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}

	var out []domain.Category
	for _, c := range cats {
		if !c.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(c.Name.He), needle) ||
			strings.Contains(strings.ToLower(c.Name.En), needle) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name.Get(locale) < out[j].Name.Get(locale)
	})
	return out, nil
}
