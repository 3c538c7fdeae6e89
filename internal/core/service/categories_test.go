package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techreviews/backend/internal/adapter/catalog"
	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/service"
	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/i18n"
)

func fixtureCategory(id, slug, parentID string, sortOrder int) domain.Category {
	return domain.Category{
		ID:        id,
		Slug:      slug,
		Name:      i18n.LocalizedString{He: slug, En: slug},
		ParentID:  parentID,
		SortOrder: sortOrder,
		IsActive:  true,
	}
}

func TestCategoryTree(t *testing.T) {
	t.Run("SampleHierarchy", func(t *testing.T) {
		s := newService()

		tree, err := s.CategoryTree(t.Context())
		require.NoError(t, err)
		require.Len(t, tree, 3)

		assert.Equal(t, "smartphones", tree[0].Slug)
		assert.Equal(t, "computers", tree[1].Slug)
		assert.Equal(t, "audio", tree[2].Slug)

		require.Len(t, tree[1].Children, 1)
		assert.Equal(t, "laptops", tree[1].Children[0].Slug)
		require.Len(t, tree[2].Children, 1)
		assert.Equal(t, "headphones", tree[2].Children[0].Slug)
	})

	t.Run("OrphanBecomesRoot", func(t *testing.T) {
		store := catalog.New(nil, []domain.Category{
			fixtureCategory("c-1", "roots", "", 1),
			fixtureCategory("c-2", "orphan", "c-missing", 2),
		}, nil)
		s := service.New(discardLogger(), store)

		tree, err := s.CategoryTree(t.Context())
		require.NoError(t, err)
		require.Len(t, tree, 2)
		assert.Equal(t, "roots", tree[0].Slug)
		assert.Equal(t, "orphan", tree[1].Slug)
	})

	t.Run("SiblingsFollowSortOrder", func(t *testing.T) {
		store := catalog.New(nil, []domain.Category{
			fixtureCategory("c-1", "root", "", 1),
			fixtureCategory("c-2", "second", "c-1", 2),
			fixtureCategory("c-3", "first", "c-1", 1),
		}, nil)
		s := service.New(discardLogger(), store)

		tree, err := s.CategoryTree(t.Context())
		require.NoError(t, err)
		require.Len(t, tree, 1)
		require.Len(t, tree[0].Children, 2)
		assert.Equal(t, "first", tree[0].Children[0].Slug)
		assert.Equal(t, "second", tree[0].Children[1].Slug)
	})

	t.Run("InactiveCategoriesAreSkipped", func(t *testing.T) {
		inactive := fixtureCategory("c-2", "hidden", "", 2)
		inactive.IsActive = false
		store := catalog.New(nil, []domain.Category{
			fixtureCategory("c-1", "shown", "", 1),
			inactive,
		}, nil)
		s := service.New(discardLogger(), store)

		tree, err := s.CategoryTree(t.Context())
		require.NoError(t, err)
		require.Len(t, tree, 1)
		assert.Equal(t, "shown", tree[0].Slug)
	})
}

func TestBreadcrumbs(t *testing.T) {
	t.Run("RootFirst", func(t *testing.T) {
		s := newService()

		crumbs, err := s.Breadcrumbs(t.Context(), "laptops", i18n.English)
		require.NoError(t, err)
		require.Len(t, crumbs, 2)
		assert.Equal(t, "computers", crumbs[0].Slug)
		assert.Equal(t, "Computers", crumbs[0].Name)
		assert.Equal(t, "laptops", crumbs[1].Slug)
	})

	t.Run("Localized", func(t *testing.T) {
		s := newService()

		crumbs, err := s.Breadcrumbs(t.Context(), "laptops", i18n.Hebrew)
		require.NoError(t, err)
		require.Len(t, crumbs, 2)
		assert.Equal(t, "מחשבים", crumbs[0].Name)
	})

	t.Run("RootCategory", func(t *testing.T) {
		s := newService()

		crumbs, err := s.Breadcrumbs(t.Context(), "smartphones", i18n.Hebrew)
		require.NoError(t, err)
		require.Len(t, crumbs, 1)
		assert.Equal(t, "smartphones", crumbs[0].Slug)
	})

	t.Run("CycleIsFatal", func(t *testing.T) {
		store := catalog.New(nil, []domain.Category{
			fixtureCategory("c-1", "a", "c-2", 1),
			fixtureCategory("c-2", "b", "c-1", 2),
		}, nil)
		s := service.New(discardLogger(), store)

		_, err := s.Breadcrumbs(t.Context(), "a", i18n.Hebrew)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrHierarchyCycle)
		assert.False(t, apperr.IsOperational(err))
	})

	t.Run("SelfParentIsFatal", func(t *testing.T) {
		store := catalog.New(nil, []domain.Category{
			fixtureCategory("c-1", "selfie", "c-1", 1),
		}, nil)
		s := service.New(discardLogger(), store)

		_, err := s.Breadcrumbs(t.Context(), "selfie", i18n.Hebrew)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrHierarchyCycle)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		s := newService()

		_, err := s.Breadcrumbs(t.Context(), "wearables", i18n.Hebrew)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.CategoryNotFound(""))
	})
}

func TestCategoryProducts(t *testing.T) {
	s := newService()

	t.Run("PinsCategory", func(t *testing.T) {
		res, err := s.CategoryProducts(t.Context(), "headphones", domain.ProductQuery{})
		require.NoError(t, err)
		require.Equal(t, 2, res.TotalCount)
		for _, p := range res.Products {
			assert.Equal(t, "headphones", p.Category)
		}
	})

	t.Run("UnknownCategoryIsNotFound", func(t *testing.T) {
		_, err := s.CategoryProducts(t.Context(), "wearables", domain.ProductQuery{})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.CategoryNotFound(""))
	})
}

func TestSearchCategories(t *testing.T) {
	s := newService()

	t.Run("MatchesHebrew", func(t *testing.T) {
		got, err := s.SearchCategories(t.Context(), "מחשב", i18n.Hebrew)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("MatchesEnglishCaseInsensitive", func(t *testing.T) {
		got, err := s.SearchCategories(t.Context(), "AUDIO", i18n.English)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "audio", got[0].Slug)
	})

	t.Run("BlankQueryIsEmpty", func(t *testing.T) {
		got, err := s.SearchCategories(t.Context(), "   ", i18n.Hebrew)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestReviews(t *testing.T) {
	s := newService()

	t.Run("ProductReviews", func(t *testing.T) {
		rs, err := s.ProductReviews(t.Context(), "prod-1")
		require.NoError(t, err)
		require.Len(t, rs, 1)
		assert.Equal(t, domain.ContentProductReview, rs[0].Kind)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		_, err := s.ProductReviews(t.Context(), "prod-404")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ProductNotFound(""))
	})

	t.Run("LatestNewestFirst", func(t *testing.T) {
		rs, err := s.LatestReviews(t.Context(), 2)
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.Equal(t, "rev-3", rs[0].ID)
		assert.Equal(t, "rev-4", rs[1].ID)
	})
}
