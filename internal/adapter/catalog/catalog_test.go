package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techreviews/backend/internal/adapter/catalog"
	"github.com/techreviews/backend/pkg/apperr"
)

func TestStoreLookups(t *testing.T) {
	s := catalog.NewFromSample()

	t.Run("FindProductByID", func(t *testing.T) {
		p, err := s.FindProductByID(t.Context(), "prod-1")
		require.NoError(t, err)
		assert.Equal(t, "iphone-15-pro", p.Slug)
		assert.Equal(t, "Apple", p.Brand)
	})

	t.Run("FindProductBySlug", func(t *testing.T) {
		p, err := s.FindProductBySlug(t.Context(), "sony-wh-1000xm5")
		require.NoError(t, err)
		assert.Equal(t, "prod-6", p.ID)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		_, err := s.FindProductByID(t.Context(), "prod-404")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ProductNotFound(""))
	})

	t.Run("FindCategoryBySlug", func(t *testing.T) {
		c, err := s.FindCategoryBySlug(t.Context(), "laptops")
		require.NoError(t, err)
		assert.Equal(t, "cat-computers", c.ParentID)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		_, err := s.FindCategoryBySlug(t.Context(), "wearables")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.CategoryNotFound(""))
	})
}

func TestStoreCopiesOnRead(t *testing.T) {
	s := catalog.NewFromSample()

	first, err := s.Products(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, first)

	first[0].Brand = "mutated"

	second, err := s.Products(t.Context())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Brand)
}

func TestReviewsByProduct(t *testing.T) {
	s := catalog.NewFromSample()

	rs, err := s.ReviewsByProduct(t.Context(), "prod-1")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "rev-1", rs[0].ID)

	rs, err = s.ReviewsByProduct(t.Context(), "prod-7")
	require.NoError(t, err)
	assert.Empty(t, rs)
}
