package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/i18n"
)

func TestFactories(t *testing.T) {
	t.Run("ProductNotFound", func(t *testing.T) {
		err := apperr.ProductNotFound("prod-1")
		assert.Equal(t, apperr.CodeProductNotFound, err.Code)
		assert.Equal(t, http.StatusNotFound, err.Status)
		assert.True(t, err.Operational)
		assert.Equal(t, "Product not found", err.UserMessage(i18n.English))
		assert.Equal(t, "המוצר לא נמצא", err.UserMessage(i18n.Hebrew))
		assert.Contains(t, err.Error(), "prod-1")
	})

	t.Run("Internal", func(t *testing.T) {
		err := apperr.Internal("marshal failed")
		assert.False(t, err.Operational)
		assert.Equal(t, http.StatusInternalServerError, err.Status)
	})

	t.Run("Timeout", func(t *testing.T) {
		err := apperr.Timeout("affiliate prices request timed out")
		assert.True(t, err.Operational)
		assert.Equal(t, apperr.CodeExternalAPI, err.Code)
		assert.Equal(t, http.StatusGatewayTimeout, err.Status)
	})
}

func TestUserMessageHidesProgrammingDetail(t *testing.T) {
	err := apperr.Internal("nil pointer in summary mapping")
	he := err.UserMessage(i18n.Hebrew)
	en := err.UserMessage(i18n.English)
	require.NotEmpty(t, he)
	require.NotEmpty(t, en)
	assert.NotContains(t, en, "nil pointer")
	assert.NotContains(t, he, "nil pointer")
}

func TestFrom(t *testing.T) {
	t.Run("PassesThrough", func(t *testing.T) {
		orig := apperr.CategoryNotFound("cat-9")
		got := apperr.From(fmt.Errorf("Service.GetCategory: %w", orig))
		assert.Equal(t, apperr.CodeCategoryNotFound, got.Code)
		assert.True(t, got.Operational)
	})

	t.Run("WrapsUnknown", func(t *testing.T) {
		cause := errors.New("boom")
		got := apperr.From(cause)
		require.NotNil(t, got)
		assert.Equal(t, apperr.CodeInternal, got.Code)
		assert.False(t, got.Operational)
		assert.ErrorIs(t, got, cause)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, apperr.From(nil))
	})
}

func TestIsOperational(t *testing.T) {
	assert.True(t, apperr.IsOperational(apperr.NotFound("review")))
	assert.False(t, apperr.IsOperational(apperr.Internal("x")))
	assert.False(t, apperr.IsOperational(errors.New("plain")))
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperr.ProductNotFound("p-1"))
	assert.ErrorIs(t, err, apperr.ProductNotFound("other-id"))
	assert.NotErrorIs(t, err, apperr.CategoryNotFound("other-id"))
}
