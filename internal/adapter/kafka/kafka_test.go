package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techreviews/backend/internal/core/domain"
)

func TestClickCountCodec(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		codec := clickCountCodec{}

		b, err := codec.Encode(clickCount(42))
		require.NoError(t, err)

		got, err := codec.Decode(b)
		require.NoError(t, err)
		assert.Equal(t, clickCount(42), got)
	})

	t.Run("RejectsForeignType", func(t *testing.T) {
		_, err := clickCountCodec{}.Encode("42")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValueType)
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		_, err := clickCountCodec{}.Decode([]byte("not-a-number"))
		require.Error(t, err)
	})
}

func TestClickToSchemaV1(t *testing.T) {
	at := time.Date(2024, time.May, 12, 10, 30, 0, 0, time.UTC)
	ev := domain.ClickEvent{
		ClickID:     "click-1",
		ProductID:   "prod-1",
		ProductSlug: "iphone-15-pro",
		StoreID:     "ksp",
		UserID:      "anon-7",
		Locale:      "he",
		Price:       domain.Price{Amount: 4999, Currency: "ILS"},
		OccurredAt:  at,
	}

	s := clickToSchemaV1(ev)
	assert.Equal(t, "click-1", s.ClickID)
	assert.Equal(t, "prod-1", s.ProductID)
	assert.Equal(t, "iphone-15-pro", s.ProductSlug)
	assert.Equal(t, float64(4999), s.PriceAmount)
	assert.Equal(t, "ILS", s.PriceCurrency)
	assert.Equal(t, at.UnixMilli(), s.OccurredAt)
}
