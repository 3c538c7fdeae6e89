package schema_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/techreviews/backend/pkg/schema"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeClickEventV1(t *testing.T) {
	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeClickEventV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeClickEventV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		subject := "affiliate-clicks-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ClickEventSchemaTextV1,
		).Return(1, nil)

		serde, err := schema.NewSerdeClickEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		event := schema.ClickEventV1{
			ClickID:       "0b04c154-3143-4d51-9a9c-4a6f80f6a8de",
			ProductID:     "prod-1",
			ProductSlug:   "iphone-15-pro",
			StoreID:       "ksp",
			UserID:        "user-7",
			Locale:        "he",
			PriceAmount:   4999,
			PriceCurrency: "ILS",
			OccurredAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli(),
		}

		data, err := serde.Encode(event)
		require.NoError(t, err)

		var decoded schema.ClickEventV1
		require.NoError(t, serde.Decode(data, &decoded))
		assert.Equal(t, event, decoded)
	})
}
