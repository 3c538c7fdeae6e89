// Package affiliate talks to the partner price API serving live store
// offers for a product.
package affiliate

import (
	"context"
	"fmt"
	"time"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/port"
	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/retry"
	"github.com/techreviews/backend/pkg/webclient"
)

var _ port.PriceFetcher = (*PriceClient)(nil)

const (
	defaultTimeout  = 10 * time.Second
	defaultAttempts = 3
	retryDelay      = 200 * time.Millisecond
)

type PriceClient struct {
	cl    *webclient.Client
	retry retry.Config
}

// New builds a price client against baseURL. The partner key travels
// in the X-Affiliate-Key header on every request.
func New(baseURL, apiKey string) *PriceClient {
	return &PriceClient{
		cl: webclient.New(baseURL,
			webclient.WithHeader("X-Affiliate-Key", apiKey),
			webclient.WithTimeout(defaultTimeout),
		),
		retry: retry.Config{
			MaxAttempts: defaultAttempts,
			Backoff:     retry.ExponentialBackoff(retryDelay),
			ShouldRetry: apperr.IsOperational,
		},
	}
}

// storeOffer is the wire shape of one offer.
type storeOffer struct {
	StoreID      string  `json:"storeId"`
	URL          string  `json:"url"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Availability string  `json:"availability"`
	TrackingID   string  `json:"trackingId"`
	FetchedAt    string  `json:"fetchedAt"`
}

type pricesPayload struct {
	ProductID string       `json:"productId"`
	Offers    []storeOffer `json:"offers"`
}

// FetchPrices pulls the live offers for productID. Transient upstream
// failures are retried with backoff before the error is surfaced.
func (c *PriceClient) FetchPrices(
	ctx context.Context, productID string,
) ([]domain.StorePrice, error) {
	const op = "affiliate.PriceClient.FetchPrices"

	payload, err := retry.DoWithResult(ctx, c.retry, func() (pricesPayload, error) {
		var p pricesPayload
		err := c.cl.Get(ctx, "/v1/prices/"+productID, &p)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.StorePrice, 0, len(payload.Offers))
	for _, o := range payload.Offers {
		out = append(out, toStorePrice(o))
	}
	return out, nil
}

func toStorePrice(o storeOffer) domain.StorePrice {
	fetched, err := time.Parse(time.RFC3339, o.FetchedAt)
	if err != nil {
		fetched = time.Time{}
	}
	return domain.StorePrice{
		StoreID:      o.StoreID,
		URL:          o.URL,
		Price:        domain.Price{Amount: o.Amount, Currency: o.Currency},
		Availability: domain.Availability(o.Availability),
		TrackingID:   o.TrackingID,
		FetchedAt:    fetched,
	}
}
