package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/pkg/i18n"
)

func TestDiscountPercent(t *testing.T) {
	t.Run("RoundsHalfUp", func(t *testing.T) {
		got := domain.DiscountPercent(
			domain.Price{Amount: 4999, Currency: "ILS"},
			&domain.Price{Amount: 5499, Currency: "ILS"},
		)
		assert.Equal(t, 9, got)
	})

	t.Run("NoMSRP", func(t *testing.T) {
		got := domain.DiscountPercent(domain.Price{Amount: 4999}, nil)
		assert.Equal(t, 0, got)
	})

	t.Run("NotBelowMSRP", func(t *testing.T) {
		assert.Equal(t, 0, domain.DiscountPercent(
			domain.Price{Amount: 5499}, &domain.Price{Amount: 5499}))
		assert.Equal(t, 0, domain.DiscountPercent(
			domain.Price{Amount: 5999}, &domain.Price{Amount: 5499}))
	})

	t.Run("HalfRoundsUp", func(t *testing.T) {
		// 50/1000 = exactly 5%, 15/1000 = 1.5% rounds to 2.
		assert.Equal(t, 5, domain.DiscountPercent(
			domain.Price{Amount: 950}, &domain.Price{Amount: 1000}))
		assert.Equal(t, 2, domain.DiscountPercent(
			domain.Price{Amount: 985}, &domain.Price{Amount: 1000}))
	})
}

func TestBestOffer(t *testing.T) {
	t.Run("LowestWins", func(t *testing.T) {
		p := domain.Product{AffiliateLinks: []domain.AffiliateLink{
			{StoreID: "ksp", Price: domain.Price{Amount: 5099}},
			{StoreID: "ivory", Price: domain.Price{Amount: 4999}},
			{StoreID: "bug", Price: domain.Price{Amount: 5199}},
		}}
		offer, ok := p.BestOffer()
		require.True(t, ok)
		assert.Equal(t, "ivory", offer.StoreID)
	})

	t.Run("TieKeepsFirstEncountered", func(t *testing.T) {
		p := domain.Product{AffiliateLinks: []domain.AffiliateLink{
			{StoreID: "ksp", Price: domain.Price{Amount: 4999}},
			{StoreID: "ivory", Price: domain.Price{Amount: 4999}},
		}}
		offer, ok := p.BestOffer()
		require.True(t, ok)
		assert.Equal(t, "ksp", offer.StoreID)
	})

	t.Run("NoOffers", func(t *testing.T) {
		_, ok := domain.Product{}.BestOffer()
		assert.False(t, ok)
	})
}

func TestBestOfferDrivesCard(t *testing.T) {
	p := domain.Product{
		CurrentPrice: domain.Price{Amount: 5499, Currency: "ILS"},
		MSRP:         &domain.Price{Amount: 5499, Currency: "ILS"},
		AffiliateLinks: []domain.AffiliateLink{
			{StoreID: "ksp", Price: domain.Price{Amount: 5499, Currency: "ILS"}, Availability: domain.OutOfStock},
			{StoreID: "ivory", Price: domain.Price{Amount: 4999, Currency: "ILS"}, Availability: domain.InStock},
		},
	}

	t.Run("AvailabilityFollowsBestOffer", func(t *testing.T) {
		assert.Equal(t, "available", p.AvailabilityStatus())
	})

	t.Run("PricingFollowsBestOffer", func(t *testing.T) {
		assert.Equal(t, float64(4999), p.DisplayPrice().Amount)
		assert.Equal(t, 9, p.DiscountPercent())

		s := p.Summary()
		assert.Equal(t, float64(4999), s.CurrentPrice.Amount)
		assert.Equal(t, 9, s.DiscountPercent)
	})

	t.Run("UnpricedOfferFallsBackToCatalogPrice", func(t *testing.T) {
		q := p
		q.AffiliateLinks = []domain.AffiliateLink{
			{StoreID: "ksp", Availability: domain.PreOrder},
		}
		assert.Equal(t, float64(5499), q.DisplayPrice().Amount)
		assert.Equal(t, 0, q.DiscountPercent())
	})
}

func TestSummary(t *testing.T) {
	updated := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p := domain.Product{
		ID:       "prod-1",
		Slug:     "iphone-15-pro",
		Name:     i18n.LocalizedString{He: "אייפון 15 פרו", En: "iPhone 15 Pro"},
		Brand:    "Apple",
		Category: "smartphones",
		Description: i18n.LocalizedString{
			He: "הסמארטפון המתקדם ביותר של אפל",
			En: "Apple's most advanced smartphone",
		},
		CurrentPrice: domain.Price{Amount: 4999, Currency: "ILS"},
		MSRP:         &domain.Price{Amount: 5499, Currency: "ILS"},
		Rating:       domain.Rating{Overall: 4.8, TotalReviews: 245},
		IsNew:        true,
		IsFeatured:   true,
		UpdatedAt:    updated,
		Images: []domain.ProductImage{
			{ID: "img-2", URL: "/b.jpg", Order: 2},
			{ID: "img-1", URL: "/a.jpg", IsPrimary: true, Order: 1},
		},
		AffiliateLinks: []domain.AffiliateLink{
			{StoreID: "ksp", Price: domain.Price{Amount: 4999}, Availability: domain.InStock},
		},
		Specifications: []domain.ProductSpecification{
			{Key: "battery", IsHighlight: false, Order: 1},
			{Key: "chip", IsHighlight: true, Order: 3},
			{Key: "display", IsHighlight: true, Order: 1},
			{Key: "camera", IsHighlight: true, Order: 2},
			{Key: "storage", IsHighlight: true, Order: 5},
			{Key: "weight", IsHighlight: true, Order: 4},
		},
	}

	s := p.Summary()
	assert.Equal(t, "prod-1", s.ID)
	assert.Equal(t, "available", s.AvailabilityStatus)
	assert.Equal(t, 9, s.DiscountPercent)
	assert.Equal(t, "img-1", s.PrimaryImage.ID)
	assert.Equal(t, updated, s.LastUpdated)

	require.Len(t, s.QuickSpecs, 4)
	keys := []string{s.QuickSpecs[0].Key, s.QuickSpecs[1].Key, s.QuickSpecs[2].Key, s.QuickSpecs[3].Key}
	assert.Equal(t, []string{"display", "camera", "chip", "weight"}, keys)

	t.Run("ShortDescriptionFallsBack", func(t *testing.T) {
		assert.Equal(t, p.Description, s.ShortDescription)
	})

	t.Run("NoOffersIsOutOfStock", func(t *testing.T) {
		q := p
		q.AffiliateLinks = nil
		assert.Equal(t, "out-of-stock", q.Summary().AvailabilityStatus)
	})

	t.Run("PreOrderCollapses", func(t *testing.T) {
		q := p
		q.AffiliateLinks = []domain.AffiliateLink{
			{StoreID: "ksp", Availability: domain.PreOrder},
		}
		assert.Equal(t, "out-of-stock", q.Summary().AvailabilityStatus)
	})
}

func TestContentKind(t *testing.T) {
	kinds := []domain.ContentKind{
		domain.ContentProductReview, domain.ContentBuyingGuide,
		domain.ContentComparison, domain.ContentNews,
		domain.ContentDeal, domain.ContentTutorial, domain.ContentList,
	}
	for _, k := range kinds {
		assert.True(t, k.Valid())
		for _, l := range []i18n.Locale{i18n.Hebrew, i18n.English} {
			label, err := k.Label(l)
			require.NoError(t, err)
			assert.NotEmpty(t, label)
		}
	}

	t.Run("UnknownKind", func(t *testing.T) {
		k := domain.ContentKind("podcast")
		assert.False(t, k.Valid())
		_, err := k.Label(i18n.Hebrew)
		require.Error(t, err)
	})
}
