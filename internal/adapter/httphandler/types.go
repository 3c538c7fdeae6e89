package httphandler

import (
	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/pkg/i18n"
)

// Responses carry one language, picked by the request locale. The
// mappers below flatten localized fields to plain strings.

type (
	Money struct {
		Amount    float64 `json:"amount"`
		Currency  string  `json:"currency"`
		Formatted string  `json:"formatted"`
	}

	QuickSpec struct {
		Key   string `json:"key"`
		Label string `json:"label"`
		Value string `json:"value"`
		Unit  string `json:"unit,omitempty"`
	}

	ProductSummary struct {
		ID                 string      `json:"id"`
		Slug               string      `json:"slug"`
		Name               string      `json:"name"`
		Brand              string      `json:"brand"`
		Model              string      `json:"model,omitempty"`
		Category           string      `json:"category"`
		ShortDescription   string      `json:"shortDescription,omitempty"`
		ImageURL           string      `json:"imageUrl,omitempty"`
		ImageAlt           string      `json:"imageAlt,omitempty"`
		Rating             float64     `json:"rating"`
		RatingLabel        string      `json:"ratingLabel"`
		TotalReviews       int         `json:"totalReviews"`
		Price              Money       `json:"price"`
		MSRP               *Money      `json:"msrp,omitempty"`
		DiscountPercent    int         `json:"discountPercent,omitempty"`
		DiscountLabel      string      `json:"discountLabel,omitempty"`
		IsNew              bool        `json:"isNew"`
		IsFeatured         bool        `json:"isFeatured"`
		AvailabilityStatus string      `json:"availabilityStatus"`
		AvailabilityLabel  string      `json:"availabilityLabel"`
		QuickSpecs         []QuickSpec `json:"quickSpecs,omitempty"`
	}

	Specification struct {
		Key         string `json:"key"`
		Label       string `json:"label"`
		Value       string `json:"value"`
		Unit        string `json:"unit,omitempty"`
		Category    string `json:"category,omitempty"`
		IsHighlight bool   `json:"isHighlight"`
	}

	Image struct {
		ID        string `json:"id"`
		URL       string `json:"url"`
		Alt       string `json:"alt,omitempty"`
		IsPrimary bool   `json:"isPrimary"`
	}

	StoreOffer struct {
		StoreID            string `json:"storeId"`
		URL                string `json:"url"`
		Price              Money  `json:"price"`
		AvailabilityStatus string `json:"availabilityStatus"`
		AvailabilityLabel  string `json:"availabilityLabel"`
		DeliveryTime       string `json:"deliveryTime,omitempty"`
		TrackingID         string `json:"trackingId,omitempty"`
		FetchedAt          string `json:"fetchedAt,omitempty"`
		Stale              bool   `json:"stale,omitempty"`
	}

	Product struct {
		ID                 string          `json:"id"`
		Slug               string          `json:"slug"`
		Name               string          `json:"name"`
		Description        string          `json:"description"`
		Brand              string          `json:"brand"`
		Model              string          `json:"model,omitempty"`
		Category           string          `json:"category"`
		Price              Money           `json:"price"`
		MSRP               *Money          `json:"msrp,omitempty"`
		DiscountPercent    int             `json:"discountPercent,omitempty"`
		Rating             float64         `json:"rating"`
		RatingLabel        string          `json:"ratingLabel"`
		TotalReviews       int             `json:"totalReviews"`
		IsNew              bool            `json:"isNew"`
		IsFeatured         bool            `json:"isFeatured"`
		AvailabilityStatus string          `json:"availabilityStatus"`
		Images             []Image         `json:"images,omitempty"`
		Specifications     []Specification `json:"specifications,omitempty"`
		Offers             []StoreOffer    `json:"offers,omitempty"`
		PublishedAt        string          `json:"publishedAt"`
	}

	BrandFacet struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	CategoryFacet struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	PriceBucket struct {
		Min   float64 `json:"min"`
		Max   float64 `json:"max,omitempty"`
		Count int     `json:"count"`
	}

	RatingFacet struct {
		Min   float64 `json:"min"`
		Count int     `json:"count"`
	}

	Facets struct {
		Brands      []BrandFacet    `json:"brands"`
		Categories  []CategoryFacet `json:"categories"`
		PriceRanges []PriceBucket   `json:"priceRanges"`
		Ratings     []RatingFacet   `json:"ratings"`
	}

	SearchResult struct {
		Products   []ProductSummary `json:"products"`
		TotalCount int              `json:"totalCount"`
		Page       int              `json:"page"`
		Limit      int              `json:"limit"`
		TotalPages int              `json:"totalPages"`
		Facets     Facets           `json:"facets"`
	}

	CategoryNavItem struct {
		ID           string            `json:"id"`
		Slug         string            `json:"slug"`
		Name         string            `json:"name"`
		Icon         string            `json:"icon,omitempty"`
		ProductCount int               `json:"productCount"`
		IsFeatured   bool              `json:"isFeatured"`
		Children     []CategoryNavItem `json:"children,omitempty"`
	}

	Category struct {
		ID           string `json:"id"`
		Slug         string `json:"slug"`
		Name         string `json:"name"`
		Description  string `json:"description,omitempty"`
		Icon         string `json:"icon,omitempty"`
		ProductCount int    `json:"productCount"`
		IsFeatured   bool   `json:"isFeatured"`
	}

	Breadcrumb struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
		Name string `json:"name"`
	}

	Review struct {
		ID          string  `json:"id"`
		ProductID   string  `json:"productId"`
		Kind        string  `json:"kind"`
		KindLabel   string  `json:"kindLabel"`
		Title       string  `json:"title"`
		Summary     string  `json:"summary"`
		Score       float64 `json:"score"`
		Author      string  `json:"author"`
		PublishedAt string  `json:"publishedAt"`
	}

	TrackClickRequest struct {
		ProductID string  `json:"productId"`
		StoreID   string  `json:"storeId"`
		UserID    string  `json:"userId,omitempty"`
		Amount    float64 `json:"amount,omitempty"`
		Currency  string  `json:"currency,omitempty"`
	}

	TrackClickResponse struct {
		ClickID     string `json:"clickId"`
		ProductSlug string `json:"productSlug"`
		OccurredAt  string `json:"occurredAt"`
	}

	SubscribeRequest struct {
		Email string `json:"email"`
	}

	SubscribeResponse struct {
		Email  string `json:"email"`
		Token  string `json:"token"`
		Status string `json:"status"`
	}

	UnsubscribeRequest struct {
		Token string `json:"token"`
	}
)

func toMoney(p domain.Price, l i18n.Locale) Money {
	return Money{
		Amount:    p.Amount,
		Currency:  p.Currency,
		Formatted: i18n.FormatPrice(p.Amount, p.Currency, l),
	}
}

func toProductSummary(s domain.ProductSummary, l i18n.Locale) ProductSummary {
	out := ProductSummary{
		ID:                 s.ID,
		Slug:               s.Slug,
		Name:               s.Name.Get(l),
		Brand:              s.Brand,
		Model:              s.Model,
		Category:           s.Category,
		ShortDescription:   s.ShortDescription.Get(l),
		ImageURL:           s.PrimaryImage.URL,
		ImageAlt:           s.PrimaryImage.Alt.Get(l),
		Rating:             s.RatingOverall,
		RatingLabel:        i18n.FormatRating(s.RatingOverall, 5, l),
		TotalReviews:       s.TotalReviews,
		Price:              toMoney(s.CurrentPrice, l),
		DiscountPercent:    s.DiscountPercent,
		IsNew:              s.IsNew,
		IsFeatured:         s.IsFeatured,
		AvailabilityStatus: s.AvailabilityStatus,
		AvailabilityLabel:  i18n.FormatAvailability(s.AvailabilityStatus, l),
	}
	if s.MSRP != nil {
		m := toMoney(*s.MSRP, l)
		out.MSRP = &m
	}
	if s.DiscountPercent > 0 {
		out.DiscountLabel = i18n.FormatDiscount(s.DiscountPercent)
	}
	for _, spec := range s.QuickSpecs {
		out.QuickSpecs = append(out.QuickSpecs, QuickSpec{
			Key:   spec.Key,
			Label: spec.Label.Get(l),
			Value: spec.Value.Get(l),
			Unit:  spec.Unit,
		})
	}
	return out
}

func toProduct(p domain.Product, l i18n.Locale) Product {
	out := Product{
		ID:                 p.ID,
		Slug:               p.Slug,
		Name:               p.Name.Get(l),
		Description:        p.Description.Get(l),
		Brand:              p.Brand,
		Model:              p.Model,
		Category:           p.Category,
		Price:              toMoney(p.CurrentPrice, l),
		DiscountPercent:    p.DiscountPercent(),
		Rating:             p.Rating.Overall,
		RatingLabel:        i18n.FormatRating(p.Rating.Overall, 5, l),
		TotalReviews:       p.Rating.TotalReviews,
		IsNew:              p.IsNew,
		IsFeatured:         p.IsFeatured,
		AvailabilityStatus: p.AvailabilityStatus(),
		PublishedAt:        i18n.FormatDate(p.PublishedAt, l),
	}
	if p.MSRP != nil {
		m := toMoney(*p.MSRP, l)
		out.MSRP = &m
	}
	for _, img := range p.Images {
		out.Images = append(out.Images, Image{
			ID:        img.ID,
			URL:       img.URL,
			Alt:       img.Alt.Get(l),
			IsPrimary: img.IsPrimary,
		})
	}
	for _, spec := range p.Specifications {
		out.Specifications = append(out.Specifications, Specification{
			Key:         spec.Key,
			Label:       spec.Label.Get(l),
			Value:       spec.Value.Get(l),
			Unit:        spec.Unit,
			Category:    spec.Category,
			IsHighlight: spec.IsHighlight,
		})
	}
	for _, link := range p.AffiliateLinks {
		status := link.Availability.SummaryStatus()
		out.Offers = append(out.Offers, StoreOffer{
			StoreID:            link.StoreID,
			URL:                link.URL,
			Price:              toMoney(link.Price, l),
			AvailabilityStatus: status,
			AvailabilityLabel:  i18n.FormatAvailability(status, l),
			DeliveryTime:       link.DeliveryTime.Get(l),
			TrackingID:         link.TrackingID,
		})
	}
	return out
}

func toSearchResult(res domain.SearchResult, l i18n.Locale) SearchResult {
	out := SearchResult{
		Products:   make([]ProductSummary, 0, len(res.Products)),
		TotalCount: res.TotalCount,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
		Facets: Facets{
			Brands:      make([]BrandFacet, 0, len(res.Facets.Brands)),
			Categories:  make([]CategoryFacet, 0, len(res.Facets.Categories)),
			PriceRanges: make([]PriceBucket, 0, len(res.Facets.PriceRanges)),
			Ratings:     make([]RatingFacet, 0, len(res.Facets.Ratings)),
		},
	}
	for _, p := range res.Products {
		out.Products = append(out.Products, toProductSummary(p, l))
	}
	for _, b := range res.Facets.Brands {
		out.Facets.Brands = append(out.Facets.Brands, BrandFacet(b))
	}
	for _, c := range res.Facets.Categories {
		out.Facets.Categories = append(out.Facets.Categories, CategoryFacet{
			ID: c.ID, Name: c.Name.Get(l), Count: c.Count,
		})
	}
	for _, b := range res.Facets.PriceRanges {
		out.Facets.PriceRanges = append(out.Facets.PriceRanges, PriceBucket(b))
	}
	for _, r := range res.Facets.Ratings {
		out.Facets.Ratings = append(out.Facets.Ratings, RatingFacet(r))
	}
	return out
}

func toNavItem(n domain.CategoryNavItem, l i18n.Locale) CategoryNavItem {
	out := CategoryNavItem{
		ID:           n.ID,
		Slug:         n.Slug,
		Name:         n.Name.Get(l),
		Icon:         n.Icon,
		ProductCount: n.ProductCount,
		IsFeatured:   n.IsFeatured,
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, toNavItem(child, l))
	}
	return out
}

func toCategory(c domain.Category, l i18n.Locale) Category {
	return Category{
		ID:           c.ID,
		Slug:         c.Slug,
		Name:         c.Name.Get(l),
		Description:  c.Description.Get(l),
		Icon:         c.Icon,
		ProductCount: c.Stats.ProductCount,
		IsFeatured:   c.IsFeatured,
	}
}

func toReview(r domain.Review, l i18n.Locale) Review {
	label, err := r.Kind.Label(l)
	if err != nil {
		label = string(r.Kind)
	}
	return Review{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Kind:        string(r.Kind),
		KindLabel:   label,
		Title:       r.Title.Get(l),
		Summary:     r.Summary.Get(l),
		Score:       r.Score,
		Author:      r.Author,
		PublishedAt: i18n.FormatDate(r.PublishedAt, l),
	}
}

func toStorePrices(ps []domain.StorePrice, l i18n.Locale) []StoreOffer {
	out := make([]StoreOffer, 0, len(ps))
	for _, sp := range ps {
		status := sp.Availability.SummaryStatus()
		offer := StoreOffer{
			StoreID:            sp.StoreID,
			URL:                sp.URL,
			Price:              toMoney(sp.Price, l),
			AvailabilityStatus: status,
			AvailabilityLabel:  i18n.FormatAvailability(status, l),
			TrackingID:         sp.TrackingID,
			Stale:              sp.Stale,
		}
		if !sp.FetchedAt.IsZero() {
			offer.FetchedAt = sp.FetchedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
		out = append(out, offer)
	}
	return out
}
