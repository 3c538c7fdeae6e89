package domain

import (
	"math"
	"sort"
	"time"

	"github.com/techreviews/backend/pkg/i18n"
)

type Price struct {
	Amount   float64
	Currency string
}

// Availability is the stock state reported by an affiliate store.
type Availability string

const (
	InStock    Availability = "in-stock"
	OutOfStock Availability = "out-of-stock"
	PreOrder   Availability = "pre-order"
	Limited    Availability = "limited"
)

// SummaryStatus collapses store availability into the three states
// product cards display.
func (a Availability) SummaryStatus() string {
	switch a {
	case InStock:
		return "available"
	case Limited:
		return "limited"
	default:
		return "out-of-stock"
	}
}

type (
	ProductImage struct {
		ID        string
		URL       string
		Alt       i18n.LocalizedString
		IsPrimary bool
		Order     int
	}

	ProductSpecification struct {
		Key         string
		Label       i18n.LocalizedString
		Value       i18n.LocalizedString
		Unit        string
		Category    string
		IsHighlight bool
		Order       int
	}

	Rating struct {
		Overall      float64
		Value        float64
		Design       float64
		Performance  float64
		Features     float64
		BuildQuality float64
		TotalReviews int
	}

	AffiliateLink struct {
		StoreID      string
		URL          string
		Price        Price
		Availability Availability
		DeliveryTime i18n.LocalizedString
		TrackingID   string
		LastUpdated  time.Time
	}

	Product struct {
		ID               string
		Slug             string
		Name             i18n.LocalizedString
		Description      i18n.LocalizedString
		ShortDescription i18n.LocalizedString
		Brand            string
		Model            string
		Category         string
		MSRP             *Price
		CurrentPrice     Price
		Specifications   []ProductSpecification
		Images           []ProductImage
		Rating           Rating
		AffiliateLinks   []AffiliateLink
		IsActive         bool
		IsFeatured       bool
		IsNew            bool
		IsDiscontinued   bool
		PublishedAt      time.Time
		UpdatedAt        time.Time
		ViewCount        int64
	}
)

// ProductSummary is the card projection used by list views. It is
// always derived from Product, never stored.
type ProductSummary struct {
	ID                 string
	Slug               string
	Name               i18n.LocalizedString
	Brand              string
	Model              string
	Category           string
	ShortDescription   i18n.LocalizedString
	PrimaryImage       ProductImage
	RatingOverall      float64
	TotalReviews       int
	CurrentPrice       Price
	MSRP               *Price
	DiscountPercent    int
	IsNew              bool
	IsFeatured         bool
	AvailabilityStatus string
	QuickSpecs         []ProductSpecification
	LastUpdated        time.Time
}

// DiscountPercent is the whole-number discount a display price gets
// against the MSRP, rounded half up. A discount exists only when the
// MSRP is known and the current amount is strictly below it.
func DiscountPercent(current Price, msrp *Price) int {
	if msrp == nil || msrp.Amount <= 0 || current.Amount >= msrp.Amount {
		return 0
	}
	return int(math.Floor((msrp.Amount-current.Amount)/msrp.Amount*100 + 0.5))
}

func (p Product) DiscountPercent() int {
	return DiscountPercent(p.DisplayPrice(), p.MSRP)
}

// DisplayPrice is the amount cards and discounts are computed from:
// the best store offer when one carries a price, else the catalog
// price.
func (p Product) DisplayPrice() Price {
	best, ok := p.BestOffer()
	if !ok || best.Price.Amount <= 0 {
		return p.CurrentPrice
	}
	return best.Price
}

// BestOffer picks the lowest-priced affiliate offer. Ties keep the
// first-encountered offer so the selection is stable.
func (p Product) BestOffer() (AffiliateLink, bool) {
	if len(p.AffiliateLinks) == 0 {
		return AffiliateLink{}, false
	}
	best := p.AffiliateLinks[0]
	for _, l := range p.AffiliateLinks[1:] {
		if l.Price.Amount < best.Price.Amount {
			best = l
		}
	}
	return best, true
}

// PrimaryImage returns the image flagged primary, or the first one.
func (p Product) PrimaryImage() ProductImage {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ProductImage{}
}

// AvailabilityStatus derives the card status from the best affiliate
// offer; a product without offers is out of stock.
func (p Product) AvailabilityStatus() string {
	best, ok := p.BestOffer()
	if !ok {
		return OutOfStock.SummaryStatus()
	}
	return best.Availability.SummaryStatus()
}

const maxQuickSpecs = 4

// Summary projects the product down to its card form: primary image,
// the top highlighted specs by order, derived availability and
// discount.
func (p Product) Summary() ProductSummary {
	short := p.ShortDescription
	if short.IsZero() {
		short = p.Description
	}

	var quick []ProductSpecification
	for _, s := range p.Specifications {
		if s.IsHighlight {
			quick = append(quick, s)
		}
	}
	sort.SliceStable(quick, func(i, j int) bool {
		return quick[i].Order < quick[j].Order
	})
	if len(quick) > maxQuickSpecs {
		quick = quick[:maxQuickSpecs]
	}

	return ProductSummary{
		ID:                 p.ID,
		Slug:               p.Slug,
		Name:               p.Name,
		Brand:              p.Brand,
		Model:              p.Model,
		Category:           p.Category,
		ShortDescription:   short,
		PrimaryImage:       p.PrimaryImage(),
		RatingOverall:      p.Rating.Overall,
		TotalReviews:       p.Rating.TotalReviews,
		CurrentPrice:       p.DisplayPrice(),
		MSRP:               p.MSRP,
		DiscountPercent:    p.DiscountPercent(),
		IsNew:              p.IsNew,
		IsFeatured:         p.IsFeatured,
		AvailabilityStatus: p.AvailabilityStatus(),
		QuickSpecs:         quick,
		LastUpdated:        p.UpdatedAt,
	}
}
