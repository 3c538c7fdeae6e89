package domain

import "time"

// ClickEvent is one outbound affiliate click, dispatched to the
// analytics stream.
type ClickEvent struct {
	ClickID     string
	ProductID   string
	ProductSlug string
	StoreID     string
	UserID      string
	Locale      string
	Price       Price
	OccurredAt  time.Time
}

// StorePrice is a live offer reported by the affiliate price API.
type StorePrice struct {
	StoreID      string
	URL          string
	Price        Price
	Availability Availability
	TrackingID   string
	FetchedAt    time.Time
	// Stale marks prices served from the catalog snapshot because the
	// live API was unavailable.
	Stale bool
}
