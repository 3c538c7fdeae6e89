package domain

import (
	"time"

	"github.com/techreviews/backend/pkg/i18n"
)

type SubscriptionStatus string

const (
	SubscriptionActive       SubscriptionStatus = "active"
	SubscriptionUnsubscribed SubscriptionStatus = "unsubscribed"
)

type Subscription struct {
	Email        string
	Locale       i18n.Locale
	Token        string
	Status       SubscriptionStatus
	SubscribedAt time.Time
}
