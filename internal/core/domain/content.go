package domain

import (
	"fmt"
	"time"

	"github.com/techreviews/backend/pkg/i18n"
)

// ContentKind tags the site's editorial content union. Every switch
// over it must handle all kinds and fail on anything else.
type ContentKind string

const (
	ContentProductReview ContentKind = "product-review"
	ContentBuyingGuide   ContentKind = "buying-guide"
	ContentComparison    ContentKind = "comparison"
	ContentNews          ContentKind = "news"
	ContentDeal          ContentKind = "deal"
	ContentTutorial      ContentKind = "tutorial"
	ContentList          ContentKind = "list"
)

func (k ContentKind) Valid() bool {
	switch k {
	case ContentProductReview, ContentBuyingGuide, ContentComparison,
		ContentNews, ContentDeal, ContentTutorial, ContentList:
		return true
	}
	return false
}

// Label returns the translated section label for a content kind.
func (k ContentKind) Label(l i18n.Locale) (string, error) {
	var s i18n.LocalizedString
	switch k {
	case ContentProductReview:
		s = i18n.LocalizedString{He: "סקירת מוצר", En: "Product Review"}
	case ContentBuyingGuide:
		s = i18n.LocalizedString{He: "מדריך קנייה", En: "Buying Guide"}
	case ContentComparison:
		s = i18n.LocalizedString{He: "השוואה", En: "Comparison"}
	case ContentNews:
		s = i18n.LocalizedString{He: "חדשות", En: "News"}
	case ContentDeal:
		s = i18n.LocalizedString{He: "מבצע", En: "Deal"}
	case ContentTutorial:
		s = i18n.LocalizedString{He: "מדריך", En: "Tutorial"}
	case ContentList:
		s = i18n.LocalizedString{He: "רשימה", En: "List"}
	default:
		return "", fmt.Errorf("unknown content kind %q", k)
	}
	return s.Get(l), nil
}

// Review is a published piece of editorial content about a product.
type Review struct {
	ID          string
	ProductID   string
	Kind        ContentKind
	Title       i18n.LocalizedString
	Summary     i18n.LocalizedString
	Score       float64
	Author      string
	PublishedAt time.Time
}
