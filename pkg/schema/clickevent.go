package schema

const ClickEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "affiliate",
	"name": "click_event",
	"fields": [
		{"name": "click_id", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "product_slug", "type": "string"},
		{"name": "store_id", "type": "string"},
		{"name": "user_id", "type": "string"},
		{"name": "locale", "type": "string"},
		{"name": "price_amount", "type": "double"},
		{"name": "price_currency", "type": "string"},
		{"name": "occurred_at", "type": "long"}
	]
}`

// ClickEventV1 is one outbound affiliate click. OccurredAt is unix
// milliseconds.
type ClickEventV1 struct {
	ClickID       string  `avro:"click_id"`
	ProductID     string  `avro:"product_id"`
	ProductSlug   string  `avro:"product_slug"`
	StoreID       string  `avro:"store_id"`
	UserID        string  `avro:"user_id"`
	Locale        string  `avro:"locale"`
	PriceAmount   float64 `avro:"price_amount"`
	PriceCurrency string  `avro:"price_currency"`
	OccurredAt    int64   `avro:"occurred_at"`
}
