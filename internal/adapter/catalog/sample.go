package catalog

import (
	"time"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/pkg/i18n"
)

// Sample content used until the editorial pipeline delivers a real
// snapshot. Prices are in whole shekels.

func ls(he, en string) i18n.LocalizedString {
	return i18n.LocalizedString{He: he, En: en}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:               "prod-1",
			Slug:             "iphone-15-pro",
			Name:             ls("אייפון 15 פרו", "iPhone 15 Pro"),
			Description:      ls("הסמארטפון המתקדם ביותר של אפל", "Apple's most advanced smartphone"),
			ShortDescription: ls("שבב A17 Pro ומסגרת טיטניום", "A17 Pro chip and titanium frame"),
			Brand:            "Apple",
			Model:            "iPhone 15 Pro",
			Category:         "smartphones",
			MSRP:             &domain.Price{Amount: 5499, Currency: "ILS"},
			CurrentPrice:     domain.Price{Amount: 4999, Currency: "ILS"},
			Rating:           domain.Rating{Overall: 4.8, Value: 4.2, Design: 4.9, Performance: 4.9, Features: 4.7, BuildQuality: 4.8, TotalReviews: 245},
			IsActive:         true,
			IsFeatured:       true,
			IsNew:            true,
			PublishedAt:      date(2023, time.September, 22),
			UpdatedAt:        date(2024, time.May, 12),
			ViewCount:        18450,
			Images: []domain.ProductImage{
				{ID: "img-ip15p-1", URL: "/images/products/iphone-15-pro.jpg", Alt: ls("אייפון 15 פרו", "iPhone 15 Pro"), IsPrimary: true, Order: 1},
				{ID: "img-ip15p-2", URL: "/images/products/iphone-15-pro-back.jpg", Alt: ls("גב המכשיר", "Device back"), Order: 2},
			},
			Specifications: []domain.ProductSpecification{
				{Key: "display", Label: ls("מסך", "Display"), Value: ls("6.1 אינץ' OLED", "6.1-inch OLED"), Category: "design", IsHighlight: true, Order: 1},
				{Key: "chip", Label: ls("מעבד", "Chip"), Value: ls("A17 Pro", "A17 Pro"), Category: "performance", IsHighlight: true, Order: 2},
				{Key: "camera", Label: ls("מצלמה", "Camera"), Value: ls("48MP ראשית", "48MP main"), Category: "performance", IsHighlight: true, Order: 3},
				{Key: "battery", Label: ls("סוללה", "Battery"), Value: ls("עד 23 שעות וידאו", "Up to 23h video"), Category: "general", Order: 4},
				{Key: "weight", Label: ls("משקל", "Weight"), Value: ls("187", "187"), Unit: "g", Category: "design", IsHighlight: true, Order: 5},
			},
			AffiliateLinks: []domain.AffiliateLink{
				{StoreID: "ksp", URL: "https://ksp.co.il/iphone-15-pro?aff=trv", Price: domain.Price{Amount: 4999, Currency: "ILS"}, Availability: domain.InStock, DeliveryTime: ls("2-4 ימי עסקים", "2-4 business days"), TrackingID: "trv-ksp-001", LastUpdated: date(2024, time.May, 12)},
				{StoreID: "ivory", URL: "https://ivory.co.il/iphone-15-pro?aff=trv", Price: domain.Price{Amount: 5049, Currency: "ILS"}, Availability: domain.InStock, DeliveryTime: ls("עד 5 ימי עסקים", "Up to 5 business days"), TrackingID: "trv-ivr-001", LastUpdated: date(2024, time.May, 11)},
			},
		},
		{
			ID:           "prod-2",
			Slug:         "galaxy-s24-ultra",
			Name:         ls("גלקסי S24 אולטרה", "Galaxy S24 Ultra"),
			Description:  ls("דגל הגלקסי עם עט S Pen מובנה", "The Galaxy flagship with a built-in S Pen"),
			Brand:        "Samsung",
			Model:        "SM-S928",
			Category:     "smartphones",
			CurrentPrice: domain.Price{Amount: 5799, Currency: "ILS"},
			Rating:       domain.Rating{Overall: 4.7, Value: 4.0, Design: 4.6, Performance: 4.8, Features: 4.9, BuildQuality: 4.7, TotalReviews: 189},
			IsActive:     true,
			IsFeatured:   true,
			PublishedAt:  date(2024, time.January, 31),
			UpdatedAt:    date(2024, time.May, 10),
			ViewCount:    15230,
			Images: []domain.ProductImage{
				{ID: "img-s24u-1", URL: "/images/products/galaxy-s24-ultra.jpg", Alt: ls("גלקסי S24 אולטרה", "Galaxy S24 Ultra"), IsPrimary: true, Order: 1},
			},
			Specifications: []domain.ProductSpecification{
				{Key: "display", Label: ls("מסך", "Display"), Value: ls("6.8 אינץ' AMOLED", "6.8-inch AMOLED"), Category: "design", IsHighlight: true, Order: 1},
				{Key: "camera", Label: ls("מצלמה", "Camera"), Value: ls("200MP ראשית", "200MP main"), Category: "performance", IsHighlight: true, Order: 2},
			},
			AffiliateLinks: []domain.AffiliateLink{
				{StoreID: "bug", URL: "https://bug.co.il/galaxy-s24-ultra?aff=trv", Price: domain.Price{Amount: 5799, Currency: "ILS"}, Availability: domain.InStock, DeliveryTime: ls("2-3 ימי עסקים", "2-3 business days"), TrackingID: "trv-bug-002", LastUpdated: date(2024, time.May, 10)},
			},
		},
		{
			ID:           "prod-3",
			Slug:         "pixel-8-pro",
			Name:         ls("פיקסל 8 פרו", "Pixel 8 Pro"),
			Description:  ls("המצלמה החכמה ביותר בשוק האנדרואיד", "The smartest camera in the Android market"),
			Brand:        "Google",
			Model:        "GC3VE",
			Category:     "smartphones",
			MSRP:         &domain.Price{Amount: 4299, Currency: "ILS"},
			CurrentPrice: domain.Price{Amount: 3499, Currency: "ILS"},
			Rating:       domain.Rating{Overall: 4.5, Value: 4.6, Design: 4.4, Performance: 4.4, Features: 4.6, BuildQuality: 4.3, TotalReviews: 97},
			IsActive:     true,
			PublishedAt:  date(2023, time.October, 12),
			UpdatedAt:    date(2024, time.April, 28),
			ViewCount:    9340,
			Images: []domain.ProductImage{
				{ID: "img-p8p-1", URL: "/images/products/pixel-8-pro.jpg", Alt: ls("פיקסל 8 פרו", "Pixel 8 Pro"), IsPrimary: true, Order: 1},
			},
			AffiliateLinks: []domain.AffiliateLink{
				{StoreID: "ksp", URL: "https://ksp.co.il/pixel-8-pro?aff=trv", Price: domain.Price{Amount: 3499, Currency: "ILS"}, Availability: domain.Limited, DeliveryTime: ls("3-6 ימי עסקים", "3-6 business days"), TrackingID: "trv-ksp-003", LastUpdated: date(2024, time.April, 28)},
			},
		},
		{
			ID:           "prod-4",
			Slug:         "macbook-air-m3",
			Name:         ls("מקבוק אייר M3", "MacBook Air M3"),
			Description:  ls("מחשב נייד דק וקל עם שבב M3", "A thin and light laptop with the M3 chip"),
			Brand:        "Apple",
			Model:        "MacBook Air 13 M3",
			Category:     "laptops",
			CurrentPrice: domain.Price{Amount: 5290, Currency: "ILS"},
			Rating:       domain.Rating{Overall: 4.6, Value: 4.1, Design: 4.8, Performance: 4.5, Features: 4.3, BuildQuality: 4.8, TotalReviews: 132},
			IsActive:     true,
			IsFeatured:   true,
			IsNew:        true,
			PublishedAt:  date(2024, time.March, 8),
			UpdatedAt:    date(2024, time.May, 2),
			ViewCount:    12020,
			Images: []domain.ProductImage{
				{ID: "img-mba-1", URL: "/images/products/macbook-air-m3.jpg", Alt: ls("מקבוק אייר M3", "MacBook Air M3"), IsPrimary: true, Order: 1},
			},
			AffiliateLinks: []domain.AffiliateLink{
				{StoreID: "ivory", URL: "https://ivory.co.il/macbook-air-m3?aff=trv", Price: domain.Price{Amount: 5290, Currency: "ILS"}, Availability: domain.InStock, DeliveryTime: ls("2-4 ימי עסקים", "2-4 business days"), TrackingID: "trv-ivr-004", LastUpdated: date(2024, time.May, 2)},
			},
		},
		{
			ID:           "prod-5",
			Slug:         "zenbook-14-oled",
			Name:         ls("זנבוק 14 OLED", "Zenbook 14 OLED"),
			Description:  ls("מסך OLED מרהיב במחיר שפוי", "A gorgeous OLED display at a sane price"),
			Brand:        "Asus",
			Model:        "UX3405",
			Category:     "laptops",
			MSRP:         &domain.Price{Amount: 4799, Currency: "ILS"},
			CurrentPrice: domain.Price{Amount: 4199, Currency: "ILS"},
			Rating:       domain.Rating{Overall: 4.3, Value: 4.7, Design: 4.2, Performance: 4.2, Features: 4.4, BuildQuality: 4.1, TotalReviews: 54},
			IsActive:     true,
			PublishedAt:  date(2024, time.February, 15),
			UpdatedAt:    date(2024, time.April, 20),
			ViewCount:    4310,
			Images: []domain.ProductImage{
				{ID: "img-zb14-1", URL: "/images/products/zenbook-14-oled.jpg", Alt: ls("זנבוק 14", "Zenbook 14"), IsPrimary: true, Order: 1},
			},
			AffiliateLinks: []domain.AffiliateLink{
				{StoreID: "bug", URL: "https://bug.co.il/zenbook-14-oled?aff=trv", Price: domain.Price{Amount: 4199, Currency: "ILS"}, Availability: domain.InStock, DeliveryTime: ls("2-5 ימי עסקים", "2-5 business days"), TrackingID: "trv-bug-005", LastUpdated: date(2024, time.April, 20)},
			},
		},
		{
			ID:           "prod-6",
			Slug:         "sony-wh-1000xm5",
			Name:         ls("סוני WH-1000XM5", "Sony WH-1000XM5"),
			Description:  ls("ביטול הרעשים הטוב בשוק", "Best-in-class noise cancelling"),
			Brand:        "Sony",
			Model:        "WH-1000XM5",
			Category:     "headphones",
			MSRP:         &domain.Price{Amount: 1499, Currency: "ILS"},
			CurrentPrice: domain.Price{Amount: 1099, Currency: "ILS"},
			Rating:       domain.Rating{Overall: 4.7, Value: 4.4, Design: 4.5, Performance: 4.8, Features: 4.7, BuildQuality: 4.6, TotalReviews: 203},
			IsActive:     true,
			PublishedAt:  date(2022, time.May, 20),
			UpdatedAt:    date(2024, time.March, 30),
			ViewCount:    21080,
			Images: []domain.ProductImage{
				{ID: "img-xm5-1", URL: "/images/products/sony-wh-1000xm5.jpg", Alt: ls("סוני WH-1000XM5", "Sony WH-1000XM5"), IsPrimary: true, Order: 1},
			},
			AffiliateLinks: []domain.AffiliateLink{
				{StoreID: "ksp", URL: "https://ksp.co.il/sony-wh-1000xm5?aff=trv", Price: domain.Price{Amount: 1099, Currency: "ILS"}, Availability: domain.InStock, DeliveryTime: ls("2-4 ימי עסקים", "2-4 business days"), TrackingID: "trv-ksp-006", LastUpdated: date(2024, time.March, 30)},
				{StoreID: "ivory", URL: "https://ivory.co.il/sony-wh-1000xm5?aff=trv", Price: domain.Price{Amount: 1099, Currency: "ILS"}, Availability: domain.Limited, DeliveryTime: ls("עד שבוע", "Up to a week"), TrackingID: "trv-ivr-006", LastUpdated: date(2024, time.March, 28)},
			},
		},
		{
			ID:           "prod-7",
			Slug:         "airpods-pro-2",
			Name:         ls("איירפודס פרו 2", "AirPods Pro 2"),
			Description:  ls("אוזניות ה-TWS המשתלבות הכי טוב באקוסיסטם של אפל", "The TWS earbuds that fit Apple's ecosystem best"),
			Brand:        "Apple",
			Model:        "AirPods Pro (2nd gen)",
			Category:     "headphones",
			CurrentPrice: domain.Price{Amount: 899, Currency: "ILS"},
			Rating:       domain.Rating{Overall: 4.4, Value: 4.2, Design: 4.6, Performance: 4.4, Features: 4.5, BuildQuality: 4.3, TotalReviews: 164},
			IsActive:     true,
			PublishedAt:  date(2023, time.September, 26),
			UpdatedAt:    date(2024, time.April, 2),
			ViewCount:    8770,
			Images: []domain.ProductImage{
				{ID: "img-app2-1", URL: "/images/products/airpods-pro-2.jpg", Alt: ls("איירפודס פרו 2", "AirPods Pro 2"), IsPrimary: true, Order: 1},
			},
			AffiliateLinks: []domain.AffiliateLink{
				{StoreID: "ivory", URL: "https://ivory.co.il/airpods-pro-2?aff=trv", Price: domain.Price{Amount: 899, Currency: "ILS"}, Availability: domain.PreOrder, DeliveryTime: ls("משלוח החל מה-1 ביוני", "Ships from June 1"), TrackingID: "trv-ivr-007", LastUpdated: date(2024, time.April, 2)},
			},
		},
	}
}

func sampleCategories() []domain.Category {
	return []domain.Category{
		{
			ID:          "cat-smartphones",
			Slug:        "smartphones",
			Name:        ls("סמארטפונים", "Smartphones"),
			Description: ls("הסמארטפונים החדשים והמתקדמים ביותר", "The latest and most advanced smartphones"),
			Icon:        "smartphone",
			SortOrder:   1,
			Hierarchy:   domain.CategoryHierarchy{Level: 0},
			SortOptions: []domain.SortOption{
				{Key: domain.SortPopular, Label: ls("הפופולריים ביותר", "Most popular"), IsDefault: true, Order: 1},
				{Key: domain.SortPriceAsc, Label: ls("מחיר: מהזול ליקר", "Price: low to high"), Order: 2},
				{Key: domain.SortRating, Label: ls("דירוג", "Rating"), Order: 3},
			},
			Filters: []domain.CategoryFilter{
				{ID: "f-price", Type: domain.FilterRange, Key: "price", Label: ls("מחיר", "Price"), Unit: "ILS", Order: 1, Min: 1000, Max: 8000, Step: 100},
				{ID: "f-brand", Type: domain.FilterMultiSelect, Key: "brand", Label: ls("מותג", "Brand"), Order: 2, Options: []domain.FilterOption{
					{Value: "Apple", Label: ls("אפל", "Apple")},
					{Value: "Samsung", Label: ls("סמסונג", "Samsung")},
					{Value: "Google", Label: ls("גוגל", "Google")},
				}},
				{ID: "f-rating", Type: domain.FilterRating, Key: "rating", Label: ls("דירוג", "Rating"), Order: 3},
			},
			FeaturedProducts: []string{"prod-1", "prod-2"},
			PopularProducts:  []string{"prod-1", "prod-2", "prod-3"},
			NewProducts:      []string{"prod-1"},
			DealProducts:     []string{"prod-1", "prod-3"},
			IsMainCategory:   true,
			IsFeatured:       true,
			IsActive:         true,
			Stats: domain.CategoryStats{
				ProductCount:  3,
				PopularBrands: []string{"Apple", "Samsung", "Google"},
				PriceRange:    domain.PriceRange{Min: 3499, Max: 5799},
				Currency:      "ILS",
			},
			CreatedAt: date(2022, time.January, 1),
			UpdatedAt: date(2024, time.May, 12),
		},
		{
			ID:             "cat-computers",
			Slug:           "computers",
			Name:           ls("מחשבים", "Computers"),
			Description:    ls("מחשבים ניידים ונייחים", "Laptops and desktops"),
			Icon:           "computer",
			SortOrder:      2,
			Hierarchy:      domain.CategoryHierarchy{Level: 0, ChildrenIDs: []string{"cat-laptops"}},
			IsMainCategory: true,
			IsActive:       true,
			Stats: domain.CategoryStats{
				ProductCount: 2,
				PriceRange:   domain.PriceRange{Min: 4199, Max: 5290},
				Currency:     "ILS",
			},
			CreatedAt: date(2022, time.January, 1),
			UpdatedAt: date(2024, time.May, 2),
		},
		{
			ID:          "cat-laptops",
			Slug:        "laptops",
			Name:        ls("מחשבים ניידים", "Laptops"),
			Description: ls("ניידים לעבודה, ללימודים ולגיימינג", "Laptops for work, study and gaming"),
			Icon:        "laptop",
			ParentID:    "cat-computers",
			SortOrder:   1,
			Hierarchy:   domain.CategoryHierarchy{Level: 1, Path: []string{"cat-computers"}},
			IsActive:    true,
			IsFeatured:  true,
			Stats: domain.CategoryStats{
				ProductCount:  2,
				PopularBrands: []string{"Apple", "Asus"},
				PriceRange:    domain.PriceRange{Min: 4199, Max: 5290},
				Currency:      "ILS",
			},
			FeaturedProducts: []string{"prod-4"},
			DealProducts:     []string{"prod-5"},
			CreatedAt:        date(2022, time.January, 1),
			UpdatedAt:        date(2024, time.May, 2),
		},
		{
			ID:             "cat-audio",
			Slug:           "audio",
			Name:           ls("אודיו", "Audio"),
			Description:    ls("אוזניות, רמקולים ומערכות שמע", "Headphones, speakers and sound systems"),
			Icon:           "headphones",
			SortOrder:      3,
			Hierarchy:      domain.CategoryHierarchy{Level: 0, ChildrenIDs: []string{"cat-headphones"}},
			IsMainCategory: true,
			IsActive:       true,
			Stats: domain.CategoryStats{
				ProductCount: 2,
				PriceRange:   domain.PriceRange{Min: 899, Max: 1099},
				Currency:     "ILS",
			},
			CreatedAt: date(2022, time.January, 1),
			UpdatedAt: date(2024, time.April, 2),
		},
		{
			ID:          "cat-headphones",
			Slug:        "headphones",
			Name:        ls("אוזניות", "Headphones"),
			Description: ls("אוזניות אלחוטיות וחוטיות", "Wireless and wired headphones"),
			Icon:        "headset",
			ParentID:    "cat-audio",
			SortOrder:   1,
			Hierarchy:   domain.CategoryHierarchy{Level: 1, Path: []string{"cat-audio"}},
			IsActive:    true,
			Stats: domain.CategoryStats{
				ProductCount:  2,
				PopularBrands: []string{"Sony", "Apple"},
				PriceRange:    domain.PriceRange{Min: 899, Max: 1099},
				Currency:      "ILS",
			},
			DealProducts: []string{"prod-6"},
			CreatedAt:    date(2022, time.January, 1),
			UpdatedAt:    date(2024, time.April, 2),
		},
	}
}

func sampleReviews() []domain.Review {
	return []domain.Review{
		{
			ID:          "rev-1",
			ProductID:   "prod-1",
			Kind:        domain.ContentProductReview,
			Title:       ls("אייפון 15 פרו: כמעט מושלם", "iPhone 15 Pro: almost perfect"),
			Summary:     ls("טיטניום, USB-C וביצועים מעולים, אבל המחיר עדיין גבוה", "Titanium, USB-C and great performance, but the price is still steep"),
			Score:       4.8,
			Author:      "Noa Levi",
			PublishedAt: date(2023, time.October, 2),
		},
		{
			ID:          "rev-2",
			ProductID:   "prod-6",
			Kind:        domain.ContentProductReview,
			Title:       ls("סוני XM5: שקט תעשייתי", "Sony XM5: industrial-grade silence"),
			Summary:     ls("ביטול הרעשים הטוב ששמענו, בנוחות משופרת", "The best noise cancelling we've heard, now more comfortable"),
			Score:       4.7,
			Author:      "Amit Shapira",
			PublishedAt: date(2024, time.January, 14),
		},
		{
			ID:          "rev-3",
			ProductID:   "prod-4",
			Kind:        domain.ContentProductReview,
			Title:       ls("מקבוק אייר M3: העבודה הניידת במיטבה", "MacBook Air M3: mobile work at its best"),
			Summary:     ls("שקט, מהיר ומחזיק יום עבודה שלם", "Silent, fast and lasts a full workday"),
			Score:       4.6,
			Author:      "Noa Levi",
			PublishedAt: date(2024, time.March, 20),
		},
		{
			ID:          "rev-4",
			ProductID:   "prod-2",
			Kind:        domain.ContentComparison,
			Title:       ls("S24 אולטרה מול אייפון 15 פרו", "S24 Ultra vs iPhone 15 Pro"),
			Summary:     ls("שני דגלים, שתי גישות: מי מנצח במצלמה ובסוללה?", "Two flagships, two approaches: who wins on camera and battery?"),
			Score:       4.7,
			Author:      "Amit Shapira",
			PublishedAt: date(2024, time.February, 18),
		},
	}
}
