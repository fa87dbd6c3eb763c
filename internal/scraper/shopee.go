package scraper

import (
	"net/url"
	"regexp"
)

// Shopee (TH storefront). Product URLs embed shop and item ids as
// "...-i.<shopid>.<itemid>". Prices are THB; counters use Thai magnitude
// words. Selectors ordered current-release first, older class names after.
func Shopee() *Source {
	return &Source{
		Platform:    "shopee",
		BaseURL:     "https://shopee.co.th",
		Currency:    "THB",
		Rate:        40,
		LinkPattern: regexp.MustCompile(`-i\.(\d+)\.(\d+)`),
		StripQuery:  true,

		Fields: map[string][]Rule{
			FieldTitle: {
				{Selector: `div[class*="product-briefing"] span`},
				{Selector: `h1`},
				{Selector: `meta[property="og:title"]`, Attr: "content"},
			},
			FieldDescription: {
				{Selector: `div[class*="product-detail"] p`},
				{Selector: `meta[property="og:description"]`, Attr: "content"},
				{Selector: `meta[name="description"]`, Attr: "content"},
			},
			FieldThumbnail: {
				{Selector: `meta[property="og:image"]`, Attr: "content"},
				{Selector: `div[class*="product-briefing"] img`, Attr: "src"},
			},
			FieldImages: {
				{Selector: `div[class*="product-briefing"] img`, Attr: "src"},
				{Selector: `div[class*="thumbnail"] img`, Attr: "src"},
			},
			FieldVideo: {
				{Selector: `video source`, Attr: "src"},
				{Selector: `video`, Attr: "src"},
			},
			FieldPrice: {
				{Selector: `div[class*="product-briefing"] div[class*="price"]`, Pattern: regexp.MustCompile(`฿?\s*([\d,.]+)`)},
				{Selector: `div[class*="flex-column"] > div:first-child`, Pattern: regexp.MustCompile(`฿\s*([\d,.]+)`)},
				{Selector: `meta[property="product:price:amount"]`, Attr: "content"},
			},
			FieldOrigPrice: {
				{Selector: `div[class*="price"] del`, Pattern: regexp.MustCompile(`฿?\s*([\d,.]+)`)},
				{Selector: `div[class*="original-price"]`, Pattern: regexp.MustCompile(`([\d,.]+)`)},
			},
			FieldDiscount: {
				{Selector: `div[class*="discount"]`, Pattern: regexp.MustCompile(`(\d+)\s*%`)},
				{Selector: `span[class*="percent"]`, Pattern: regexp.MustCompile(`(\d+)\s*%`)},
			},
			FieldRating: {
				{Selector: `div[class*="rating"] div[class*="score"]`},
				{Selector: `div[class*="product-rating"]`, Pattern: regexp.MustCompile(`([\d.]+)`)},
			},
			FieldReviewCount: {
				{Selector: `div[class*="rating"] div[class*="count"]`},
				{Selector: `div[class*="review-count"]`},
			},
			FieldSoldCount: {
				{Selector: `div[class*="sold"]`, Pattern: regexp.MustCompile(`([\d,.]+\s*(?:พัน|หมื่น|แสน|ล้าน|k|m)?)`)},
			},
			FieldCategory: {
				{Selector: `div[class*="breadcrumb"] a:nth-last-child(2)`},
				{Selector: `div[class*="breadcrumb"] a`},
			},
			FieldSeller: {
				{Selector: `div[class*="seller-name"]`},
				{Selector: `div[class*="shop-name"]`},
			},
			FieldFreeShipping: {
				{Selector: `div[class*="shipping"]`, Pattern: regexp.MustCompile(`(ส่งฟรี|free\s*shipping)`)},
			},
			FieldAvailability: {
				{Selector: `div[class*="stock"]`},
				{Selector: `button[class*="buy-now"]`},
			},
		},

		Modes: map[string][]EntryPoint{
			"bestsellers": {
				{Label: "top-products", URL: "https://shopee.co.th/top_products"},
				{Label: "daily-discover", URL: "https://shopee.co.th/daily_discover"},
			},
			"new-releases": {
				{Label: "new-arrivals", URL: "https://shopee.co.th/top_products?catId=new"},
			},
			"movers-shakers": {
				{Label: "flash-sale", URL: "https://shopee.co.th/flash_sale"},
			},
		},
		SearchURL: func(keyword, category string) string {
			u := "https://shopee.co.th/search?keyword=" + url.QueryEscape(keyword)
			if category != "" {
				u += "&category=" + url.QueryEscape(category)
			}
			return u
		},

		FeaturedVolume: "sold",
	}
}
