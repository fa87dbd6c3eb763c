package scraper

import (
	"net/url"
	"regexp"
)

// Amazon (.com). Product URLs carry a single ASIN group in /dp/<ASIN>; there
// is no shop id in the URL, the seller comes off the page. Prices are USD.
func Amazon() *Source {
	return &Source{
		Platform:    "amazon",
		BaseURL:     "https://www.amazon.com",
		Currency:    "USD",
		Rate:        1400,
		LinkPattern: regexp.MustCompile(`/dp/([A-Z0-9]{10})`),
		StripQuery:  true,

		Fields: map[string][]Rule{
			FieldTitle: {
				{Selector: `#productTitle`},
				{Selector: `h1#title span`},
				{Selector: `meta[property="og:title"]`, Attr: "content"},
			},
			FieldDescription: {
				{Selector: `#feature-bullets`},
				{Selector: `#productDescription p`},
				{Selector: `meta[name="description"]`, Attr: "content"},
			},
			FieldThumbnail: {
				{Selector: `#landingImage`, Attr: "src"},
				{Selector: `#imgBlkFront`, Attr: "src"},
				{Selector: `meta[property="og:image"]`, Attr: "content"},
			},
			FieldImages: {
				{Selector: `#altImages img`, Attr: "src"},
				{Selector: `#landingImage`, Attr: "src"},
			},
			FieldVideo: {
				{Selector: `#main-video-container video source`, Attr: "src"},
				{Selector: `video`, Attr: "src"},
			},
			FieldPrice: {
				{Selector: `#corePrice_feature_div .a-offscreen`, Pattern: regexp.MustCompile(`\$\s*([\d,.]+)`)},
				{Selector: `span.a-price span.a-offscreen`, Pattern: regexp.MustCompile(`\$\s*([\d,.]+)`)},
				{Selector: `#priceblock_ourprice`, Pattern: regexp.MustCompile(`([\d,.]+)`)},
				{Selector: `#priceblock_dealprice`, Pattern: regexp.MustCompile(`([\d,.]+)`)},
			},
			FieldOrigPrice: {
				{Selector: `span.a-price.a-text-price span.a-offscreen`, Pattern: regexp.MustCompile(`\$\s*([\d,.]+)`)},
				{Selector: `#listPrice`, Pattern: regexp.MustCompile(`([\d,.]+)`)},
			},
			FieldDiscount: {
				{Selector: `.savingsPercentage`, Pattern: regexp.MustCompile(`(\d+)\s*%`)},
			},
			FieldRating: {
				{Selector: `#acrPopover`, Attr: "title", Pattern: regexp.MustCompile(`([\d.]+)\s+out of`)},
				{Selector: `span[data-hook="rating-out-of-text"]`, Pattern: regexp.MustCompile(`([\d.]+)\s+out of`)},
				{Selector: `i.a-icon-star span`, Pattern: regexp.MustCompile(`([\d.]+)`)},
			},
			FieldReviewCount: {
				{Selector: `#acrCustomerReviewText`, Pattern: regexp.MustCompile(`([\d,]+)`)},
				{Selector: `span[data-hook="total-review-count"]`, Pattern: regexp.MustCompile(`([\d,]+)`)},
			},
			FieldSoldCount: {
				{Selector: `#social-proofing-faceout-title-tk_bought span`, Pattern: regexp.MustCompile(`([\d,.]+k?m?)\+?\s+bought`)},
			},
			FieldCategory: {
				{Selector: `#wayfinding-breadcrumbs_feature_div a:last-of-type`},
				{Selector: `#wayfinding-breadcrumbs_feature_div a`},
			},
			FieldSeller: {
				{Selector: `#sellerProfileTriggerId`},
				{Selector: `#bylineInfo`},
			},
			FieldFreeShipping: {
				{Selector: `#deliveryBlockMessage`, Pattern: regexp.MustCompile(`(?i)(free\s+delivery|free\s+shipping)`)},
				{Selector: `#mir-layout-DELIVERY_BLOCK`, Pattern: regexp.MustCompile(`(?i)(free)`)},
			},
			FieldAvailability: {
				{Selector: `#availability span`},
				{Selector: `#outOfStock`},
			},
		},

		Modes: map[string][]EntryPoint{
			"bestsellers": {
				{Label: "best-sellers", URL: "https://www.amazon.com/gp/bestsellers"},
				{Label: "best-sellers-electronics", URL: "https://www.amazon.com/gp/bestsellers/electronics"},
			},
			"new-releases": {
				{Label: "new-releases", URL: "https://www.amazon.com/gp/new-releases"},
			},
			"movers-shakers": {
				{Label: "movers-and-shakers", URL: "https://www.amazon.com/gp/movers-and-shakers"},
			},
		},
		SearchURL: func(keyword, category string) string {
			u := "https://www.amazon.com/s?k=" + url.QueryEscape(keyword)
			if category != "" {
				u += "&i=" + url.QueryEscape(category)
			}
			return u
		},

		FeaturedVolume: "reviews",
	}
}
