package scraper

import (
	"net/url"
	"regexp"
)

// eBay. Product URLs carry a single numeric item id in /itm/<id>. Prices are
// USD. Listing pages render server-side, so fewer fallback tiers are needed
// than on the script-heavy sources.
func EBay() *Source {
	return &Source{
		Platform:    "ebay",
		BaseURL:     "https://www.ebay.com",
		Currency:    "USD",
		Rate:        1400,
		LinkPattern: regexp.MustCompile(`/itm/(\d+)`),
		StripQuery:  true,

		Fields: map[string][]Rule{
			FieldTitle: {
				{Selector: `h1.x-item-title__mainTitle span`},
				{Selector: `h1#itemTitle`},
				{Selector: `meta[property="og:title"]`, Attr: "content"},
			},
			FieldDescription: {
				{Selector: `div.x-item-description`},
				{Selector: `meta[name="description"]`, Attr: "content"},
			},
			FieldThumbnail: {
				{Selector: `div.ux-image-carousel-item img`, Attr: "src"},
				{Selector: `#icImg`, Attr: "src"},
				{Selector: `meta[property="og:image"]`, Attr: "content"},
			},
			FieldImages: {
				{Selector: `div.ux-image-carousel-item img`, Attr: "src"},
				{Selector: `#vi_main_img_fs img`, Attr: "src"},
			},
			FieldVideo: {
				{Selector: `video source`, Attr: "src"},
			},
			FieldPrice: {
				{Selector: `div.x-price-primary span.ux-textspans`, Pattern: regexp.MustCompile(`\$\s*([\d,.]+)`)},
				{Selector: `span#prcIsum`, Pattern: regexp.MustCompile(`([\d,.]+)`)},
				{Selector: `span#mm-saleDscPrc`, Pattern: regexp.MustCompile(`([\d,.]+)`)},
			},
			FieldOrigPrice: {
				{Selector: `span.ux-textspans--STRIKETHROUGH`, Pattern: regexp.MustCompile(`\$\s*([\d,.]+)`)},
				{Selector: `span#orgPrc`, Pattern: regexp.MustCompile(`([\d,.]+)`)},
			},
			FieldDiscount: {
				{Selector: `span.ux-textspans--EMPHASIS`, Pattern: regexp.MustCompile(`(\d+)\s*%\s*off`)},
			},
			FieldRating: {
				{Selector: `div.x-review-details span.ux-summary__start--rating`, Pattern: regexp.MustCompile(`([\d.]+)`)},
				{Selector: `span.reviews-star-rating`, Attr: "title", Pattern: regexp.MustCompile(`([\d.]+)`)},
			},
			FieldReviewCount: {
				{Selector: `span.ux-summary__count`, Pattern: regexp.MustCompile(`([\d,]+)`)},
				{Selector: `a#_rvwlnk`, Pattern: regexp.MustCompile(`([\d,]+)`)},
			},
			FieldSoldCount: {
				{Selector: `span.ux-textspans--SECONDARY`, Pattern: regexp.MustCompile(`([\d,.]+k?)\s+sold`)},
			},
			FieldCategory: {
				{Selector: `nav.breadcrumbs li:last-child a`},
				{Selector: `nav.breadcrumbs a`},
			},
			FieldSeller: {
				{Selector: `div.x-sellercard-atf__info__about-seller a span`},
				{Selector: `span.mbg-nw`},
			},
			FieldFreeShipping: {
				{Selector: `div.ux-labels-values--shipping span.ux-textspans`, Pattern: regexp.MustCompile(`(?i)(free)`)},
			},
			FieldAvailability: {
				{Selector: `div.x-quantity__availability span`},
				{Selector: `span#qtySubTxt`},
			},
		},

		Modes: map[string][]EntryPoint{
			"bestsellers": {
				{Label: "trending", URL: "https://www.ebay.com/trending"},
				{Label: "deals", URL: "https://www.ebay.com/deals"},
			},
			"new-releases": {
				{Label: "deals-new", URL: "https://www.ebay.com/deals/new"},
			},
			"movers-shakers": {
				{Label: "deals-featured", URL: "https://www.ebay.com/deals/featured"},
			},
		},
		SearchURL: func(keyword, category string) string {
			u := "https://www.ebay.com/sch/i.html?_nkw=" + url.QueryEscape(keyword)
			if category != "" {
				u += "&_sacat=" + url.QueryEscape(category)
			}
			return u
		},

		FeaturedVolume: "sold",
	}
}
