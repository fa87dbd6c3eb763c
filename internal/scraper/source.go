package scraper

import (
	"fmt"
	"net/url"
	"regexp"
)

// Semantic fields a product page can yield. Each maps to an ordered rule list
// in the source definition.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldThumbnail    = "thumbnail"
	FieldImages       = "images"
	FieldVideo        = "video"
	FieldPrice        = "price"
	FieldOrigPrice    = "original_price"
	FieldDiscount     = "discount"
	FieldRating       = "rating"
	FieldReviewCount  = "review_count"
	FieldSoldCount    = "sold_count"
	FieldCategory     = "category"
	FieldSeller       = "seller"
	FieldFreeShipping = "free_shipping"
	FieldAvailability = "availability"
)

// Rule is one candidate lookup for a field: a CSS selector, optionally an
// attribute to read instead of text content, optionally a pattern the value
// must match (first capture group wins when present). Rules are tried in
// order; the first non-empty hit stops the scan. Marketplace markup shifts
// between releases and page variants, so every field carries fallbacks.
type Rule struct {
	Selector string
	Attr     string
	Pattern  *regexp.Regexp
}

// EntryPoint is a labeled listing/search URL used to seed link discovery.
type EntryPoint struct {
	Label string
	URL   string
}

// Source is the full static definition of one marketplace: where to start,
// what a product link looks like, how to read ids out of it, which selector
// rules extract each field, and the fixed currency rate.
type Source struct {
	Platform string
	BaseURL  string

	// Currency carried on the page and the static rate to local currency.
	Currency string
	Rate     float64

	// LinkPattern matches product detail URLs inside anchor hrefs. The
	// capture groups feed IDs below.
	LinkPattern *regexp.Regexp
	// StripQuery canonicalizes discovered links by dropping query/fragment.
	StripQuery bool

	// Fields holds the ordered fallback rules per semantic field.
	Fields map[string][]Rule

	// Modes maps a run mode (bestsellers, new-releases, movers-shakers) to
	// its listing entry points. Search mode builds its URL from the keyword.
	Modes     map[string][]EntryPoint
	SearchURL func(keyword, category string) string

	// FeaturedVolume picks the volume metric compared against the featured
	// threshold: "reviews" or "sold".
	FeaturedVolume string
}

// IDs pulls (externalID, shopID) out of a product URL via LinkPattern capture
// groups. Sources with a single id group leave shopID empty.
func (s *Source) IDs(productURL string) (externalID, shopID string) {
	m := s.LinkPattern.FindStringSubmatch(productURL)
	switch {
	case len(m) >= 3:
		return m[2], m[1]
	case len(m) == 2:
		return m[1], ""
	default:
		return "", ""
	}
}

// Canonicalize normalizes a discovered href into an absolute product URL.
func (s *Source) Canonicalize(href, base string) (string, bool) {
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	u, err := b.Parse(href)
	if err != nil {
		return "", false
	}
	if !s.LinkPattern.MatchString(u.String()) {
		return "", false
	}
	if s.StripQuery {
		u.RawQuery = ""
		u.Fragment = ""
	}
	return u.String(), true
}

// EntryPoints resolves the entry-point list for a mode, falling back to the
// search URL when the mode is "search" or unknown modes to bestsellers.
func (s *Source) EntryPoints(mode, keyword, category string) []EntryPoint {
	if mode == "search" {
		return []EntryPoint{{Label: "search:" + keyword, URL: s.SearchURL(keyword, category)}}
	}
	if eps, ok := s.Modes[mode]; ok {
		return eps
	}
	return s.Modes["bestsellers"]
}

// BySourceName returns the source definition for a platform name.
func BySourceName(platform string) (*Source, error) {
	switch platform {
	case "shopee":
		return Shopee(), nil
	case "amazon":
		return Amazon(), nil
	case "ebay":
		return EBay(), nil
	default:
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
}
