package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"shopfeed/internal/model"
)

const maxImages = 5

// Extractor applies a source's ordered fallback rules to a loaded document.
// A field that matches nothing after all rules stays at its zero value; only
// the pipeline decides whether the record as a whole is usable.
type Extractor struct {
	src *Source
}

func NewExtractor(src *Source) *Extractor {
	return &Extractor{src: src}
}

// Extract reads every semantic field out of the document. pageURL supplies
// the external/shop ids (embedded in the product URL on all three sources)
// and the base for resolving relative image links.
func (e *Extractor) Extract(pageURL string, doc *goquery.Document) model.ExtractedFields {
	var f model.ExtractedFields
	f.ExternalID, f.ShopID = e.src.IDs(pageURL)

	f.Title = e.first(doc, FieldTitle)
	f.Description = e.first(doc, FieldDescription)
	f.ThumbnailURL = resolveURL(e.first(doc, FieldThumbnail), pageURL)
	f.VideoURL = resolveURL(e.first(doc, FieldVideo), pageURL)
	f.Category = e.first(doc, FieldCategory)
	f.SellerName = e.first(doc, FieldSeller)
	f.Availability = e.first(doc, FieldAvailability)
	f.FreeShipping = e.first(doc, FieldFreeShipping) != ""

	f.Price = ParsePrice(e.first(doc, FieldPrice))
	f.OriginalPrice = ParsePrice(e.first(doc, FieldOrigPrice))
	f.DiscountPercent = ParsePercent(e.first(doc, FieldDiscount))
	f.Rating = ParseRating(e.first(doc, FieldRating))
	f.ReviewCount = ParseCount(e.first(doc, FieldReviewCount))
	if s := e.first(doc, FieldSoldCount); s != "" {
		n := ParseCount(s)
		f.SoldCount = &n
	}

	for _, img := range e.all(doc, FieldImages, maxImages) {
		f.ImageURLs = append(f.ImageURLs, resolveURL(img, pageURL))
	}
	if f.ThumbnailURL == "" && len(f.ImageURLs) > 0 {
		f.ThumbnailURL = f.ImageURLs[0]
	}
	return f
}

// first walks a field's rules in priority order and returns the first
// non-empty value, or "".
func (e *Extractor) first(doc *goquery.Document, field string) string {
	for _, r := range e.src.Fields[field] {
		var out string
		doc.Find(r.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if v := ruleValue(r, sel); v != "" {
				out = v
				return false
			}
			return true
		})
		if out != "" {
			return out
		}
	}
	return ""
}

// all collects up to max distinct values from the first rule that yields any.
func (e *Extractor) all(doc *goquery.Document, field string, max int) []string {
	for _, r := range e.src.Fields[field] {
		var out []string
		seen := make(map[string]bool)
		doc.Find(r.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			v := ruleValue(r, sel)
			if v == "" || seen[v] {
				return true
			}
			seen[v] = true
			out = append(out, v)
			return len(out) < max
		})
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func ruleValue(r Rule, sel *goquery.Selection) string {
	var v string
	if r.Attr != "" {
		v, _ = sel.Attr(r.Attr)
	} else {
		v = sel.Text()
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if r.Pattern != nil {
		m := r.Pattern.FindStringSubmatch(v)
		if m == nil {
			return ""
		}
		if len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return v
}

func resolveURL(href, base string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	u, err := b.Parse(href)
	if err != nil {
		return href
	}
	return u.String()
}
