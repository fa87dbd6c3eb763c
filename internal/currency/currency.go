package currency

import "math"

// Convert turns a source-currency amount into a local-currency integer amount
// using a fixed rate. A nil amount means the page carried no price, which
// stays nil all the way to the catalog row.
func Convert(amount *float64, rate float64) *int64 {
	if amount == nil {
		return nil
	}
	v := int64(math.Round(*amount * rate))
	return &v
}
