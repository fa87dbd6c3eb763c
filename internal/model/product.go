package model

// ExtractedFields is the raw result of running the selector rules against a
// loaded product page. Pointer fields distinguish "absent" from a real zero:
// a page with no price is not a page with a free product.
type ExtractedFields struct {
	ExternalID      string
	ShopID          string
	Title           string
	Description     string
	ThumbnailURL    string
	ImageURLs       []string
	VideoURL        string
	Price           *float64
	OriginalPrice   *float64
	DiscountPercent *float64
	Rating          float64
	ReviewCount     int64
	SoldCount       *int64
	Category        string
	SellerName      string
	FreeShipping    bool
	Availability    string
}

// Usable reports whether the page yielded enough to build a catalog row.
// Everything else may be empty; title and external id may not.
func (f *ExtractedFields) Usable() bool {
	return f.Title != "" && f.ExternalID != ""
}

// NormalizedProduct is the canonical row appended to the products table.
type NormalizedProduct struct {
	ExternalID      string
	ShopID          string
	Title           string
	Slug            string
	Description     string
	ThumbnailURL    string
	ImageURLs       []string
	VideoURL        string
	Price           *float64 // source currency
	PriceLocal      *int64   // converted, nil when the source price was absent
	OriginalPrice   *float64
	DiscountPercent *float64
	Currency        string
	Rating          float64
	ReviewCount     int64
	SoldCount       *int64
	Category        string
	SellerName      string
	FreeShipping    bool
	Availability    string
	SourcePlatform  string
	SourceURL       string
	Tags            []string
	IsFeatured      bool
	IsActive        bool
}
