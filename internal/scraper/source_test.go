package scraper

import (
	"strings"
	"testing"
)

func TestBySourceName(t *testing.T) {
	for _, name := range []string{"shopee", "amazon", "ebay"} {
		src, err := BySourceName(name)
		if err != nil {
			t.Fatalf("BySourceName(%q): %v", name, err)
		}
		if src.Platform != name {
			t.Errorf("platform = %q, want %q", src.Platform, name)
		}
		if src.Rate <= 0 {
			t.Errorf("%s: rate = %v, want positive static rate", name, src.Rate)
		}
		if len(src.Fields[FieldTitle]) == 0 || len(src.Fields[FieldPrice]) == 0 {
			t.Errorf("%s: title/price rules missing", name)
		}
		if len(src.Modes["bestsellers"]) == 0 {
			t.Errorf("%s: bestsellers mode has no entry points", name)
		}
	}
	if _, err := BySourceName("aliexpress"); err == nil {
		t.Error("unknown platform should error")
	}
}

func TestSourceIDs(t *testing.T) {
	tests := []struct {
		platform string
		url      string
		external string
		shop     string
	}{
		{"shopee", "https://shopee.co.th/หูฟังบลูทูธ-i.78901.123456789", "123456789", "78901"},
		{"amazon", "https://www.amazon.com/Wireless-Earbuds/dp/B0ABCD1234", "B0ABCD1234", ""},
		{"ebay", "https://www.ebay.com/itm/334455667788", "334455667788", ""},
	}
	for _, tt := range tests {
		src, _ := BySourceName(tt.platform)
		ext, shop := src.IDs(tt.url)
		if ext != tt.external || shop != tt.shop {
			t.Errorf("%s IDs(%q) = (%q, %q), want (%q, %q)",
				tt.platform, tt.url, ext, shop, tt.external, tt.shop)
		}
	}
}

func TestSourceCanonicalize(t *testing.T) {
	src, _ := BySourceName("ebay")
	u, ok := src.Canonicalize("/itm/334455667788?hash=item4de&var=0", "https://www.ebay.com/deals")
	if !ok {
		t.Fatal("a product link should canonicalize")
	}
	if strings.Contains(u, "?") {
		t.Errorf("url = %q, want query stripped", u)
	}
	if _, ok := src.Canonicalize("/help/policies", "https://www.ebay.com/deals"); ok {
		t.Error("a non-product link should be rejected")
	}
}

func TestSourceEntryPointsSearchMode(t *testing.T) {
	src, _ := BySourceName("amazon")
	eps := src.EntryPoints("search", "wireless earbuds", "electronics")
	if len(eps) != 1 {
		t.Fatalf("got %d entry points, want 1 built from the keyword", len(eps))
	}
	if !strings.Contains(eps[0].URL, "k=wireless+earbuds") {
		t.Errorf("search url = %q, want escaped keyword", eps[0].URL)
	}
	if !strings.Contains(eps[0].URL, "i=electronics") {
		t.Errorf("search url = %q, want category filter", eps[0].URL)
	}
}

func TestSourceEntryPointsUnknownModeFallsBack(t *testing.T) {
	src, _ := BySourceName("shopee")
	if len(src.EntryPoints("nonsense", "", "")) == 0 {
		t.Error("unknown mode should fall back to bestsellers")
	}
}
