package scraper

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$19.99", 19.99},
		{"฿1,290", 1290},
		{"1,234.56 USD", 1234.56},
		{"US $45.00/ea", 45.00},
	}
	for _, tt := range tests {
		got := ParsePrice(tt.in)
		if got == nil {
			t.Errorf("ParsePrice(%q) = nil, want %v", tt.in, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.in, *got, tt.want)
		}
	}
}

func TestParsePriceAbsent(t *testing.T) {
	for _, in := range []string{"", "   ", "Currently unavailable"} {
		if got := ParsePrice(in); got != nil {
			t.Errorf("ParsePrice(%q) = %v, want nil", in, *got)
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"4.8 out of 5", 4.8},
		{"4.8", 4.8},
		{"5 stars", 5},
		{"9.9", 5}, // clamped
		{"", 0},
		{"no ratings yet", 0},
	}
	for _, tt := range tests {
		if got := ParseRating(tt.in); got != tt.want {
			t.Errorf("ParseRating(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1,234 ratings", 1234},
		{"1.2k", 1200},
		{"1.25k", 1250},
		{"4.5m", 4500000},
		{"ขายแล้ว 2.5พัน ชิ้น", 2500},
		{"1หมื่น", 10000},
		{"3แสน", 300000},
		{"1.2ล้าน", 1200000},
		{"", 0},
		{"sold out", 0},
	}
	for _, tt := range tests {
		if got := ParseCount(tt.in); got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	if got := ParsePercent("-15%"); got == nil || *got != 15 {
		t.Errorf("ParsePercent(-15%%) = %v, want 15", got)
	}
	if got := ParsePercent("ลด 20%"); got == nil || *got != 20 {
		t.Errorf("ParsePercent(Thai 20%%) = %v, want 20", got)
	}
	if got := ParsePercent("no discount"); got != nil {
		t.Errorf("ParsePercent(no discount) = %v, want nil", *got)
	}
}
