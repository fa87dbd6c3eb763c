package currency

import "testing"

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   int64
	}{
		{"zero stays zero", 0, 40, 0},
		{"thb to local", 100, 40, 4000},
		{"usd to local rounds", 19.99, 1400, 27986},
		{"rounds half up", 1.5, 1, 2},
	}
	for _, tt := range tests {
		got := Convert(&tt.amount, tt.rate)
		if got == nil {
			t.Errorf("%s: Convert returned nil for a present amount", tt.name)
			continue
		}
		if *got != tt.want {
			t.Errorf("%s: Convert(%v, %v) = %d, want %d", tt.name, tt.amount, tt.rate, *got, tt.want)
		}
	}
}

func TestConvertAbsentAmount(t *testing.T) {
	if got := Convert(nil, 40); got != nil {
		t.Errorf("Convert(nil, 40) = %d, want nil; absent price must not become zero", *got)
	}
}
