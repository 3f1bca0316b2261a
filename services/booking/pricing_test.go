package booking

import "testing"

func TestRateFor(t *testing.T) {
	cases := []struct {
		name     string
		roomType string
		want     float64
	}{
		{"standard", "standard", 120},
		{"deluxe", "deluxe", 150},
		{"suite", "suite", 220},
		{"executive", "executive", 350},
		{"family", "family", 250},
		{"mixed case", "Deluxe", 150},
		{"surrounding whitespace", "  suite  ", 220},
		{"unknown category falls back to default", "penthouse", DefaultRate},
		{"empty category falls back to default", "", DefaultRate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RateFor(tc.roomType); got != tc.want {
				t.Errorf("RateFor(%q) = %v, want %v", tc.roomType, got, tc.want)
			}
		})
	}
}

func TestPriceStay(t *testing.T) {
	t.Run("deluxe five nights", func(t *testing.T) {
		q := PriceStay("deluxe", 5)
		if q.RatePerNight != 150 {
			t.Errorf("RatePerNight = %v, want 150", q.RatePerNight)
		}
		if q.RoomTotal != 750 {
			t.Errorf("RoomTotal = %v, want 750", q.RoomTotal)
		}
		if q.Taxes != 93.75 {
			t.Errorf("Taxes = %v, want 93.75", q.Taxes)
		}
		if q.GrandTotal != 843.75 {
			t.Errorf("GrandTotal = %v, want 843.75", q.GrandTotal)
		}
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a := PriceStay("suite", FixedNights)
		b := PriceStay("suite", FixedNights)
		if a != b {
			t.Errorf("quotes differ for identical inputs: %+v vs %+v", a, b)
		}
	})

	t.Run("unknown category uses default rate", func(t *testing.T) {
		q := PriceStay("igloo", 2)
		if q.RatePerNight != DefaultRate {
			t.Errorf("RatePerNight = %v, want %v", q.RatePerNight, DefaultRate)
		}
		if q.RoomTotal != DefaultRate*2 {
			t.Errorf("RoomTotal = %v, want %v", q.RoomTotal, DefaultRate*2)
		}
	})

	t.Run("taxes rounded to two decimals", func(t *testing.T) {
		q := PriceStay("standard", 3)
		if q.Taxes != 45 {
			t.Errorf("Taxes = %v, want 45", q.Taxes)
		}
		if q.GrandTotal != q.RoomTotal+q.Taxes {
			t.Errorf("GrandTotal = %v, want RoomTotal+Taxes = %v", q.GrandTotal, q.RoomTotal+q.Taxes)
		}
	})
}
