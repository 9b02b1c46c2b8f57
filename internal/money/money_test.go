package money

import "testing"

func TestParseFormatRoundTrip(t *testing.T) {
	values := []int64{0, 1, 9, 10, 999, 1000, 1250, 40000, 999999, 1000000, 123456789, 999999999999}
	for _, v := range values {
		got := Parse(Money(v).Format())
		if int64(got) != v {
			t.Fatalf("round trip gagal untuk %d: format=%q parse=%d", v, Money(v).Format(), got)
		}
	}
	for v := int64(0); v < 25000; v += 7 {
		if got := Parse(Money(v).Format()); int64(got) != v {
			t.Fatalf("round trip gagal untuk %d, got %d", v, got)
		}
	}
}

func TestFormatGrouping(t *testing.T) {
	cases := map[int64]string{
		0:          "Rp.0",
		500:        "Rp.500",
		1500:       "Rp.1.500",
		1000000:    "Rp.1.000.000",
		1234567890: "Rp.1.234.567.890",
	}
	for v, want := range cases {
		if got := Money(v).Format(); got != want {
			t.Fatalf("Format(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestParseNeverFails(t *testing.T) {
	cases := map[string]int64{
		"":             0,
		"abc":          0,
		"Rp.":          0,
		"Rp.0":         0,
		"Rp.1.250.000": 1250000,
		"1.250.000":    1250000,
		"  Rp.500 ":    500,
		"1,500":        1500,
		"12x":          12,
		"-250":         -250,
	}
	for in, want := range cases {
		if got := Parse(in); int64(got) != want {
			t.Fatalf("Parse(%q) = %d, want %d", in, got, want)
		}
	}
}

// Koma sebagai pemisah desimal ikut dibuang; "1,5" terbaca 15. Perilaku lama
// yang dipertahankan apa adanya.
func TestParseCommaAmbiguity(t *testing.T) {
	if got := Parse("1,5"); got != 15 {
		t.Fatalf("Parse(\"1,5\") = %d, want 15", got)
	}
}

func TestApplyPercent(t *testing.T) {
	if got := Money(1000000).ApplyPercent(10); got != 900000 {
		t.Fatalf("ApplyPercent(10) atas 1.000.000 = %d, want 900000", got)
	}
	if got := Money(1000000).ApplyPercent(0); got != 1000000 {
		t.Fatalf("ApplyPercent(0) mengubah nilai: %d", got)
	}
	if got := Money(333).ApplyPercent(50); got != 167 {
		t.Fatalf("ApplyPercent(50) atas 333 = %d, want 167", got)
	}
}

func TestParseThousands(t *testing.T) {
	cases := map[string]int64{
		"12":      12000,
		"12.5":    12500,
		"Rp.12.5": 12500,
		"1,250":   1250000,
		"":        0,
		"abc":     0,
	}
	for in, want := range cases {
		if got := ParseThousands(in); int64(got) != want {
			t.Fatalf("ParseThousands(%q) = %d, want %d", in, got, want)
		}
	}
}
