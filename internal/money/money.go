package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money adalah nilai rupiah dalam satuan bulat (tanpa sen).
type Money int64

const prefix = "Rp."

// Parse menerima input user seperti "Rp.1.250.000" dan mengembalikan nilainya.
// Titik dan koma sama-sama diperlakukan sebagai pemisah ribuan.
// Input kosong atau tidak valid menghasilkan 0, tidak pernah error.
func Parse(text string) Money {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, prefix)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	// Ambil digit di depan saja, sisanya diabaikan (perilaku parseFloat).
	var v int64
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		v = v*10 + int64(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	if neg {
		v = -v
	}
	return Money(v)
}

// Format merender nilai dengan prefix "Rp." dan pemisah ribuan gaya id-ID.
func (m Money) Format() string {
	return prefix + group(int64(m))
}

func (m Money) String() string {
	return m.Format()
}

// Mul mengalikan nilai dengan jumlah unit.
func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

// ApplyPercent mengurangi nilai sebesar percent persen, dibulatkan ke rupiah
// terdekat. Perhitungan pecahan lewat decimal agar bebas pembulatan float.
func (m Money) ApplyPercent(percent float64) Money {
	d := decimal.NewFromInt(int64(m))
	cut := d.Mul(decimal.NewFromFloat(percent)).Div(decimal.NewFromInt(100))
	return Money(d.Sub(cut).Round(0).IntPart())
}

// Percent menghitung percent persen dari nilai, dibulatkan ke rupiah terdekat.
func (m Money) Percent(percent float64) Money {
	d := decimal.NewFromInt(int64(m))
	return Money(d.Mul(decimal.NewFromFloat(percent)).Div(decimal.NewFromInt(100)).Round(0).IntPart())
}

// ParseThousands menerapkan heuristik input harga layar marketplace: titik
// dibaca sebagai pemisah desimal dan hasilnya dikali 1000 ("12.5" => 12500).
// TODO: satuan input tiktok belum konsisten dengan layar lain, tunggu
// keputusan produk sebelum disamakan.
func ParseThousands(text string) Money {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, prefix)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return Money(d.Mul(decimal.NewFromInt(1000)).Round(0).IntPart())
}

func group(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	digits := []byte{}
	if v == 0 {
		digits = append(digits, '0')
	}
	for v > 0 {
		digits = append(digits, byte('0'+v%10))
		v /= 10
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	n := len(digits)
	for i := n - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
		if i > 0 && i%3 == 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}
