package ledger

import (
	"go-pos-dashboard/internal/model"
	"go-pos-dashboard/internal/money"
)

// Discount adalah pengaturan diskon satu form penjualan. Berganti mode selalu
// destruktif: nilai mode lama dan diskon per baris ikut dikosongkan.
type Discount struct {
	Mode    model.DiscountType `json:"mode"`
	Percent float64            `json:"percent"`
	Total   money.Money        `json:"total"`
}

// SetMode mengganti mode diskon dan mereset seluruh nilai diskon, termasuk
// diskon per item pada ledger.
func (d *Discount) SetMode(mode model.DiscountType, l *Ledger) {
	d.Percent = 0
	d.Total = 0
	l.ClearDiscounts()
	d.Mode = mode
}

// Reset mengembalikan diskon ke mode none.
func (d *Discount) Reset() {
	d.Mode = model.DiscountNone
	d.Percent = 0
	d.Total = 0
}

// Subtotal menjumlahkan total baris; diskon per item sudah terhitung di sana.
func Subtotal(rows []Row) money.Money {
	var sum money.Money
	for _, r := range rows {
		sum += r.Total
	}
	return sum
}

// GrandTotal menurunkan grand total dari baris menurut mode diskon. Fungsi
// murni: input sama selalu menghasilkan output sama.
func GrandTotal(rows []Row, d Discount) money.Money {
	sub := Subtotal(rows)
	switch d.Mode {
	case model.DiscountPercent:
		if d.Percent > 0 {
			sub = sub.ApplyPercent(d.Percent)
		}
	case model.DiscountTotal:
		if d.Total > 0 {
			sub -= d.Total
		}
	}
	if sub < 0 {
		sub = 0
	}
	return sub
}

// TotalDiscount menghitung nilai diskon keseluruhan untuk payload transaksi.
func TotalDiscount(rows []Row, d Discount) money.Money {
	switch d.Mode {
	case model.DiscountAmount:
		var sum money.Money
		for _, r := range rows {
			sum += r.DiscountPerItem.Mul(r.Quantity)
		}
		return sum
	case model.DiscountPercent:
		return Subtotal(rows).Percent(d.Percent)
	case model.DiscountTotal:
		return d.Total
	}
	return 0
}
