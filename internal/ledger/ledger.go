package ledger

import (
	"fmt"
	"strings"

	"go-pos-dashboard/internal/model"
	"go-pos-dashboard/internal/money"
)

// Field adalah kolom baris yang bisa diedit dari layar.
type Field string

const (
	FieldItemID      Field = "item_id"
	FieldPrice       Field = "unit_price"
	FieldQuantity    Field = "quantity"
	FieldDiscount    Field = "discount_per_item"
	FieldDescription Field = "description"
)

// Row adalah satu baris penjualan pada form. Identitas baris adalah indeksnya.
type Row struct {
	ItemID          string      `json:"item_id"`
	UnitPrice       money.Money `json:"unit_price"`
	Quantity        int         `json:"quantity"`
	DiscountPerItem money.Money `json:"discount_per_item"`
	Description     string      `json:"description"`
	StockSnapshot   int         `json:"stock_snapshot"`
	Total           money.Money `json:"total"`
}

func (r *Row) recalc() {
	t := int64(r.UnitPrice)*int64(r.Quantity) - int64(r.DiscountPerItem)*int64(r.Quantity)
	if t < 0 {
		t = 0
	}
	r.Total = money.Money(t)
}

// Ledger adalah daftar baris penjualan yang sedang diedit. Selalu berisi
// minimal satu baris.
type Ledger struct {
	rows []Row
	// thousandsInput: layar marketplace memasukkan harga dalam ribuan.
	thousandsInput bool
}

func New(thousandsInput bool) *Ledger {
	l := &Ledger{thousandsInput: thousandsInput}
	l.Reset()
	return l
}

// Reset mengembalikan ledger ke satu baris kosong (quantity 1, diskon 0).
func (l *Ledger) Reset() {
	l.rows = []Row{blankRow()}
}

func blankRow() Row {
	return Row{Quantity: 1}
}

func (l *Ledger) Len() int {
	return len(l.rows)
}

// Rows mengembalikan salinan baris agar state internal tidak bisa diubah
// dari luar.
func (l *Ledger) Rows() []Row {
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// AddRow menambah baris kosong di akhir.
func (l *Ledger) AddRow() {
	l.rows = append(l.rows, blankRow())
}

// RemoveRow menghapus baris pada indeks. Baris terakhir tidak pernah dihapus.
func (l *Ledger) RemoveRow(index int) bool {
	if index < 0 || index >= len(l.rows) || len(l.rows) == 1 {
		return false
	}
	l.rows = append(l.rows[:index], l.rows[index+1:]...)
	return true
}

// SetField mengubah satu kolom pada satu baris dan menghitung ulang total
// baris itu saja. Quantity yang melebihi stok di-clamp ke stok dan
// menghasilkan peringatan, bukan error.
func (l *Ledger) SetField(index int, field Field, value string) (warning string, err error) {
	if index < 0 || index >= len(l.rows) {
		return "", fmt.Errorf("baris %d tidak ada", index)
	}
	row := &l.rows[index]

	switch field {
	case FieldItemID:
		row.ItemID = value
		return "", nil
	case FieldDescription:
		row.Description = value
		return "", nil
	case FieldPrice:
		if l.thousandsInput {
			row.UnitPrice = money.ParseThousands(value)
		} else {
			row.UnitPrice = money.Parse(value)
		}
	case FieldQuantity:
		qty := leadingInt(value)
		if qty > row.StockSnapshot {
			warning = fmt.Sprintf("Jumlah tidak boleh lebih dari stok yang tersedia (%d).", row.StockSnapshot)
			qty = row.StockSnapshot
		}
		row.Quantity = qty
	case FieldDiscount:
		row.DiscountPerItem = money.Parse(value)
	default:
		return "", fmt.Errorf("kolom %q tidak dikenal", field)
	}

	row.recalc()
	return warning, nil
}

// SelectItem mengisi baris dari barang yang dipilih di autocomplete: harga,
// deskripsi, dan snapshot stok.
func (l *Ledger) SelectItem(index int, item model.InventoryItem) error {
	if index < 0 || index >= len(l.rows) {
		return fmt.Errorf("baris %d tidak ada", index)
	}
	row := &l.rows[index]
	row.ItemID = item.ItemID
	row.UnitPrice = money.Money(item.Price)
	row.Description = item.Description
	row.StockSnapshot = item.Quantity
	row.recalc()
	return nil
}

// ClearDiscounts mengosongkan diskon per item di semua baris. Dipanggil saat
// mode diskon berganti.
func (l *Ledger) ClearDiscounts() {
	for i := range l.rows {
		l.rows[i].DiscountPerItem = 0
		l.rows[i].recalc()
	}
}

// Lookup mencari barang pada snapshot inventory dengan pencocokan substring
// tanpa memperhatikan kapital, untuk dropdown pemilihan barang.
func Lookup(items []model.InventoryItem, query string) []model.InventoryItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []model.InventoryItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ItemID), q) {
			matches = append(matches, item)
		}
	}
	return matches
}

// leadingInt membaca digit di depan string, meniru parseInt layar lama
// ("12x" => 12, selain itu 0).
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	v := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		v = v*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return v
}
