package report

import (
	"fmt"
	"sort"
	"time"

	"go-pos-dashboard/internal/money"
)

// PageSize adalah jumlah bucket per halaman pada laporan harian.
const PageSize = 5

// Entry adalah satu baris mentah yang siap diagregasi. Amount adalah
// kontribusi baris ke total bucket, dihitung pemanggil (total penjualan, atau
// quantity x harga untuk history pindahan).
type Entry struct {
	ID        string      `json:"id"`
	ItemID    string      `json:"item_id,omitempty"`
	Label     string      `json:"label,omitempty"`
	Quantity  int         `json:"quantity"`
	Amount    money.Money `json:"amount"`
	Timestamp time.Time   `json:"timestamp"`

	Source      string `json:"source,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// Bucket adalah hasil pengelompokan: daftar baris plus akumulasi kuantitas
// dan nilai, dengan timestamp terbaru untuk pengurutan.
type Bucket struct {
	Key           string      `json:"key"`
	Rows          []Entry     `json:"rows"`
	TotalQuantity int         `json:"total_quantity"`
	TotalAmount   money.Money `json:"total_amount"`
	Latest        time.Time   `json:"latest"`
}

// KeyFunc memetakan satu baris ke kunci bucket-nya.
type KeyFunc func(Entry) string

// Group mengelompokkan baris dalam satu lintasan, mengakumulasi total secara
// inkremental, lalu mengurutkan bucket dari timestamp terbaru.
func Group(entries []Entry, key KeyFunc) []*Bucket {
	index := map[string]*Bucket{}
	var order []*Bucket

	for _, e := range entries {
		k := key(e)
		b, ok := index[k]
		if !ok {
			b = &Bucket{Key: k}
			index[k] = b
			order = append(order, b)
		}
		b.Rows = append(b.Rows, e)
		b.TotalQuantity += e.Quantity
		b.TotalAmount += e.Amount
		if e.Timestamp.After(b.Latest) {
			b.Latest = e.Timestamp
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Latest.After(order[j].Latest)
	})
	return order
}

// FilterDate menyaring baris yang jatuh pada tanggal tertentu (hari lokal).
func FilterDate(entries []Entry, date time.Time) []Entry {
	y, m, d := date.Date()
	var out []Entry
	for _, e := range entries {
		ey, em, ed := e.Timestamp.Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}

// Paginate memotong daftar bucket per halaman (halaman pertama = 1).
func Paginate(buckets []*Bucket, page, size int) []*Bucket {
	if size < 1 {
		size = PageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(buckets) {
		return nil
	}
	end := start + size
	if end > len(buckets) {
		end = len(buckets)
	}
	return buckets[start:end]
}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthKey memformat bulan-tahun dalam bahasa Indonesia ("Januari 2024").
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// DayKey memformat kunci harian "yyyy-MM-dd".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseTimestamp menerima format timestamp yang dipakai backend: RFC3339,
// "2006-01-02 15:04:05", atau tanggal polos.
func ParseTimestamp(s string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q tidak dikenali: %w", s, err)
}
