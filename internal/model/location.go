package model

import "strings"

// Location adalah kanal penjualan/stok. "rusak" khusus penampungan barang rusak.
type Location string

const (
	LocationToko   Location = "toko"
	LocationGudang Location = "gudang"
	LocationTiktok Location = "tiktok"
	LocationRusak  Location = "rusak"
)

// NormalizeLocation menerima variasi kapital dari layar lama ("Gudang",
// "TikTok") dan mengembalikan bentuk kanonik.
func NormalizeLocation(s string) Location {
	return Location(strings.ToLower(strings.TrimSpace(s)))
}

func (l Location) Valid() bool {
	switch l {
	case LocationToko, LocationGudang, LocationTiktok, LocationRusak:
		return true
	}
	return false
}

func (l Location) String() string {
	return string(l)
}
