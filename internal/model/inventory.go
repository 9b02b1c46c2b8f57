package model

// InventoryItem adalah snapshot satu barang pada satu lokasi. Dibuat dan
// diubah oleh backend; dashboard hanya membaca dan mengirim koreksi.
type InventoryItem struct {
	ItemID      string `json:"item_id" validate:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	Price       int64  `json:"price" validate:"gte=0"`
}

// Value menghitung nilai stok barang (quantity x price).
func (i InventoryItem) Value() int64 {
	return int64(i.Quantity) * i.Price
}

// ReceiveRequest adalah penerimaan barang tunggal ke gudang (Terima Barang).
type ReceiveRequest struct {
	ItemID      string `json:"item_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

// ReturnRequest adalah retur barang ke suatu lokasi (Retur Barang).
type ReturnRequest struct {
	ItemID      string   `json:"item_id" validate:"required"`
	Location    Location `json:"location" validate:"required,location"`
	Quantity    int      `json:"quantity" validate:"required,gt=0"`
	Description string   `json:"description" validate:"required"`
}

// DamagedItem adalah satu baris retur barang rusak. SaleID diisi bila retur
// berasal dari penjualan tertentu.
type DamagedItem struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	SaleID   *int64 `json:"sale_id,omitempty"`
}

// ItemUpdate adalah koreksi manual atas satu barang. Field yang nil tidak
// dikirim ke backend.
type ItemUpdate struct {
	Location    Location `json:"location,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *int64   `json:"price,omitempty"`
}

// PriceUpdate adalah koreksi harga lewat PUT /api/items/price.
type PriceUpdate struct {
	ItemID string `json:"item_id" validate:"required"`
	Price  int64  `json:"price" validate:"required,gt=0"`
}

// BulkItemUpdate adalah satu baris update massal kuantitas.
type BulkItemUpdate struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	SaleID   *int64 `json:"sale_id,omitempty"`
}
