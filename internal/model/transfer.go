package model

// TransferRequest adalah pindahan satu barang antar lokasi.
type TransferRequest struct {
	Source      string `json:"source" validate:"required,location"`
	Destination string `json:"destination" validate:"required,location"`
	ItemID      string `json:"item_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

// TransferItem adalah satu baris pada pindahan massal.
type TransferItem struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// BulkTransferRequest memindahkan beberapa barang sekaligus. GroupID diisi
// dashboard agar seluruh baris terkorelasi di history.
type BulkTransferRequest struct {
	Source      string         `json:"source" validate:"required,location"`
	Destination string         `json:"destination" validate:"required,location"`
	Items       []TransferItem `json:"items" validate:"required,min=1,dive"`
	GroupID     string         `json:"group_id,omitempty"`
}

// HistoryEntry adalah satu baris dari GET /api/history.
type HistoryEntry struct {
	PindahanID  int64  `json:"pindahan_id"`
	ItemID      string `json:"item_id"`
	Quantity    int    `json:"quantity"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	GroupID     string `json:"group_id"`
	Price       int64  `json:"price,omitempty"`
}
