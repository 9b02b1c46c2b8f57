package model

// DiscountType adalah mode diskon pada form penjualan.
type DiscountType string

const (
	DiscountNone    DiscountType = "none"
	DiscountPercent DiscountType = "percent"
	DiscountAmount  DiscountType = "amount" // diskon per item
	DiscountTotal   DiscountType = "total"  // potongan flat atas grand total
)

func (d DiscountType) Valid() bool {
	switch d {
	case DiscountNone, DiscountPercent, DiscountAmount, DiscountTotal:
		return true
	}
	return false
}

// PaymentStatus mengikuti istilah kasir: lunas / belum lunas.
type PaymentStatus string

const (
	PaymentLunas      PaymentStatus = "lunas"
	PaymentBelumLunas PaymentStatus = "belum lunas"
)

// NormalizePaymentStatus menerima ejaan lama "belom lunas" dari layar lama.
func NormalizePaymentStatus(s string) PaymentStatus {
	if s == "belom lunas" {
		return PaymentBelumLunas
	}
	return PaymentStatus(s)
}

func (p PaymentStatus) Valid() bool {
	return p == PaymentLunas || p == PaymentBelumLunas
}

// Metode pembayaran mengikuti payment_id backend.
const PaymentMethodDP = 7

var PaymentMethodNames = map[int]string{
	1: "Tunai",
	2: "Debit",
	3: "Transfer",
	4: "Cek / GIRO",
	5: "QR",
	6: "Hutang",
	7: "DP",
}

// SaleLine adalah satu baris penjualan dalam payload transaksi.
type SaleLine struct {
	ItemID          string `json:"item_id"`
	Price           int64  `json:"price"`
	Quantity        int    `json:"quantity"`
	DiscountPerItem int64  `json:"discount_per_item"`
	Description     string `json:"description"`
	Total           int64  `json:"total"`
}

// TransactionPayload adalah body POST /api/transactions, disusun oleh alur
// submit form penjualan.
type TransactionPayload struct {
	Sales           []SaleLine    `json:"sales" validate:"required,min=1"`
	DiscountType    DiscountType  `json:"discount_type" validate:"required,oneof=none percent amount total"`
	DiscountPercent float64       `json:"discount_percent" validate:"gte=0"`
	TotalDiscount   int64         `json:"total_discount" validate:"gte=0"`
	PaymentID       int           `json:"payment_id" validate:"required,gt=0"`
	PaymentStatus   PaymentStatus `json:"payment_status" validate:"required"`
	CustomerName    string        `json:"customer_name" validate:"required"`
	TotalPrice      int64         `json:"total_price"`
	Location        Location      `json:"location" validate:"required,location"`
	DownPayment     int64         `json:"down_payment" validate:"gte=0"`
}

// Transaction adalah transaksi tersimpan sebagaimana dikembalikan backend.
// Setelah tersimpan hanya payment_status yang boleh dikoreksi.
type Transaction struct {
	TransactionID   int64         `json:"transaction_id"`
	DiscountType    DiscountType  `json:"discount_type"`
	DiscountPercent float64       `json:"discount_percent"`
	TotalDiscount   int64         `json:"total_discount"`
	PaymentID       int           `json:"payment_id"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CustomerName    string        `json:"customer_name"`
	Timestamp       string        `json:"timestamp"`
	Location        Location      `json:"location"`
	TotalPrice      int64         `json:"total_price"`
	DownPayment     int64         `json:"down_payment"`
}

// SaleRecord adalah baris penjualan dari GET /api/sales, dipakai laporan
// bulanan lewat korelasi transaction_id.
type SaleRecord struct {
	SaleID        int64  `json:"sale_id"`
	ItemID        string `json:"item_id,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	Total         int64  `json:"total"`
	TransactionID int64  `json:"transaction_id"`
}
