package service

import (
	"sort"
	"strconv"
	"time"

	"go-pos-dashboard/internal/gateway"
	"go-pos-dashboard/internal/model"
	"go-pos-dashboard/internal/money"
	"go-pos-dashboard/internal/report"
)

// MonthlySalesRow adalah satu baris laporan penjualan bulanan.
type MonthlySalesRow struct {
	Month          string `json:"month"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

// CustomerAmount adalah akumulasi belanja satu customer pada laporan harian.
type CustomerAmount struct {
	Customer string `json:"customer"`
	Amount   int64  `json:"amount"`
}

// PaymentMethodGroup mengelompokkan transaksi harian per metode pembayaran.
type PaymentMethodGroup struct {
	Method    string           `json:"method"`
	Customers []CustomerAmount `json:"customers"`
	Total     int64            `json:"total"`
}

// DailySalesReport adalah laporan penjualan satu hari.
type DailySalesReport struct {
	Date       string               `json:"date"`
	Groups     []PaymentMethodGroup `json:"groups"`
	GrandTotal int64                `json:"grand_total"`
}

// TransferBucket adalah satu kelompok laporan pindahan.
type TransferBucket struct {
	Key           string         `json:"key"`
	Rows          []report.Entry `json:"rows"`
	TotalQuantity int            `json:"total_quantity"`
	TotalAmount   int64          `json:"total_amount"`
}

// PagedTransferReport adalah laporan pindahan harian dengan paginasi per
// group_id.
type PagedTransferReport struct {
	Date       string           `json:"date"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	Buckets    []TransferBucket `json:"buckets"`
}

type ReportService interface {
	MonthlySales() ([]MonthlySalesRow, error)
	DailySales(date time.Time) (*DailySalesReport, error)
	MonthlyTransfers() ([]TransferBucket, error)
	DailyTransfers(date time.Time, page int) (*PagedTransferReport, error)
	DiscountedSales() ([]model.Transaction, error)
}

type reportService struct {
	txGateway       gateway.TransactionGateway
	transferGateway gateway.TransferGateway
}

func NewReportService(tx gateway.TransactionGateway, transfer gateway.TransferGateway) ReportService {
	return &reportService{txGateway: tx, transferGateway: transfer}
}

// MonthlySales menjumlahkan penjualan per bulan. Baris sales dikorelasikan ke
// transaksinya untuk mendapat timestamp; baris tanpa transaksi dilewati.
func (s *reportService) MonthlySales() ([]MonthlySalesRow, error) {
	sales, err := s.txGateway.Sales()
	if err != nil {
		return nil, err
	}
	transactions, err := s.txGateway.List()
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Transaction, len(transactions))
	for _, tx := range transactions {
		byID[tx.TransactionID] = tx
	}

	var entries []report.Entry
	for _, sale := range sales {
		tx, ok := byID[sale.TransactionID]
		if !ok || tx.Timestamp == "" {
			continue
		}
		ts, err := report.ParseTimestamp(tx.Timestamp)
		if err != nil {
			continue
		}
		entries = append(entries, report.Entry{
			ID:        strconv.FormatInt(sale.SaleID, 10),
			Quantity:  sale.Quantity,
			Amount:    money.Money(sale.Total),
			Timestamp: ts,
		})
	}

	buckets := report.Group(entries, func(e report.Entry) string {
		return report.MonthKey(e.Timestamp)
	})

	rows := make([]MonthlySalesRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, MonthlySalesRow{
			Month:          b.Key,
			Total:          int64(b.TotalAmount),
			TotalFormatted: b.TotalAmount.Format(),
		})
	}
	return rows, nil
}

// DailySales menyaring transaksi pada satu tanggal lalu mengelompokkan per
// metode pembayaran, dengan rincian per customer.
func (s *reportService) DailySales(date time.Time) (*DailySalesReport, error) {
	transactions, err := s.txGateway.List()
	if err != nil {
		return nil, err
	}

	wantDay := date.Format("2006-01-02")
	grouped := map[string][]CustomerAmount{}
	var methodOrder []string

	for _, tx := range transactions {
		ts, err := report.ParseTimestamp(tx.Timestamp)
		if err != nil || ts.Format("2006-01-02") != wantDay {
			continue
		}

		method, ok := model.PaymentMethodNames[tx.PaymentID]
		if !ok {
			method = "Unknown"
		}
		if _, seen := grouped[method]; !seen {
			methodOrder = append(methodOrder, method)
		}

		merged := false
		for i := range grouped[method] {
			if grouped[method][i].Customer == tx.CustomerName {
				grouped[method][i].Amount += tx.TotalPrice
				merged = true
				break
			}
		}
		if !merged {
			grouped[method] = append(grouped[method], CustomerAmount{
				Customer: tx.CustomerName,
				Amount:   tx.TotalPrice,
			})
		}
	}

	out := &DailySalesReport{Date: wantDay}
	for _, method := range methodOrder {
		group := PaymentMethodGroup{Method: method, Customers: grouped[method]}
		for _, c := range group.Customers {
			group.Total += c.Amount
		}
		out.GrandTotal += group.Total
		out.Groups = append(out.Groups, group)
	}
	return out, nil
}

// MonthlyTransfers mengelompokkan history pindahan per bulan; nilai bucket
// dihitung quantity x harga (0 bila harga tidak tersedia).
func (s *reportService) MonthlyTransfers() ([]TransferBucket, error) {
	history, err := s.transferGateway.History()
	if err != nil {
		return nil, err
	}

	entries := historyEntries(history)
	buckets := report.Group(entries, func(e report.Entry) string {
		return report.MonthKey(e.Timestamp)
	})
	return toTransferBuckets(buckets), nil
}

// DailyTransfers menyaring history pada satu tanggal, mengelompokkan per
// group_id, lalu memotong per halaman (5 kelompok per halaman).
func (s *reportService) DailyTransfers(date time.Time, page int) (*PagedTransferReport, error) {
	history, err := s.transferGateway.History()
	if err != nil {
		return nil, err
	}

	entries := report.FilterDate(historyEntries(history), date)
	buckets := report.Group(entries, func(e report.Entry) string {
		return e.Label
	})

	totalPages := (len(buckets) + report.PageSize - 1) / report.PageSize
	if page < 1 {
		page = 1
	}

	return &PagedTransferReport{
		Date:       date.Format("2006-01-02"),
		Page:       page,
		PageSize:   report.PageSize,
		TotalPages: totalPages,
		Buckets:    toTransferBuckets(report.Paginate(buckets, page, report.PageSize)),
	}, nil
}

func (s *reportService) DiscountedSales() ([]model.Transaction, error) {
	transactions, err := s.txGateway.DiscountPercentList()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp > transactions[j].Timestamp
	})
	return transactions, nil
}

func historyEntries(history []model.HistoryEntry) []report.Entry {
	var entries []report.Entry
	for _, h := range history {
		ts, err := report.ParseTimestamp(h.Timestamp)
		if err != nil {
			continue
		}
		entries = append(entries, report.Entry{
			ID:          strconv.FormatInt(h.PindahanID, 10),
			ItemID:      h.ItemID,
			Label:       h.GroupID,
			Quantity:    h.Quantity,
			Amount:      money.Money(int64(h.Quantity) * h.Price),
			Timestamp:   ts,
			Source:      h.Source,
			Destination: h.Destination,
		})
	}
	return entries
}

func toTransferBuckets(buckets []*report.Bucket) []TransferBucket {
	out := make([]TransferBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, TransferBucket{
			Key:           b.Key,
			Rows:          b.Rows,
			TotalQuantity: b.TotalQuantity,
			TotalAmount:   int64(b.TotalAmount),
		})
	}
	return out
}
