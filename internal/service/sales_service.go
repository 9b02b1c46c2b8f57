package service

import (
	"errors"
	"sync"
	"time"

	"go-pos-dashboard/internal/gateway"
	"go-pos-dashboard/internal/ledger"
	"go-pos-dashboard/internal/model"
	"go-pos-dashboard/internal/money"
	"go-pos-dashboard/pkg/validator"

	"github.com/google/uuid"
)

// Notifier menyiarkan sinyal refresh stok ke layar dashboard lain.
// *ws.Hub memenuhinya.
type Notifier interface {
	NotifyStockRefresh(location, source string)
}

var (
	ErrScreenNotFound   = errors.New("screen not found")
	ErrInvalidStage     = errors.New("aksi tidak tersedia pada tahap ini")
	ErrInvalidLocation  = errors.New("lokasi tidak dikenal")
	ErrCustomerRequired = errors.New("Nama customer wajib diisi")
	ErrPaymentRequired  = errors.New("Please select a payment method")
	ErrStatusRequired   = errors.New("Pilih status pembayaran")
	ErrSubmitFailed     = errors.New("Transaction failed!")
)

// Stage adalah tahap alur submit form penjualan.
type Stage string

const (
	StageEditing     Stage = "editing"
	StagePayment     Stage = "payment_details"
	StageDownPayment Stage = "down_payment"
	StageConfirming  Stage = "confirming"
	StageSubmitting  Stage = "submitting"
)

// saleScreen adalah state satu instance layar penjualan. Tidak ada state
// global: setiap layar membawa snapshot inventory dan pengaturan diskonnya
// sendiri.
type saleScreen struct {
	id       string
	location model.Location
	ledger   *ledger.Ledger
	discount ledger.Discount
	stage    Stage

	customerName  string
	paymentID     int
	paymentStatus model.PaymentStatus
	downPayment   money.Money

	inventory []model.InventoryItem
	touched   time.Time
	mu        sync.Mutex
}

// ScreenState adalah potret layar yang dikirim ke klien. Grand total selalu
// dalam bentuk terformat di samping nilai mentahnya.
type ScreenState struct {
	ScreenID        string             `json:"screen_id"`
	Location        model.Location     `json:"location"`
	Stage           Stage              `json:"stage"`
	Rows            []ledger.Row       `json:"rows"`
	DiscountType    model.DiscountType `json:"discount_type"`
	DiscountPercent float64            `json:"discount_percent"`
	TotalDiscount   int64              `json:"total_discount"`
	GrandTotal      string             `json:"grand_total"`
	GrandTotalValue int64              `json:"grand_total_value"`
	CustomerName    string             `json:"customer_name,omitempty"`
	PaymentID       int                `json:"payment_id,omitempty"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	PaymentStatus   model.PaymentStatus `json:"payment_status,omitempty"`
	DownPayment     int64              `json:"down_payment,omitempty"`
	Remaining       int64              `json:"remaining_balance,omitempty"`
	Warning         string             `json:"warning,omitempty"`
}

// SaleSummary adalah ringkasan yang ditampilkan sebelum submit final.
type SaleSummary struct {
	Location      model.Location      `json:"location"`
	CustomerName  string              `json:"customer_name"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	Rows          []ledger.Row        `json:"rows"`
	Subtotal      string              `json:"subtotal"`
	TotalDiscount string              `json:"total_discount"`
	GrandTotal    string              `json:"grand_total"`
	DownPayment   string              `json:"down_payment,omitempty"`
	Remaining     string              `json:"remaining_balance,omitempty"`
}

type SalesService interface {
	OpenScreen(location model.Location) (*ScreenState, error)
	Screen(id string) (*ScreenState, error)
	AddRow(id string) (*ScreenState, error)
	RemoveRow(id string, index int) (*ScreenState, error)
	SetField(id string, index int, field ledger.Field, value string) (*ScreenState, error)
	LookupItems(id, query string) ([]model.InventoryItem, error)
	SelectItem(id string, index int, itemID string) (*ScreenState, error)
	SetDiscountMode(id string, mode model.DiscountType) (*ScreenState, error)
	SetDiscountValue(id string, percent float64, total int64) (*ScreenState, error)
	ProceedToPayment(id, customerName string, paymentID int, status string) (*ScreenState, error)
	SetDownPayment(id string, amount int64) (*ScreenState, error)
	Summary(id string) (*SaleSummary, error)
	Submit(id string) (*ScreenState, error)
	BackToEditing(id string) (*ScreenState, error)
	ListTransactions() ([]model.Transaction, error)
	UpdatePaymentStatus(transactionID int64, status string) error
}

type salesService struct {
	invGateway gateway.InventoryGateway
	txGateway  gateway.TransactionGateway
	notifier   Notifier

	mu        sync.Mutex
	screens   map[string]*saleScreen
	screenTTL time.Duration
}

func NewSalesService(inv gateway.InventoryGateway, tx gateway.TransactionGateway, notifier Notifier, screenTTL time.Duration) SalesService {
	return &salesService{
		invGateway: inv,
		txGateway:  tx,
		notifier:   notifier,
		screens:    make(map[string]*saleScreen),
		screenTTL:  screenTTL,
	}
}

// OpenScreen membuat instance layar penjualan baru untuk satu lokasi dan
// memuat snapshot inventory-nya. Layar lama yang sudah tidak disentuh ikut
// dibersihkan di sini; tidak ada timer latar.
func (s *salesService) OpenScreen(location model.Location) (*ScreenState, error) {
	if !location.Valid() || location == model.LocationRusak {
		return nil, ErrInvalidLocation
	}

	inventory, err := s.invGateway.Inventory(location)
	if err != nil {
		return nil, err
	}

	screen := &saleScreen{
		id:       uuid.New().String(),
		location: location,
		ledger:   ledger.New(location == model.LocationTiktok),
		discount: ledger.Discount{Mode: model.DiscountNone},
		stage:    StageEditing,
		inventory: inventory,
		touched:  time.Now(),
	}

	s.mu.Lock()
	s.evictStale()
	s.screens[screen.id] = screen
	s.mu.Unlock()

	return screen.state(""), nil
}

func (s *salesService) evictStale() {
	cutoff := time.Now().Add(-s.screenTTL)
	for id, screen := range s.screens {
		if screen.touched.Before(cutoff) {
			delete(s.screens, id)
		}
	}
}

func (s *salesService) get(id string) (*saleScreen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	screen, ok := s.screens[id]
	if !ok {
		return nil, ErrScreenNotFound
	}
	return screen, nil
}

func (s *salesService) Screen(id string) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return screen.state(""), nil
}

func (s *salesService) AddRow(id string) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageEditing {
		return nil, ErrInvalidStage
	}
	screen.ledger.AddRow()
	screen.touch()
	return screen.state(""), nil
}

func (s *salesService) RemoveRow(id string, index int) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageEditing {
		return nil, ErrInvalidStage
	}
	// Menghapus baris terakhir adalah no-op, bukan error.
	screen.ledger.RemoveRow(index)
	screen.touch()
	return screen.state(""), nil
}

func (s *salesService) SetField(id string, index int, field ledger.Field, value string) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageEditing {
		return nil, ErrInvalidStage
	}
	warning, err := screen.ledger.SetField(index, field, value)
	if err != nil {
		return nil, err
	}
	screen.touch()
	return screen.state(warning), nil
}

func (s *salesService) LookupItems(id, query string) ([]model.InventoryItem, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return ledger.Lookup(screen.inventory, query), nil
}

func (s *salesService) SelectItem(id string, index int, itemID string) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageEditing {
		return nil, ErrInvalidStage
	}
	for _, item := range screen.inventory {
		if item.ItemID == itemID {
			if err := screen.ledger.SelectItem(index, item); err != nil {
				return nil, err
			}
			screen.touch()
			return screen.state(""), nil
		}
	}
	return nil, errors.New("barang tidak ditemukan di inventory")
}

func (s *salesService) SetDiscountMode(id string, mode model.DiscountType) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageEditing {
		return nil, ErrInvalidStage
	}
	if !mode.Valid() {
		return nil, errors.New("mode diskon tidak dikenal")
	}
	screen.discount.SetMode(mode, screen.ledger)
	screen.touch()
	return screen.state(""), nil
}

func (s *salesService) SetDiscountValue(id string, percent float64, total int64) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageEditing {
		return nil, ErrInvalidStage
	}
	switch screen.discount.Mode {
	case model.DiscountPercent:
		screen.discount.Percent = percent
	case model.DiscountTotal:
		screen.discount.Total = money.Money(total)
	default:
		return nil, errors.New("mode diskon aktif tidak menerima nilai ini")
	}
	screen.touch()
	return screen.state(""), nil
}

// ProceedToPayment memvalidasi detail pembayaran. Metode DP berbelok ke tahap
// uang muka, selain itu langsung ke konfirmasi.
func (s *salesService) ProceedToPayment(id, customerName string, paymentID int, status string) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageEditing && screen.stage != StagePayment {
		return nil, ErrInvalidStage
	}

	if customerName == "" {
		return nil, ErrCustomerRequired
	}
	if _, ok := model.PaymentMethodNames[paymentID]; !ok {
		return nil, ErrPaymentRequired
	}
	normalized := model.NormalizePaymentStatus(status)
	if !normalized.Valid() {
		return nil, ErrStatusRequired
	}

	screen.customerName = customerName
	screen.paymentID = paymentID
	screen.paymentStatus = normalized
	if paymentID == model.PaymentMethodDP {
		screen.stage = StageDownPayment
	} else {
		screen.stage = StageConfirming
	}
	screen.touch()
	return screen.state(""), nil
}

// SetDownPayment mencatat uang muka dan menghitung sisa bayar. Sisa negatif
// (DP melebihi total) sengaja tidak ditolak; perilaku lama dipertahankan.
func (s *salesService) SetDownPayment(id string, amount int64) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageDownPayment {
		return nil, ErrInvalidStage
	}
	screen.downPayment = money.Money(amount)
	screen.stage = StageConfirming
	screen.touch()
	return screen.state(""), nil
}

func (s *salesService) Summary(id string) (*SaleSummary, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageConfirming {
		return nil, ErrInvalidStage
	}

	rows := screen.ledger.Rows()
	grand := ledger.GrandTotal(rows, screen.discount)
	summary := &SaleSummary{
		Location:      screen.location,
		CustomerName:  screen.customerName,
		PaymentMethod: model.PaymentMethodNames[screen.paymentID],
		PaymentStatus: screen.paymentStatus,
		Rows:          rows,
		Subtotal:      ledger.Subtotal(rows).Format(),
		TotalDiscount: ledger.TotalDiscount(rows, screen.discount).Format(),
		GrandTotal:    grand.Format(),
	}
	if screen.paymentID == model.PaymentMethodDP {
		summary.DownPayment = screen.downPayment.Format()
		summary.Remaining = (grand - screen.downPayment).Format()
	}
	return summary, nil
}

// Submit menyusun payload transaksi dan mengirimnya sekali ke backend.
// Gagal: form tetap utuh dan kembali ke tahap editing. Sukses: ledger reset
// ke satu baris kosong, mode diskon none, snapshot inventory dimuat ulang,
// dan layar lain diberi sinyal refresh.
func (s *salesService) Submit(id string) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage != StageConfirming {
		return nil, ErrInvalidStage
	}

	payload := screen.buildPayload()
	if errs := validator.ValidateStruct(payload); len(errs) > 0 {
		screen.stage = StageEditing
		return nil, errors.New("Validation failed: field '" + errs[0].FailedField + "' on tag '" + errs[0].Tag + "'")
	}

	screen.stage = StageSubmitting
	if err := s.txGateway.Create(payload); err != nil {
		screen.stage = StageEditing
		return nil, ErrSubmitFailed
	}

	screen.ledger.Reset()
	screen.discount.Reset()
	screen.customerName = ""
	screen.paymentID = 0
	screen.paymentStatus = ""
	screen.downPayment = 0
	screen.stage = StageEditing

	// Refetch best-effort; snapshot lama dipakai bila gagal.
	if inventory, err := s.invGateway.Inventory(screen.location); err == nil {
		screen.inventory = inventory
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh(screen.location.String(), "sale")
	}

	screen.touch()
	return screen.state(""), nil
}

func (s *salesService) BackToEditing(id string) (*ScreenState, error) {
	screen, err := s.get(id)
	if err != nil {
		return nil, err
	}
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if screen.stage == StageSubmitting {
		return nil, ErrInvalidStage
	}
	screen.stage = StageEditing
	screen.touch()
	return screen.state(""), nil
}

func (s *salesService) ListTransactions() ([]model.Transaction, error) {
	return s.txGateway.List()
}

func (s *salesService) UpdatePaymentStatus(transactionID int64, status string) error {
	normalized := model.NormalizePaymentStatus(status)
	if !normalized.Valid() {
		return ErrStatusRequired
	}
	if err := s.txGateway.UpdatePaymentStatus(transactionID, normalized); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh("", "payment_status")
	}
	return nil
}

func (sc *saleScreen) touch() {
	sc.touched = time.Now()
}

func (sc *saleScreen) buildPayload() model.TransactionPayload {
	rows := sc.ledger.Rows()
	lines := make([]model.SaleLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, model.SaleLine{
			ItemID:          r.ItemID,
			Price:           int64(r.UnitPrice),
			Quantity:        r.Quantity,
			DiscountPerItem: int64(r.DiscountPerItem),
			Description:     r.Description,
			Total:           int64(r.Total),
		})
	}

	return model.TransactionPayload{
		Sales:           lines,
		DiscountType:    sc.discount.Mode,
		DiscountPercent: sc.discount.Percent,
		TotalDiscount:   int64(ledger.TotalDiscount(rows, sc.discount)),
		PaymentID:       sc.paymentID,
		PaymentStatus:   sc.paymentStatus,
		CustomerName:    sc.customerName,
		TotalPrice:      int64(ledger.GrandTotal(rows, sc.discount)),
		Location:        sc.location,
		DownPayment:     int64(sc.downPayment),
	}
}

func (sc *saleScreen) state(warning string) *ScreenState {
	rows := sc.ledger.Rows()
	grand := ledger.GrandTotal(rows, sc.discount)

	st := &ScreenState{
		ScreenID:        sc.id,
		Location:        sc.location,
		Stage:           sc.stage,
		Rows:            rows,
		DiscountType:    sc.discount.Mode,
		DiscountPercent: sc.discount.Percent,
		TotalDiscount:   int64(ledger.TotalDiscount(rows, sc.discount)),
		GrandTotal:      grand.Format(),
		GrandTotalValue: int64(grand),
		CustomerName:    sc.customerName,
		PaymentID:       sc.paymentID,
		PaymentMethod:   model.PaymentMethodNames[sc.paymentID],
		PaymentStatus:   sc.paymentStatus,
		DownPayment:     int64(sc.downPayment),
		Warning:         warning,
	}
	if sc.paymentID == model.PaymentMethodDP {
		st.Remaining = int64(grand - sc.downPayment)
	}
	return st
}
