package service

import (
	"errors"

	"go-pos-dashboard/internal/gateway"
	"go-pos-dashboard/internal/ledger"
	"go-pos-dashboard/internal/model"
	"go-pos-dashboard/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrSameLocation   = errors.New("Source and Destination must be different.")
	ErrFieldsRequired = errors.New("All fields are required.")
)

type StockService interface {
	Inventory(location model.Location, query string) ([]model.InventoryItem, error)
	Transfer(req model.TransferRequest) error
	BulkTransfer(req model.BulkTransferRequest) (string, error)
	Receive(req model.ReceiveRequest) error
	BulkReceive(items []model.InventoryItem) error
	Return(req model.ReturnRequest) error
	ReturnDamaged(items []model.DamagedItem) error
	CorrectItem(itemID string, update model.ItemUpdate) error
	CorrectPrice(update model.PriceUpdate) error
	BulkCorrect(items []model.BulkItemUpdate) error
}

type stockService struct {
	invGateway      gateway.InventoryGateway
	transferGateway gateway.TransferGateway
	notifier        Notifier
}

func NewStockService(inv gateway.InventoryGateway, transfer gateway.TransferGateway, notifier Notifier) StockService {
	return &stockService{
		invGateway:      inv,
		transferGateway: transfer,
		notifier:        notifier,
	}
}

// Inventory memuat snapshot satu lokasi; query menyaring ala layar telusuri.
func (s *stockService) Inventory(location model.Location, query string) ([]model.InventoryItem, error) {
	if !location.Valid() {
		return nil, ErrInvalidLocation
	}
	items, err := s.invGateway.Inventory(location)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}
	return ledger.Lookup(items, query), nil
}

// Transfer memindahkan satu barang. Semua validasi jalan sebelum ada satu pun
// panggilan jaringan.
func (s *stockService) Transfer(req model.TransferRequest) error {
	req.Source = model.NormalizeLocation(req.Source).String()
	req.Destination = model.NormalizeLocation(req.Destination).String()

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return ErrFieldsRequired
	}
	if req.Source == req.Destination {
		return ErrSameLocation
	}

	if err := s.transferGateway.Transfer(req); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh(req.Destination, "transfer")
	}
	return nil
}

// BulkTransfer memindahkan banyak barang sekaligus dan memberi satu group_id
// supaya seluruh baris terkorelasi di laporan history.
func (s *stockService) BulkTransfer(req model.BulkTransferRequest) (string, error) {
	req.Source = model.NormalizeLocation(req.Source).String()
	req.Destination = model.NormalizeLocation(req.Destination).String()

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return "", ErrFieldsRequired
	}
	if req.Source == req.Destination {
		return "", ErrSameLocation
	}
	if req.GroupID == "" {
		req.GroupID = uuid.New().String()
	}

	if err := s.transferGateway.BulkTransfer(req); err != nil {
		return "", err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh(req.Destination, "transfer")
	}
	return req.GroupID, nil
}

// Receive mencatat penerimaan barang ke gudang (Terima Barang).
func (s *stockService) Receive(req model.ReceiveRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return ErrFieldsRequired
	}

	item := model.InventoryItem{
		ItemID:      req.ItemID,
		Description: req.Description,
		Quantity:    req.Quantity,
	}
	if err := s.invGateway.CreateItems([]model.InventoryItem{item}); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh(model.LocationGudang.String(), "receive")
	}
	return nil
}

func (s *stockService) BulkReceive(items []model.InventoryItem) error {
	if len(items) == 0 {
		return ErrFieldsRequired
	}
	for _, item := range items {
		if errs := validator.ValidateStruct(item); len(errs) > 0 {
			return ErrFieldsRequired
		}
	}
	if err := s.invGateway.CreateItems(items); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh(model.LocationGudang.String(), "receive")
	}
	return nil
}

// Return mengembalikan barang ke suatu lokasi (Retur Barang).
func (s *stockService) Return(req model.ReturnRequest) error {
	req.Location = model.NormalizeLocation(req.Location.String())
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return ErrFieldsRequired
	}

	update := model.ItemUpdate{
		Location:    req.Location,
		Quantity:    &req.Quantity,
		Description: &req.Description,
	}
	if err := s.invGateway.UpdateItem(req.ItemID, update); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh(req.Location.String(), "return")
	}
	return nil
}

// ReturnDamaged menandai barang rusak lewat endpoint khusus rusak.
func (s *stockService) ReturnDamaged(items []model.DamagedItem) error {
	if len(items) == 0 {
		return ErrFieldsRequired
	}
	updates := make([]model.BulkItemUpdate, 0, len(items))
	for _, item := range items {
		if errs := validator.ValidateStruct(item); len(errs) > 0 {
			return ErrFieldsRequired
		}
		updates = append(updates, model.BulkItemUpdate{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			SaleID:   item.SaleID,
		})
	}
	if err := s.invGateway.BulkUpdate(updates, true); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh(model.LocationRusak.String(), "return")
	}
	return nil
}

// CorrectItem adalah koreksi manual kuantitas/deskripsi/harga satu barang.
func (s *stockService) CorrectItem(itemID string, update model.ItemUpdate) error {
	if itemID == "" {
		return ErrFieldsRequired
	}
	if update.Quantity == nil && update.Description == nil && update.Price == nil && update.Location == "" {
		return ErrFieldsRequired
	}
	if err := s.invGateway.UpdateItem(itemID, update); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh(update.Location.String(), "koreksi")
	}
	return nil
}

func (s *stockService) CorrectPrice(update model.PriceUpdate) error {
	if errs := validator.ValidateStruct(update); len(errs) > 0 {
		return ErrFieldsRequired
	}
	if err := s.invGateway.UpdatePrice(update); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh("", "koreksi")
	}
	return nil
}

func (s *stockService) BulkCorrect(items []model.BulkItemUpdate) error {
	if len(items) == 0 {
		return ErrFieldsRequired
	}
	for _, item := range items {
		if errs := validator.ValidateStruct(item); len(errs) > 0 {
			return ErrFieldsRequired
		}
	}
	if err := s.invGateway.BulkUpdate(items, false); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyStockRefresh("", "koreksi")
	}
	return nil
}
