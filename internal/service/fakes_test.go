package service

import (
	"go-pos-dashboard/internal/gateway"
	"go-pos-dashboard/internal/model"
)

type fakeInventoryGateway struct {
	items       map[model.Location][]model.InventoryItem
	createCalls [][]model.InventoryItem
	updateCalls []model.ItemUpdate
	updateIDs   []string
	priceCalls  []model.PriceUpdate
	bulkCalls   [][]model.BulkItemUpdate
	bulkDamaged []bool
	failFetch   error
}

func (f *fakeInventoryGateway) Inventory(location model.Location) ([]model.InventoryItem, error) {
	if f.failFetch != nil {
		return nil, f.failFetch
	}
	return f.items[location], nil
}

func (f *fakeInventoryGateway) CreateItems(items []model.InventoryItem) error {
	f.createCalls = append(f.createCalls, items)
	return nil
}

func (f *fakeInventoryGateway) UpdateItem(itemID string, update model.ItemUpdate) error {
	f.updateIDs = append(f.updateIDs, itemID)
	f.updateCalls = append(f.updateCalls, update)
	return nil
}

func (f *fakeInventoryGateway) UpdatePrice(update model.PriceUpdate) error {
	f.priceCalls = append(f.priceCalls, update)
	return nil
}

func (f *fakeInventoryGateway) BulkUpdate(items []model.BulkItemUpdate, damaged bool) error {
	f.bulkCalls = append(f.bulkCalls, items)
	f.bulkDamaged = append(f.bulkDamaged, damaged)
	return nil
}

type fakeTransactionGateway struct {
	created       []model.TransactionPayload
	createErr     error
	transactions  []model.Transaction
	sales         []model.SaleRecord
	discounted    []model.Transaction
	statusUpdates map[int64]model.PaymentStatus
}

func (f *fakeTransactionGateway) Create(payload model.TransactionPayload) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, payload)
	return nil
}

func (f *fakeTransactionGateway) List() ([]model.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionGateway) Sales() ([]model.SaleRecord, error) {
	return f.sales, nil
}

func (f *fakeTransactionGateway) DiscountPercentList() ([]model.Transaction, error) {
	return f.discounted, nil
}

func (f *fakeTransactionGateway) UpdatePaymentStatus(id int64, status model.PaymentStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = map[int64]model.PaymentStatus{}
	}
	f.statusUpdates[id] = status
	return nil
}

type fakeTransferGateway struct {
	transfers []model.TransferRequest
	bulks     []model.BulkTransferRequest
	history   []model.HistoryEntry
}

func (f *fakeTransferGateway) Transfer(req model.TransferRequest) error {
	f.transfers = append(f.transfers, req)
	return nil
}

func (f *fakeTransferGateway) BulkTransfer(req model.BulkTransferRequest) error {
	f.bulks = append(f.bulks, req)
	return nil
}

func (f *fakeTransferGateway) History() ([]model.HistoryEntry, error) {
	return f.history, nil
}

type fakeAuthGateway struct {
	role string
	err  error
}

func (f *fakeAuthGateway) VerifyUser(username, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.role, nil
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) NotifyStockRefresh(location, source string) {
	f.events = append(f.events, source)
}

var (
	_ gateway.InventoryGateway   = (*fakeInventoryGateway)(nil)
	_ gateway.TransactionGateway = (*fakeTransactionGateway)(nil)
	_ gateway.TransferGateway    = (*fakeTransferGateway)(nil)
	_ gateway.AuthGateway        = (*fakeAuthGateway)(nil)
)
