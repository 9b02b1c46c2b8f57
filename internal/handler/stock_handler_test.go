package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go-pos-dashboard/internal/model"
	"go-pos-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type fakeStockService struct {
	items     []model.InventoryItem
	transfers []model.TransferRequest
	err       error
}

func (f *fakeStockService) Inventory(location model.Location, query string) ([]model.InventoryItem, error) {
	return f.items, f.err
}

func (f *fakeStockService) Transfer(req model.TransferRequest) error {
	if f.err != nil {
		return f.err
	}
	f.transfers = append(f.transfers, req)
	return nil
}

func (f *fakeStockService) BulkTransfer(req model.BulkTransferRequest) (string, error) {
	return "grp-1", f.err
}

func (f *fakeStockService) Receive(req model.ReceiveRequest) error          { return f.err }
func (f *fakeStockService) BulkReceive(items []model.InventoryItem) error  { return f.err }
func (f *fakeStockService) Return(req model.ReturnRequest) error           { return f.err }
func (f *fakeStockService) ReturnDamaged(items []model.DamagedItem) error  { return f.err }
func (f *fakeStockService) CorrectPrice(update model.PriceUpdate) error    { return f.err }
func (f *fakeStockService) BulkCorrect(items []model.BulkItemUpdate) error { return f.err }

func (f *fakeStockService) CorrectItem(itemID string, update model.ItemUpdate) error {
	return f.err
}

var _ service.StockService = (*fakeStockService)(nil)

func newStockApp(svc service.StockService) *fiber.App {
	app := fiber.New()
	h := NewStockHandler(svc)
	app.Get("/inventory/:location", h.Inventory)
	app.Post("/transfers", h.Transfer)
	app.Post("/transfers/bulk", h.BulkTransfer)
	return app
}

func TestInventoryEndpoint(t *testing.T) {
	svc := &fakeStockService{items: []model.InventoryItem{
		{ItemID: "ITM001", Description: "Kaos", Quantity: 3, Price: 50000},
	}}
	app := newStockApp(svc)

	req := httptest.NewRequest("GET", "/inventory/toko?q=itm", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Data []struct {
			model.InventoryItem
			Value int64 `json:"value"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].ItemID != "ITM001" {
		t.Fatalf("unexpected body: %s", raw)
	}
	if body.Data[0].Value != 150000 {
		t.Fatalf("expected stock value 150000, got %d", body.Data[0].Value)
	}
}

func TestTransferEndpointValidationError(t *testing.T) {
	svc := &fakeStockService{err: service.ErrSameLocation}
	app := newStockApp(svc)

	body := `{"source":"toko","destination":"toko","item_id":"ITM001","quantity":1,"description":"Kaos"}`
	req := httptest.NewRequest("POST", "/transfers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "Source and Destination must be different.") {
		t.Fatalf("expected validation message, got %s", raw)
	}
}

func TestTransferEndpointForwardsBody(t *testing.T) {
	svc := &fakeStockService{}
	app := newStockApp(svc)

	body := `{"source":"gudang","destination":"toko","item_id":"ITM001","quantity":2,"description":"Kaos"}`
	req := httptest.NewRequest("POST", "/transfers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(svc.transfers) != 1 || svc.transfers[0].ItemID != "ITM001" {
		t.Fatalf("unexpected forwarded transfers: %+v", svc.transfers)
	}
}

func TestBulkTransferReturnsGroupID(t *testing.T) {
	app := newStockApp(&fakeStockService{})

	body := `{"source":"gudang","destination":"toko","items":[{"item_id":"ITM001","quantity":1}]}`
	req := httptest.NewRequest("POST", "/transfers/bulk", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "grp-1") {
		t.Fatalf("expected group id in response, got %s", raw)
	}
}
