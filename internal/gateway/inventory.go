package gateway

import (
	"fmt"

	"go-pos-dashboard/internal/model"

	"github.com/gofiber/fiber/v2"
)

type InventoryGateway interface {
	Inventory(location model.Location) ([]model.InventoryItem, error)
	CreateItems(items []model.InventoryItem) error
	UpdateItem(itemID string, update model.ItemUpdate) error
	UpdatePrice(update model.PriceUpdate) error
	BulkUpdate(items []model.BulkItemUpdate, damaged bool) error
}

type inventoryGateway struct {
	client *Client
}

func NewInventoryGateway(client *Client) InventoryGateway {
	return &inventoryGateway{client: client}
}

func (g *inventoryGateway) Inventory(location model.Location) ([]model.InventoryItem, error) {
	var envelope struct {
		Meta interface{}           `json:"meta"`
		Data []model.InventoryItem `json:"data"`
	}
	path := fmt.Sprintf("/api/inventory/%s", location)
	if err := g.client.doJSON(fiber.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// CreateItems menambah barang baru secara massal (terima barang).
func (g *inventoryGateway) CreateItems(items []model.InventoryItem) error {
	body := map[string]interface{}{"items": items}
	return g.client.doJSON(fiber.MethodPost, "/api/items", body, nil)
}

// UpdateItem mengoreksi kuantitas/deskripsi/harga atau memindahkan barang ke
// lokasi lain (retur).
func (g *inventoryGateway) UpdateItem(itemID string, update model.ItemUpdate) error {
	return g.client.doJSON(fiber.MethodPut, "/api/items/"+itemID, update, nil)
}

func (g *inventoryGateway) UpdatePrice(update model.PriceUpdate) error {
	return g.client.doJSON(fiber.MethodPut, "/api/items/price", update, nil)
}

// BulkUpdate mengubah kuantitas banyak barang sekaligus; damaged mengarah ke
// endpoint khusus barang rusak.
func (g *inventoryGateway) BulkUpdate(items []model.BulkItemUpdate, damaged bool) error {
	path := "/api/items"
	if damaged {
		path = "/api/items/rusak"
	}
	body := map[string]interface{}{"items": items}
	return g.client.doJSON(fiber.MethodPut, path, body, nil)
}
