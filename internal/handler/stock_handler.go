package handler

import (
	"errors"

	"go-pos-dashboard/internal/gateway"
	"go-pos-dashboard/internal/model"
	"go-pos-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSameLocation),
		errors.Is(err, service.ErrFieldsRequired),
		errors.Is(err, service.ErrInvalidLocation):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gateway.ErrUpstream), errors.Is(err, gateway.ErrBadShape):
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	case gateway.StatusOf(err) != 0:
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

// inventoryRow adalah baris listing stok plus nilai stoknya.
type inventoryRow struct {
	model.InventoryItem
	Value int64 `json:"value"`
}

// Inventory lists one location's stock, optionally filtered by ?q=
// GET /api/v1/inventory/:location
func (h *StockHandler) Inventory(c *fiber.Ctx) error {
	location := model.NormalizeLocation(c.Params("location"))
	items, err := h.service.Inventory(location, c.Query("q"))
	if err != nil {
		return stockError(c, err)
	}

	rows := make([]inventoryRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, inventoryRow{InventoryItem: item, Value: item.Value()})
	}
	return c.JSON(fiber.Map{"data": rows})
}

func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var req model.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Transfer(req); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer recorded"})
}

func (h *StockHandler) BulkTransfer(c *fiber.Ctx) error {
	var req model.BulkTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	groupID, err := h.service.BulkTransfer(req)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer recorded", "group_id": groupID})
}

func (h *StockHandler) Receive(c *fiber.Ctx) error {
	var req model.ReceiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Receive(req); err != nil {
		return stockError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item received"})
}

func (h *StockHandler) BulkReceive(c *fiber.Ctx) error {
	var req struct {
		Items []model.InventoryItem `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.BulkReceive(req.Items); err != nil {
		return stockError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Items received"})
}

func (h *StockHandler) Return(c *fiber.Ctx) error {
	var req model.ReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Return(req); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Return recorded"})
}

func (h *StockHandler) ReturnDamaged(c *fiber.Ctx) error {
	var req struct {
		Items []model.DamagedItem `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.ReturnDamaged(req.Items); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Damaged items recorded"})
}

// CorrectItem is a manual stock correction, admin only.
// PUT /api/v1/items/:item_id
func (h *StockHandler) CorrectItem(c *fiber.Ctx) error {
	var update model.ItemUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CorrectItem(c.Params("item_id"), update); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated"})
}

func (h *StockHandler) CorrectPrice(c *fiber.Ctx) error {
	var update model.PriceUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CorrectPrice(update); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Price updated"})
}

func (h *StockHandler) BulkCorrect(c *fiber.Ctx) error {
	var req struct {
		Items []model.BulkItemUpdate `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.BulkCorrect(req.Items); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Items updated"})
}
