package handler

import (
	"errors"
	"strconv"

	"go-pos-dashboard/internal/gateway"
	"go-pos-dashboard/internal/ledger"
	"go-pos-dashboard/internal/model"
	"go-pos-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

// salesError memetakan error service ke status HTTP.
func salesError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrScreenNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidStage):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrSubmitFailed):
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gateway.ErrUpstream), errors.Is(err, gateway.ErrBadShape):
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	case gateway.StatusOf(err) != 0:
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	}
	return c.Status(400).JSON(fiber.Map{"error": err.Error()})
}

func (h *SalesHandler) OpenScreen(c *fiber.Ctx) error {
	var req struct {
		Location string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	state, err := h.service.OpenScreen(model.NormalizeLocation(req.Location))
	if err != nil {
		return salesError(c, err)
	}
	return c.Status(201).JSON(state)
}

func (h *SalesHandler) GetScreen(c *fiber.Ctx) error {
	state, err := h.service.Screen(c.Params("id"))
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

func (h *SalesHandler) AddRow(c *fiber.Ctx) error {
	state, err := h.service.AddRow(c.Params("id"))
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

func (h *SalesHandler) RemoveRow(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid row index"})
	}
	state, err := h.service.RemoveRow(c.Params("id"), index)
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

func (h *SalesHandler) SetField(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid row index"})
	}

	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	state, err := h.service.SetField(c.Params("id"), index, ledger.Field(req.Field), req.Value)
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

func (h *SalesHandler) LookupItems(c *fiber.Ctx) error {
	items, err := h.service.LookupItems(c.Params("id"), c.Query("q"))
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(fiber.Map{"data": items})
}

func (h *SalesHandler) SelectItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid row index"})
	}

	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	state, err := h.service.SelectItem(c.Params("id"), index, req.ItemID)
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

// SetDiscount menerima mode baru atau nilai untuk mode aktif. Mengirim mode
// selalu mereset nilai lama.
func (h *SalesHandler) SetDiscount(c *fiber.Ctx) error {
	var req struct {
		Mode    *string  `json:"mode"`
		Percent *float64 `json:"percent"`
		Total   *int64   `json:"total"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	id := c.Params("id")
	if req.Mode != nil {
		state, err := h.service.SetDiscountMode(id, model.DiscountType(*req.Mode))
		if err != nil {
			return salesError(c, err)
		}
		return c.JSON(state)
	}

	var percent float64
	var total int64
	if req.Percent != nil {
		percent = *req.Percent
	}
	if req.Total != nil {
		total = *req.Total
	}
	state, err := h.service.SetDiscountValue(id, percent, total)
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

func (h *SalesHandler) ProceedToPayment(c *fiber.Ctx) error {
	var req struct {
		CustomerName  string `json:"customer_name"`
		PaymentID     int    `json:"payment_id"`
		PaymentStatus string `json:"payment_status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	state, err := h.service.ProceedToPayment(c.Params("id"), req.CustomerName, req.PaymentID, req.PaymentStatus)
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

func (h *SalesHandler) SetDownPayment(c *fiber.Ctx) error {
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	state, err := h.service.SetDownPayment(c.Params("id"), req.Amount)
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

func (h *SalesHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Params("id"))
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(summary)
}

func (h *SalesHandler) Submit(c *fiber.Ctx) error {
	state, err := h.service.Submit(c.Params("id"))
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction submitted", "data": state})
}

func (h *SalesHandler) BackToEditing(c *fiber.Ctx) error {
	state, err := h.service.BackToEditing(c.Params("id"))
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(state)
}

func (h *SalesHandler) ListTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.ListTransactions()
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(fiber.Map{"data": transactions})
}

// UpdatePaymentStatus mengubah status pembayaran transaksi tersimpan.
// PUT /api/v1/transactions/:id/payment-status
func (h *SalesHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var req struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdatePaymentStatus(id, req.PaymentStatus); err != nil {
		return salesError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment status updated"})
}
