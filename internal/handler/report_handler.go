package handler

import (
	"time"

	"go-pos-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func parseDate(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// MonthlySales returns per-month sales totals.
// GET /api/v1/reports/sales/monthly
func (h *ReportHandler) MonthlySales(c *fiber.Ctx) error {
	rows, err := h.service.MonthlySales()
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	}
	return c.JSON(fiber.Map{"data": rows})
}

// DailySales returns one day's sales grouped by payment method.
// GET /api/v1/reports/sales/daily?date=2006-01-02
func (h *ReportHandler) DailySales(c *fiber.Ctx) error {
	date, err := parseDate(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date. Use YYYY-MM-DD"})
	}

	rep, err := h.service.DailySales(date)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	}
	return c.JSON(rep)
}

func (h *ReportHandler) MonthlyTransfers(c *fiber.Ctx) error {
	buckets, err := h.service.MonthlyTransfers()
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	}
	return c.JSON(fiber.Map{"data": buckets})
}

// DailyTransfers returns one day's transfers grouped per group_id, 5 groups
// per page.
// GET /api/v1/reports/transfers/daily?date=2006-01-02&page=1
func (h *ReportHandler) DailyTransfers(c *fiber.Ctx) error {
	date, err := parseDate(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date. Use YYYY-MM-DD"})
	}
	page := c.QueryInt("page", 1)

	rep, err := h.service.DailyTransfers(date, page)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	}
	return c.JSON(rep)
}

func (h *ReportHandler) DiscountedSales(c *fiber.Ctx) error {
	rows, err := h.service.DiscountedSales()
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Backend unavailable"})
	}
	return c.JSON(fiber.Map{"data": rows})
}
