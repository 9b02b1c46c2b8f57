package gateway

import (
	"fmt"

	"go-pos-dashboard/internal/model"

	"github.com/gofiber/fiber/v2"
)

type TransactionGateway interface {
	Create(payload model.TransactionPayload) error
	List() ([]model.Transaction, error)
	Sales() ([]model.SaleRecord, error)
	DiscountPercentList() ([]model.Transaction, error)
	UpdatePaymentStatus(transactionID int64, status model.PaymentStatus) error
}

type transactionGateway struct {
	client *Client
}

func NewTransactionGateway(client *Client) TransactionGateway {
	return &transactionGateway{client: client}
}

func (g *transactionGateway) Create(payload model.TransactionPayload) error {
	return g.client.doJSON(fiber.MethodPost, "/api/transactions", payload, nil)
}

func (g *transactionGateway) List() ([]model.Transaction, error) {
	var envelope struct {
		Meta interface{}         `json:"meta"`
		Data []model.Transaction `json:"data"`
	}
	if err := g.client.doJSON(fiber.MethodGet, "/api/transactions", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (g *transactionGateway) Sales() ([]model.SaleRecord, error) {
	var envelope struct {
		Meta interface{}        `json:"meta"`
		Data []model.SaleRecord `json:"data"`
	}
	if err := g.client.doJSON(fiber.MethodGet, "/api/sales", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// DiscountPercentList mengambil transaksi yang memakai diskon persen.
func (g *transactionGateway) DiscountPercentList() ([]model.Transaction, error) {
	var envelope struct {
		Meta interface{}         `json:"meta"`
		Data []model.Transaction `json:"data"`
	}
	if err := g.client.doJSON(fiber.MethodGet, "/api/transactions/discount_percent", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// UpdatePaymentStatus mengoreksi status bayar; satu-satunya field transaksi
// yang boleh berubah setelah tersimpan.
func (g *transactionGateway) UpdatePaymentStatus(transactionID int64, status model.PaymentStatus) error {
	path := fmt.Sprintf("/api/transactions/payment/%d", transactionID)
	body := map[string]interface{}{"payment_status": status}
	return g.client.doJSON(fiber.MethodPut, path, body, nil)
}
