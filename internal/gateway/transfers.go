package gateway

import (
	"go-pos-dashboard/internal/model"

	"github.com/gofiber/fiber/v2"
)

type TransferGateway interface {
	Transfer(req model.TransferRequest) error
	BulkTransfer(req model.BulkTransferRequest) error
	History() ([]model.HistoryEntry, error)
}

type transferGateway struct {
	client *Client
}

func NewTransferGateway(client *Client) TransferGateway {
	return &transferGateway{client: client}
}

func (g *transferGateway) Transfer(req model.TransferRequest) error {
	return g.client.doJSON(fiber.MethodPost, "/api/transfer", req, nil)
}

func (g *transferGateway) BulkTransfer(req model.BulkTransferRequest) error {
	return g.client.doJSON(fiber.MethodPost, "/api/inventory", req, nil)
}

func (g *transferGateway) History() ([]model.HistoryEntry, error) {
	var envelope struct {
		Meta interface{}          `json:"meta"`
		Data []model.HistoryEntry `json:"data"`
	}
	if err := g.client.doJSON(fiber.MethodGet, "/api/history", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
