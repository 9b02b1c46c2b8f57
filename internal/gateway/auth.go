package gateway

import "github.com/gofiber/fiber/v2"

type AuthGateway interface {
	// VerifyUser memverifikasi kredensial ke backend dan mengembalikan role.
	VerifyUser(username, password string) (string, error)
}

type authGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) VerifyUser(username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var envelope struct {
		Data struct {
			Role string `json:"role"`
		} `json:"data"`
	}
	if err := g.client.doJSON(fiber.MethodPost, "/api/verify-user", body, &envelope); err != nil {
		return "", err
	}
	return envelope.Data.Role, nil
}
