package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-pos-dashboard/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireSession(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username": c.Locals("username"),
			"role":     c.Locals("role"),
		})
	})
	app.Get("/admin", RequireSession(), RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestRequireSessionMissingCookie(t *testing.T) {
	t.Setenv("SESSION_SECRET", "rahasia-test")
	app := newProtectedApp()

	resp := doRequest(t, app, "/me", "")
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireSessionInvalidToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "rahasia-test")
	app := newProtectedApp()

	resp := doRequest(t, app, "/me", "bukan-token")
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireSessionValid(t *testing.T) {
	t.Setenv("SESSION_SECRET", "rahasia-test")
	app := newProtectedApp()

	token, err := jwt.GenerateSession("kasir", "user", time.Hour)
	if err != nil {
		t.Fatalf("generate session: %v", err)
	}
	resp := doRequest(t, app, "/me", token)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRole(t *testing.T) {
	t.Setenv("SESSION_SECRET", "rahasia-test")
	app := newProtectedApp()

	userToken, _ := jwt.GenerateSession("kasir", "user", time.Hour)
	resp := doRequest(t, app, "/admin", userToken)
	if resp.StatusCode != 403 {
		t.Fatalf("expected 403 for user role, got %d", resp.StatusCode)
	}

	adminToken, _ := jwt.GenerateSession("owner", "admin", time.Hour)
	resp = doRequest(t, app, "/admin", adminToken)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for admin role, got %d", resp.StatusCode)
	}
}

func TestForgedSecretRejected(t *testing.T) {
	t.Setenv("SESSION_SECRET", "rahasia-lain")
	token, err := jwt.GenerateSession("owner", "admin", time.Hour)
	if err != nil {
		t.Fatalf("generate session: %v", err)
	}

	t.Setenv("SESSION_SECRET", "rahasia-test")
	app := newProtectedApp()
	resp := doRequest(t, app, "/admin", token)
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 for forged token, got %d", resp.StatusCode)
	}
}
