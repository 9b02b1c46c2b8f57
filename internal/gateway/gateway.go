// Package gateway membungkus REST API backend eksternal. Semua akses data
// persisten lewat sini; dashboard tidak punya penyimpanan sendiri.
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrUpstream: request ke backend gagal terkirim atau koneksi putus.
	ErrUpstream = errors.New("backend request failed")
	// ErrBadShape: backend menjawab 2xx tapi bentuk datanya tidak dikenali.
	ErrBadShape = errors.New("unexpected backend response shape")
)

// HTTPError adalah jawaban non-2xx dari backend.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
}

// StatusOf mengembalikan status HTTP dari error gateway, 0 bila bukan
// HTTPError.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}

// Client memegang base URL backend. Alamat datang dari konfigurasi, bukan
// hardcode.
type Client struct {
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

// doJSON mengirim satu request JSON dan mengurai jawabannya ke out (bila
// bukan nil). Satu percobaan saja, tanpa retry, mengikuti perilaku layar asli.
func (c *Client) doJSON(method, path string, body interface{}, out interface{}) error {
	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if body != nil {
		agent.JSON(body)
	}

	if err := agent.Parse(); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	code, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrUpstream, errs[0])
	}
	if code < 200 || code >= 300 {
		return &HTTPError{Status: code, Body: string(respBody)}
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: %v", ErrBadShape, err)
		}
	}
	return nil
}
