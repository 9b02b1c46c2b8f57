package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Hub menyebarkan sinyal refresh stok ke semua layar dashboard yang terbuka,
// supaya snapshot inventory di layar lain ikut diperbarui setelah ada
// penjualan, pindahan, atau koreksi.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("Dashboard screen connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// NotifyStockRefresh mengirim event refresh ke semua layar. source menandai
// aksi pemicunya (sale, transfer, koreksi, retur, terima).
func (h *Hub) NotifyStockRefresh(location, source string) {
	payload := map[string]interface{}{
		"type":     "stock_refresh",
		"location": location,
		"source":   source,
	}
	msg, _ := json.Marshal(payload)
	go func() {
		h.Broadcast <- msg
	}()
}
