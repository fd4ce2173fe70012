package websocket

import (
	"encoding/json"
	"sync"

	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
)

// OrderEvent is what the admin dashboard receives when the order book
// changes: a new submission, a status move, or a deletion.
type OrderEvent struct {
	Type  string       `json:"type"`
	Order *model.Order `json:"order"`
}

// Hub fans order events out to connected admin dashboards. It implements
// the order service's notifier interface.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		broadcast:  make(chan []byte, 256),
	}
}

// Run owns the client set. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Order feed client connected", map[string]interface{}{
				"user_id":       client.UserID,
				"total_clients": total,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Order feed client disconnected", map[string]interface{}{
				"user_id":       client.UserID,
				"total_clients": total,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it
					go h.Unregister(client)
					logger.Warn("Order feed client send buffer full, disconnecting", map[string]interface{}{
						"user_id": client.UserID,
					})
				}
			}
			h.mu.RUnlock()
		}
	}
}

// NotifyOrderEvent broadcasts an order lifecycle event to every connected
// dashboard. A full broadcast channel drops the event rather than blocking
// checkout.
func (h *Hub) NotifyOrderEvent(event string, order *model.Order) {
	data, err := json.Marshal(OrderEvent{Type: event, Order: order})
	if err != nil {
		logger.Error("Failed to marshal order event", err, map[string]interface{}{
			"event": event,
		})
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logger.Warn("Order feed broadcast channel full, event dropped", map[string]interface{}{
			"event": event,
		})
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount reports the number of connected dashboards
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
