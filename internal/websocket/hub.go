package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/237films-bot/subtrack/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const redisChannel = "subtrack_events"

// Hub fans domain events out to every connected browser tab. The app is
// single-user, so there is no per-user routing: every message goes to every
// client. When Redis is configured, broadcasts also traverse it so multiple
// instances stay in sync; with a nil client the hub is purely local.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "client registered", map[string]interface{}{"remote": client.Remote})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "client unregistered", map[string]interface{}{"remote": client.Remote})
		}
	}
}

// Broadcast wraps the payload in a typed envelope and delivers it to all
// clients. With Redis on, delivery goes through the channel so every
// instance (this one included, via its subscriber) sees it exactly once.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})
	if err != nil {
		return
	}

	if h.rdb != nil {
		h.rdb.Publish(context.Background(), redisChannel, data)
		return
	}
	h.deliverLocal(data)
}

func (h *Hub) deliverLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer; drop it rather than block everyone else.
			h.logger.Warn("Hub", "client send buffer full, dropping", map[string]interface{}{"remote": client.Remote})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.deliverLocal([]byte(msg.Payload))
	}
}
