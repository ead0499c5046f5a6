package handler

import (
	"github.com/237films-bot/subtrack/internal/pkg/logger"
	internalWS "github.com/237films-bot/subtrack/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// WsHandler upgrades authenticated requests into hub connections. Browsers
// cannot set headers on websocket handshakes, so the token is accepted from
// the query string first, the Authorization header second.
type WsHandler struct {
	hub       *internalWS.Hub
	jwtSecret []byte
	logger    logger.ILogger
}

func NewWsHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *WsHandler {
	return &WsHandler{
		hub:       hub,
		jwtSecret: []byte(jwtSecret),
		logger:    log,
	}
}

func (h *WsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.ServeWs)
}

func (h *WsHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("WsHandler", "invalid token in handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			internalWS.ServeWs(h.hub, conn)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
