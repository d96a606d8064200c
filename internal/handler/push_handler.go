package handler

import (
	"os"

	"ai-assistant-be/internal/pkg/logger"
	internalWS "ai-assistant-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PushHandler upgrades authenticated clients onto the websocket hub so
// they receive real-time task, event, and suggestion pushes.
type PushHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewPushHandler(hub *internalWS.Hub, log logger.ILogger) *PushHandler {
	return &PushHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *PushHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on websocket handshakes, so the token
	// also rides in a query param.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("PushHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("PushHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("PushHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the websocket endpoint.
func (h *PushHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
