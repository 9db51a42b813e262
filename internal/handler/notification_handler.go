package handler

import (
	"context"
	"os"

	"viralpost-be/internal/pkg/logger"
	internalWS "viralpost-be/internal/websocket"
	"viralpost-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NotificationHandler exposes the websocket endpoint and relays pipeline
// events from the bus to connected clients.
type NotificationHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewNotificationHandler(hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	ws := r.Group("/notification/v1")
	ws.Get("/ws", h.ServeWs)
}

// SubscribeBus forwards generation lifecycle events to the owning user's
// websocket connections.
func (h *NotificationHandler) SubscribeBus(ctx context.Context, bus *events.Bus) error {
	return bus.Subscribe(ctx, func(evt events.Event) {
		if evt.EventType() != events.TypeGenerationCompleted {
			return
		}
		userIDStr, ok := evt.Payload()["user_id"].(string)
		if !ok {
			return
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return
		}
		h.hub.Send(userID, internalWS.Notification{
			Type: "generation_completed",
			Data: evt.Payload(),
		})
	})
}

// ServeWs handles websocket requests from the peer.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	// Token source: query param for browsers, Authorization header for tooling.
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
		h.logger.Warn("NotificationHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err})
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
			internalWS.NewClient(h.hub, conn, userID)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
