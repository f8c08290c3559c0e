package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	ws "github.com/pachatour/pacha_tour/websocket"
)

// WebsocketUpgrade gates the admin feed endpoint to websocket requests and
// stashes the caller id before the connection is hijacked.
func WebsocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("admin_id", currentUserID(c))
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// AdminBookingFeed streams live booking activity to the admin dashboard.
var AdminBookingFeed = websocket.New(func(conn *websocket.Conn) {
	userID, _ := conn.Locals("admin_id").(uuid.UUID)

	client := &ws.Client{UserID: userID, Conn: conn}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		conn.Close()
	}()

	// Reads keep the connection alive; the hub owns all writes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
})
