package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/pachatour/pacha_tour/models"
)

// The hub pushes booking activity to connected admin dashboards.

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type BookingUpdate struct {
	Event   string          `json:"event"`
	Booking *models.Booking `json:"booking"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var BookingFeed = make(chan *BookingUpdate, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Admin dashboard connected: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Admin dashboard disconnected: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case update := <-BookingFeed:
			clientsMu.RLock()
			var stale []uuid.UUID
			for userID, conn := range clients {
				if err := conn.WriteJSON(update); err != nil {
					log.Printf("Error pushing booking update to %s: %v", userID, err)
					conn.Close()
					stale = append(stale, userID)
				}
			}
			clientsMu.RUnlock()
			if len(stale) > 0 {
				clientsMu.Lock()
				for _, userID := range stale {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Push is a non-blocking send; a slow hub never delays a booking request.
func Push(event string, booking *models.Booking) {
	select {
	case BookingFeed <- &BookingUpdate{Event: event, Booking: booking}:
	default:
	}
}
