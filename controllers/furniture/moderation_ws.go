package furnitureControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/furnimarket/furniture-market-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClients is shared between connection goroutines and the request
// goroutines that broadcast; every access goes through wsMu.
var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// ModerationFeedHandler streams newly submitted (pending) listings to
// connected admin dashboards.
func ModerationFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer func() {
		wsMu.Lock()
		delete(wsClients, conn)
		wsMu.Unlock()
		conn.Close()
	}()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func broadcastPendingListing(listing models.Furniture) {
	data, err := json.Marshal(listing)
	if err != nil {
		return
	}

	// Snapshot under the lock; the writes happen outside it so a slow
	// client cannot block connects and disconnects.
	wsMu.Lock()
	clients := make([]*websocket.Conn, 0, len(wsClients))
	for client := range wsClients {
		clients = append(clients, client)
	}
	wsMu.Unlock()

	for _, client := range clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
