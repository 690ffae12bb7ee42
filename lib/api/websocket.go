package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// statsInterval is how often connected clients get a stats update.
var statsInterval = 2 * time.Second

// @Summary	Open websocket for realtime render statistics
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade already replied to the client
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			slog.Debug(fmt.Sprintf("could not close websocket: %s", err), slog.String("module", "api"))
		}
	}(ws)

	a.wsClientsMu.Lock()
	a.wsClients[ws] = true
	a.wsClientsMu.Unlock()
	a.Stats.AddWsClients(1)

	go a.websocketWriter(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	a.wsClientsMu.Lock()
	delete(a.wsClients, ws)
	a.wsClientsMu.Unlock()
	a.Stats.AddWsClients(-1)
}

func (a *Api) websocketWriter(ws *websocket.Conn) {
	pingTicker := time.NewTicker(statsInterval)
	defer func() {
		pingTicker.Stop()
		_ = ws.Close()
	}()
	timeout := 10 * time.Second

	send := func() bool {
		packet, err := json.Marshal(a.Stats.Current())
		if err != nil {
			return false
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			slog.Warn(fmt.Sprintf("could not set write deadline: %s", err), slog.String("module", "api"))
			return false
		}
		return ws.WriteMessage(websocket.TextMessage, packet) == nil
	}

	if !send() {
		return
	}
	for range pingTicker.C {
		if !send() {
			return
		}
	}
}
