package server

import (
	"dusk-rpg/internal/engine"
	"dusk-rpg/pkg/api"
	"dusk-rpg/pkg/logger"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и Session.
// Сессией владеет только readPump: команды выполняются строго по очереди.
type Client struct {
	Session *engine.Session
	Conn    *websocket.Conn
	Send    chan api.ServerResponse

	log *logrus.Entry
}

func NewClient(session *engine.Session, conn *websocket.Conn, n int64) *Client {
	return &Client{
		Session: session,
		Conn:    conn,
		Send:    make(chan api.ServerResponse, 16),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws_client",
			"client":    n,
			"remote":    conn.RemoteAddr().String(),
		}),
	}
}

// readPump читает команды от клиента и отвечает снимком состояния.
// Первой командой ожидается NEW или LOAD, остальное до неё получает ERROR.
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Session.Close(); err != nil {
			c.log.WithError(err).Warn("Failed to save on disconnect.")
		}
		c.log.Info("Client disconnected.")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c.log.Info("Client connected.")

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS read error.")
			}
			return
		}

		resp := c.Session.ProcessCommand(cmd)
		if resp.Type == "UPDATE" && (cmd.Action == "NEW" || cmd.Action == "LOAD") {
			c.log.WithField("player_id", resp.MyEntityID).Info("Client logged in.")
		}
		c.Send <- resp
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
