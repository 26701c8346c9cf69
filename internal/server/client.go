package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"snake-server/internal/domain"
	"snake-server/internal/engine"
	"snake-server/pkg/api"
	"snake-server/pkg/logger"
	"snake-server/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и игровой сессией.
type Client struct {
	ID      string
	Conn    *websocket.Conn
	Session *engine.Session
	Inbox   chan api.ServerMessage

	server *Server
}

// handleWS обрабатывает подключение по WebSocket: поднимает личную
// сессию (движок + драйвер) и два пампа.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	clientID := uuid.NewString()

	// Сид сессии детерминированно выводится из мастер-сида и ID клиента
	cfg := s.Cfg
	cfg.Seed = s.Cfg.Seed ^ utils.StringToSeed(clientID)

	eng := engine.NewEngine(cfg, s.Store)
	sess := engine.NewSession(clientID, eng, func(m api.ServerMessage) {
		s.Hub.SendTo(clientID, m)
	})

	client := &Client{
		ID:      clientID,
		Conn:    conn,
		Session: sess,
		Inbox:   s.Hub.Register(clientID),
		server:  s,
	}

	s.addSession(clientID, sess)
	go sess.Run()

	logger.WithSession(clientID).Info("Client connected")

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

// readPump читает команды от клиента и скармливает их сессии.
func (c *Client) readPump() {
	defer func() {
		c.Session.Stop()
		c.server.removeSession(c.ID)
		c.server.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("Websocket close")
		}
		logger.WithSession(c.ID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithSession(c.ID).WithError(err).Warn("Read error")
			}
			return
		}

		if err := cmd.Validate(); err != nil {
			logger.WithSession(c.ID).WithError(err).Warn("Rejected command")
			continue
		}

		// Неблокирующе: переполненный канал команд означает,
		// что клиент спамит быстрее кадров - лишнее отбрасываем
		select {
		case c.Session.Commands <- toCommand(cmd):
		default:
		}
	}
}

// writePump гонит сообщения сессии в сокет и поддерживает ping/pong.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Inbox:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				// Хаб закрыл канал
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// toCommand транслирует провалидированную команду протокола в команду сессии.
func toCommand(cmd api.ClientCommand) engine.Command {
	switch cmd.Action {
	case api.ActionStart:
		return engine.Command{Type: engine.CmdStart}
	case api.ActionRestart:
		return engine.Command{Type: engine.CmdRestart}
	case api.ActionPause:
		return engine.Command{Type: engine.CmdPause}
	case api.ActionResume:
		return engine.Command{Type: engine.CmdResume}
	default: // api.ActionTurn, направление уже провалидировано
		dir, _ := domain.ParseDirection(cmd.Direction)
		return engine.Command{Type: engine.CmdTurn, Direction: dir}
	}
}
