package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DebugHandler отдает служебную информацию о запущенных сессиях.
// Только для разработки: наружу эти роуты выставлять не нужно.
// Чтение идет без синхронизации с циклом сессии - значения могут
// быть слегка устаревшими, для отладки этого достаточно.
type DebugHandler struct {
	server *Server
}

func NewDebugHandler(s *Server) *DebugHandler {
	return &DebugHandler{server: s}
}

func (h *DebugHandler) RegisterRoutes(r chi.Router) {
	r.Get("/debug/sessions", h.handleSessions)
}

type sessionDebugView struct {
	ID        string  `json:"id"`
	State     string  `json:"state"`
	Score     int     `json:"score"`
	HighScore int     `json:"highScore"`
	SnakeLen  int     `json:"snakeLen"`
	Interval  float64 `json:"interval"`
}

func (h *DebugHandler) handleSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.server.Sessions()

	views := make([]sessionDebugView, 0, len(sessions))
	for id, sess := range sessions {
		e := sess.Engine
		views = append(views, sessionDebugView{
			ID:        id,
			State:     e.State().String(),
			Score:     e.Score(),
			HighScore: e.HighScore(),
			SnakeLen:  len(e.SnakeBody()),
			Interval:  e.MoveInterval(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"count":    len(views),
		"sessions": views,
	})
}
