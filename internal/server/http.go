package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"snake-server/internal/engine"
	"snake-server/internal/network"
	"snake-server/internal/version"
	"snake-server/pkg/logger"
)

// Server - HTTP/WebSocket фасад над игровыми сессиями.
// Одно подключение = одна партия: сессия создается при апгрейде
// и останавливается при разрыве соединения.
type Server struct {
	Hub   *network.Broadcaster
	Cfg   engine.Config
	Store engine.ScoreStore
	Port  string

	mu       sync.Mutex
	sessions map[string]*engine.Session
}

func New(cfg engine.Config, store engine.ScoreStore, port string) *Server {
	return &Server{
		Hub:      network.NewBroadcaster(),
		Cfg:      cfg,
		Store:    store,
		Port:     port,
		sessions: make(map[string]*engine.Session),
	}
}

// Run запускает HTTP сервер.
func (s *Server) Run() error {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	// Регистрируем роуты
	r.Get("/ws", s.handleWS)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	debugHandler := NewDebugHandler(s)
	debugHandler.RegisterRoutes(r)

	logger.Log.Infof("🐍 Snake server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}

func (s *Server) addSession(id string, sess *engine.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *Server) removeSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sessions возвращает снимок активных сессий (для debug-роутов).
func (s *Server) Sessions() map[string]*engine.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]*engine.Session, len(s.sessions))
	for id, sess := range s.sessions {
		out[id] = sess
	}
	return out
}
