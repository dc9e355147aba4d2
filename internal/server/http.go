package server

import (
	"context"
	"dusk-rpg/internal/engine"
	"dusk-rpg/internal/version"
	"dusk-rpg/pkg/logger"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Server раздаёт WebSocket-сессии. Каждое подключение получает свою Session,
// общими остаются только хранилище сохранений и конфиг.
type Server struct {
	Config engine.Config
	Store  engine.SaveStore

	httpServer *http.Server
	clients    atomic.Int64
	log        *logrus.Entry
}

func New(cfg engine.Config, store engine.SaveStore) *Server {
	s := &Server{
		Config: cfg,
		Store:  store,
		log:    logger.Component("http_server"),
	}
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes регистрирует роуты. Вынесено отдельно для httptest.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	return mux
}

// Run запускает HTTP сервер и блокируется до Shutdown.
func (s *Server) Run() error {
	s.log.WithField("port", s.Config.Port).Info("Dusk server listening.")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает приём подключений.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("Websocket upgrade failed.")
		return
	}

	// Сид на подключение: одинаковый конфиг не даёт одинаковых боёв у разных клиентов
	n := s.clients.Add(1)
	cfg := s.Config
	if cfg.Seed != 0 {
		cfg.Seed += n
	}
	session := engine.NewSession(s.Store, cfg.NewRNG())

	client := NewClient(session, conn, n)
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		s.log.WithError(err).Debug("Health write failed.")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Current()); err != nil {
		s.log.WithError(err).Debug("Version write failed.")
	}
}
