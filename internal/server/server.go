// Package server exposes the MCTS equity estimator as a small websocket
// service: JSON estimate requests in, progress and result frames out.
// Each request runs its own synchronous search with a private tree, so
// concurrent connections share nothing but the immutable ground-truth table.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/holdem-mcts/internal/analysis"
	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/game"
	"github.com/lox/holdem-mcts/internal/mcts"
)

// EstimateRequest is one estimate job submitted over the websocket.
type EstimateRequest struct {
	Hand       string `json:"hand"`
	Iterations int    `json:"iterations,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

// Frame is a server-to-client message. Type is one of "progress", "result"
// or "error".
type Frame struct {
	Type        string  `json:"type"`
	Hand        string  `json:"hand,omitempty"`
	Done        int     `json:"done,omitempty"`
	Total       int     `json:"total,omitempty"`
	Estimate    float64 `json:"estimate,omitempty"`
	GroundTruth float64 `json:"ground_truth,omitempty"`
	Difference  float64 `json:"difference,omitempty"`
	Iterations  int     `json:"iterations,omitempty"`
	ElapsedMs   int64   `json:"elapsed_ms,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// Server serves estimate requests over websocket connections.
type Server struct {
	cfg      *Config
	upgrader websocket.Upgrader
	logger   *log.Logger
	monitor  *Monitor

	mu          sync.Mutex
	connections map[*websocket.Conn]bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a server from the given config.
func NewServer(cfg *Config, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("server"),
		monitor:     NewMonitor(logger, quartz.NewReal(), 30*time.Second),
		connections: make(map[*websocket.Conn]bool),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start listens and serves until the process exits or Stop is called.
func (s *Server) Start() error {
	go s.monitor.Run(s.ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.logger.Info("Starting estimate service", "addr", s.cfg.ListenAddr())
	return http.ListenAndServe(s.cfg.ListenAddr(), mux)
}

// Stop cancels the server context and closes every open connection.
func (s *Server) Stop() {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.connections {
		_ = conn.Close() // Ignore close errors during shutdown
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	s.mu.Lock()
	s.connections[conn] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)

	defer func() {
		s.mu.Lock()
		delete(s.connections, conn)
		total := len(s.connections)
		s.mu.Unlock()
		_ = conn.Close()
		s.logger.Info("Client disconnected", "total", total)
	}()

	// One request at a time per connection; the read loop doubles as the
	// write serializer.
	for {
		var req EstimateRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Error("Read failed", "error", err)
			}
			return
		}

		if err := s.serveEstimate(conn, req); err != nil {
			s.logger.Error("Estimate failed", "error", err, "hand", req.Hand)
			return
		}
	}
}

// serveEstimate runs one search and writes progress and result frames.
// Request errors are reported to the client on an error frame; only
// transport failures are returned.
func (s *Server) serveEstimate(conn *websocket.Conn, req EstimateRequest) error {
	hole, err := deck.ParseHoleCards(req.Hand)
	if err != nil {
		return conn.WriteJSON(Frame{Type: "error", Hand: req.Hand, Error: err.Error()})
	}

	iterations := req.Iterations
	if iterations == 0 {
		iterations = s.cfg.Search.DefaultIterations
	}
	if iterations < 0 || iterations > s.cfg.Search.MaxIterations {
		return conn.WriteJSON(Frame{
			Type:  "error",
			Hand:  req.Hand,
			Error: fmt.Sprintf("iterations must be between 0 and %d", s.cfg.Search.MaxIterations),
		})
	}

	seed := req.Seed
	if seed == 0 {
		seed = s.cfg.Search.Seed
	}

	progressEvery := iterations / 10
	engine := mcts.New(mcts.Config{
		Exploration: s.cfg.Search.Exploration,
		MaxChildren: s.cfg.Search.MaxChildren,
		Seed:        seed,
		Progress: func(done, totalIters int) {
			_ = conn.WriteJSON(Frame{Type: "progress", Hand: req.Hand, Done: done, Total: totalIters})
		},
		ProgressEvery: progressEvery,
	})

	state, err := game.New(hole)
	if err != nil {
		return conn.WriteJSON(Frame{Type: "error", Hand: req.Hand, Error: err.Error()})
	}

	start := time.Now()
	estimate, err := engine.Search(state, iterations)
	if err != nil {
		// Search errors are contract violations, not client mistakes.
		return fmt.Errorf("search: %w", err)
	}
	elapsed := time.Since(start)

	truth, err := analysis.GroundTruthOdds(hole)
	if err != nil {
		return fmt.Errorf("ground truth: %w", err)
	}

	s.monitor.Record(iterations)
	s.logger.Debug("Estimate served",
		"hand", req.Hand,
		"iterations", iterations,
		"estimate", estimate,
		"elapsed", elapsed)

	diff := estimate - truth
	if diff < 0 {
		diff = -diff
	}

	return conn.WriteJSON(Frame{
		Type:        "result",
		Hand:        req.Hand,
		Estimate:    estimate,
		GroundTruth: truth,
		Difference:  diff,
		Iterations:  iterations,
		ElapsedMs:   elapsed.Milliseconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK")
}
