package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/server/connection"
	serverevents "github.com/lazharichir/blackjack/server/events"
	"github.com/lazharichir/blackjack/server/handlers"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server represents the WebSocket server. Every connection plays its own
// rounds against the dealer.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	connMgr    *connection.Manager
	cmdRouter  *handlers.CommandRouter
	dispatcher *serverevents.Dispatcher
}

// RulesResponse represents the table rules in API responses
type RulesResponse struct {
	NumberOfDecks     int  `json:"numberOfDecks"`
	MaxScore          int  `json:"maxScore"`
	SplitsAllowed     bool `json:"splitsAllowed"`
	SplitOnValue      bool `json:"splitOnValue"`
	DoubleDownAllowed bool `json:"doubleDownAllowed"`
	OfferInsurance    bool `json:"offerInsurance"`
	OfferSurrender    bool `json:"offerSurrender"`
	DealerHitsSoft17  bool `json:"dealerHitsSoft17"`
	MinBet            int  `json:"minBet"`
	StartingCash      int  `json:"startingCash"`
}

func newRulesResponse(rules domain.Rules) RulesResponse {
	return RulesResponse{
		NumberOfDecks:     rules.NumberOfDecks,
		MaxScore:          rules.MaxScore,
		SplitsAllowed:     rules.SplitsAllowed,
		SplitOnValue:      rules.SplitOnValue,
		DoubleDownAllowed: rules.DoubleDownAllowed,
		OfferInsurance:    rules.OfferInsurance,
		OfferSurrender:    rules.OfferSurrender,
		DealerHitsSoft17:  rules.DealerHitsSoft17,
		MinBet:            rules.MinBet,
		StartingCash:      rules.StartingCash,
	}
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// NewServer creates a new blackjack WebSocket server
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	dispatcher := serverevents.NewDispatcher(logger)

	return &Server{
		cfg:        cfg,
		logger:     logger,
		connMgr:    connection.NewManager(),
		cmdRouter:  handlers.NewCommandRouter(dispatcher, logger),
		dispatcher: dispatcher,
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/rules", corsMiddleware(s.handleGetRules))
	return mux
}

// Start begins the server on the specified port
func (s *Server) Start(port string) error {
	go s.connMgr.Start()

	s.logger.Info("starting server", "port", port)
	return http.ListenAndServe("0.0.0.0:"+port, s.Handler())
}

// Close disconnects every client
func (s *Server) Close() {
	s.connMgr.CloseAll()
}

func (s *Server) newEngine(clientID string) (*game.Engine, error) {
	opts := []game.EngineOption{game.WithLogger(s.logger.With("client", clientID))}
	if s.cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(s.cfg.Seed))
	}
	return game.NewEngine(events.NewInMemoryEventStore(), s.cfg.Rules, opts...)
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade to websocket", "error", err)
		return
	}

	clientID := uuid.NewString()
	engine, err := s.newEngine(clientID)
	if err != nil {
		s.logger.Error("failed to create engine", "client", clientID, "error", err)
		conn.Close()
		return
	}

	client := &connection.Client{
		ID:     clientID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		Engine: engine,
	}
	engine.RegisterEventHandler(s.dispatcher.HandlerFor(client))
	s.logger.Info("client connected", "remote", r.RemoteAddr, "client", clientID)

	s.connMgr.Register <- client

	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads commands from the WebSocket connection. Commands run
// one at a time, so the client's engine is never used concurrently.
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister <- client
		client.Conn.Close()
		s.logger.Info("client disconnected", "client", client.ID)
	}()

	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("unexpected close", "client", client.ID, "error", err)
			}
			break
		}

		if err := s.cmdRouter.HandleCommand(client, message); err != nil {
			s.logger.Info("command failed", "client", client.ID, "error", err)
		}
	}
}

// writePump sends queued messages and pings to the WebSocket connection
func (s *Server) writePump(client *connection.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				s.logger.Error("failed to write message", "client", client.ID, "error", err)
				return
			}
		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleGetRules returns the rules every round is played with
func (s *Server) handleGetRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newRulesResponse(s.cfg.Rules))
}
