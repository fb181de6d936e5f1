package websocket

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/gorilla/websocket"
)

// heartbeatInterval is how often the hub tells clients it is alive.
const heartbeatInterval = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development (TODO: restrict in production)
	},
}

// Server represents the WebSocket server
type Server struct {
	port   string
	server *http.Server
	hub    *Hub
	submit PickSubmitter
}

// NewServer creates a new WebSocket server
func NewServer(submit PickSubmitter) *Server {
	return &Server{
		hub:    NewHub(),
		submit: submit,
	}
}

// Start starts the WebSocket server
func (s *Server) Start(ctx context.Context, port string) error {
	s.port = port

	// Start the hub in a goroutine
	go s.hub.Run()
	go s.heartbeat(ctx)

	// Set up HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleConnection)
	mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
	}

	log.Printf("WebSocket server listening on :%s", port)
	return s.server.ListenAndServe()
}

// handleConnection upgrades a client and wires it into the hub
func (s *Server) handleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := newClient(s.hub, conn, s.submit)
	s.hub.register <- client

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "clients": %d}`, s.hub.ClientCount())
}

// heartbeat tells every client the server is alive on a fixed cadence
func (s *Server) heartbeat(ctx context.Context) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.hub.Broadcast(Message{Topic: TopicHeartbeat, Heartbeat: "alive"})
		}
	}
}

// BroadcastGameUpdates sends a changed-game batch to all connected clients
func (s *Server) BroadcastGameUpdates(games []league.GameData) {
	if len(games) == 0 {
		return
	}
	s.hub.Broadcast(Message{
		Topic: TopicGameUpdate,
		Data:  &GamePayload{Games: games},
	})
}

// BroadcastPickUpdate echoes an accepted pick set to all connected clients
func (s *Server) BroadcastPickUpdate(set league.PickSet) {
	s.hub.Broadcast(Message{
		Topic:      TopicPickUpdate,
		PickUpdate: &set,
	})
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
