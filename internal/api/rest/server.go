package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, games *league.GameDB, teams *league.TeamDB, users *league.UserDB, picks *league.PickDB, submit PickSubmitter) *Server {
	handler := NewHandler(games, teams, users, picks, submit)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Games
	api.HandleFunc("/games", handler.GetGames).Methods("GET")
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/weeks/current", handler.GetCurrentWeek).Methods("GET")

	// Reference tables
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/users", handler.GetUsers).Methods("GET")

	// Picks
	api.HandleFunc("/picks", handler.GetPicks).Methods("GET")
	api.HandleFunc("/picks", handler.SubmitPicks).Methods("POST")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
