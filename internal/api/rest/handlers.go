package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/gorilla/mux"
)

// PickSubmitter runs a pick-set submission through the full pipeline:
// validation, in-memory replacement, persistence, and broadcast. The REST
// POST route and the websocket pick-update path share one implementation.
type PickSubmitter interface {
	SubmitPicks(ctx context.Context, set league.PickSet) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	games  *league.GameDB
	teams  *league.TeamDB
	users  *league.UserDB
	picks  *league.PickDB
	submit PickSubmitter
}

// NewHandler creates a new handler
func NewHandler(games *league.GameDB, teams *league.TeamDB, users *league.UserDB, picks *league.PickDB, submit PickSubmitter) *Handler {
	return &Handler{
		games:  games,
		teams:  teams,
		users:  users,
		picks:  picks,
		submit: submit,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "parlay-club-server",
		"version": "1.0.0",
	})
}

// GetGames returns all games, or one week's games when ?week= is given
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	var games []*league.Game

	if weekStr := r.URL.Query().Get("week"); weekStr != "" {
		week, err := strconv.Atoi(weekStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid week parameter", err)
			return
		}
		games = h.games.FromWeek(week)
	} else {
		games = h.games.AllGames()
	}

	out := make([]league.GameData, 0, len(games))
	for _, g := range games {
		out = append(out, g.Data())
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": out,
		"count": len(out),
	})
}

// GetGame returns a specific game by ID
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID, err := strconv.Atoi(vars["gameID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	game := h.games.FromID(gameID)
	if game == nil {
		respondError(w, http.StatusNotFound, "Game not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, game.Data())
}

// GetCurrentWeek returns the current league week
func (h *Handler) GetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]int{
		"week": h.games.CurrentWeek(false),
	})
}

// GetTeams returns the full team table, pseudo-teams included
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.teams.AllTeams())
}

// GetUsers returns the league member table
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.users.AllUsers())
}

// GetPicks returns picks, optionally scoped by ?week= and ?user=
func (h *Handler) GetPicks(w http.ResponseWriter, r *http.Request) {
	weekStr := r.URL.Query().Get("week")
	userStr := r.URL.Query().Get("user")

	var week, user int
	var err error
	if weekStr != "" {
		if week, err = strconv.Atoi(weekStr); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid week parameter", err)
			return
		}
	}
	if userStr != "" {
		if user, err = strconv.Atoi(userStr); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid user parameter", err)
			return
		}
	}

	var picks []league.Pick
	switch {
	case weekStr != "" && userStr != "":
		picks = h.picks.ForUserWeek(user, week)
	case weekStr != "":
		picks = h.picks.ForWeek(week)
	default:
		picks = h.picks.AllPicks()
	}

	if picks == nil {
		picks = []league.Pick{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"picks": picks,
		"count": len(picks),
	})
}

// SubmitPicks accepts a full pick-set replacement for one user and week
func (h *Handler) SubmitPicks(w http.ResponseWriter, r *http.Request) {
	var set league.PickSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid pick submission body", err)
		return
	}

	if err := h.submit.SubmitPicks(r.Context(), set); err != nil {
		if league.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "Pick submission references unknown entity", err)
			return
		}
		respondError(w, http.StatusBadRequest, "Pick submission rejected", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Picks accepted",
		"userID":  set.UserID,
		"week":    set.Week,
		"count":   len(set.Picks),
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
