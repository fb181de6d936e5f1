package service

import (
	"context"
	"fmt"
	"log"

	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/GhostCrab/parlay-club-server/internal/publisher"
)

// PickBroadcaster pushes an accepted pick set back out to connected clients.
type PickBroadcaster interface {
	BroadcastPickUpdate(set league.PickSet)
}

// PickStore persists pick-set replacements.
type PickStore interface {
	ReplaceWeek(ctx context.Context, set league.PickSet) error
}

// PickService handles pick submission business logic. Both the REST POST
// route and the websocket pick-update topic run through SubmitPicks, so a
// submission behaves the same no matter which transport carried it.
type PickService struct {
	picks     *league.PickDB
	users     *league.UserDB
	store     PickStore
	pub       *publisher.RedisStreamPublisher
	broadcast PickBroadcaster
}

// NewPickService creates a new pick service. store and pub may be nil;
// persistence and stream publishing are skipped when absent.
func NewPickService(picks *league.PickDB, users *league.UserDB, store PickStore, pub *publisher.RedisStreamPublisher) *PickService {
	return &PickService{
		picks: picks,
		users: users,
		store: store,
		pub:   pub,
	}
}

// SetBroadcaster wires the websocket fan-out in after construction. The
// websocket server needs the service for inbound pick-updates and the
// service needs the server for the echo, so one side attaches late.
func (s *PickService) SetBroadcaster(b PickBroadcaster) {
	s.broadcast = b
}

// SubmitPicks validates a full pick-set replacement, persists it, applies it
// in memory, and echoes it to stream consumers and websocket clients.
// Validation failures reject the whole set and nothing downstream runs.
// Persistence runs before the in-memory replacement: if the write fails the
// collection still holds the old set, so memory and Postgres never diverge.
func (s *PickService) SubmitPicks(ctx context.Context, set league.PickSet) error {
	user, err := s.users.FromID(set.UserID)
	if err != nil {
		return err
	}

	if err := s.picks.Validate(set); err != nil {
		return err
	}

	if s.store != nil {
		if err := s.store.ReplaceWeek(ctx, set); err != nil {
			return fmt.Errorf("persisting picks: %w", err)
		}
	}

	if err := s.picks.Ingest(set); err != nil {
		return err
	}

	log.Printf("Updating picks for %s Week %d:", user.Name, set.Week)
	for _, p := range set.Picks {
		if desc, err := s.picks.Describe(p); err == nil {
			log.Printf("  %s", desc)
		}
	}

	if s.pub != nil {
		if err := s.pub.PublishPickUpdate(ctx, set); err != nil {
			log.Printf("Warning: failed to publish pick update: %v", err)
		}
	}

	if s.broadcast != nil {
		s.broadcast.BroadcastPickUpdate(set)
	}

	return nil
}
