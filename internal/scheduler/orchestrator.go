package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/GhostCrab/parlay-club-server/internal/cache"
	"github.com/GhostCrab/parlay-club-server/internal/ingest"
	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/GhostCrab/parlay-club-server/internal/publisher"
	"github.com/GhostCrab/parlay-club-server/internal/store/repository"
)

// Broadcaster pushes accepted game updates to connected clients.
type Broadcaster interface {
	BroadcastGameUpdates(games []league.GameData)
}

// Config holds scheduler configuration
type Config struct {
	TickInterval     time.Duration // Default: 500ms
	CurrentInterval  time.Duration // Default: 10s
	FutureInterval   time.Duration // Default: 1h
	PreviousInterval time.Duration // Default: 24h
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		TickInterval:     500 * time.Millisecond,
		CurrentInterval:  10 * time.Second,
		FutureInterval:   time.Hour,
		PreviousInterval: 24 * time.Hour,
	}
}

// Orchestrator drives the polling loop: it decides which weeks are due,
// fetches their update records, applies them to the collection and fans the
// accepted delta out to persistence, cache, stream and websocket clients.
type Orchestrator struct {
	games     *league.GameDB
	ingester  *ingest.LiveIngester
	gameRepo  *repository.GameRepository
	cache     *cache.RedisCache
	publisher *publisher.RedisStreamPublisher
	broadcast Broadcaster
	config    *Config

	queue weekQueue
	clock clock

	cancel context.CancelFunc
}

// NewOrchestrator creates a new scheduler orchestrator
func NewOrchestrator(
	games *league.GameDB,
	ingester *ingest.LiveIngester,
	gameRepo *repository.GameRepository,
	redisCache *cache.RedisCache,
	streamPublisher *publisher.RedisStreamPublisher,
	broadcast Broadcaster,
	config *Config,
) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}

	return &Orchestrator{
		games:     games,
		ingester:  ingester,
		gameRepo:  gameRepo,
		cache:     redisCache,
		publisher: streamPublisher,
		broadcast: broadcast,
		config:    config,
		queue:     newWeekQueue(config),
		clock:     realClock{},
	}
}

// Start runs the polling loop until the context is cancelled
func (o *Orchestrator) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	log.Printf("Scheduler started (tick %v; current %v, future %v, previous %v)",
		o.config.TickInterval, o.config.CurrentInterval, o.config.FutureInterval, o.config.PreviousInterval)

	ticker := time.NewTicker(o.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopped")
			return
		case <-ticker.C:
			o.tick(ctx)
		}
	}
}

// Stop gracefully stops the scheduler
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	if o.ingester != nil {
		o.ingester.Close()
	}
}

func (o *Orchestrator) tick(ctx context.Context) {
	now := o.clock.Now()

	// Time alone can lock a game's odds; those transitions are part of the
	// delta like any other change.
	changed := o.games.RefreshStates()
	if len(changed) > 0 {
		o.fanOut(ctx, changed)
	}

	currentWeek := o.games.CurrentWeek(false)
	o.queue.schedule(now, currentWeek)

	for _, week := range o.queue.drain() {
		if err := o.pollWeek(ctx, week); err != nil {
			log.Printf("ERROR: Failed nfl api fetch Week %d: %v", week, err)
			// At-least-once: a failed week goes back on the queue and is
			// retried next tick.
			o.queue.requeue(week)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (o *Orchestrator) pollWeek(ctx context.Context, week int) error {
	currentWeek := o.games.CurrentWeek(false)

	recs, err := o.ingester.GamesForWeek(ctx, week, currentWeek)
	if err != nil {
		return err
	}

	updated, err := o.games.Ingest(recs)
	if err != nil {
		// Individual bad records; the rest of the batch has been applied
		log.Printf("Week %d ingest: %v", week, err)
	}
	if len(updated) > 0 {
		o.fanOut(ctx, updated)
	}
	return nil
}

// fanOut pushes an accepted delta to every downstream: Postgres snapshot,
// Redis cache, Redis stream, websocket clients.
func (o *Orchestrator) fanOut(ctx context.Context, updated []*league.Game) {
	delta := make([]league.GameData, 0, len(updated))
	weeks := make(map[int]bool)
	for _, g := range updated {
		delta = append(delta, g.Data())
		weeks[g.Week()] = true
	}

	if o.gameRepo != nil {
		if err := o.gameRepo.UpsertBatch(ctx, delta); err != nil {
			log.Printf("Failed to persist %d game updates: %v", len(delta), err)
		}
	}

	if o.cache != nil {
		for week := range weeks {
			games := o.games.FromWeek(week)
			snapshot := make([]league.GameData, 0, len(games))
			for _, g := range games {
				snapshot = append(snapshot, g.Data())
			}
			if err := o.cache.SetWeekGames(ctx, week, snapshot); err != nil {
				log.Printf("Failed to cache week %d games: %v", week, err)
			}
		}
		if err := o.cache.SetCurrentWeek(ctx, o.games.CurrentWeek(false)); err != nil {
			log.Printf("Failed to cache current week: %v", err)
		}
	}

	if o.publisher != nil {
		if err := o.publisher.PublishGameUpdates(ctx, delta); err != nil {
			log.Printf("Failed to publish %d game updates: %v", len(delta), err)
		}
	}

	if o.broadcast != nil {
		o.broadcast.BroadcastGameUpdates(delta)
	}
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
