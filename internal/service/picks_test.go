package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	sets []league.PickSet
}

func (b *recordingBroadcaster) BroadcastPickUpdate(set league.PickSet) {
	b.sets = append(b.sets, set)
}

func newTestPickService(t *testing.T) (*PickService, *league.PickDB, *recordingBroadcaster) {
	t.Helper()

	teams := league.NewTeamDB()
	users := league.NewUserDB()
	games := league.NewGameDB()

	_, err := games.Ingest([]league.GameData{
		{ID: 101, Week: 1, Away: "KC", Home: "DET", Date: time.Date(2023, 9, 8, 0, 20, 0, 0, time.UTC)},
		{ID: 102, Week: 1, Away: "GB", Home: "CHI", Date: time.Date(2023, 9, 10, 20, 25, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	picks := league.NewPickDB(games, teams, users)
	broadcast := &recordingBroadcaster{}

	svc := NewPickService(picks, users, nil, nil)
	svc.SetBroadcaster(broadcast)
	return svc, picks, broadcast
}

func TestSubmitPicksAppliesAndEchoes(t *testing.T) {
	svc, picks, broadcast := newTestPickService(t)

	set := league.PickSet{
		UserID: 0,
		Week:   1,
		Picks: []league.Pick{
			{User: 0, Game: 101, Team: 12},
			{User: 0, Game: 102, Team: 9},
		},
	}

	require.NoError(t, svc.SubmitPicks(context.Background(), set))

	stored := picks.ForUserWeek(0, 1)
	assert.Len(t, stored, 2)

	require.Len(t, broadcast.sets, 1)
	assert.Equal(t, set, broadcast.sets[0])
}

func TestSubmitPicksRejectionSkipsEcho(t *testing.T) {
	svc, picks, broadcast := newTestPickService(t)

	set := league.PickSet{
		UserID: 42, // no such league member
		Week:   1,
		Picks:  []league.Pick{{User: 42, Game: 101, Team: 12}},
	}

	err := svc.SubmitPicks(context.Background(), set)
	require.Error(t, err)
	assert.True(t, league.IsNotFound(err))

	assert.Empty(t, picks.AllPicks())
	assert.Empty(t, broadcast.sets)
}

type failingPickStore struct {
	err error
}

func (s *failingPickStore) ReplaceWeek(ctx context.Context, set league.PickSet) error {
	return s.err
}

func TestSubmitPicksPersistFailureLeavesMemoryUntouched(t *testing.T) {
	teams := league.NewTeamDB()
	users := league.NewUserDB()
	games := league.NewGameDB()

	_, err := games.Ingest([]league.GameData{
		{ID: 101, Week: 1, Away: "KC", Home: "DET", Date: time.Date(2023, 9, 8, 0, 20, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	picks := league.NewPickDB(games, teams, users)
	picks.Load([]league.Pick{{User: 0, Game: 101, Team: 12}})

	broadcast := &recordingBroadcaster{}
	svc := NewPickService(picks, users, &failingPickStore{err: errors.New("connection refused")}, nil)
	svc.SetBroadcaster(broadcast)

	set := league.PickSet{
		UserID: 0,
		Week:   1,
		Picks:  []league.Pick{{User: 0, Game: 101, Team: 8}},
	}

	err = svc.SubmitPicks(context.Background(), set)
	require.Error(t, err)

	// The stored week is still the old one, matching what Postgres holds.
	stored := picks.ForUserWeek(0, 1)
	require.Len(t, stored, 1)
	assert.Equal(t, 12, stored[0].Team)

	assert.Empty(t, broadcast.sets)
}
