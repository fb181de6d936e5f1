package league

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock keeps the database far enough in the past that no test game
// auto-locks unless a test asks for it.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestGameDB() *GameDB {
	db := NewGameDB()
	db.now = fixedClock(longBefore(sundayKickoff))
	return db
}

func weekGameData(id, week int, away, home string, date time.Time) GameData {
	return GameData{ID: id, Date: date, Week: week, Away: away, Home: home, State: StateCurrent}
}

func TestGameDBIngestCreatesAndIndexes(t *testing.T) {
	db := newTestGameDB()

	recs := []GameData{
		weekGameData(1, 1, "DET", "KC", sundayKickoff),
		weekGameData(2, 1, "CHI", "GB", sundayKickoff.Add(3*time.Hour)),
		weekGameData(3, 2, "SF", "SEA", sundayKickoff.AddDate(0, 0, 7)),
	}

	updated, err := db.Ingest(recs)
	require.NoError(t, err)
	assert.Len(t, updated, 3)

	require.NotNil(t, db.FromID(2))
	assert.Equal(t, "GB", db.FromID(2).Home())
	assert.Len(t, db.FromWeek(1), 2)
	assert.Len(t, db.FromWeek(2), 1)
	assert.Len(t, db.AllGames(), 3)

	g, err := db.FromWeekTeam(1, "CHI")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, 2, g.ID())

	// Both sides of a matchup resolve to the same game.
	h, err := db.FromWeekTeam(1, "GB")
	require.NoError(t, err)
	assert.Same(t, g, h)
}

func TestGameDBIngestDeltaContract(t *testing.T) {
	db := newTestGameDB()

	first := weekGameData(1, 1, "DET", "KC", sundayKickoff)
	_, err := db.Ingest([]GameData{first})
	require.NoError(t, err)

	// A batch with one brand-new game and one unchanged game must return
	// exactly the new game.
	second := weekGameData(2, 1, "CHI", "GB", sundayKickoff.Add(3*time.Hour))
	updated, err := db.Ingest([]GameData{first, second})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 2, updated[0].ID())

	// A mutated game is part of the delta again.
	first.HomeScore = 7
	first.State = StateActive
	updated, err = db.Ingest([]GameData{first, second})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 1, updated[0].ID())
}

func TestGameDBIngestCollectsErrors(t *testing.T) {
	db := newTestGameDB()

	good := weekGameData(1, 1, "DET", "KC", sundayKickoff)
	_, err := db.Ingest([]GameData{good})
	require.NoError(t, err)

	// One bad week, one identity violation, one legitimate update: the two
	// failures surface in the joined error and the update still lands.
	badWeek := weekGameData(9, 0, "SF", "SEA", sundayKickoff)
	mismatch := weekGameData(1, 1, "CHI", "KC", sundayKickoff)
	good.HomeScore = 14
	good.State = StateActive

	updated, err := db.Ingest([]GameData{badWeek, mismatch, good})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIdentityMismatch)
	assert.True(t, IsNotFound(err))
	require.Len(t, updated, 1)
	assert.Equal(t, 14, updated[0].HomeScore())
}

func TestGameDBFromWeekTeamOutOfRange(t *testing.T) {
	db := newTestGameDB()

	_, err := db.FromWeekTeam(19, "KC")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// In-range week with no game for the team is a silent miss.
	g, err := db.FromWeekTeam(5, "KC")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestGameDBCurrentWeek(t *testing.T) {
	db := newTestGameDB()

	assert.Equal(t, FirstWeek, db.CurrentWeek(false), "empty collection defaults to week 1")

	mk := func(id, week int, state GameState, date time.Time) GameData {
		d := weekGameData(id, week, "DET", "KC", date)
		d.State = state
		return d
	}
	base := sundayKickoff
	recs := []GameData{
		mk(1, 1, StateComplete, base),
		mk(2, 2, StateComplete, base.AddDate(0, 0, 7)),
		mk(3, 3, StateActive, base.AddDate(0, 0, 14)),
		mk(4, 4, StatePre, base.AddDate(0, 0, 21)),
	}
	_, err := db.Ingest(recs)
	require.NoError(t, err)

	assert.Equal(t, 3, db.CurrentWeek(false), "earliest non-complete game is in week 3")

	// Completing week 3 moves the pointer without an explicit force: Ingest
	// recomputes when a game transitions to COMPLETE.
	done := mk(3, 3, StateComplete, base.AddDate(0, 0, 14))
	_, err = db.Ingest([]GameData{done})
	require.NoError(t, err)
	assert.Equal(t, 4, db.CurrentWeek(false))
}

func TestGameDBRefreshStates(t *testing.T) {
	db := newTestGameDB()

	_, err := db.Ingest([]GameData{
		weekGameData(1, 4, "DET", "KC", sundayKickoff),
		weekGameData(2, 5, "CHI", "GB", sundayKickoff.AddDate(0, 0, 7)),
	})
	require.NoError(t, err)
	assert.Empty(t, db.RefreshStates())

	// Advance past week 4's cutoff but not week 5's.
	db.now = fixedClock(sundayKickoff.Add(-time.Hour))
	changed := db.RefreshStates()
	require.Len(t, changed, 1)
	assert.Equal(t, 1, changed[0].ID())
	assert.Equal(t, StateLocked, changed[0].State())
	assert.Equal(t, StateCurrent, db.FromID(2).State())

	assert.Empty(t, db.RefreshStates(), "second pass finds nothing left to lock")
}
