package league

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kickoffs from the 2023 season used throughout these tests.
var (
	// Sunday 13:00 PDT slate game.
	sundayKickoff = time.Date(2023, 10, 1, 20, 0, 0, 0, time.UTC)
	// Thursday night game, 20:15 PDT (Friday in raw UTC).
	thursdayKickoff = time.Date(2023, 9, 15, 3, 15, 0, 0, time.UTC)
	// Monday night game, 17:15 PDT (Tuesday in raw UTC).
	mondayKickoff = time.Date(2023, 9, 19, 0, 15, 0, 0, time.UTC)
	// Saturday morning game in standard time, 09:30 PST.
	saturdayKickoff = time.Date(2023, 12, 30, 17, 30, 0, 0, time.UTC)
)

func testGameData(id, week int, date time.Time) GameData {
	return GameData{
		ID:    id,
		Date:  date,
		Week:  week,
		Away:  "DET",
		Home:  "KC",
		State: StateCurrent,
	}
}

// longBefore is a clock safely ahead of any odds cutoff used in tests.
func longBefore(kickoff time.Time) time.Time {
	return kickoff.AddDate(0, 0, -10)
}

func TestGameSchedulingWindows(t *testing.T) {
	tests := []struct {
		name       string
		kickoff    time.Time
		wantCutoff time.Time
		wantReveal time.Time
	}{
		{
			name:       "sunday slate reveals at 17:00 UTC",
			kickoff:    sundayKickoff,
			wantCutoff: time.Date(2023, 9, 28, 7, 0, 0, 0, time.UTC),
			wantReveal: time.Date(2023, 10, 1, 17, 0, 0, 0, time.UTC),
		},
		{
			name:       "thursday night reveals at kickoff",
			kickoff:    thursdayKickoff,
			wantCutoff: time.Date(2023, 9, 14, 7, 0, 0, 0, time.UTC),
			wantReveal: thursdayKickoff,
		},
		{
			name:       "monday night reveal pinned to sunday",
			kickoff:    mondayKickoff,
			wantCutoff: time.Date(2023, 9, 14, 7, 0, 0, 0, time.UTC),
			wantReveal: time.Date(2023, 9, 17, 17, 0, 0, 0, time.UTC),
		},
		{
			name:       "saturday morning reveal collapses to kickoff",
			kickoff:    saturdayKickoff,
			wantCutoff: time.Date(2023, 12, 28, 7, 0, 0, 0, time.UTC),
			wantReveal: saturdayKickoff,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(testGameData(1, 4, tt.kickoff), longBefore(tt.kickoff))
			assert.True(t, tt.wantCutoff.Equal(g.OddsCutoffDate()),
				"cutoff: want %v, got %v", tt.wantCutoff, g.OddsCutoffDate())
			assert.True(t, tt.wantReveal.Equal(g.RevealDate()),
				"reveal: want %v, got %v", tt.wantReveal, g.RevealDate())
			assert.False(t, g.RevealDate().After(g.Date()), "reveal must never be later than kickoff")
		})
	}
}

func TestGameWindowsRecomputedOnDateChange(t *testing.T) {
	now := longBefore(sundayKickoff)
	g := NewGame(testGameData(1, 4, sundayKickoff), now)

	rec := testGameData(1, 4, mondayKickoff)
	res, err := g.Update(rec, now)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, g.OddsCutoffDate().Equal(time.Date(2023, 9, 14, 7, 0, 0, 0, time.UTC)))
	assert.True(t, g.RevealDate().Equal(time.Date(2023, 9, 17, 17, 0, 0, 0, time.UTC)))
}

func TestGameAutoLocksAfterCutoff(t *testing.T) {
	afterCutoff := sundayKickoff.Add(-time.Hour)
	g := NewGame(testGameData(1, 4, sundayKickoff), afterCutoff)
	assert.Equal(t, StateLocked, g.State())
}

func TestGameUpdateIdentityViolations(t *testing.T) {
	now := longBefore(sundayKickoff)

	tests := []struct {
		name   string
		mutate func(*GameData)
	}{
		{"id mismatch", func(d *GameData) { d.ID = 2 }},
		{"week mismatch", func(d *GameData) { d.Week = 5 }},
		{"away mismatch", func(d *GameData) { d.Away = "CHI" }},
		{"home mismatch", func(d *GameData) { d.Home = "GB" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(testGameData(1, 4, sundayKickoff), now)
			before := g.Data()

			rec := testGameData(1, 4, sundayKickoff.Add(time.Hour))
			rec.HomeScore = 7
			tt.mutate(&rec)

			res, err := g.Update(rec, now)
			require.ErrorIs(t, err, ErrIdentityMismatch)
			assert.False(t, res.Changed)
			// Violation must leave the stored game completely unmodified,
			// even though the record also carried legitimate-looking changes.
			assert.Equal(t, before, g.Data())
		})
	}
}

func TestGameUpdateIdempotent(t *testing.T) {
	now := longBefore(sundayKickoff)
	g := NewGame(testGameData(1, 4, sundayKickoff), now)

	rec := testGameData(1, 4, sundayKickoff)
	rec.State = StateActive
	rec.AwayScore = 10
	rec.HomeScore = 14
	rec.Quarter = 2
	rec.Odds = &Odds{Spread: -3, OverUnder: 47.5}

	res, err := g.Update(rec, now)
	require.NoError(t, err)
	assert.True(t, res.Changed)

	res, err = g.Update(rec, now)
	require.NoError(t, err)
	assert.False(t, res.Changed, "applying the same record twice must report no change")
}

func TestGameUpdateRejectsLockedToCurrent(t *testing.T) {
	now := longBefore(sundayKickoff)
	data := testGameData(1, 4, sundayKickoff)
	data.State = StateLocked
	g := NewGame(data, now)

	rec := testGameData(1, 4, sundayKickoff)
	rec.State = StateCurrent
	res, err := g.Update(rec, now)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, StateLocked, g.State())
}

func TestGameUpdateCompleteDropsStatus(t *testing.T) {
	now := longBefore(sundayKickoff)
	data := testGameData(1, 4, sundayKickoff)
	data.State = StateActive
	data.Status = &LiveStatus{DisplayClock: "2:00", Possession: "KC"}
	g := NewGame(data, now)

	_, ok := g.Status()
	require.True(t, ok)

	rec := testGameData(1, 4, sundayKickoff)
	rec.State = StateComplete
	res, err := g.Update(rec, now)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.WeekInvalidated)

	_, ok = g.Status()
	assert.False(t, ok)
	assert.Nil(t, g.Data().Status)
}

func TestGameUpdateIgnoresStatusUnlessActive(t *testing.T) {
	now := longBefore(sundayKickoff)
	g := NewGame(testGameData(1, 4, sundayKickoff), now)

	rec := testGameData(1, 4, sundayKickoff)
	rec.Status = &LiveStatus{DisplayClock: "15:00"}
	res, err := g.Update(rec, now)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Nil(t, g.Data().Status)
}

func TestGameUpdateOddsWindow(t *testing.T) {
	beforeCutoff := longBefore(sundayKickoff)
	afterCutoff := sundayKickoff.Add(-time.Hour)

	g := NewGame(testGameData(1, 4, sundayKickoff), beforeCutoff)

	rec := testGameData(1, 4, sundayKickoff)
	rec.Odds = &Odds{Spread: -3, OverUnder: 47.5}
	res, err := g.Update(rec, beforeCutoff)
	require.NoError(t, err)
	assert.True(t, res.Changed)

	odds, ok := g.Odds()
	require.True(t, ok)
	assert.Equal(t, -3.0, odds.Spread)
	assert.Equal(t, 47.5, odds.OverUnder)

	// Past the cutoff no update may alter the line.
	rec.Odds = &Odds{Spread: -7, OverUnder: 41}
	res, err = g.Update(rec, afterCutoff)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	odds, _ = g.Odds()
	assert.Equal(t, -3.0, odds.Spread)
	assert.Equal(t, 47.5, odds.OverUnder)
}

func TestGameOddsNormalization(t *testing.T) {
	now := longBefore(sundayKickoff)
	g := NewGame(testGameData(1, 4, sundayKickoff), now)

	rec := testGameData(1, 4, sundayKickoff)
	rec.Odds = &Odds{Spread: -3.3, OverUnder: 47.6}
	_, err := g.Update(rec, now)
	require.NoError(t, err)

	odds, ok := g.Odds()
	require.True(t, ok)
	assert.Equal(t, -3.5, odds.Spread)
	assert.Equal(t, 47.5, odds.OverUnder)
}

func TestGameOddsInvalidNumberCoercedToZero(t *testing.T) {
	now := longBefore(sundayKickoff)
	data := testGameData(1, 4, sundayKickoff)
	data.Odds = &Odds{Spread: math.NaN(), OverUnder: math.Inf(1)}
	g := NewGame(data, now)

	odds, ok := g.Odds()
	require.True(t, ok)
	assert.Equal(t, 0.0, odds.Spread)
	assert.Equal(t, 0.0, odds.OverUnder)
}

func TestGameDerivedOutcomes(t *testing.T) {
	now := longBefore(sundayKickoff)

	t.Run("home favored and covering", func(t *testing.T) {
		data := testGameData(1, 4, sundayKickoff)
		data.State = StateActive
		data.HomeScore = 24
		data.AwayScore = 20
		data.Odds = &Odds{Spread: -3, OverUnder: 47.5}
		g := NewGame(data, now)

		assert.Equal(t, "KC", g.Favorite())
		assert.Equal(t, "KC", g.WinnerATS(), "24-3=21 > 20, home covers")
		assert.Equal(t, "UND", g.OverUnderResult(), "44 < 47.5")
	})

	t.Run("away favored", func(t *testing.T) {
		data := testGameData(1, 4, sundayKickoff)
		data.State = StateActive
		data.HomeScore = 21
		data.AwayScore = 20
		data.Odds = &Odds{Spread: 2.5, OverUnder: 40.5}
		g := NewGame(data, now)

		assert.Equal(t, "DET", g.Favorite())
		assert.Equal(t, "KC", g.WinnerATS(), "21+2.5 > 20")
		assert.Equal(t, "OVR", g.OverUnderResult())
	})

	t.Run("total push", func(t *testing.T) {
		data := testGameData(1, 4, sundayKickoff)
		data.State = StateComplete
		data.HomeScore = 24
		data.AwayScore = 20
		data.Odds = &Odds{Spread: -3, OverUnder: 44}
		g := NewGame(data, now)

		assert.Equal(t, "PSH", g.OverUnderResult())
	})

	t.Run("unresolvable before active", func(t *testing.T) {
		data := testGameData(1, 4, sundayKickoff)
		data.Odds = &Odds{Spread: -3, OverUnder: 44}
		g := NewGame(data, now)

		assert.Equal(t, "PSH", g.WinnerATS())
		assert.Equal(t, "PSH", g.OverUnderResult())
	})
}

func TestGameFavoriteWithoutOdds(t *testing.T) {
	g := NewGame(testGameData(1, 4, sundayKickoff), longBefore(sundayKickoff))

	// No line posted: the away team reads as the favorite by convention.
	assert.Equal(t, "DET", g.Favorite())
}

func TestNewGameDropsStatusUnlessActive(t *testing.T) {
	now := longBefore(sundayKickoff)

	data := testGameData(1, 4, sundayKickoff)
	data.Status = &LiveStatus{DisplayClock: "15:00", Possession: "KC"}
	g := NewGame(data, now)

	_, ok := g.Status()
	assert.False(t, ok)
	assert.Nil(t, g.Data().Status)

	// A game built in progress keeps its live detail.
	live := testGameData(2, 4, sundayKickoff)
	live.State = StateActive
	live.Status = &LiveStatus{DisplayClock: "15:00"}
	g = NewGame(live, now)

	status, ok := g.Status()
	require.True(t, ok)
	assert.Equal(t, "15:00", status.DisplayClock)
}
