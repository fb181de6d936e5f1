package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

func TestParseGameClock(t *testing.T) {
	tests := []struct {
		status      string
		wantQuarter int
		wantTime    string
	}{
		{"Q4 2:30", 4, "2:30"},
		{"3rd 5:45", 3, "5:45"},
		{"1st", 1, ""},
		{"OT 10:00", 5, "10:00"},
		{"Halftime", 2, "Halftime"},
		{"Final", 0, ""},
		{"", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			quarter, remaining := parseGameClock(tt.status)
			assert.Equal(t, tt.wantQuarter, quarter)
			assert.Equal(t, tt.wantTime, remaining)
		})
	}
}

func TestGetTeamAbbreviation(t *testing.T) {
	teams := league.NewTeamDB()

	assert.Equal(t, "KC", GetTeamAbbreviation(teams, "kc"))
	assert.Equal(t, "KC", GetTeamAbbreviation(teams, "Chiefs"))
	assert.Equal(t, "DET", GetTeamAbbreviation(teams, "Detroit"))
	assert.Equal(t, "", GetTeamAbbreviation(teams, "Wombats"))
	assert.Equal(t, "", GetTeamAbbreviation(teams, ""))
}

func TestParseLiveGamesFromCards(t *testing.T) {
	html := `<html><body>
		<div class="imso_mh__lv-m-stl-cont">
			<div class="imso_mh__first-tn-ed">Chiefs</div>
			<div class="imso_mh__first-tn-ed">Lions</div>
			<div class="imso_mh__l-tm-sc">17</div>
			<div class="imso_mh__l-tm-sc">10</div>
			<span class="imso_mh__ft-mtch">Q3 11:27</span>
		</div>
	</body></html>`

	doc, err := ParseHTML(html)
	require.NoError(t, err)

	games, err := ParseLiveGames(doc)
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, "Chiefs", g.HomeTeam)
	assert.Equal(t, "Lions", g.AwayTeam)
	assert.Equal(t, 17, g.HomeScore)
	assert.Equal(t, 10, g.AwayScore)
	assert.Equal(t, 3, g.Quarter)
	assert.Equal(t, "11:27", g.TimeRemaining)
	assert.True(t, g.IsLive)
	assert.False(t, g.IsFinal)
}
