package stats

import (
	"testing"

	"github.com/playsphere/playsphere/models"
)

func TestTallyOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []Outcome
		want     Tally
	}{
		{
			name:     "empty window yields zero percent, not NaN",
			outcomes: nil,
			want:     Tally{},
		},
		{
			name: "win loss draw over three matches",
			outcomes: []Outcome{
				{Winner: "Team A", TeamName: "Team A"},
				{Winner: "Team B", TeamName: "Team A"},
				{Winner: models.WinnerDraw, TeamName: "Team A"},
			},
			want: Tally{MatchesPlayed: 3, Wins: 1, Losses: 1, Draws: 1, WinPercentage: 33.3},
		},
		{
			name: "all wins",
			outcomes: []Outcome{
				{Winner: "Team A", TeamName: "Team A"},
				{Winner: "Team A", TeamName: "Team A"},
			},
			want: Tally{MatchesPlayed: 2, Wins: 2, WinPercentage: 100},
		},
		{
			name: "draw is neither win nor loss",
			outcomes: []Outcome{
				{Winner: models.WinnerDraw, TeamName: "Team A"},
			},
			want: Tally{MatchesPlayed: 1, Draws: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TallyOutcomes(tt.outcomes)
			if got != tt.want {
				t.Errorf("TallyOutcomes = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTallyOutcomesIdempotent(t *testing.T) {
	outcomes := []Outcome{
		{Winner: "Team A", TeamName: "Team A"},
		{Winner: "Team B", TeamName: "Team A"},
	}
	first := TallyOutcomes(outcomes)
	second := TallyOutcomes(outcomes)
	if first != second {
		t.Errorf("repeated tally differs: %+v vs %+v", first, second)
	}
}

func TestCricketOutcomeResolvesSideByTeamID(t *testing.T) {
	winner := "Hawks"
	m := &models.CricketMatch{
		Team1ID:   10,
		Team2ID:   20,
		Team1Name: "Eagles",
		Team2Name: "Hawks",
		Winner:    &winner,
		PlayerStats: []models.CricketPlayerStat{
			{PlayerID: 101, PlayerTeamID: 10},
			{PlayerID: 201, PlayerTeamID: 20},
		},
	}

	o, ok := CricketOutcome(m, 201)
	if !ok {
		t.Fatal("expected outcome for enrolled player")
	}
	if o.TeamName != "Hawks" || o.Winner != "Hawks" {
		t.Errorf("outcome = %+v, want Hawks winning side", o)
	}

	o, ok = CricketOutcome(m, 101)
	if !ok || o.TeamName != "Eagles" {
		t.Errorf("outcome = %+v ok=%v, want Eagles side", o, ok)
	}

	if _, ok := CricketOutcome(m, 999); ok {
		t.Error("expected no outcome for player outside the match")
	}
}

func TestCricketOutcomeRequiresWinner(t *testing.T) {
	m := &models.CricketMatch{
		Team1ID: 10, Team2ID: 20,
		PlayerStats: []models.CricketPlayerStat{{PlayerID: 101, PlayerTeamID: 10}},
	}
	if _, ok := CricketOutcome(m, 101); ok {
		t.Error("expected no outcome while winner is unset")
	}
}

func TestBadmintonOutcomeUsesTeamName(t *testing.T) {
	winner := "Eagles"
	m := &models.BadmintonMatch{
		Winner: &winner,
		PlayerStats: []models.BadmintonPlayerStat{
			{PlayerID: 101, TeamName: "Eagles"},
			{PlayerID: 201, TeamName: "Hawks"},
		},
	}
	o, ok := BadmintonOutcome(m, 101)
	if !ok || o.Winner != o.TeamName {
		t.Errorf("outcome = %+v ok=%v, want win by team name", o, ok)
	}
	o, ok = BadmintonOutcome(m, 201)
	if !ok || o.Winner == o.TeamName {
		t.Errorf("outcome = %+v ok=%v, want loss by team name", o, ok)
	}
}
