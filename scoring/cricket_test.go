package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/playsphere/playsphere/models"
)

func newCricketMatch() *models.CricketMatch {
	return &models.CricketMatch{
		ID:        1,
		Team1ID:   10,
		Team2ID:   20,
		Team1Name: "Eagles",
		Team2Name: "Hawks",
		Date:      time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC),
		Venue:     "Main Ground",
		Status:    models.StatusLive,
		PlayerStats: []models.CricketPlayerStat{
			{PlayerID: 101, PlayerName: "Arun", PlayerTeamID: 10},
			{PlayerID: 102, PlayerName: "Bala", PlayerTeamID: 10},
			{PlayerID: 201, PlayerName: "Chetan", PlayerTeamID: 20},
			{PlayerID: 202, PlayerName: "Dev", PlayerTeamID: 20},
		},
	}
}

func TestApplyBallScoreSum(t *testing.T) {
	m := newCricketMatch()

	// Batsman 101 (team1) faces bowler 201 (team2).
	events := []BallEvent{
		{Kind: BallRuns, Runs: 2, BatsmanID: 101, BowlerID: 201},
		{Kind: BallWide, BatsmanID: 101, BowlerID: 201},
		{Kind: BallFour, BatsmanID: 101, BowlerID: 201},
		{Kind: BallSix, BatsmanID: 101, BowlerID: 201},
		{Kind: BallRuns, Runs: 0, BatsmanID: 101, BowlerID: 201},
		{Kind: BallWicket, Dismissal: models.DismissalBowled, BatsmanID: 101, BowlerID: 201},
	}
	for i, ev := range events {
		if err := ApplyBall(m, ev); err != nil {
			t.Fatalf("event %d: unexpected error: %v", i, err)
		}
	}

	// 2 + 1 (wide) + 4 + 6 + 0, wicket adds nothing.
	if got, want := m.Score.Team1.Score, 13; got != want {
		t.Errorf("team1 score = %d, want %d", got, want)
	}
	// Every event except the wide increments the team-ball counter.
	if got, want := m.Score.Team1.TeamBalls, 5; got != want {
		t.Errorf("team1 teamballs = %d, want %d", got, want)
	}
	if got, want := m.Score.Team1.Wickets, 1; got != want {
		t.Errorf("team1 wickets = %d, want %d", got, want)
	}
	if m.Score.Team2.Score != 0 || m.Score.Team2.TeamBalls != 0 {
		t.Errorf("team2 score touched: %+v", m.Score.Team2)
	}
	if got, want := len(m.Balls), 6; got != want {
		t.Fatalf("ball log length = %d, want %d", got, want)
	}
}

func TestApplyBallPerKindEffects(t *testing.T) {
	tests := []struct {
		name      string
		ev        BallEvent
		batsman   models.CricketPlayerStat
		bowler    models.CricketPlayerStat
		sideScore int
		sideBalls int
		sideOuts  int
	}{
		{
			name:      "plain runs",
			ev:        BallEvent{Kind: BallRuns, Runs: 3, BatsmanID: 101, BowlerID: 201},
			batsman:   models.CricketPlayerStat{Runs: 3, BallsFaced: 1},
			bowler:    models.CricketPlayerStat{RunsConceded: 3, BallsBowled: 1},
			sideScore: 3, sideBalls: 1,
		},
		{
			name:      "wide adds a run but no balls",
			ev:        BallEvent{Kind: BallWide, BatsmanID: 101, BowlerID: 201},
			batsman:   models.CricketPlayerStat{},
			bowler:    models.CricketPlayerStat{RunsConceded: 1, Wides: 1},
			sideScore: 1, sideBalls: 0,
		},
		{
			name:      "four",
			ev:        BallEvent{Kind: BallFour, BatsmanID: 101, BowlerID: 201},
			batsman:   models.CricketPlayerStat{Runs: 4, Fours: 1, BallsFaced: 1},
			bowler:    models.CricketPlayerStat{RunsConceded: 4, BallsBowled: 1},
			sideScore: 4, sideBalls: 1,
		},
		{
			name:      "six",
			ev:        BallEvent{Kind: BallSix, BatsmanID: 101, BowlerID: 201},
			batsman:   models.CricketPlayerStat{Runs: 6, Sixes: 1, BallsFaced: 1},
			bowler:    models.CricketPlayerStat{RunsConceded: 6, BallsBowled: 1},
			sideScore: 6, sideBalls: 1,
		},
		{
			name:      "wicket",
			ev:        BallEvent{Kind: BallWicket, Dismissal: models.DismissalCaught, BatsmanID: 101, BowlerID: 201},
			batsman:   models.CricketPlayerStat{IsOut: true, OutType: models.DismissalCaught, BallsFaced: 1},
			bowler:    models.CricketPlayerStat{Wickets: 1, BallsBowled: 1},
			sideBalls: 1, sideOuts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCricketMatch()
			if err := ApplyBall(m, tt.ev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			bat := *m.StatFor(101)
			tt.batsman.PlayerID, tt.batsman.PlayerName, tt.batsman.PlayerTeamID = 101, "Arun", 10
			if bat != tt.batsman {
				t.Errorf("batsman stat = %+v, want %+v", bat, tt.batsman)
			}

			bowl := *m.StatFor(201)
			tt.bowler.PlayerID, tt.bowler.PlayerName, tt.bowler.PlayerTeamID = 201, "Chetan", 20
			if bowl != tt.bowler {
				t.Errorf("bowler stat = %+v, want %+v", bowl, tt.bowler)
			}

			if m.Score.Team1.Score != tt.sideScore {
				t.Errorf("side score = %d, want %d", m.Score.Team1.Score, tt.sideScore)
			}
			if m.Score.Team1.TeamBalls != tt.sideBalls {
				t.Errorf("side teamballs = %d, want %d", m.Score.Team1.TeamBalls, tt.sideBalls)
			}
			if m.Score.Team1.Wickets != tt.sideOuts {
				t.Errorf("side wickets = %d, want %d", m.Score.Team1.Wickets, tt.sideOuts)
			}
		})
	}
}

func TestApplyBallBattingSideByTeamID(t *testing.T) {
	m := newCricketMatch()

	// Batsman from team2: everything lands on the team2 side of the score.
	ev := BallEvent{Kind: BallFour, BatsmanID: 201, BowlerID: 101}
	if err := ApplyBall(m, ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Score.Team1.Score != 0 {
		t.Errorf("team1 score = %d, want 0", m.Score.Team1.Score)
	}
	if m.Score.Team2.Score != 4 {
		t.Errorf("team2 score = %d, want 4", m.Score.Team2.Score)
	}
}

func TestApplyBallBallNumberIsPreUpdateCounter(t *testing.T) {
	m := newCricketMatch()
	for i := 0; i < 3; i++ {
		if err := ApplyBall(m, BallEvent{Kind: BallRuns, Runs: 1, BatsmanID: 101, BowlerID: 201}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for i, rec := range m.Balls {
		if rec.BallNumber != i {
			t.Errorf("ball %d: number = %d, want %d", i, rec.BallNumber, i)
		}
	}
}

func TestApplyBallRejections(t *testing.T) {
	tests := []struct {
		name string
		ev   BallEvent
		want error
	}{
		{
			name: "batsman not enrolled",
			ev:   BallEvent{Kind: BallRuns, Runs: 1, BatsmanID: 999, BowlerID: 201},
			want: ErrPlayerNotEnrolled,
		},
		{
			name: "bowler not enrolled",
			ev:   BallEvent{Kind: BallRuns, Runs: 1, BatsmanID: 101, BowlerID: 999},
			want: ErrPlayerNotEnrolled,
		},
		{
			name: "wicket without dismissal",
			ev:   BallEvent{Kind: BallWicket, BatsmanID: 101, BowlerID: 201},
			want: ErrDismissalRequired,
		},
		{
			name: "bad dismissal type",
			ev:   BallEvent{Kind: BallWicket, Dismissal: "retired", BatsmanID: 101, BowlerID: 201},
			want: ErrInvalidDismissal,
		},
		{
			name: "unknown kind",
			ev:   BallEvent{Kind: "no_ball", BatsmanID: 101, BowlerID: 201},
			want: ErrUnknownEventKind,
		},
		{
			name: "negative runs",
			ev:   BallEvent{Kind: BallRuns, Runs: -1, BatsmanID: 101, BowlerID: 201},
			want: ErrNegativeRuns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCricketMatch()
			beforeStats := append([]models.CricketPlayerStat(nil), m.PlayerStats...)

			err := ApplyBall(m, tt.ev)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}

			// Rejection must leave the match untouched.
			if m.Score != (models.CricketScore{}) {
				t.Errorf("score changed on rejected event: %+v", m.Score)
			}
			if len(m.Balls) != 0 {
				t.Errorf("ball log grew on rejected event")
			}
			for i := range m.PlayerStats {
				if m.PlayerStats[i] != beforeStats[i] {
					t.Errorf("player stat %d changed on rejected event", i)
				}
			}
		})
	}
}
