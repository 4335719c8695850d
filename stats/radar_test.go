package stats

import (
	"reflect"
	"testing"

	"github.com/playsphere/playsphere/models"
)

func cricketWindow(stat models.CricketPlayerStat) []models.CricketMatch {
	stat.PlayerID = 101
	stat.PlayerTeamID = 10
	return []models.CricketMatch{{
		Team1ID: 10, Team2ID: 20,
		PlayerStats: []models.CricketPlayerStat{stat},
	}}
}

func TestCricketRadarBatting(t *testing.T) {
	matches := cricketWindow(models.CricketPlayerStat{
		Runs: 60, BallsFaced: 50, Fours: 6, Sixes: 2, IsOut: true,
	})

	r := CricketRadar(101, CategoryBatsman, matches)

	wantLabels := []string{"strikeRate", "boundariesRate", "outRate", "runRate", "averageRunsPerMatch"}
	if !reflect.DeepEqual(r.Labels, wantLabels) {
		t.Fatalf("labels = %v, want %v", r.Labels, wantLabels)
	}
	// 60/50*100 = 120, clamped; 8/60*100 = 13.33; 1/1*100 = 100;
	// 60/50*6 = 7.2; 60/1 = 60.
	want := []float64{100, 13.33, 100, 7.2, 60}
	if !reflect.DeepEqual(r.Data, want) {
		t.Errorf("data = %v, want %v", r.Data, want)
	}
}

func TestCricketRadarBowling(t *testing.T) {
	matches := cricketWindow(models.CricketPlayerStat{
		Wickets: 3, BallsBowled: 24, RunsConceded: 30, Wides: 2,
	})

	r := CricketRadar(101, CategoryBowler, matches)

	wantLabels := []string{"wicketRate", "runConcededRate", "economyRate", "wideBallRate", "bowlingStrikeRate"}
	if !reflect.DeepEqual(r.Labels, wantLabels) {
		t.Fatalf("labels = %v, want %v", r.Labels, wantLabels)
	}
	// 3/1*100 clamped to 100; 30/1 = 30; 30/(24/6) = 7.5 clamped to 6;
	// 2/24*100 = 8.33; 24/3 = 8.
	want := []float64{100, 30, 6, 8.33, 8}
	if !reflect.DeepEqual(r.Data, want) {
		t.Errorf("data = %v, want %v", r.Data, want)
	}
}

func TestCricketRadarEmptyWindow(t *testing.T) {
	for _, category := range []string{CategoryBatsman, CategoryBowler} {
		r := CricketRadar(101, category, nil)
		for i, v := range r.Data {
			if v != 0 {
				t.Errorf("%s dimension %d = %v, want 0", category, i, v)
			}
		}
	}
}

func TestFootballRadar(t *testing.T) {
	matches := []models.FootballMatch{{
		Team1ID: 10, Team2ID: 20,
		PlayerStats: []models.FootballPlayerStat{{
			PlayerID: 101, PlayerTeamID: 10,
			Goals: 10, Assists: 6, Shots: 40, Tackles: 25, Penalties: 2, Saves: 30,
		}},
	}}

	r := FootballRadar(101, matches)

	wantLabels := []string{"Goal Contribution", "Shot Accuracy", "Defensive Actions", "Penalty Success", "Save Efficiency"}
	if !reflect.DeepEqual(r.Labels, wantLabels) {
		t.Fatalf("labels = %v, want %v", r.Labels, wantLabels)
	}
	// (10+6)/80*100 = 20; 10/40*100 = 25; 25/100*100 = 25; 2/10*100 = 20;
	// 30/150*100 = 20.
	want := []float64{20, 25, 25, 20, 20}
	if !reflect.DeepEqual(r.Data, want) {
		t.Errorf("data = %v, want %v", r.Data, want)
	}
}

func TestFootballRadarZeroShots(t *testing.T) {
	r := FootballRadar(101, nil)
	for i, v := range r.Data {
		if v != 0 {
			t.Errorf("dimension %d = %v, want 0", i, v)
		}
	}
}

func TestBadmintonRadarSharesOfTotalPoints(t *testing.T) {
	matches := []models.BadmintonMatch{{
		PlayerStats: []models.BadmintonPlayerStat{{
			PlayerID: 101, TeamName: "Eagles",
			PointsWon: 15, PointsLost: 10, Aces: 5, Smashes: 8, NetPlays: 2,
		}},
	}}

	r := BadmintonRadar(101, matches)

	wantLabels := []string{"Points Won", "Aces", "Smashes", "Net Plays", "Points Lost"}
	if !reflect.DeepEqual(r.Labels, wantLabels) {
		t.Fatalf("labels = %v, want %v", r.Labels, wantLabels)
	}
	// Shares of 25 contested points.
	want := []float64{60, 20, 32, 8, 40}
	if !reflect.DeepEqual(r.Data, want) {
		t.Errorf("data = %v, want %v", r.Data, want)
	}
}

func TestBadmintonRadarEmptyWindow(t *testing.T) {
	r := BadmintonRadar(101, nil)
	for i, v := range r.Data {
		if v != 0 {
			t.Errorf("dimension %d = %v, want 0", i, v)
		}
	}
}
