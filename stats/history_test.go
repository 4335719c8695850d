package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/playsphere/playsphere/models"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 0, 0, 0, 0, time.UTC)
}

func TestCricketHistoryOldestFirst(t *testing.T) {
	// Repository order: newest first.
	matches := []models.CricketMatch{
		{
			Date:    day(20),
			Team1ID: 10, Team2ID: 20,
			PlayerStats: []models.CricketPlayerStat{{
				PlayerID: 101, PlayerTeamID: 10,
				Runs: 40, BallsFaced: 25, Wickets: 1, RunsConceded: 18, BallsBowled: 12,
			}},
		},
		{
			Date:    day(10),
			Team1ID: 10, Team2ID: 20,
			PlayerStats: []models.CricketPlayerStat{{
				PlayerID: 101, PlayerTeamID: 10,
				Runs: 10, BallsFaced: 20,
			}},
		},
	}

	points := CricketHistory(101, matches)
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
	if !points[0].Date.Equal(day(10)) || !points[1].Date.Equal(day(20)) {
		t.Errorf("points not oldest first: %v, %v", points[0].Date, points[1].Date)
	}

	// 10/20*100 = 50; no bowling yet.
	want := map[string]float64{"runs": 10, "strikeRate": 50, "wickets": 0, "economy": 0}
	if !reflect.DeepEqual(points[0].Metrics, want) {
		t.Errorf("first point metrics = %v, want %v", points[0].Metrics, want)
	}
	// 40/25*100 = 160; 18/(12/6) = 9.
	want = map[string]float64{"runs": 40, "strikeRate": 160, "wickets": 1, "economy": 9}
	if !reflect.DeepEqual(points[1].Metrics, want) {
		t.Errorf("second point metrics = %v, want %v", points[1].Metrics, want)
	}
}

func TestCricketHistorySkipsUnenrolled(t *testing.T) {
	matches := []models.CricketMatch{{
		Date:    day(5),
		Team1ID: 10, Team2ID: 20,
		PlayerStats: []models.CricketPlayerStat{{PlayerID: 999, PlayerTeamID: 10}},
	}}

	if points := CricketHistory(101, matches); len(points) != 0 {
		t.Errorf("len(points) = %d, want 0", len(points))
	}
}

func TestFootballHistory(t *testing.T) {
	matches := []models.FootballMatch{{
		Date:    day(7),
		Team1ID: 10, Team2ID: 20,
		PlayerStats: []models.FootballPlayerStat{{
			PlayerID: 101, PlayerTeamID: 10,
			Goals: 2, Assists: 1, Tackles: 4,
		}},
	}}

	points := FootballHistory(101, matches)
	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
	want := map[string]float64{"goals": 2, "assists": 1, "tackles": 4}
	if !reflect.DeepEqual(points[0].Metrics, want) {
		t.Errorf("metrics = %v, want %v", points[0].Metrics, want)
	}
}

func TestBadmintonHistory(t *testing.T) {
	matches := []models.BadmintonMatch{{
		Date:    day(3),
		Team1ID: 10, Team2ID: 20,
		PlayerStats: []models.BadmintonPlayerStat{{
			PlayerID: 101, TeamName: "Eagles",
			PointsWon: 21, Smashes: 7,
		}},
	}}

	points := BadmintonHistory(101, matches)
	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
	want := map[string]float64{"pointsWon": 21, "smashes": 7}
	if !reflect.DeepEqual(points[0].Metrics, want) {
		t.Errorf("metrics = %v, want %v", points[0].Metrics, want)
	}
}

func TestCricketAssessment(t *testing.T) {
	tests := []struct {
		name        string
		totals      CricketTotals
		wantStrong  []string
		wantImprove []string
	}{
		{
			name: "in-form all-rounder",
			totals: CricketTotals{
				MatchesPlayed: 2, Runs: 80, BallsFaced: 60,
				RunsConceded: 12, BallsBowled: 12,
			},
			// avg 40, strike 133.33, economy 6.
			wantStrong: []string{"Strong Batting Average", "Excellent Strike Rate", "Economic Bowling"},
		},
		{
			name: "struggling batsman",
			totals: CricketTotals{
				MatchesPlayed: 3, Runs: 30, BallsFaced: 40,
			},
			// avg 10, strike 75; never bowled, so no economy verdicts.
			wantImprove: []string{"Batting Consistency", "Batting Strike Rate"},
		},
		{
			name: "expensive bowler",
			totals: CricketTotals{
				MatchesPlayed: 2, Runs: 50, BallsFaced: 45,
				RunsConceded: 60, BallsBowled: 36,
			},
			// economy 10.
			wantImprove: []string{"Bowling Economy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CricketAssessment(tt.totals)
			if !reflect.DeepEqual(got.Strengths, tt.wantStrong) {
				t.Errorf("strengths = %v, want %v", got.Strengths, tt.wantStrong)
			}
			if !reflect.DeepEqual(got.AreasToImprove, tt.wantImprove) {
				t.Errorf("areas to improve = %v, want %v", got.AreasToImprove, tt.wantImprove)
			}
		})
	}
}

func TestFootballAssessment(t *testing.T) {
	got := FootballAssessment(FootballTotals{Goals: 6, Assists: 4, Tackles: 12})
	want := []string{"Goal Scoring Ability", "Playmaking Skills", "Strong Tackling"}
	if !reflect.DeepEqual(got.Strengths, want) {
		t.Errorf("strengths = %v, want %v", got.Strengths, want)
	}
	if got.AreasToImprove != nil {
		t.Errorf("areas to improve = %v, want none", got.AreasToImprove)
	}

	got = FootballAssessment(FootballTotals{Goals: 1, YellowCards: 3, RedCards: 1})
	want = []string{"Discipline", "Goal Scoring"}
	if !reflect.DeepEqual(got.AreasToImprove, want) {
		t.Errorf("areas to improve = %v, want %v", got.AreasToImprove, want)
	}
}

func TestBadmintonAssessment(t *testing.T) {
	got := BadmintonAssessment(BadmintonTotals{Smashes: 25}, Tally{Wins: 6})
	want := []string{"Strong Smashing", "Consistent Winner"}
	if !reflect.DeepEqual(got.Strengths, want) {
		t.Errorf("strengths = %v, want %v", got.Strengths, want)
	}

	got = BadmintonAssessment(BadmintonTotals{Smashes: 4}, Tally{Wins: 1})
	want = []string{"Match Winning Ability", "Attacking Play"}
	if !reflect.DeepEqual(got.AreasToImprove, want) {
		t.Errorf("areas to improve = %v, want %v", got.AreasToImprove, want)
	}
}
