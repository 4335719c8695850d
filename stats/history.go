package stats

import (
	"time"

	"github.com/playsphere/playsphere/models"
)

// HistoryPoint is one completed match on a profile's performance trend.
// Metrics are keyed by name so each sport contributes its own series.
type HistoryPoint struct {
	Date    time.Time          `json:"date"`
	Metrics map[string]float64 `json:"metrics"`
}

// Assessment names the standout and lagging sides of a player's recent
// form, derived from fixed thresholds over the profile window.
type Assessment struct {
	Strengths      []string `json:"strengths"`
	AreasToImprove []string `json:"areasToImprove"`
}

// Assessment thresholds. Strike rate and economy are per-match-window
// figures, the rest are window totals.
const (
	cricketStrongAverage   = 30
	cricketWeakAverage     = 20
	cricketStrongStrike    = 120
	cricketWeakStrike      = 100
	cricketStrongEconomy   = 7
	cricketWeakEconomy     = 8
	footballStrongGoals    = 5
	footballWeakGoals      = 2
	footballStrongAssists  = 3
	footballStrongTackles  = 10
	footballWeakDiscipline = 3
	badmintonStrongSmashes = 20
	badmintonWeakSmashes   = 10
	badmintonStrongWins    = 5
	badmintonWeakWins      = 3
)

// CricketHistory builds the per-match trend series for a cricket player.
// Matches arrive newest first from the repository; points are returned
// oldest first, ready for a left-to-right chart.
func CricketHistory(playerID int, matches []models.CricketMatch) []HistoryPoint {
	points := make([]HistoryPoint, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		m := &matches[i]
		st := m.StatFor(playerID)
		if st == nil {
			continue
		}
		points = append(points, HistoryPoint{
			Date: m.Date,
			Metrics: map[string]float64{
				"runs":       float64(st.Runs),
				"strikeRate": round2(rate(float64(st.Runs), float64(st.BallsFaced)) * 100),
				"wickets":    float64(st.Wickets),
				"economy":    round2(rate(float64(st.RunsConceded), float64(st.BallsBowled)/6)),
			},
		})
	}
	return points
}

// FootballHistory builds the per-match trend series for a football player,
// oldest first.
func FootballHistory(playerID int, matches []models.FootballMatch) []HistoryPoint {
	points := make([]HistoryPoint, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		m := &matches[i]
		st := m.StatFor(playerID)
		if st == nil {
			continue
		}
		points = append(points, HistoryPoint{
			Date: m.Date,
			Metrics: map[string]float64{
				"goals":   float64(st.Goals),
				"assists": float64(st.Assists),
				"tackles": float64(st.Tackles),
			},
		})
	}
	return points
}

// BadmintonHistory builds the per-match trend series for a badminton
// player, oldest first.
func BadmintonHistory(playerID int, matches []models.BadmintonMatch) []HistoryPoint {
	points := make([]HistoryPoint, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		m := &matches[i]
		st := m.StatFor(playerID)
		if st == nil {
			continue
		}
		points = append(points, HistoryPoint{
			Date: m.Date,
			Metrics: map[string]float64{
				"pointsWon": float64(st.PointsWon),
				"smashes":   float64(st.Smashes),
			},
		})
	}
	return points
}

// CricketAssessment derives form strengths and weaknesses from a cricket
// window. Strike rate here is the uncapped runs-per-hundred-balls figure;
// bowling thresholds only apply once the player has actually bowled.
func CricketAssessment(t CricketTotals) Assessment {
	var a Assessment
	average := rate(float64(t.Runs), float64(t.MatchesPlayed))
	strike := rate(float64(t.Runs), float64(t.BallsFaced)) * 100
	economy := rate(float64(t.RunsConceded), float64(t.BallsBowled)/6)

	if average > cricketStrongAverage {
		a.Strengths = append(a.Strengths, "Strong Batting Average")
	}
	if strike > cricketStrongStrike {
		a.Strengths = append(a.Strengths, "Excellent Strike Rate")
	}
	if t.BallsBowled > 0 && economy < cricketStrongEconomy {
		a.Strengths = append(a.Strengths, "Economic Bowling")
	}
	if average < cricketWeakAverage {
		a.AreasToImprove = append(a.AreasToImprove, "Batting Consistency")
	}
	if strike < cricketWeakStrike {
		a.AreasToImprove = append(a.AreasToImprove, "Batting Strike Rate")
	}
	if economy > cricketWeakEconomy {
		a.AreasToImprove = append(a.AreasToImprove, "Bowling Economy")
	}
	return a
}

// FootballAssessment derives form strengths and weaknesses from a football
// window.
func FootballAssessment(t FootballTotals) Assessment {
	var a Assessment
	if t.Goals > footballStrongGoals {
		a.Strengths = append(a.Strengths, "Goal Scoring Ability")
	}
	if t.Assists > footballStrongAssists {
		a.Strengths = append(a.Strengths, "Playmaking Skills")
	}
	if t.Tackles > footballStrongTackles {
		a.Strengths = append(a.Strengths, "Strong Tackling")
	}
	if t.YellowCards+t.RedCards > footballWeakDiscipline {
		a.AreasToImprove = append(a.AreasToImprove, "Discipline")
	}
	if t.Goals < footballWeakGoals {
		a.AreasToImprove = append(a.AreasToImprove, "Goal Scoring")
	}
	return a
}

// BadmintonAssessment derives form strengths and weaknesses from a
// badminton window. The win/loss record comes in separately because rally
// counters alone do not say who took the match.
func BadmintonAssessment(t BadmintonTotals, record Tally) Assessment {
	var a Assessment
	if t.Smashes > badmintonStrongSmashes {
		a.Strengths = append(a.Strengths, "Strong Smashing")
	}
	if record.Wins > badmintonStrongWins {
		a.Strengths = append(a.Strengths, "Consistent Winner")
	}
	if record.Wins < badmintonWeakWins {
		a.AreasToImprove = append(a.AreasToImprove, "Match Winning Ability")
	}
	if t.Smashes < badmintonWeakSmashes {
		a.AreasToImprove = append(a.AreasToImprove, "Attacking Play")
	}
	return a
}
