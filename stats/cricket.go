package stats

import "github.com/playsphere/playsphere/models"

// Player categories as stored on the player record. A cricket radar is
// built from batting dimensions for batsmen and bowling dimensions for
// everyone else.
const (
	CategoryBatsman = "Batsman"
	CategoryBowler  = "Bowler"
)

// Radar is a fixed ordered set of named profile dimensions, shaped for a
// radar chart. Labels and Data are index-aligned.
type Radar struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// CricketTotals accumulates one player's counters over a match window.
type CricketTotals struct {
	MatchesPlayed int `json:"matchesPlayed"`
	Runs          int `json:"runs"`
	BallsFaced    int `json:"ballsFaced"`
	Fours         int `json:"fours"`
	Sixes         int `json:"sixes"`
	Outs          int `json:"outs"`
	Wickets       int `json:"wickets"`
	RunsConceded  int `json:"runsConceded"`
	BallsBowled   int `json:"ballsBowled"`
	Wides         int `json:"wides"`
}

// Add folds in the player's stat line from one match. Matches the player
// was not enrolled in are skipped.
func (t *CricketTotals) Add(m *models.CricketMatch, playerID int) {
	st := m.StatFor(playerID)
	if st == nil {
		return
	}
	t.MatchesPlayed++
	t.Runs += st.Runs
	t.BallsFaced += st.BallsFaced
	t.Fours += st.Fours
	t.Sixes += st.Sixes
	if st.IsOut {
		t.Outs++
	}
	t.Wickets += st.Wickets
	t.RunsConceded += st.RunsConceded
	t.BallsBowled += st.BallsBowled
	t.Wides += st.Wides
}

// StrikeRate is runs per hundred balls faced, capped at 100 for chart use.
func (t CricketTotals) StrikeRate() float64 {
	return clamp(round2(rate(float64(t.Runs), float64(t.BallsFaced))*100), 0, 100)
}

// Economy is runs conceded per over, capped at 6.
func (t CricketTotals) Economy() float64 {
	return clamp(round2(rate(float64(t.RunsConceded), float64(t.BallsBowled)/6)), 0, 6)
}

// CricketRadar builds the profile radar over a window of completed
// matches. Batting dimensions for the Batsman category, bowling
// dimensions otherwise. Every dimension lives on a 0..100 scale except
// economy, which is capped at 6 runs per over.
func CricketRadar(playerID int, category string, matches []models.CricketMatch) Radar {
	var t CricketTotals
	for i := range matches {
		t.Add(&matches[i], playerID)
	}

	if category == CategoryBatsman {
		boundaries := t.Fours + t.Sixes
		return Radar{
			Labels: []string{"strikeRate", "boundariesRate", "outRate", "runRate", "averageRunsPerMatch"},
			Data: []float64{
				t.StrikeRate(),
				clamp(round2(rate(float64(boundaries), float64(t.Runs))*100), 0, 100),
				clamp(round2(rate(float64(t.Outs), float64(t.MatchesPlayed))*100), 0, 100),
				clamp(round2(rate(float64(t.Runs), float64(t.BallsFaced))*6), 0, 100),
				clamp(round2(rate(float64(t.Runs), float64(t.MatchesPlayed))), 0, 100),
			},
		}
	}

	return Radar{
		Labels: []string{"wicketRate", "runConcededRate", "economyRate", "wideBallRate", "bowlingStrikeRate"},
		Data: []float64{
			clamp(round2(rate(float64(t.Wickets), float64(t.MatchesPlayed))*100), 0, 100),
			clamp(round2(rate(float64(t.RunsConceded), float64(t.MatchesPlayed))), 0, 100),
			t.Economy(),
			clamp(round2(rate(float64(t.Wides), float64(t.BallsBowled))*100), 0, 100),
			clamp(round2(rate(float64(t.BallsBowled), float64(t.Wickets))), 0, 100),
		},
	}
}
