package stats

import "github.com/playsphere/playsphere/models"

// Season ceilings used to normalize raw football counters onto the 0..100
// radar scale.
const (
	maxGoals     = 50
	maxAssists   = 30
	maxShots     = 200
	maxTackles   = 100
	maxPenalties = 10
	maxSaves     = 150
)

// FootballTotals accumulates one player's counters over a match window.
type FootballTotals struct {
	MatchesPlayed int `json:"matchesPlayed"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	Shots         int `json:"shots"`
	Tackles       int `json:"tackles"`
	Penalties     int `json:"penalties"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
	Saves         int `json:"saves"`
}

func (t *FootballTotals) Add(m *models.FootballMatch, playerID int) {
	st := m.StatFor(playerID)
	if st == nil {
		return
	}
	t.MatchesPlayed++
	t.Goals += st.Goals
	t.Assists += st.Assists
	t.Shots += st.Shots
	t.Tackles += st.Tackles
	t.Penalties += st.Penalties
	t.YellowCards += st.YellowCards
	t.RedCards += st.RedCards
	t.Saves += st.Saves
}

// ShotAccuracy is goals per hundred shots.
func (t FootballTotals) ShotAccuracy() float64 {
	if t.Shots == 0 {
		return 0
	}
	return clamp(round2(float64(t.Goals)/float64(t.Shots)*100), 0, 100)
}

// normalizeTo maps a raw counter onto 0..100 against a season ceiling.
func normalizeTo(value, max int) float64 {
	return clamp(round2(float64(value)/float64(max)*100), 0, 100)
}

// FootballRadar builds the profile radar over a window of completed
// matches. Apart from shot accuracy, which is a true ratio, dimensions
// are raw counters normalized against season ceilings.
func FootballRadar(playerID int, matches []models.FootballMatch) Radar {
	var t FootballTotals
	for i := range matches {
		t.Add(&matches[i], playerID)
	}

	return Radar{
		Labels: []string{"Goal Contribution", "Shot Accuracy", "Defensive Actions", "Penalty Success", "Save Efficiency"},
		Data: []float64{
			normalizeTo(t.Goals+t.Assists, maxGoals+maxAssists),
			t.ShotAccuracy(),
			normalizeTo(t.Tackles, maxTackles),
			normalizeTo(t.Penalties, maxPenalties),
			normalizeTo(t.Saves, maxSaves),
		},
	}
}
