package stats

import "github.com/playsphere/playsphere/models"

// BadmintonTotals accumulates one player's rally counters over a match
// window.
type BadmintonTotals struct {
	MatchesPlayed int `json:"matchesPlayed"`
	PointsWon     int `json:"pointsWon"`
	PointsLost    int `json:"pointsLost"`
	Aces          int `json:"aces"`
	DoubleFaults  int `json:"doubleFaults"`
	Smashes       int `json:"smashes"`
	NetPlays      int `json:"netPlays"`
}

func (t *BadmintonTotals) Add(m *models.BadmintonMatch, playerID int) {
	st := m.StatFor(playerID)
	if st == nil {
		return
	}
	t.MatchesPlayed++
	t.PointsWon += st.PointsWon
	t.PointsLost += st.PointsLost
	t.Aces += st.Aces
	t.DoubleFaults += st.DoubleFaults
	t.Smashes += st.Smashes
	t.NetPlays += st.NetPlays
}

// BadmintonRadar builds the profile radar over a window of completed
// matches. Every dimension is the counter's share of total points
// contested, with a floor of one on the denominator.
func BadmintonRadar(playerID int, matches []models.BadmintonMatch) Radar {
	var t BadmintonTotals
	for i := range matches {
		t.Add(&matches[i], playerID)
	}

	total := float64(t.PointsWon + t.PointsLost)
	share := func(n int) float64 {
		return clamp(round2(rate(float64(n), total)*100), 0, 100)
	}

	return Radar{
		Labels: []string{"Points Won", "Aces", "Smashes", "Net Plays", "Points Lost"},
		Data: []float64{
			share(t.PointsWon),
			share(t.Aces),
			share(t.Smashes),
			share(t.NetPlays),
			share(t.PointsLost),
		},
	}
}
