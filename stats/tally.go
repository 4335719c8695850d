// Package stats is the read-side aggregation layer. It scans completed
// match records and derives win/loss tallies, career totals and the
// radar-chart metrics served on player profiles. Everything here is pure:
// callers fetch the match window and pass it in.
package stats

import (
	"github.com/playsphere/playsphere/models"
)

// Outcome is one completed match seen from a single player's side.
type Outcome struct {
	Winner   string // winner display name, or models.WinnerDraw
	TeamName string // the player's enrolled team display name in that match
}

// Tally is the win/loss record over a window of completed matches.
// A draw counts in the matches-played denominator but is neither a win
// nor a loss.
type Tally struct {
	MatchesPlayed int     `json:"matchesPlayed"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Draws         int     `json:"draws"`
	WinPercentage float64 `json:"winPercentage"`
}

// TallyOutcomes folds a window of outcomes into a Tally. The win rate is
// wins over matches played with a denominator floor of one, rounded to one
// decimal, so an empty window yields 0 rather than NaN.
func TallyOutcomes(outcomes []Outcome) Tally {
	t := Tally{MatchesPlayed: len(outcomes)}
	for _, o := range outcomes {
		switch {
		case o.Winner == "":
			// Completed matches always carry a winner; tolerate a blank.
		case o.Winner == models.WinnerDraw:
			t.Draws++
		case o.Winner == o.TeamName:
			t.Wins++
		default:
			t.Losses++
		}
	}
	t.WinPercentage = round1(rate(float64(t.Wins), float64(t.MatchesPlayed)) * 100)
	return t
}

// CricketOutcome extracts the player's outcome from a completed cricket
// match. The player's side is resolved by enrolled team id, the comparison
// against the winner by display name. Returns false when the player is not
// enrolled or the match has no winner yet.
func CricketOutcome(m *models.CricketMatch, playerID int) (Outcome, bool) {
	st := m.StatFor(playerID)
	if st == nil || m.Winner == nil {
		return Outcome{}, false
	}
	name := m.Team1Name
	if st.PlayerTeamID != m.Team1ID {
		name = m.Team2Name
	}
	return Outcome{Winner: *m.Winner, TeamName: name}, true
}

// FootballOutcome is the football counterpart of CricketOutcome.
func FootballOutcome(m *models.FootballMatch, playerID int) (Outcome, bool) {
	st := m.StatFor(playerID)
	if st == nil || m.Winner == nil {
		return Outcome{}, false
	}
	name := m.Team1Name
	if st.PlayerTeamID != m.Team1ID {
		name = m.Team2Name
	}
	return Outcome{Winner: *m.Winner, TeamName: name}, true
}

// BadmintonOutcome extracts the outcome for a badminton singles match.
// Badminton stats carry the enrolled team name directly.
func BadmintonOutcome(m *models.BadmintonMatch, playerID int) (Outcome, bool) {
	st := m.StatFor(playerID)
	if st == nil || m.Winner == nil {
		return Outcome{}, false
	}
	return Outcome{Winner: *m.Winner, TeamName: st.TeamName}, true
}
