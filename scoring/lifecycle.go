package scoring

import (
	"fmt"

	"github.com/playsphere/playsphere/models"
)

// Transition validates a status change. Statuses only ever move forward
// (upcoming → live → completed); repeating the current status is a no-op.
// "due" is a display status and never a transition target.
func Transition(current, next models.MatchStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if current == next {
		return nil
	}
	allowed := map[models.MatchStatus][]models.MatchStatus{
		models.StatusUpcoming:  {models.StatusLive, models.StatusCompleted},
		models.StatusLive:      {models.StatusCompleted},
		models.StatusCompleted: {},
	}
	for _, a := range allowed[current] {
		if next == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrStatusRegression, current, next)
}

// DeriveWinner picks the display name of the side with the strictly greater
// score; equal scores produce a draw.
func DeriveWinner(team1Name, team2Name string, score1, score2 int) string {
	switch {
	case score1 > score2:
		return team1Name
	case score2 > score1:
		return team2Name
	default:
		return models.WinnerDraw
	}
}
