package scoring

import (
	"github.com/playsphere/playsphere/models"
)

// ApplyRally applies one rally to the match in place. A won point credits the
// acting player's side of the score; a lost point credits the opponent's.
// Smashes and net plays always count the technique and only score when the
// rally is flagged as point-winning.
func ApplyRally(m *models.BadmintonMatch, ev RallyEvent) error {
	if err := ev.validate(); err != nil {
		return err
	}

	player := m.StatFor(ev.PlayerID)
	if player == nil {
		return ErrPlayerNotEnrolled
	}

	own, opponent := &m.Score.Player1, &m.Score.Player2
	if ev.PlayerID != m.Player1ID {
		own, opponent = &m.Score.Player2, &m.Score.Player1
	}

	win := func() {
		player.PointsWon++
		*own++
	}
	lose := func() {
		player.PointsLost++
		*opponent++
	}

	switch ev.Kind {
	case RallyPoint:
		if ev.PointWon {
			win()
		} else {
			lose()
		}
	case RallyAce:
		player.Aces++
		win()
	case RallyDoubleFault:
		player.DoubleFaults++
		lose()
	case RallySmash:
		player.Smashes++
		if ev.PointWon {
			win()
		}
	case RallyNetPlay:
		player.NetPlays++
		if ev.PointWon {
			win()
		}
	}

	return nil
}
