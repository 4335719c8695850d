package scoring

import (
	"github.com/playsphere/playsphere/models"
)

// ApplyFootballEvent increments exactly one counter on the named player's
// stat record. A goal is the only kind that also moves the team score, and it
// additionally counts as a shot.
func ApplyFootballEvent(m *models.FootballMatch, ev FootballEvent) error {
	if err := ev.validate(); err != nil {
		return err
	}

	player := m.StatFor(ev.PlayerID)
	if player == nil {
		return ErrPlayerNotEnrolled
	}

	switch ev.Kind {
	case FootballGoal:
		player.Goals++
		player.Shots++
		if player.PlayerTeamID == m.Team1ID {
			m.Score.Team1++
		} else {
			m.Score.Team2++
		}
	case FootballAssist:
		player.Assists++
	case FootballPenalty:
		player.Penalties++
	case FootballYellowCard:
		player.YellowCards++
	case FootballRedCard:
		player.RedCards++
	case FootballSave:
		player.Saves++
	case FootballShot:
		player.Shots++
	case FootballTackle:
		player.Tackles++
	}

	return nil
}
