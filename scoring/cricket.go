package scoring

import (
	"github.com/playsphere/playsphere/models"
)

// ApplyBall applies one delivery to the match in place. The batting side is
// derived from the batsman's enrolled team id, never from display names, so
// two teams with colliding names cannot corrupt attribution.
//
// Per-kind effects:
//
//	wide   — batting side +1 run; bowler +1 conceded, +1 wide; no team-ball,
//	         no ball faced
//	wicket — batting side wickets+1, team-ball+1; batsman out, ball faced+1;
//	         bowler wicket+1, ball bowled+1; no runs
//	four   — +4 runs for side and batsman, boundary counted; team-ball+1
//	six    — as four with 6
//	runs   — event's runs for side and batsman; team-ball+1
//
// The appended log entry carries the batting side's team-ball counter as it
// stood before the update.
func ApplyBall(m *models.CricketMatch, ev BallEvent) error {
	if err := ev.validate(); err != nil {
		return err
	}

	batsman := m.StatFor(ev.BatsmanID)
	if batsman == nil {
		return ErrPlayerNotEnrolled
	}
	bowler := m.StatFor(ev.BowlerID)
	if bowler == nil {
		return ErrPlayerNotEnrolled
	}

	side := &m.Score.Team1
	if batsman.PlayerTeamID != m.Team1ID {
		side = &m.Score.Team2
	}

	rec := models.BallRecord{
		BallNumber: side.TeamBalls,
		BatsmanID:  ev.BatsmanID,
		BowlerID:   ev.BowlerID,
	}

	switch ev.Kind {
	case BallWide:
		rec.Wide = true
		rec.Runs = 1
		side.Score++
		bowler.RunsConceded++
		bowler.Wides++

	case BallWicket:
		rec.Wicket = true
		rec.OutType = ev.Dismissal
		side.Wickets++
		side.TeamBalls++
		batsman.IsOut = true
		batsman.OutType = ev.Dismissal
		batsman.BallsFaced++
		bowler.Wickets++
		bowler.BallsBowled++

	case BallFour:
		rec.Four = true
		rec.Runs = 4
		side.Score += 4
		side.TeamBalls++
		batsman.Runs += 4
		batsman.Fours++
		batsman.BallsFaced++
		bowler.RunsConceded += 4
		bowler.BallsBowled++

	case BallSix:
		rec.Six = true
		rec.Runs = 6
		side.Score += 6
		side.TeamBalls++
		batsman.Runs += 6
		batsman.Sixes++
		batsman.BallsFaced++
		bowler.RunsConceded += 6
		bowler.BallsBowled++

	case BallRuns:
		rec.Runs = ev.Runs
		side.Score += ev.Runs
		side.TeamBalls++
		batsman.Runs += ev.Runs
		batsman.BallsFaced++
		bowler.RunsConceded += ev.Runs
		bowler.BallsBowled++
	}

	m.Balls = append(m.Balls, rec)
	return nil
}
