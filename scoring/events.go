// Package scoring contains the pure match-scoring engine: event application
// for the three sports, the match status lifecycle and the live-score hub.
// Functions here never touch storage; they transform an in-memory match and
// report a typed error when the event is invalid, leaving the match intact.
package scoring

import (
	"errors"
	"fmt"

	"github.com/playsphere/playsphere/models"
)

var (
	ErrPlayerNotEnrolled = errors.New("player is not enrolled in this match")
	ErrDismissalRequired = errors.New("wicket event requires a dismissal type")
	ErrUnknownEventKind  = errors.New("unknown event kind")
	ErrNegativeRuns      = errors.New("runs must not be negative")
	ErrInvalidDismissal  = errors.New("unknown dismissal type")
	ErrMatchNotLive      = errors.New("match is not live")
	ErrInvalidStatus     = errors.New("invalid match status")
	ErrStatusRegression  = errors.New("match status cannot move backwards")
	ErrScoreMissing      = errors.New("match has no score to complete with")
)

type BallKind string

const (
	BallRuns   BallKind = "runs"
	BallWide   BallKind = "wide"
	BallFour   BallKind = "four"
	BallSix    BallKind = "six"
	BallWicket BallKind = "wicket"
)

// BallEvent is one delivery. Exactly one kind is active; Runs is only
// meaningful for BallRuns, Dismissal only for BallWicket.
type BallEvent struct {
	Kind      BallKind
	Runs      int
	Dismissal models.DismissalType
	BatsmanID int
	BowlerID  int
}

func (e BallEvent) validate() error {
	switch e.Kind {
	case BallRuns:
		if e.Runs < 0 {
			return ErrNegativeRuns
		}
	case BallWide, BallFour, BallSix:
	case BallWicket:
		if e.Dismissal == "" {
			return ErrDismissalRequired
		}
		if !e.Dismissal.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidDismissal, e.Dismissal)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventKind, e.Kind)
	}
	return nil
}

type FootballEventKind string

const (
	FootballGoal       FootballEventKind = "goal"
	FootballAssist     FootballEventKind = "assist"
	FootballPenalty    FootballEventKind = "penalty"
	FootballYellowCard FootballEventKind = "yellow_card"
	FootballRedCard    FootballEventKind = "red_card"
	FootballSave       FootballEventKind = "save"
	FootballShot       FootballEventKind = "shot"
	FootballTackle     FootballEventKind = "tackle"
)

type FootballEvent struct {
	Kind     FootballEventKind
	PlayerID int
}

func (e FootballEvent) validate() error {
	switch e.Kind {
	case FootballGoal, FootballAssist, FootballPenalty, FootballYellowCard,
		FootballRedCard, FootballSave, FootballShot, FootballTackle:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownEventKind, e.Kind)
}

type RallyKind string

const (
	RallyPoint       RallyKind = "point"
	RallyAce         RallyKind = "ace"
	RallyDoubleFault RallyKind = "double_fault"
	RallySmash       RallyKind = "smash"
	RallyNetPlay     RallyKind = "net_play"
)

// RallyEvent is one badminton rally attributed to PlayerID. PointWon matters
// for point/smash/net_play; aces always win the point, double faults always
// lose it.
type RallyEvent struct {
	Kind     RallyKind
	PlayerID int
	PointWon bool
}

func (e RallyEvent) validate() error {
	switch e.Kind {
	case RallyPoint, RallyAce, RallyDoubleFault, RallySmash, RallyNetPlay:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownEventKind, e.Kind)
}
