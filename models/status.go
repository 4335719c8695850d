package models

import "time"

// MatchStatus представляет стадию матча, соответствующую ENUM в БД.
// "due" никогда не сохраняется: это отображаемый статус для upcoming-матчей,
// чья дата уже прошла.
type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "upcoming"
	StatusDue       MatchStatus = "due"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return true
	}
	return false
}

// DisplayStatus returns the status a reader should see at a given moment:
// an upcoming match whose date has passed is shown as "due".
func DisplayStatus(status MatchStatus, date, now time.Time) MatchStatus {
	if status == StatusUpcoming && date.Before(now) {
		return StatusDue
	}
	return status
}

// WinnerDraw is recorded as the winner of a completed match with equal scores.
const WinnerDraw = "Draw"

type Sport string

const (
	SportCricket   Sport = "Cricket"
	SportFootball  Sport = "Football"
	SportBadminton Sport = "Badminton"
)

func (s Sport) Valid() bool {
	switch s {
	case SportCricket, SportFootball, SportBadminton:
		return true
	}
	return false
}

type DismissalType string

const (
	DismissalBowled    DismissalType = "bowled"
	DismissalCaught    DismissalType = "caught"
	DismissalRunOut    DismissalType = "run out"
	DismissalLBW       DismissalType = "lbw"
	DismissalStumped   DismissalType = "stumped"
	DismissalHitWicket DismissalType = "hit wicket"
)

func (d DismissalType) Valid() bool {
	switch d {
	case DismissalBowled, DismissalCaught, DismissalRunOut, DismissalLBW, DismissalStumped, DismissalHitWicket:
		return true
	}
	return false
}
