package models

import (
	"fmt"
	"time"
)

// CricketInningsScore is one side's running total.
type CricketInningsScore struct {
	Score     int `json:"score"`
	TeamBalls int `json:"teamballs"`
	Wickets   int `json:"wickets"`
}

type CricketScore struct {
	Team1 CricketInningsScore `json:"team1"`
	Team2 CricketInningsScore `json:"team2"`
}

// CricketPlayerStat — статистика одного игрока в рамках одного матча.
// Запись создаётся при создании матча и существует только для заявленных
// игроков (enrollment заморожен после создания).
type CricketPlayerStat struct {
	PlayerID     int           `json:"player_id"`
	PlayerName   string        `json:"player_name"`
	PlayerTeamID int           `json:"player_team_id"`
	IsOut        bool          `json:"is_out"`
	OutType      DismissalType `json:"out_type,omitempty"`
	Runs         int           `json:"runs"`
	BallsFaced   int           `json:"balls_faced"`
	Fours        int           `json:"fours"`
	Sixes        int           `json:"sixes"`
	BallsBowled  int           `json:"balls_bowled"`
	RunsConceded int           `json:"runs_conceded"`
	Wides        int           `json:"wides"`
	Wickets      int           `json:"wickets"`
}

// Overs renders balls bowled in cricket notation: complete overs, then the
// balls of the unfinished over.
func (s *CricketPlayerStat) Overs() string {
	return fmt.Sprintf("%d.%d", s.BallsBowled/6, s.BallsBowled%6)
}

// BallRecord is one entry of the ball-by-ball log. BallNumber is the batting
// side's team-ball counter as it stood before the ball was applied.
type BallRecord struct {
	BallNumber int           `json:"ball_number"`
	Runs       int           `json:"runs"`
	Wide       bool          `json:"wide,omitempty"`
	Four       bool          `json:"four,omitempty"`
	Six        bool          `json:"six,omitempty"`
	Wicket     bool          `json:"wicket,omitempty"`
	OutType    DismissalType `json:"out_type,omitempty"`
	BatsmanID  int           `json:"batsman_id"`
	BowlerID   int           `json:"bowler_id"`
}

type CricketMatch struct {
	ID        int         `json:"id" db:"id"`
	Team1ID   int         `json:"team1_id" db:"team1_id"`
	Team2ID   int         `json:"team2_id" db:"team2_id"`
	Team1Name string      `json:"team1_name" db:"team1_name"`
	Team2Name string      `json:"team2_name" db:"team2_name"`
	Date      time.Time   `json:"date" db:"date"`
	Venue     string      `json:"venue" db:"venue"`
	Status    MatchStatus `json:"status" db:"status"`
	Winner    *string     `json:"winner,omitempty" db:"winner"`

	// Toss outcome, recorded when the match goes live. Advisory only.
	TossWinnerID *int `json:"toss_winner_id,omitempty" db:"toss_winner_id"`
	ChoseBatting bool `json:"chose_batting" db:"chose_batting"`
	ChoseBowling bool `json:"chose_bowling" db:"chose_bowling"`

	Score       CricketScore        `json:"score" db:"-"`
	PlayerStats []CricketPlayerStat `json:"players_stats" db:"-"`
	Balls       []BallRecord        `json:"ball_stats" db:"-"`
	Highlights  []string            `json:"highlights,omitempty" db:"-"`

	// Optimistic concurrency counter, bumped on every scored write.
	Version int `json:"-" db:"version"`
}

// StatFor returns the match stat record of the given player, or nil when the
// player was not enrolled at creation time.
func (m *CricketMatch) StatFor(playerID int) *CricketPlayerStat {
	for i := range m.PlayerStats {
		if m.PlayerStats[i].PlayerID == playerID {
			return &m.PlayerStats[i]
		}
	}
	return nil
}
