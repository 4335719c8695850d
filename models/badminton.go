package models

import "time"

// BadmintonScore — очки по сторонам. Матч одиночный: по одному игроку с
// каждой стороны, но стороны по-прежнему представляют команды.
type BadmintonScore struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

type BadmintonPlayerStat struct {
	PlayerID     int    `json:"player_id"`
	PlayerName   string `json:"player_name"`
	PlayerTeamID int    `json:"player_team_id"`
	TeamName     string `json:"team_name"`
	PointsWon    int    `json:"points_won"`
	PointsLost   int    `json:"points_lost"`
	Aces         int    `json:"aces"`
	DoubleFaults int    `json:"double_faults"`
	Smashes      int    `json:"smashes"`
	NetPlays     int    `json:"net_plays"`
}

type BadmintonMatch struct {
	ID        int         `json:"id" db:"id"`
	Player1ID int         `json:"player1_id" db:"player1_id"`
	Player2ID int         `json:"player2_id" db:"player2_id"`
	Team1ID   int         `json:"team1_id" db:"team1_id"`
	Team2ID   int         `json:"team2_id" db:"team2_id"`
	Team1Name string      `json:"team1_name" db:"team1_name"`
	Team2Name string      `json:"team2_name" db:"team2_name"`
	Date      time.Time   `json:"date" db:"date"`
	Venue     string      `json:"venue" db:"venue"`
	Status    MatchStatus `json:"status" db:"status"`
	Winner    *string     `json:"winner,omitempty" db:"winner"`

	Score       BadmintonScore        `json:"score" db:"-"`
	PlayerStats []BadmintonPlayerStat `json:"players_stats" db:"-"`
	Highlights  []string              `json:"highlights,omitempty" db:"-"`

	Version int `json:"-" db:"version"`
}

func (m *BadmintonMatch) StatFor(playerID int) *BadmintonPlayerStat {
	for i := range m.PlayerStats {
		if m.PlayerStats[i].PlayerID == playerID {
			return &m.PlayerStats[i]
		}
	}
	return nil
}
