package models

import "time"

type FootballScore struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

type FootballPlayerStat struct {
	PlayerID     int    `json:"player_id"`
	PlayerName   string `json:"player_name"`
	PlayerTeamID int    `json:"player_team_id"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	Penalties    int    `json:"penalties"`
	YellowCards  int    `json:"yellow_cards"`
	RedCards     int    `json:"red_cards"`
	Saves        int    `json:"saves"`
	Shots        int    `json:"shots"`
	Tackles      int    `json:"tackles"`
}

type FootballMatch struct {
	ID        int         `json:"id" db:"id"`
	Team1ID   int         `json:"team1_id" db:"team1_id"`
	Team2ID   int         `json:"team2_id" db:"team2_id"`
	Team1Name string      `json:"team1_name" db:"team1_name"`
	Team2Name string      `json:"team2_name" db:"team2_name"`
	Date      time.Time   `json:"date" db:"date"`
	Venue     string      `json:"venue" db:"venue"`
	Status    MatchStatus `json:"status" db:"status"`
	Winner    *string     `json:"winner,omitempty" db:"winner"`

	Score       FootballScore        `json:"score" db:"-"`
	PlayerStats []FootballPlayerStat `json:"players_stats" db:"-"`
	Highlights  []string             `json:"highlights,omitempty" db:"-"`

	Version int `json:"-" db:"version"`
}

func (m *FootballMatch) StatFor(playerID int) *FootballPlayerStat {
	for i := range m.PlayerStats {
		if m.PlayerStats[i].PlayerID == playerID {
			return &m.PlayerStats[i]
		}
	}
	return nil
}
