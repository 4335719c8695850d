package models

type Player struct {
	ID         int    `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	FatherName string `json:"father_name" db:"father_name"`
	MotherName string `json:"mother_name" db:"mother_name"`
	Phone      string `json:"phone" db:"phone"`
	Email      string `json:"email" db:"email"`
	RollNo     int    `json:"roll_no" db:"roll_no"`
	Age        int    `json:"age" db:"age"`
	Sport      Sport  `json:"sport" db:"sport"`
	Category   string `json:"category,omitempty" db:"category"`
	Ranking    int    `json:"ranking" db:"ranking"`

	TeamID   *int   `json:"team_id,omitempty" db:"team_id"`
	TeamName string `json:"team_name,omitempty" db:"team_name"`

	PhotoKey *string `json:"-" db:"photo_key"`
	PhotoURL *string `json:"photo_url,omitempty" db:"-"`
}

// PlayerSummary — урезанное представление игрока для списков и сравнений.
type PlayerSummary struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Sport    Sport   `json:"sport"`
	Category string  `json:"category,omitempty"`
	TeamName string  `json:"team_name,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

func (p *Player) Summary() PlayerSummary {
	return PlayerSummary{
		ID:       p.ID,
		Name:     p.Name,
		Sport:    p.Sport,
		Category: p.Category,
		TeamName: p.TeamName,
		PhotoURL: p.PhotoURL,
	}
}
