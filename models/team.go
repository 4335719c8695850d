package models

type Team struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Sport     Sport  `json:"sport" db:"sport"`
	CaptainID *int   `json:"captain_id,omitempty" db:"captain_id"`

	Players []Player `json:"players,omitempty" db:"-"`

	PhotoKey *string `json:"-" db:"photo_key"`
	PhotoURL *string `json:"photo_url,omitempty" db:"-"`
}
