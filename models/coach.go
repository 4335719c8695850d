package models

import "time"

type Coach struct {
	ID             int       `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Address        string    `json:"address" db:"address"`
	DOB            time.Time `json:"dob" db:"dob"`
	Specialization Sport     `json:"specialization" db:"specialization"`
	Education      string    `json:"education" db:"education"`
	Bio            string    `json:"bio" db:"bio"`

	PhotoKey *string `json:"-" db:"photo_key"`
	PhotoURL *string `json:"photo_url,omitempty" db:"-"`
}

// PlayerRegistration — анкета игрока, поданная тренером (до зачисления в
// ростер команды игрок существует только как заявка).
type PlayerRegistration struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	Address      string    `json:"address" db:"address"`
	DOB          time.Time `json:"dob" db:"dob"`
	Education    string    `json:"education" db:"education"`
	FatherName   string    `json:"father_name" db:"father_name"`
	MotherName   string    `json:"mother_name" db:"mother_name"`
	AadharNumber string    `json:"aadhar_number" db:"aadhar_number"`
	Gender       string    `json:"gender" db:"gender"`
	SportsTypes  []string  `json:"sports_types" db:"sports_types"`

	PhotoKey *string `json:"-" db:"photo_key"`
	PhotoURL *string `json:"photo_url,omitempty" db:"-"`
}
