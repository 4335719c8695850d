package models

import "time"

// Admin — учётная запись администратора с паролем.
type Admin struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AppUser is a lightweight dashboard visitor account: email only, created on
// first login.
type AppUser struct {
	ID        int       `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Type      string    `json:"type" db:"type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
