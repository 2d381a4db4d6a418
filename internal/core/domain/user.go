package domain

import "time"

// User models an authenticated operator of the back office.
// SenhaHash is never serialised in API responses.
type User struct {
	ID        string     `json:"id"`
	Nome      string     `json:"nome"`
	Email     string     `json:"email"`
	SenhaHash string     `json:"-"`
	Ativo     bool       `json:"ativo"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
