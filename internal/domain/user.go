package domain

import "time"

// User represents one account in the usuarios table. PasswordHash holds the
// bcrypt digest, never the plaintext.
type User struct {
	ID           int64     `json:"id"`
	Correo       string    `json:"correo"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
