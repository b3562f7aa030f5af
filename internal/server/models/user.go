package models

import "time"

// User is a row of the usuarios table. PasswordHash holds an argon2id PHC
// string, or a bcrypt/plaintext value for accounts not yet upgraded.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email,max=254"`
	UserName     string    `json:"username" validate:"notblank,max=64"`
	PasswordHash string    `json:"-" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}
