package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds an argon2id PHC string and is never serialised.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserIDForEmail derives the account id from the local part of an email address.
// Two addresses with the same local part on different domains map to the same id.
func UserIDForEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return "user_" + local
}
