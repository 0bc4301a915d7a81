package users

import "time"

// User is a login record. PasswordHash is a bcrypt hash and never leaves the
// package boundary in responses.
type User struct {
	ID           string
	StudentName  string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
