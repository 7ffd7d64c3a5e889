package entity

import "time"

// User is an authenticable identity. Profiles (Client, Provider) link to it
// one-to-one; admins are users with IsSuperuser set and no profile.
// PasswordHash holds a bcrypt hash, never the plain password.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsSuperuser  bool
	CreatedAt    time.Time
}
