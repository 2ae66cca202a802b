// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can log in, open push connections and receive alerts.
type User struct {
	ID           string    // Text form of the user's UUID. Alert recipients reference it weakly.
	Username     string    // Unique login name.
	PasswordHash string    // bcrypt hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
