// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a cashier account held in the in-memory credential store. The
// Password field holds whatever the configured verifier produced: the raw
// password under plaintext storage, a bcrypt hash otherwise. Accounts are
// immutable after signup and live only for the lifetime of the process.
type User struct {
	Username  string // Unique login name, matched case-sensitively.
	Password  string // Stored credential as encoded by the password verifier.
	CreatedAt time.Time
}
