// Package models defines the persistent domain types for Splitbook.
//
// Monetary fields are money.Cents throughout; there is no floating point in
// the domain layer. Relationships use ID strings rather than pointers to
// avoid circular references.
package models

// User is a registered account. Participants in groups and expenses are
// always referenced by user ID; display names may collide, IDs never do.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// Email is the user's email address (unique). Used for login.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to API responses.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
