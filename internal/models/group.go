package models

// Group is a set of users who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Goa Trip").
	Name string

	// CreatedBy is the user ID of the group's creator.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// Members is the group roster. Populated on reads that need it.
	Members []GroupMember
}

// GroupMember is one roster entry, denormalized with display fields.
type GroupMember struct {
	UserID string
	Name   string
	Email  string
}

// HasMember reports whether userID is on the roster.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
