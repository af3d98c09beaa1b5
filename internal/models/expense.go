package models

import "github.com/splitbook/splitbook/internal/money"

// Expense is one shared expense: a payer who fronted the full amount and a
// list of per-participant splits. Invariant, enforced at ingestion: the
// splits sum exactly to Amount.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is what the money was spent on (e.g., "Dinner", "Cab").
	Description string

	// Amount is the full expense amount in minor units.
	Amount money.Cents

	// PayerID is the user who paid the full amount.
	PayerID string

	// Splits attribute the amount across participants, payer included.
	Splits []Split

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// CreatedBy is the user ID who recorded the expense.
	CreatedBy string
}

// Split is the portion of an expense owed by one participant.
type Split struct {
	ParticipantID string
	Amount        money.Cents
}
