package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount  = errors.New("expense amount must be positive")
	ErrEmptySplits    = errors.New("expense must have at least one split")
	ErrNegativeSplit  = errors.New("split amount cannot be negative")
	ErrSplitMismatch  = errors.New("split amounts do not sum to expense amount")
	ErrMissingPayer   = errors.New("expense must have a payer")
	ErrDuplicateSplit = errors.New("participant appears in more than one split")
)

// ValidateExpense checks the invariants an expense must satisfy before it
// enters the ledger. Balance conservation depends on splits summing exactly
// to the expense amount, so the mismatch check is an exact integer
// comparison, not a tolerance.
func ValidateExpense(e Expense) error {
	if e.PayerID == "" {
		return ErrMissingPayer
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(e.Splits) == 0 {
		return ErrEmptySplits
	}
	var sum int64
	seen := make(map[string]bool, len(e.Splits))
	for _, sp := range e.Splits {
		if sp.Amount < 0 {
			return fmt.Errorf("%w: participant %s", ErrNegativeSplit, sp.ParticipantID)
		}
		if seen[sp.ParticipantID] {
			return fmt.Errorf("%w: participant %s", ErrDuplicateSplit, sp.ParticipantID)
		}
		seen[sp.ParticipantID] = true
		sum += int64(sp.Amount)
	}
	if sum != int64(e.Amount) {
		return fmt.Errorf("%w: splits total %d, expense amount %d", ErrSplitMismatch, sum, e.Amount)
	}
	return nil
}
