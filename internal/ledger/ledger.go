// Package ledger turns a snapshot of shared expenses into net balances,
// suggested settle-up transfers, and raw pairwise debts.
//
// Everything here is a pure function over inputs passed by value: no caching,
// no shared state, safe to call from any number of goroutines. Callers
// recompute on every read; at group-sized data volumes that is cheaper than
// any invalidation scheme.
package ledger

import "github.com/splitbook/splitbook/internal/money"

// Participant is a roster entry. Identity is the ID; Name is display-only.
type Participant struct {
	ID    string
	Name  string
	Email string
}

// Split is the portion of one expense attributed to one participant.
type Split struct {
	ParticipantID string
	Amount        money.Cents
}

// Expense is the minimal expense shape the engine needs.
type Expense struct {
	ID      string
	Amount  money.Cents
	PayerID string
	Splits  []Split
}

// Balance is one participant's net position. Positive Net means they are
// owed money, negative means they owe.
type Balance struct {
	ParticipantID string
	Net           money.Cents
	Paid          money.Cents // total credited as payer
	Owed          money.Cents // total debited across splits
}

// Warning reports an expense that referenced a participant id missing from
// the roster. The computation synthesizes a placeholder balance for it so no
// money disappears from the totals, and the caller decides how loudly to
// complain.
type Warning struct {
	ExpenseID     string
	ParticipantID string
	Role          string // "payer" or "split"
}

// BalanceSheet holds one Balance per participant in discovery order: roster
// order first, then unknown ids in the order expenses first referenced them.
// Order matters because Simplify partitions creditors and debtors by it.
type BalanceSheet struct {
	order []string
	byID  map[string]*Balance
}

// NewBalanceSheet returns a sheet with a zero balance for every roster entry,
// so members with no expenses still appear.
func NewBalanceSheet(roster []Participant) *BalanceSheet {
	s := &BalanceSheet{byID: make(map[string]*Balance, len(roster))}
	for _, p := range roster {
		s.entry(p.ID)
	}
	return s
}

// entry returns the balance for id, creating it in discovery order if needed.
func (s *BalanceSheet) entry(id string) *Balance {
	if b, ok := s.byID[id]; ok {
		return b
	}
	b := &Balance{ParticipantID: id}
	s.byID[id] = b
	s.order = append(s.order, id)
	return b
}

// Get returns the balance for id, or false if the sheet has no entry for it.
func (s *BalanceSheet) Get(id string) (Balance, bool) {
	b, ok := s.byID[id]
	if !ok {
		return Balance{}, false
	}
	return *b, true
}

// All returns the balances in discovery order. The slice is a fresh copy.
func (s *BalanceSheet) All() []Balance {
	out := make([]Balance, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Len returns the number of entries on the sheet.
func (s *BalanceSheet) Len() int {
	return len(s.order)
}

// Sum returns the sum of all net balances. For a closed expense set whose
// splits sum to their amounts this is exactly zero.
func (s *BalanceSheet) Sum() money.Cents {
	var total money.Cents
	for _, b := range s.byID {
		total += b.Net
	}
	return total
}

// ApplyPayment folds a recorded settle-up payment into the sheet: the payer
// has effectively paid more, the receiver has effectively been covered for
// more. Entries are synthesized for unknown ids.
func (s *BalanceSheet) ApplyPayment(fromID, toID string, amount money.Cents) {
	from := s.entry(fromID)
	from.Paid += amount
	from.Net = from.Paid - from.Owed

	to := s.entry(toID)
	to.Owed += amount
	to.Net = to.Paid - to.Owed
}

// ComputeBalances accumulates net balances for every roster participant from
// the given expenses. Expense order is irrelevant: the operation is a sum.
//
// An expense referencing an id absent from the roster does not fail the
// computation; a placeholder entry keeps the totals conserved and a Warning
// is returned for the caller to surface.
func ComputeBalances(expenses []Expense, roster []Participant) (*BalanceSheet, []Warning) {
	sheet := NewBalanceSheet(roster)

	// Warnings key off the roster, not the sheet: a placeholder entry
	// synthesized for one expense must not hide the next expense's
	// reference to the same unknown id.
	onRoster := make(map[string]bool, len(roster))
	for _, p := range roster {
		onRoster[p.ID] = true
	}

	var warnings []Warning
	for _, e := range expenses {
		if !onRoster[e.PayerID] {
			warnings = append(warnings, Warning{ExpenseID: e.ID, ParticipantID: e.PayerID, Role: "payer"})
		}
		payer := sheet.entry(e.PayerID)
		payer.Paid += e.Amount
		payer.Net = payer.Paid - payer.Owed

		for _, sp := range e.Splits {
			if !onRoster[sp.ParticipantID] {
				warnings = append(warnings, Warning{ExpenseID: e.ID, ParticipantID: sp.ParticipantID, Role: "split"})
			}
			b := sheet.entry(sp.ParticipantID)
			b.Owed += sp.Amount
			b.Net = b.Paid - b.Owed
		}
	}

	return sheet, warnings
}
