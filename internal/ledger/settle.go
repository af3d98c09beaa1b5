package ledger

import "github.com/splitbook/splitbook/internal/money"

// Transfer is one proposed payment that reduces outstanding balances.
type Transfer struct {
	FromID string
	ToID   string
	Amount money.Cents
}

// Simplify reduces a balance sheet to a list of transfers that zero every
// balance. Participants with a zero net emit nothing.
//
// The matching is encounter-order greedy: the first unsettled debtor pays the
// first unsettled creditor, in sheet order. Each step fully clears at least
// one side, so the result has at most creditors+debtors-1 transfers. This is
// a valid zeroing set, not a guaranteed minimum-transaction set; the ordering
// is part of the observable behavior that settle-up screens depend on, so it
// must not be swapped for a magnitude-sorted matching.
func Simplify(sheet *BalanceSheet) []Transfer {
	var creditors, debtors []*Balance
	for _, b := range sheet.All() {
		switch {
		case b.Net > 0:
			creditors = append(creditors, &b)
		case b.Net < 0:
			debtors = append(debtors, &b)
		}
	}

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		owes := -debtors[i].Net
		due := creditors[j].Net

		amount := owes
		if due < amount {
			amount = due
		}

		transfers = append(transfers, Transfer{
			FromID: debtors[i].ParticipantID,
			ToID:   creditors[j].ParticipantID,
			Amount: amount,
		})

		debtors[i].Net += amount
		creditors[j].Net -= amount

		if debtors[i].Net == 0 {
			i++
		}
		if creditors[j].Net == 0 {
			j++
		}
	}

	return transfers
}
