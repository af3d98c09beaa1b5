package ledger

import "github.com/splitbook/splitbook/internal/money"

// DirectedDebt is a raw accumulated obligation toward one counterparty.
type DirectedDebt struct {
	CounterpartyID string
	Amount         money.Cents
}

type pairKey struct {
	fromID string
	toID   string
}

// DebtGraph accumulates raw, non-netted pairwise debts: who owes whom, per
// ordered pair, straight from the expense history.
//
// Unlike Simplify's output this is deliberately not netted: if A owes B 50
// from one expense and B owes A 30 from another, both directed amounts stay
// visible. It is a transaction-history view; Simplify is a suggested-payment
// view. Shown side by side the two can disagree for the same pair, and that
// is expected.
type DebtGraph struct {
	order  []pairKey
	amount map[pairKey]money.Cents
}

// AccumulateDebts builds the debt graph from the expense snapshot. Each split
// whose participant is not the payer adds that split's amount to the pair
// (participant -> payer). Pairs appear in first-encounter order.
func AccumulateDebts(expenses []Expense) *DebtGraph {
	g := &DebtGraph{amount: make(map[pairKey]money.Cents)}
	for _, e := range expenses {
		for _, sp := range e.Splits {
			if sp.ParticipantID == e.PayerID {
				continue
			}
			k := pairKey{fromID: sp.ParticipantID, toID: e.PayerID}
			if _, seen := g.amount[k]; !seen {
				g.order = append(g.order, k)
			}
			g.amount[k] += sp.Amount
		}
	}
	return g
}

// Amount returns the accumulated debt from fromID to toID.
func (g *DebtGraph) Amount(fromID, toID string) money.Cents {
	return g.amount[pairKey{fromID: fromID, toID: toID}]
}

// OwedBy lists what id owes, one entry per creditor, in first-encounter order.
func (g *DebtGraph) OwedBy(id string) []DirectedDebt {
	var out []DirectedDebt
	for _, k := range g.order {
		if k.fromID == id {
			out = append(out, DirectedDebt{CounterpartyID: k.toID, Amount: g.amount[k]})
		}
	}
	return out
}

// OwedTo lists what others owe id, one entry per debtor, in first-encounter order.
func (g *DebtGraph) OwedTo(id string) []DirectedDebt {
	var out []DirectedDebt
	for _, k := range g.order {
		if k.toID == id {
			out = append(out, DirectedDebt{CounterpartyID: k.fromID, Amount: g.amount[k]})
		}
	}
	return out
}
