package ledger

import (
	"reflect"
	"testing"

	"github.com/splitbook/splitbook/internal/money"
)

var abc = []Participant{
	{ID: "A", Name: "Alice"},
	{ID: "B", Name: "Bob"},
	{ID: "C", Name: "Carol"},
}

func equalSplit(ids []string, each money.Cents) []Split {
	splits := make([]Split, len(ids))
	for i, id := range ids {
		splits[i] = Split{ParticipantID: id, Amount: each}
	}
	return splits
}

func netOf(t *testing.T, sheet *BalanceSheet, id string) money.Cents {
	t.Helper()
	b, ok := sheet.Get(id)
	if !ok {
		t.Fatalf("no balance entry for %s", id)
	}
	return b.Net
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		expenses     []Expense
		roster       []Participant
		wantNets     map[string]money.Cents
		wantWarnings int
	}{
		{
			name: "single expense equal split",
			expenses: []Expense{
				{ID: "e1", Amount: 30000, PayerID: "A", Splits: equalSplit([]string{"A", "B", "C"}, 10000)},
			},
			roster:   abc,
			wantNets: map[string]money.Cents{"A": 20000, "B": -10000, "C": -10000},
		},
		{
			name: "two expenses two payers",
			expenses: []Expense{
				{ID: "e1", Amount: 9000, PayerID: "A", Splits: equalSplit([]string{"A", "B", "C"}, 3000)},
				{ID: "e2", Amount: 6000, PayerID: "B", Splits: equalSplit([]string{"A", "B", "C"}, 2000)},
			},
			roster:   abc,
			wantNets: map[string]money.Cents{"A": 4000, "B": 1000, "C": -5000},
		},
		{
			name:     "no expenses still lists every member",
			expenses: nil,
			roster:   abc,
			wantNets: map[string]money.Cents{"A": 0, "B": 0, "C": 0},
		},
		{
			name: "payer is sole split member nets to zero",
			expenses: []Expense{
				{ID: "e1", Amount: 500, PayerID: "A", Splits: []Split{{ParticipantID: "A", Amount: 500}}},
			},
			roster:   abc,
			wantNets: map[string]money.Cents{"A": 0, "B": 0, "C": 0},
		},
		{
			name: "unknown payer and split participant synthesized with warnings",
			expenses: []Expense{
				{ID: "e1", Amount: 2000, PayerID: "X", Splits: []Split{
					{ParticipantID: "A", Amount: 1000},
					{ParticipantID: "Y", Amount: 1000},
				}},
			},
			roster:       abc,
			wantNets:     map[string]money.Cents{"A": -1000, "B": 0, "C": 0, "X": 2000, "Y": -1000},
			wantWarnings: 2,
		},
		{
			name: "same unknown id warns once per referencing expense",
			expenses: []Expense{
				{ID: "e1", Amount: 1000, PayerID: "X", Splits: []Split{{ParticipantID: "A", Amount: 1000}}},
				{ID: "e2", Amount: 500, PayerID: "X", Splits: []Split{{ParticipantID: "B", Amount: 500}}},
			},
			roster:       abc,
			wantNets:     map[string]money.Cents{"A": -1000, "B": -500, "C": 0, "X": 1500},
			wantWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, warnings := ComputeBalances(tt.expenses, tt.roster)

			if len(warnings) != tt.wantWarnings {
				t.Errorf("warnings = %d, want %d (%v)", len(warnings), tt.wantWarnings, warnings)
			}
			if sheet.Len() != len(tt.wantNets) {
				t.Errorf("sheet has %d entries, want %d", sheet.Len(), len(tt.wantNets))
			}
			for id, want := range tt.wantNets {
				if got := netOf(t, sheet, id); got != want {
					t.Errorf("net[%s] = %d, want %d", id, got, want)
				}
			}
			if sum := sheet.Sum(); sum != 0 {
				t.Errorf("sum of nets = %d, want 0", sum)
			}
		})
	}
}

func TestComputeBalancesWarningPerReference(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Amount: 1000, PayerID: "X", Splits: []Split{{ParticipantID: "A", Amount: 1000}}},
		{ID: "e2", Amount: 500, PayerID: "X", Splits: []Split{{ParticipantID: "X", Amount: 500}}},
	}
	_, warnings := ComputeBalances(expenses, abc)

	// e1 references X as payer, e2 as payer and split member. The entry
	// synthesized while processing e1 must not suppress e2's warnings.
	want := []Warning{
		{ExpenseID: "e1", ParticipantID: "X", Role: "payer"},
		{ExpenseID: "e2", ParticipantID: "X", Role: "payer"},
		{ExpenseID: "e2", ParticipantID: "X", Role: "split"},
	}
	if !reflect.DeepEqual(warnings, want) {
		t.Errorf("warnings = %v, want %v", warnings, want)
	}
}

func TestComputeBalancesDiscoveryOrder(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Amount: 100, PayerID: "Z", Splits: []Split{{ParticipantID: "A", Amount: 100}}},
	}
	sheet, _ := ComputeBalances(expenses, abc)

	var ids []string
	for _, b := range sheet.All() {
		ids = append(ids, b.ParticipantID)
	}
	want := []string{"A", "B", "C", "Z"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}

func TestComputeBalancesIdempotent(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Amount: 9000, PayerID: "A", Splits: equalSplit([]string{"A", "B", "C"}, 3000)},
		{ID: "e2", Amount: 6000, PayerID: "B", Splits: equalSplit([]string{"A", "B", "C"}, 2000)},
	}

	first, _ := ComputeBalances(expenses, abc)
	second, _ := ComputeBalances(expenses, abc)
	if !reflect.DeepEqual(first.All(), second.All()) {
		t.Errorf("repeated computation differs:\n%v\n%v", first.All(), second.All())
	}
}

func TestComputeBalancesReversible(t *testing.T) {
	base := []Expense{
		{ID: "e1", Amount: 9000, PayerID: "A", Splits: equalSplit([]string{"A", "B", "C"}, 3000)},
	}
	extra := Expense{ID: "e2", Amount: 6000, PayerID: "B", Splits: equalSplit([]string{"A", "B", "C"}, 2000)}

	without, _ := ComputeBalances(base, abc)
	recomputed, _ := ComputeBalances(base, abc) // same set, extra never added
	if !reflect.DeepEqual(without.All(), recomputed.All()) {
		t.Fatalf("baseline not stable")
	}

	withExtra, _ := ComputeBalances(append(append([]Expense{}, base...), extra), abc)
	if reflect.DeepEqual(without.All(), withExtra.All()) {
		t.Fatalf("adding an expense must change balances")
	}

	// Removing the expense again restores the original balances exactly.
	removed, _ := ComputeBalances(base, abc)
	if !reflect.DeepEqual(without.All(), removed.All()) {
		t.Errorf("removing an expense did not restore balances:\n%v\n%v", without.All(), removed.All())
	}
}

func TestApplyPayment(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Amount: 30000, PayerID: "A", Splits: equalSplit([]string{"A", "B", "C"}, 10000)},
	}
	sheet, _ := ComputeBalances(expenses, abc)

	// B settles their 100.00 with A.
	sheet.ApplyPayment("B", "A", 10000)

	if got := netOf(t, sheet, "B"); got != 0 {
		t.Errorf("B net after payment = %d, want 0", got)
	}
	if got := netOf(t, sheet, "A"); got != 10000 {
		t.Errorf("A net after payment = %d, want 10000", got)
	}
	if sum := sheet.Sum(); sum != 0 {
		t.Errorf("sum after payment = %d, want 0", sum)
	}
}
