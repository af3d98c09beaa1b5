package service

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/splitbook/splitbook/internal/ledger"
	"github.com/splitbook/splitbook/internal/models"
	"github.com/splitbook/splitbook/internal/storage"
)

var computationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "splitbook_ledger_computations_total",
	Help: "Ledger computations performed, by kind.",
}, []string{"kind"})

// GroupLedger is the full derived view for one group: every member's net
// position, the suggested transfers that would zero them, and any warnings
// about expenses referencing ids missing from the roster.
type GroupLedger struct {
	Balances  []ledger.Balance
	Transfers []ledger.Transfer
	Warnings  []ledger.Warning
}

// MemberDebts is the per-member raw pairwise view for a group detail screen.
type MemberDebts struct {
	Owes []ledger.DirectedDebt // what the member owes others
	Owed []ledger.DirectedDebt // what others owe the member
}

// LedgerService computes derived ledger views over stored groups. Every read
// recomputes from a fresh snapshot; nothing is cached or mutated.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// GroupLedger computes balances and suggested transfers for a group,
// folding in recorded settlements. Only members may read it.
func (s *LedgerService) GroupLedger(ctx context.Context, groupID, callerID string) (*GroupLedger, error) {
	group, expenses, settlements, err := s.snapshot(ctx, groupID, callerID)
	if err != nil {
		return nil, err
	}

	sheet, warnings := ledger.ComputeBalances(toLedgerExpenses(expenses), roster(group))
	for _, st := range settlements {
		sheet.ApplyPayment(st.FromUserID, st.ToUserID, st.Amount)
	}

	for _, w := range warnings {
		slog.Warn("Expense references unknown participant",
			"group_id", groupID,
			"expense_id", w.ExpenseID,
			"participant_id", w.ParticipantID,
			"role", w.Role,
		)
	}

	computationsTotal.WithLabelValues("group_ledger").Inc()
	return &GroupLedger{
		Balances:  sheet.All(),
		Transfers: ledger.Simplify(sheet),
		Warnings:  warnings,
	}, nil
}

// MemberDebts computes the raw non-netted debt rows for one member of a
// group. These intentionally differ from GroupLedger's transfers: they are
// history, not advice.
func (s *LedgerService) MemberDebts(ctx context.Context, groupID, callerID, memberID string) (*MemberDebts, error) {
	group, expenses, _, err := s.snapshot(ctx, groupID, callerID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(memberID) {
		return nil, ErrNotGroupMember
	}

	graph := ledger.AccumulateDebts(toLedgerExpenses(expenses))
	computationsTotal.WithLabelValues("member_debts").Inc()
	return &MemberDebts{
		Owes: graph.OwedBy(memberID),
		Owed: graph.OwedTo(memberID),
	}, nil
}

// Compute evaluates the engine over a caller-supplied snapshot, with no
// storage involved. This backs the stateless boundary endpoint.
func (s *LedgerService) Compute(participants []ledger.Participant, expenses []ledger.Expense) *GroupLedger {
	sheet, warnings := ledger.ComputeBalances(expenses, participants)
	computationsTotal.WithLabelValues("stateless").Inc()
	return &GroupLedger{
		Balances:  sheet.All(),
		Transfers: ledger.Simplify(sheet),
		Warnings:  warnings,
	}
}

// snapshot loads the immutable inputs for one computation: the group roster,
// its expenses, and its recorded settlements.
func (s *LedgerService) snapshot(ctx context.Context, groupID, callerID string) (*models.Group, []*models.Expense, []*models.Settlement, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !group.HasMember(callerID) {
		return nil, nil, nil, ErrNotGroupMember
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	return group, expenses, settlements, nil
}

func roster(group *models.Group) []ledger.Participant {
	participants := make([]ledger.Participant, len(group.Members))
	for i, m := range group.Members {
		participants[i] = ledger.Participant{ID: m.UserID, Name: m.Name, Email: m.Email}
	}
	return participants
}

func toLedgerExpenses(expenses []*models.Expense) []ledger.Expense {
	out := make([]ledger.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toLedgerExpense(e)
	}
	return out
}
