package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitbook/splitbook/internal/ledger"
	"github.com/splitbook/splitbook/internal/models"
	"github.com/splitbook/splitbook/internal/money"
	"github.com/splitbook/splitbook/internal/storage"
)

// ExpenseService manages expenses and recorded settlements within groups.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// AddExpense validates and persists a new expense. The caller and the payer
// must be group members; splits must sum exactly to the amount.
func (s *ExpenseService) AddExpense(ctx context.Context, groupID, callerID string, expense *models.Expense) (*models.Expense, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(callerID) {
		return nil, ErrNotGroupMember
	}

	if err := ledger.ValidateExpense(toLedgerExpense(expense)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !group.HasMember(expense.PayerID) {
		return nil, fmt.Errorf("%w: payer %s is not a group member", ErrInvalidInput, expense.PayerID)
	}
	for _, sp := range expense.Splits {
		if !group.HasMember(sp.ParticipantID) {
			return nil, fmt.Errorf("%w: split participant %s is not a group member", ErrInvalidInput, sp.ParticipantID)
		}
	}
	if strings.TrimSpace(expense.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	expense.GroupID = groupID
	expense.CreatedBy = callerID
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"group_id", groupID,
		"amount", expense.Amount.String(),
		"payer_id", expense.PayerID,
		"splits", len(expense.Splits),
	)
	return expense, nil
}

// ListExpenses returns the group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, groupID, callerID string) ([]*models.Expense, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(callerID) {
		return nil, ErrNotGroupMember
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// DeleteExpense removes an expense. Only its author or its payer may delete
// it; recomputed balances then match a ledger that never saw the expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID, callerID string) error {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense.CreatedBy != callerID && expense.PayerID != callerID {
		return ErrPermissionDenied
	}

	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}
	slog.Info("Expense deleted", "expense_id", expenseID, "group_id", expense.GroupID, "by", callerID)
	return nil
}

// RecordSettlement records a settle-up payment from the caller to another
// group member.
func (s *ExpenseService) RecordSettlement(ctx context.Context, groupID, callerID, toUserID string, amount money.Cents, note string) (*models.Settlement, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(callerID) {
		return nil, ErrNotGroupMember
	}
	if !group.HasMember(toUserID) {
		return nil, fmt.Errorf("%w: recipient %s is not a group member", ErrInvalidInput, toUserID)
	}
	if toUserID == callerID {
		return nil, fmt.Errorf("%w: cannot settle with yourself", ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: settlement amount must be positive", ErrInvalidInput)
	}

	settlement := &models.Settlement{
		GroupID:    groupID,
		FromUserID: callerID,
		ToUserID:   toUserID,
		Amount:     amount,
		CreatedBy:  callerID,
		Note:       note,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", groupID,
		"from", callerID,
		"to", toUserID,
		"amount", amount.String(),
	)
	return settlement, nil
}

// DeleteSettlement removes a recorded settlement. Only the two parties to
// the payment may delete it, mirroring expense deletion.
func (s *ExpenseService) DeleteSettlement(ctx context.Context, settlementID, callerID string) error {
	settlement, err := s.store.GetSettlement(ctx, settlementID)
	if err != nil {
		return err
	}
	if settlement.FromUserID != callerID && settlement.ToUserID != callerID {
		return ErrPermissionDenied
	}

	if err := s.store.DeleteSettlement(ctx, settlementID); err != nil {
		return err
	}
	slog.Info("Settlement deleted", "settlement_id", settlementID, "group_id", settlement.GroupID, "by", callerID)
	return nil
}

// ListSettlements returns the group's recorded settlements, newest first.
func (s *ExpenseService) ListSettlements(ctx context.Context, groupID, callerID string) ([]*models.Settlement, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(callerID) {
		return nil, ErrNotGroupMember
	}
	return s.store.ListSettlementsByGroup(ctx, groupID)
}

// toLedgerExpense converts a stored expense into the engine's input shape.
func toLedgerExpense(e *models.Expense) ledger.Expense {
	splits := make([]ledger.Split, len(e.Splits))
	for i, sp := range e.Splits {
		splits[i] = ledger.Split{ParticipantID: sp.ParticipantID, Amount: sp.Amount}
	}
	return ledger.Expense{
		ID:      e.ID,
		Amount:  e.Amount,
		PayerID: e.PayerID,
		Splits:  splits,
	}
}
