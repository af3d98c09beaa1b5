package ledger

import (
	"errors"
	"testing"
)

func TestValidateExpense(t *testing.T) {
	tests := []struct {
		name    string
		expense Expense
		wantErr error
	}{
		{
			name: "valid",
			expense: Expense{
				ID: "e1", Amount: 3000, PayerID: "A",
				Splits: equalSplit([]string{"A", "B", "C"}, 1000),
			},
		},
		{
			name: "payer-only split is valid",
			expense: Expense{
				ID: "e1", Amount: 500, PayerID: "A",
				Splits: []Split{{ParticipantID: "A", Amount: 500}},
			},
		},
		{
			name:    "missing payer",
			expense: Expense{ID: "e1", Amount: 1000, Splits: equalSplit([]string{"A"}, 1000)},
			wantErr: ErrMissingPayer,
		},
		{
			name:    "zero amount",
			expense: Expense{ID: "e1", Amount: 0, PayerID: "A", Splits: equalSplit([]string{"A"}, 0)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			expense: Expense{ID: "e1", Amount: -100, PayerID: "A", Splits: equalSplit([]string{"A"}, -100)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "empty splits",
			expense: Expense{ID: "e1", Amount: 1000, PayerID: "A"},
			wantErr: ErrEmptySplits,
		},
		{
			name: "negative split",
			expense: Expense{
				ID: "e1", Amount: 1000, PayerID: "A",
				Splits: []Split{{ParticipantID: "A", Amount: 1100}, {ParticipantID: "B", Amount: -100}},
			},
			wantErr: ErrNegativeSplit,
		},
		{
			name: "duplicate split participant",
			expense: Expense{
				ID: "e1", Amount: 1000, PayerID: "A",
				Splits: []Split{{ParticipantID: "B", Amount: 400}, {ParticipantID: "B", Amount: 600}},
			},
			wantErr: ErrDuplicateSplit,
		},
		{
			name: "splits do not sum to amount",
			expense: Expense{
				ID: "e1", Amount: 1000, PayerID: "A",
				Splits: equalSplit([]string{"A", "B", "C"}, 333),
			},
			wantErr: ErrSplitMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpense(tt.expense)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateExpense() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExpense() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
