package api

import (
	"github.com/splitbook/splitbook/internal/ledger"
	"github.com/splitbook/splitbook/internal/models"
	"github.com/splitbook/splitbook/internal/money"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userJSON `json:"user"`
}

type userJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

type createGroupRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
}

type addMembersRequest struct {
	UserIDs []string `json:"user_ids"`
}

type groupJSON struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedBy string       `json:"created_by"`
	CreatedAt int64        `json:"created_at"`
	Members   []memberJSON `json:"members"`
}

type memberJSON struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
}

func toGroupJSON(g *models.Group) groupJSON {
	members := make([]memberJSON, len(g.Members))
	for i, m := range g.Members {
		members[i] = memberJSON{UserID: m.UserID, Name: m.Name, Email: m.Email}
	}
	return groupJSON{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
		Members:   members,
	}
}

type splitJSON struct {
	ParticipantID string      `json:"participant_id"`
	Amount        money.Cents `json:"amount"`
}

type createExpenseRequest struct {
	Description string      `json:"description"`
	Amount      money.Cents `json:"amount"`
	PayerID     string      `json:"payer_id"`
	Splits      []splitJSON `json:"splits"`
}

type expenseJSON struct {
	ID          string      `json:"id"`
	GroupID     string      `json:"group_id"`
	Description string      `json:"description"`
	Amount      money.Cents `json:"amount"`
	PayerID     string      `json:"payer_id"`
	Splits      []splitJSON `json:"splits"`
	CreatedAt   int64       `json:"created_at"`
	CreatedBy   string      `json:"created_by"`
}

func toExpenseJSON(e *models.Expense) expenseJSON {
	splits := make([]splitJSON, len(e.Splits))
	for i, sp := range e.Splits {
		splits[i] = splitJSON{ParticipantID: sp.ParticipantID, Amount: sp.Amount}
	}
	return expenseJSON{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Description: e.Description,
		Amount:      e.Amount,
		PayerID:     e.PayerID,
		Splits:      splits,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

type recordSettlementRequest struct {
	ToUserID string      `json:"to_user_id"`
	Amount   money.Cents `json:"amount"`
	Note     string      `json:"note"`
}

type settlementJSON struct {
	ID         string      `json:"id"`
	GroupID    string      `json:"group_id"`
	FromUserID string      `json:"from_user_id"`
	ToUserID   string      `json:"to_user_id"`
	Amount     money.Cents `json:"amount"`
	CreatedAt  int64       `json:"created_at"`
	Note       string      `json:"note,omitempty"`
}

func toSettlementJSON(s *models.Settlement) settlementJSON {
	return settlementJSON{
		ID:         s.ID,
		GroupID:    s.GroupID,
		FromUserID: s.FromUserID,
		ToUserID:   s.ToUserID,
		Amount:     s.Amount,
		CreatedAt:  s.CreatedAt,
		Note:       s.Note,
	}
}

type balanceJSON struct {
	ParticipantID string      `json:"participant_id"`
	Net           money.Cents `json:"net"`
	Paid          money.Cents `json:"paid"`
	Owed          money.Cents `json:"owed"`
}

type transferJSON struct {
	FromID string      `json:"from_id"`
	ToID   string      `json:"to_id"`
	Amount money.Cents `json:"amount"`
}

type warningJSON struct {
	ExpenseID     string `json:"expense_id"`
	ParticipantID string `json:"participant_id"`
	Role          string `json:"role"`
}

type ledgerResponse struct {
	Balances    []balanceJSON  `json:"balances"`
	Settlements []transferJSON `json:"settlements"`
	Warnings    []warningJSON  `json:"warnings,omitempty"`
}

func toLedgerResponse(balances []ledger.Balance, transfers []ledger.Transfer, warnings []ledger.Warning) ledgerResponse {
	resp := ledgerResponse{
		Balances:    make([]balanceJSON, len(balances)),
		Settlements: make([]transferJSON, 0, len(transfers)),
	}
	for i, b := range balances {
		resp.Balances[i] = balanceJSON{ParticipantID: b.ParticipantID, Net: b.Net, Paid: b.Paid, Owed: b.Owed}
	}
	for _, tr := range transfers {
		resp.Settlements = append(resp.Settlements, transferJSON{FromID: tr.FromID, ToID: tr.ToID, Amount: tr.Amount})
	}
	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, warningJSON{ExpenseID: w.ExpenseID, ParticipantID: w.ParticipantID, Role: w.Role})
	}
	return resp
}

type debtJSON struct {
	CounterpartyID string      `json:"counterparty_id"`
	Amount         money.Cents `json:"amount"`
}

type debtsResponse struct {
	Owes []debtJSON `json:"owes"`
	Owed []debtJSON `json:"owed"`
}

func toDebtJSONs(debts []ledger.DirectedDebt) []debtJSON {
	out := make([]debtJSON, 0, len(debts))
	for _, d := range debts {
		out = append(out, debtJSON{CounterpartyID: d.CounterpartyID, Amount: d.Amount})
	}
	return out
}

type computeRequest struct {
	Participants []computeParticipant `json:"participants"`
	Expenses     []computeExpense     `json:"expenses"`
}

type computeParticipant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type computeExpense struct {
	ID      string      `json:"id"`
	Amount  money.Cents `json:"amount"`
	PayerID string      `json:"payer_id"`
	Splits  []splitJSON `json:"splits"`
}
