package api

import (
	"net/http"

	"github.com/splitbook/splitbook/internal/ledger"
	"github.com/splitbook/splitbook/internal/middleware"
)

func (s *Server) handleGroupBalances(w http.ResponseWriter, r *http.Request) {
	view, err := s.ledgers.GroupLedger(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLedgerResponse(view.Balances, view.Transfers, view.Warnings))
}

func (s *Server) handleGroupDebts(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	memberID := r.URL.Query().Get("member")
	if memberID == "" {
		memberID = callerID
	}

	debts, err := s.ledgers.MemberDebts(r.Context(), r.PathValue("id"), callerID, memberID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, debtsResponse{
		Owes: toDebtJSONs(debts.Owes),
		Owed: toDebtJSONs(debts.Owed),
	})
}

// handleCompute evaluates the engine over a snapshot supplied entirely in
// the request: no auth, no storage, same math as the group views.
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	participants := make([]ledger.Participant, len(req.Participants))
	for i, p := range req.Participants {
		participants[i] = ledger.Participant{ID: p.ID, Name: p.Name}
	}
	expenses := make([]ledger.Expense, len(req.Expenses))
	for i, e := range req.Expenses {
		splits := make([]ledger.Split, len(e.Splits))
		for j, sp := range e.Splits {
			splits[j] = ledger.Split{ParticipantID: sp.ParticipantID, Amount: sp.Amount}
		}
		expenses[i] = ledger.Expense{ID: e.ID, Amount: e.Amount, PayerID: e.PayerID, Splits: splits}
	}

	for _, e := range expenses {
		if err := ledger.ValidateExpense(e); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	view := s.ledgers.Compute(participants, expenses)
	writeJSON(w, http.StatusOK, toLedgerResponse(view.Balances, view.Transfers, view.Warnings))
}
