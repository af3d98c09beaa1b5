package api

import (
	"net/http"

	"github.com/splitbook/splitbook/internal/middleware"
	"github.com/splitbook/splitbook/internal/models"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	splits := make([]models.Split, len(req.Splits))
	for i, sp := range req.Splits {
		splits[i] = models.Split{ParticipantID: sp.ParticipantID, Amount: sp.Amount}
	}
	expense := &models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		PayerID:     req.PayerID,
		Splits:      splits,
	}

	created, err := s.expenses.AddExpense(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context()), expense)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseJSON(created))
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.ListExpenses(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]expenseJSON, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseJSON(e))
	}
	writeJSON(w, http.StatusOK, map[string][]expenseJSON{"expenses": out})
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenses.DeleteExpense(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordSettlement(w http.ResponseWriter, r *http.Request) {
	var req recordSettlementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settlement, err := s.expenses.RecordSettlement(
		r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context()),
		req.ToUserID, req.Amount, req.Note,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSettlementJSON(settlement))
}

func (s *Server) handleDeleteSettlement(w http.ResponseWriter, r *http.Request) {
	if err := s.expenses.DeleteSettlement(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := s.expenses.ListSettlements(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]settlementJSON, 0, len(settlements))
	for _, st := range settlements {
		out = append(out, toSettlementJSON(st))
	}
	writeJSON(w, http.StatusOK, map[string][]settlementJSON{"settlements": out})
}
