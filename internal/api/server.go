// Package api exposes the JSON HTTP surface: auth, groups, expenses,
// recorded settlements, and the derived ledger views.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/splitbook/splitbook/internal/auth"
	"github.com/splitbook/splitbook/internal/middleware"
	"github.com/splitbook/splitbook/internal/service"
)

// Server holds the services behind the HTTP handlers.
type Server struct {
	auth     *service.AuthService
	groups   *service.GroupService
	expenses *service.ExpenseService
	ledgers  *service.LedgerService
	jwt      *auth.JWTManager
}

// NewServer creates the API server.
func NewServer(authSvc *service.AuthService, groups *service.GroupService, expenses *service.ExpenseService, ledgers *service.LedgerService, jwt *auth.JWTManager) *Server {
	return &Server{
		auth:     authSvc,
		groups:   groups,
		expenses: expenses,
		ledgers:  ledgers,
		jwt:      jwt,
	}
}

// Handler builds the route table. Routes under /v1 require a Bearer token
// except auth and the stateless compute endpoint, which takes its whole
// snapshot from the request body.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /v1/auth/login", s.handleLogin)
	mux.HandleFunc("POST /v1/ledger/compute", s.handleCompute)

	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(s.jwt, h)
	}
	mux.Handle("POST /v1/groups", authed(s.handleCreateGroup))
	mux.Handle("GET /v1/groups", authed(s.handleListGroups))
	mux.Handle("GET /v1/groups/{id}", authed(s.handleGetGroup))
	mux.Handle("POST /v1/groups/{id}/members", authed(s.handleAddMembers))
	mux.Handle("POST /v1/groups/{id}/expenses", authed(s.handleCreateExpense))
	mux.Handle("GET /v1/groups/{id}/expenses", authed(s.handleListExpenses))
	mux.Handle("DELETE /v1/expenses/{id}", authed(s.handleDeleteExpense))
	mux.Handle("POST /v1/groups/{id}/settlements", authed(s.handleRecordSettlement))
	mux.Handle("GET /v1/groups/{id}/settlements", authed(s.handleListSettlements))
	mux.Handle("DELETE /v1/settlements/{id}", authed(s.handleDeleteSettlement))
	mux.Handle("GET /v1/groups/{id}/balances", authed(s.handleGroupBalances))
	mux.Handle("GET /v1/groups/{id}/debts", authed(s.handleGroupDebts))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return middleware.Logging(middleware.Metrics(mux))
}
