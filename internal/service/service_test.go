package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/splitbook/splitbook/internal/auth"
	"github.com/splitbook/splitbook/internal/models"
	"github.com/splitbook/splitbook/internal/storage"
	"github.com/splitbook/splitbook/internal/storage/sqlite"
)

type fixture struct {
	store    *sqlite.SQLiteStore
	auth     *AuthService
	groups   *GroupService
	expenses *ExpenseService
	ledgers  *LedgerService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "splitbook-svc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret-key-for-unit-tests", time.Hour)
	return &fixture{
		store:    store,
		auth:     NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager),
		groups:   NewGroupService(store),
		expenses: NewExpenseService(store),
		ledgers:  NewLedgerService(store),
	}
}

func (f *fixture) registerUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, _, err := f.auth.Register(context.Background(), name, email, "password123")
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", name, err)
	}
	return user
}

func (f *fixture) createGroup(t *testing.T, name string, creator *models.User, members ...*models.User) *models.Group {
	t.Helper()
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	group, err := f.groups.CreateGroup(context.Background(), name, creator.ID, ids)
	if err != nil {
		t.Fatalf("CreateGroup(%s) failed: %v", name, err)
	}
	return group
}

func TestAuthRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, token, err := f.auth.Register(ctx, "Alice", "Alice@Example.com", "password123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}

	if _, _, err := f.auth.Register(ctx, "Other", "alice@example.com", "password123"); !errors.Is(err, auth.ErrEmailExists) {
		t.Errorf("duplicate register = %v, want ErrEmailExists", err)
	}
	if _, _, err := f.auth.Register(ctx, "Weak", "weak@example.com", "short"); !errors.Is(err, auth.ErrWeakPassword) {
		t.Errorf("weak password = %v, want ErrWeakPassword", err)
	}

	if _, _, err := f.auth.Login(ctx, "alice@example.com", "password123"); err != nil {
		t.Errorf("Login failed: %v", err)
	}
	if _, _, err := f.auth.Login(ctx, "alice@example.com", "wrongpass"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("bad login = %v, want ErrInvalidCredentials", err)
	}
}

func TestGroupMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	eve := f.registerUser(t, "Eve", "eve@example.com")

	group := f.createGroup(t, "Roommates", alice, bob)
	if len(group.Members) != 2 {
		t.Fatalf("roster = %d members, want 2", len(group.Members))
	}

	if _, err := f.groups.GetGroup(ctx, group.ID, eve.ID); !errors.Is(err, ErrNotGroupMember) {
		t.Errorf("non-member read = %v, want ErrNotGroupMember", err)
	}

	updated, err := f.groups.AddMembers(ctx, group.ID, alice.ID, []string{eve.ID})
	if err != nil {
		t.Fatalf("AddMembers failed: %v", err)
	}
	if !updated.HasMember(eve.ID) {
		t.Error("expected Eve on the roster after AddMembers")
	}

	if _, err := f.groups.AddMembers(ctx, group.ID, alice.ID, []string{"no-such-user"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown user add = %v, want ErrInvalidInput", err)
	}

	groups, err := f.groups.ListGroups(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != group.ID {
		t.Errorf("ListGroups = %v, want the one group", groups)
	}
}

func TestAddExpenseValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	eve := f.registerUser(t, "Eve", "eve@example.com")
	group := f.createGroup(t, "Trip", alice, bob)

	tests := []struct {
		name    string
		caller  string
		expense *models.Expense
	}{
		{
			name:   "splits do not sum to amount",
			caller: alice.ID,
			expense: &models.Expense{
				Description: "Dinner", Amount: 5000, PayerID: alice.ID,
				Splits: []models.Split{{ParticipantID: alice.ID, Amount: 2000}, {ParticipantID: bob.ID, Amount: 2000}},
			},
		},
		{
			name:   "empty splits",
			caller: alice.ID,
			expense: &models.Expense{
				Description: "Dinner", Amount: 5000, PayerID: alice.ID,
			},
		},
		{
			name:   "payer not in group",
			caller: alice.ID,
			expense: &models.Expense{
				Description: "Dinner", Amount: 5000, PayerID: eve.ID,
				Splits: []models.Split{{ParticipantID: alice.ID, Amount: 5000}},
			},
		},
		{
			name:   "split participant not in group",
			caller: alice.ID,
			expense: &models.Expense{
				Description: "Dinner", Amount: 5000, PayerID: alice.ID,
				Splits: []models.Split{{ParticipantID: eve.ID, Amount: 5000}},
			},
		},
		{
			name:   "missing description",
			caller: alice.ID,
			expense: &models.Expense{
				Amount: 5000, PayerID: alice.ID,
				Splits: []models.Split{{ParticipantID: alice.ID, Amount: 5000}},
			},
		},
		{
			name:   "same participant split twice",
			caller: alice.ID,
			expense: &models.Expense{
				Description: "Dinner", Amount: 5000, PayerID: alice.ID,
				Splits: []models.Split{{ParticipantID: bob.ID, Amount: 2000}, {ParticipantID: bob.ID, Amount: 3000}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.expenses.AddExpense(ctx, group.ID, tt.caller, tt.expense)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("AddExpense() = %v, want ErrInvalidInput", err)
			}
		})
	}

	if _, err := f.expenses.AddExpense(ctx, group.ID, eve.ID, &models.Expense{
		Description: "Dinner", Amount: 1000, PayerID: alice.ID,
		Splits: []models.Split{{ParticipantID: alice.ID, Amount: 1000}},
	}); !errors.Is(err, ErrNotGroupMember) {
		t.Errorf("non-member AddExpense = %v, want ErrNotGroupMember", err)
	}
}

func TestDeleteExpensePermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	carol := f.registerUser(t, "Carol", "carol@example.com")
	group := f.createGroup(t, "Trip", alice, bob, carol)

	expense, err := f.expenses.AddExpense(ctx, group.ID, alice.ID, &models.Expense{
		Description: "Cab", Amount: 3000, PayerID: bob.ID,
		Splits: []models.Split{
			{ParticipantID: alice.ID, Amount: 1500},
			{ParticipantID: bob.ID, Amount: 1500},
		},
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	// Carol neither recorded nor paid the expense.
	if err := f.expenses.DeleteExpense(ctx, expense.ID, carol.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("DeleteExpense by bystander = %v, want ErrPermissionDenied", err)
	}
	// Bob paid it, so he may delete it.
	if err := f.expenses.DeleteExpense(ctx, expense.ID, bob.ID); err != nil {
		t.Errorf("DeleteExpense by payer failed: %v", err)
	}
}

func TestDeleteSettlementPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	carol := f.registerUser(t, "Carol", "carol@example.com")
	group := f.createGroup(t, "Trip", alice, bob, carol)

	settlement, err := f.expenses.RecordSettlement(ctx, group.ID, bob.ID, alice.ID, 2500, "")
	if err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}

	// Carol was not a party to the payment.
	if err := f.expenses.DeleteSettlement(ctx, settlement.ID, carol.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("DeleteSettlement by bystander = %v, want ErrPermissionDenied", err)
	}
	// Alice received it, so she may delete it.
	if err := f.expenses.DeleteSettlement(ctx, settlement.ID, alice.ID); err != nil {
		t.Errorf("DeleteSettlement by recipient failed: %v", err)
	}
	if err := f.expenses.DeleteSettlement(ctx, settlement.ID, alice.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteSettlement twice = %v, want ErrNotFound", err)
	}

	list, err := f.expenses.ListSettlements(ctx, group.ID, alice.ID)
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("got %d settlements after delete, want 0", len(list))
	}
}

func TestGroupLedgerEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	carol := f.registerUser(t, "Carol", "carol@example.com")
	group := f.createGroup(t, "Trip", alice, bob, carol)

	// Alice pays 300.00, split equally.
	if _, err := f.expenses.AddExpense(ctx, group.ID, alice.ID, &models.Expense{
		Description: "Hotel", Amount: 30000, PayerID: alice.ID,
		Splits: []models.Split{
			{ParticipantID: alice.ID, Amount: 10000},
			{ParticipantID: bob.ID, Amount: 10000},
			{ParticipantID: carol.ID, Amount: 10000},
		},
	}); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	view, err := f.ledgers.GroupLedger(ctx, group.ID, bob.ID)
	if err != nil {
		t.Fatalf("GroupLedger failed: %v", err)
	}
	if len(view.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", view.Warnings)
	}

	nets := map[string]int64{}
	for _, b := range view.Balances {
		nets[b.ParticipantID] = int64(b.Net)
	}
	if nets[alice.ID] != 20000 || nets[bob.ID] != -10000 || nets[carol.ID] != -10000 {
		t.Errorf("nets = %v, want alice +20000, bob -10000, carol -10000", nets)
	}
	if len(view.Transfers) != 2 {
		t.Fatalf("transfers = %v, want 2", view.Transfers)
	}
	for _, tr := range view.Transfers {
		if tr.ToID != alice.ID || tr.Amount != 10000 {
			t.Errorf("transfer = %+v, want 100.00 to alice", tr)
		}
	}

	// Bob settles up; his balance goes to zero and only Carol still owes.
	if _, err := f.expenses.RecordSettlement(ctx, group.ID, bob.ID, alice.ID, 10000, "hotel share"); err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}

	view, err = f.ledgers.GroupLedger(ctx, group.ID, alice.ID)
	if err != nil {
		t.Fatalf("GroupLedger failed: %v", err)
	}
	nets = map[string]int64{}
	for _, b := range view.Balances {
		nets[b.ParticipantID] = int64(b.Net)
	}
	if nets[bob.ID] != 0 {
		t.Errorf("bob net after settlement = %d, want 0", nets[bob.ID])
	}
	if len(view.Transfers) != 1 || view.Transfers[0].FromID != carol.ID {
		t.Errorf("transfers after settlement = %v, want only carol paying", view.Transfers)
	}
}

func TestMemberDebts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	group := f.createGroup(t, "Pair", alice, bob)

	// Bob owes Alice 50.00; Alice owes Bob 30.00 from a separate expense.
	// The raw view keeps both directions; nothing is netted.
	if _, err := f.expenses.AddExpense(ctx, group.ID, alice.ID, &models.Expense{
		Description: "Groceries", Amount: 5000, PayerID: alice.ID,
		Splits: []models.Split{{ParticipantID: bob.ID, Amount: 5000}},
	}); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if _, err := f.expenses.AddExpense(ctx, group.ID, bob.ID, &models.Expense{
		Description: "Gas", Amount: 3000, PayerID: bob.ID,
		Splits: []models.Split{{ParticipantID: alice.ID, Amount: 3000}},
	}); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	debts, err := f.ledgers.MemberDebts(ctx, group.ID, alice.ID, alice.ID)
	if err != nil {
		t.Fatalf("MemberDebts failed: %v", err)
	}
	if len(debts.Owes) != 1 || debts.Owes[0].CounterpartyID != bob.ID || debts.Owes[0].Amount != 3000 {
		t.Errorf("alice owes = %v, want 30.00 to bob", debts.Owes)
	}
	if len(debts.Owed) != 1 || debts.Owed[0].CounterpartyID != bob.ID || debts.Owed[0].Amount != 5000 {
		t.Errorf("owed to alice = %v, want 50.00 from bob", debts.Owed)
	}
}
