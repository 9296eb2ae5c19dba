package memstore

import (
	"context"
	"sync"

	"rentdesk/internal/domain/customer"
	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/domain/expense"
	"rentdesk/internal/domain/order"
	"rentdesk/internal/domain/settings"
	"rentdesk/internal/domain/user"
	"rentdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps everything in process memory. Within clones the current
// state, runs the function against the clone and swaps it in on success,
// so a failed command never leaves partial writes behind.
type Store struct {
	mu    sync.RWMutex
	state *state
}

type state struct {
	equipment  map[uuid.UUID]*equipment.Item
	categories map[uuid.UUID]*equipment.Category
	customers  map[uuid.UUID]*customer.Customer
	orders     map[uuid.UUID]*order.Order
	expenses   map[uuid.UUID]*expense.Expense
	users      map[uuid.UUID]*user.User
	settings   settings.Settings
}

func NewStore(defaults settings.Settings) *Store {
	return &Store{
		state: &state{
			equipment:  make(map[uuid.UUID]*equipment.Item),
			categories: make(map[uuid.UUID]*equipment.Category),
			customers:  make(map[uuid.UUID]*customer.Customer),
			orders:     make(map[uuid.UUID]*order.Order),
			expenses:   make(map[uuid.UUID]*expense.Expense),
			users:      make(map[uuid.UUID]*user.User),
			settings:   defaults,
		},
	}
}

// clone copies the maps, not the entities. Repositories never mutate a
// stored entity in place, so sharing entity pointers across generations
// is safe.
func (s *state) clone() *state {
	next := &state{
		equipment:  make(map[uuid.UUID]*equipment.Item, len(s.equipment)),
		categories: make(map[uuid.UUID]*equipment.Category, len(s.categories)),
		customers:  make(map[uuid.UUID]*customer.Customer, len(s.customers)),
		orders:     make(map[uuid.UUID]*order.Order, len(s.orders)),
		expenses:   make(map[uuid.UUID]*expense.Expense, len(s.expenses)),
		users:      make(map[uuid.UUID]*user.User, len(s.users)),
		settings:   s.settings,
	}
	for id, v := range s.equipment {
		next.equipment[id] = v
	}
	for id, v := range s.categories {
		next.categories[id] = v
	}
	for id, v := range s.customers {
		next.customers[id] = v
	}
	for id, v := range s.orders {
		next.orders[id] = v
	}
	for id, v := range s.expenses {
		next.expenses[id] = v
	}
	for id, v := range s.users {
		next.users[id] = v
	}
	return next
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(ctx, &memTx{state: working}); err != nil {
		return err
	}
	s.state = working
	return nil
}

func (s *Store) View(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.RLock()
	snapshot := s.state
	s.mu.RUnlock()

	return fn(ctx, &memTx{state: snapshot})
}

func (s *Store) Driver() string {
	return "memory"
}

func (s *Store) Healthy(ctx context.Context) error {
	return nil
}

type memTx struct {
	state *state
}

func (t *memTx) Equipment() shared.EquipmentRepository { return &equipmentRepo{state: t.state} }
func (t *memTx) Categories() shared.CategoryRepository { return &categoryRepo{state: t.state} }
func (t *memTx) Customers() shared.CustomerRepository  { return &customerRepo{state: t.state} }
func (t *memTx) Orders() shared.OrderRepository        { return &orderRepo{state: t.state} }
func (t *memTx) Expenses() shared.ExpenseRepository    { return &expenseRepo{state: t.state} }
func (t *memTx) Users() shared.UserRepository          { return &userRepo{state: t.state} }
func (t *memTx) Settings() shared.SettingsRepository   { return &settingsRepo{state: t.state} }
