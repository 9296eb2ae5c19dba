package shared

import (
	"context"

	"rentdesk/internal/domain/customer"
	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/domain/expense"
	"rentdesk/internal/domain/order"
	"rentdesk/internal/domain/settings"
	"rentdesk/internal/domain/user"

	"github.com/google/uuid"
)

// Store is the persistence boundary. Within runs fn in a transaction:
// either every repository write inside fn is committed or none are.
// View runs fn against a consistent read-only snapshot.
type Store interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// Driver names the active backend ("postgres" or "memory").
	Driver() string
	Healthy(ctx context.Context) error
}

type Tx interface {
	Equipment() EquipmentRepository
	Categories() CategoryRepository
	Customers() CustomerRepository
	Orders() OrderRepository
	Expenses() ExpenseRepository
	Users() UserRepository
	Settings() SettingsRepository
}

type EquipmentRepository interface {
	List(ctx context.Context) ([]*equipment.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*equipment.Item, error)
	Create(ctx context.Context, item *equipment.Item) error
	Update(ctx context.Context, item *equipment.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context, categoryName string) (int, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*equipment.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*equipment.Category, error)
	Create(ctx context.Context, category *equipment.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerRepository interface {
	List(ctx context.Context) ([]*customer.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]*order.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	Create(ctx context.Context, o *order.Order) error
	Update(ctx context.Context, o *order.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExpenseRepository interface {
	List(ctx context.Context) ([]*expense.Expense, error)
	FindByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error)
	Create(ctx context.Context, e *expense.Expense) error
	Update(ctx context.Context, e *expense.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	List(ctx context.Context) ([]*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, s settings.Settings) error
}
