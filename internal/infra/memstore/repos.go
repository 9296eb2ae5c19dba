package memstore

import (
	"context"
	"sort"

	"rentdesk/internal/domain/customer"
	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/domain/expense"
	"rentdesk/internal/domain/order"
	"rentdesk/internal/domain/settings"
	"rentdesk/internal/domain/user"
	"rentdesk/internal/infra"

	"github.com/google/uuid"
)

// Repositories hand out copies. Callers mutate their copy freely and
// persist it with Update; nothing aliases the committed state.

func cloneItem(src *equipment.Item) *equipment.Item {
	dup := *src
	return &dup
}

func cloneCategory(src *equipment.Category) *equipment.Category {
	dup := *src
	return &dup
}

func cloneCustomer(src *customer.Customer) *customer.Customer {
	dup := *src
	return &dup
}

func cloneOrder(src *order.Order) *order.Order {
	dup := *src
	dup.Items = make([]order.LineItem, len(src.Items))
	copy(dup.Items, src.Items)
	if src.ReturnDate != nil {
		rd := *src.ReturnDate
		dup.ReturnDate = &rd
	}
	return &dup
}

func cloneExpense(src *expense.Expense) *expense.Expense {
	dup := *src
	if src.OrderID != nil {
		oid := *src.OrderID
		dup.OrderID = &oid
	}
	return &dup
}

func cloneUser(src *user.User) *user.User {
	dup := *src
	return &dup
}

type equipmentRepo struct {
	state *state
}

func (r *equipmentRepo) List(ctx context.Context) ([]*equipment.Item, error) {
	items := make([]*equipment.Item, 0, len(r.state.equipment))
	for _, v := range r.state.equipment {
		items = append(items, cloneItem(v))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *equipmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*equipment.Item, error) {
	v, ok := r.state.equipment[id]
	if !ok {
		return nil, infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return cloneItem(v), nil
}

func (r *equipmentRepo) Create(ctx context.Context, item *equipment.Item) error {
	r.state.equipment[item.ID] = cloneItem(item)
	return nil
}

func (r *equipmentRepo) Update(ctx context.Context, item *equipment.Item) error {
	if _, ok := r.state.equipment[item.ID]; !ok {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	r.state.equipment[item.ID] = cloneItem(item)
	return nil
}

func (r *equipmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.state.equipment[id]; !ok {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	delete(r.state.equipment, id)
	return nil
}

func (r *equipmentRepo) CountByCategory(ctx context.Context, categoryName string) (int, error) {
	count := 0
	for _, v := range r.state.equipment {
		if v.Category == categoryName {
			count++
		}
	}
	return count, nil
}

type categoryRepo struct {
	state *state
}

func (r *categoryRepo) List(ctx context.Context) ([]*equipment.Category, error) {
	categories := make([]*equipment.Category, 0, len(r.state.categories))
	for _, v := range r.state.categories {
		categories = append(categories, cloneCategory(v))
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*equipment.Category, error) {
	v, ok := r.state.categories[id]
	if !ok {
		return nil, infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return cloneCategory(v), nil
}

func (r *categoryRepo) Create(ctx context.Context, category *equipment.Category) error {
	for _, v := range r.state.categories {
		if v.Name == category.Name {
			return infra.WrapRepoErr("category name already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.state.categories[category.ID] = cloneCategory(category)
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.state.categories[id]; !ok {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	delete(r.state.categories, id)
	return nil
}

type customerRepo struct {
	state *state
}

func (r *customerRepo) List(ctx context.Context) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0, len(r.state.customers))
	for _, v := range r.state.customers {
		customers = append(customers, cloneCustomer(v))
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	return customers, nil
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	v, ok := r.state.customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return cloneCustomer(v), nil
}

func (r *customerRepo) Create(ctx context.Context, c *customer.Customer) error {
	r.state.customers[c.ID] = cloneCustomer(c)
	return nil
}

func (r *customerRepo) Update(ctx context.Context, c *customer.Customer) error {
	if _, ok := r.state.customers[c.ID]; !ok {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	r.state.customers[c.ID] = cloneCustomer(c)
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.state.customers[id]; !ok {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	delete(r.state.customers, id)
	return nil
}

type orderRepo struct {
	state *state
}

func (r *orderRepo) List(ctx context.Context) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(r.state.orders))
	for _, v := range r.state.orders {
		orders = append(orders, cloneOrder(v))
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID.String() < orders[j].ID.String()
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	v, ok := r.state.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return cloneOrder(v), nil
}

func (r *orderRepo) Create(ctx context.Context, o *order.Order) error {
	r.state.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *orderRepo) Update(ctx context.Context, o *order.Order) error {
	if _, ok := r.state.orders[o.ID]; !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	r.state.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.state.orders[id]; !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	delete(r.state.orders, id)
	return nil
}

type expenseRepo struct {
	state *state
}

func (r *expenseRepo) List(ctx context.Context) ([]*expense.Expense, error) {
	expenses := make([]*expense.Expense, 0, len(r.state.expenses))
	for _, v := range r.state.expenses {
		expenses = append(expenses, cloneExpense(v))
	}
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].ID.String() < expenses[j].ID.String()
		}
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	v, ok := r.state.expenses[id]
	if !ok {
		return nil, infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return cloneExpense(v), nil
}

func (r *expenseRepo) Create(ctx context.Context, e *expense.Expense) error {
	r.state.expenses[e.ID] = cloneExpense(e)
	return nil
}

func (r *expenseRepo) Update(ctx context.Context, e *expense.Expense) error {
	if _, ok := r.state.expenses[e.ID]; !ok {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	r.state.expenses[e.ID] = cloneExpense(e)
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.state.expenses[id]; !ok {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	delete(r.state.expenses, id)
	return nil
}

type userRepo struct {
	state *state
}

func (r *userRepo) List(ctx context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, len(r.state.users))
	for _, v := range r.state.users {
		users = append(users, cloneUser(v))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	v, ok := r.state.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return cloneUser(v), nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, v := range r.state.users {
		if v.Username == username {
			return cloneUser(v), nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *userRepo) Create(ctx context.Context, u *user.User) error {
	for _, v := range r.state.users {
		if v.Username == u.Username {
			return infra.WrapRepoErr("username already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.state.users[u.ID] = cloneUser(u)
	return nil
}

func (r *userRepo) Update(ctx context.Context, u *user.User) error {
	if _, ok := r.state.users[u.ID]; !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	r.state.users[u.ID] = cloneUser(u)
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.state.users[id]; !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	delete(r.state.users, id)
	return nil
}

type settingsRepo struct {
	state *state
}

func (r *settingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	return r.state.settings, nil
}

func (r *settingsRepo) Save(ctx context.Context, s settings.Settings) error {
	r.state.settings = s
	return nil
}
