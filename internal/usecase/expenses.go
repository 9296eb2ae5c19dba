package usecase

import (
	"context"
	"errors"
	"time"

	"rentdesk/internal/domain/expense"
	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseParams struct {
	OrderID   *uuid.UUID
	StaffName string
	Amount    float64
	Reason    string
	Notes     string
	Date      time.Time
}

type ExpenseUseCase interface {
	List(ctx context.Context) ([]*expense.Expense, error)
	Create(ctx context.Context, params ExpenseParams) (*expense.Expense, error)
	Update(ctx context.Context, id uuid.UUID, params ExpenseParams) (*expense.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseUseCaseImpl struct {
	store shared.Store
	clock clock.Clock
}

func NewExpenseUseCase(store shared.Store, clk clock.Clock) ExpenseUseCase {
	return &expenseUseCaseImpl{store: store, clock: clk}
}

func (u *expenseUseCaseImpl) List(ctx context.Context) ([]*expense.Expense, error) {
	var result []*expense.Expense
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		expenses, err := tx.Expenses().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = expenses
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *expenseUseCaseImpl) Create(ctx context.Context, params ExpenseParams) (*expense.Expense, error) {
	date := params.Date
	if date.IsZero() {
		date = clock.Today(u.clock)
	}

	e, err := expense.NewExpense(params.OrderID, params.StaffName, params.Amount, params.Reason, params.Notes, date)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	e.CreatedAt = u.clock.Now()

	err = u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if params.OrderID != nil {
			if _, err := tx.Orders().FindByID(ctx, *params.OrderID); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrOrderNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		if err := tx.Expenses().Create(ctx, e); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (u *expenseUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params ExpenseParams) (*expense.Expense, error) {
	if params.Amount <= 0 {
		return nil, errs.Mark(expense.ErrInvalidAmount, ErrDomainValidationFailed)
	}
	if params.Reason == "" {
		return nil, errs.Mark(expense.ErrInvalidReason, ErrDomainValidationFailed)
	}

	var updated *expense.Expense
	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Expenses().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrExpenseNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		e.OrderID = params.OrderID
		e.StaffName = params.StaffName
		e.Amount = params.Amount
		e.Reason = params.Reason
		e.Notes = params.Notes
		if !params.Date.IsZero() {
			e.Date = params.Date
		}

		if err := tx.Expenses().Update(ctx, e); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *expenseUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Expenses().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrExpenseNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
