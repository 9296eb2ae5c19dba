package pgstore

import (
	"context"

	"rentdesk/internal/domain/expense"
	"rentdesk/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const expenseColumns = `id, order_id, staff_name, amount, reason, notes, date, created_at`

type expenseRepo struct {
	db pgx.Tx
}

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.OrderID, &e.StaffName, &e.Amount, &e.Reason, &e.Notes, &e.Date, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepo) List(ctx context.Context) ([]*expense.Expense, error) {
	rows, err := r.db.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC, id`)
	if err != nil {
		return nil, wrapQueryErr("failed to list expenses", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan expense", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list expenses", err)
	}
	return expenses, nil
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	row := r.db.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	e, err := scanExpense(row)
	if err != nil {
		return nil, wrapQueryErr("expense not found", err)
	}
	return e, nil
}

func (r *expenseRepo) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO expenses (id, order_id, staff_name, amount, reason, notes, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.OrderID, e.StaffName, e.Amount, e.Reason, e.Notes, e.Date, e.CreatedAt,
	)
	if err != nil {
		return wrapQueryErr("failed to create expense", err)
	}
	return nil
}

func (r *expenseRepo) Update(ctx context.Context, e *expense.Expense) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE expenses SET order_id = $2, staff_name = $3, amount = $4, reason = $5, notes = $6, date = $7
		WHERE id = $1`,
		e.ID, e.OrderID, e.StaffName, e.Amount, e.Reason, e.Notes, e.Date,
	)
	if err != nil {
		return wrapQueryErr("failed to update expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}
