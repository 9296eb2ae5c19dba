package pgstore

import (
	"context"

	"rentdesk/internal/domain/customer"
	"rentdesk/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, name, phone, email, address, trn, created_at, updated_at`

type customerRepo struct {
	db pgx.Tx
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.TRN, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name`)
	if err != nil {
		return nil, wrapQueryErr("failed to list customers", err)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan customer", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list customers", err)
	}
	return customers, nil
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	c, err := scanCustomer(row)
	if err != nil {
		return nil, wrapQueryErr("customer not found", err)
	}
	return c, nil
}

func (r *customerRepo) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, name, phone, email, address, trn, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.TRN, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return wrapQueryErr("failed to create customer", err)
	}
	return nil
}

func (r *customerRepo) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE customers SET name = $2, phone = $3, email = $4, address = $5, trn = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.TRN, c.UpdatedAt,
	)
	if err != nil {
		return wrapQueryErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
