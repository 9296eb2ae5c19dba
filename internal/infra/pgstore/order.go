package pgstore

import (
	"context"
	"encoding/json"

	"rentdesk/internal/domain/billing"
	"rentdesk/internal/domain/order"
	"rentdesk/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, customer_id, customer_name, customer_phone, customer_address, customer_trn, items,
	start_date, end_date, return_date, status, discount_type, discount_value,
	subtotal_amount, tax_amount, total_amount, paid_amount, late_fee, damage_fee,
	balance_amount, payment_method, notes, created_at, updated_at`

// Line items live in a JSONB column. Orders are always written as a whole
// by the lifecycle engine, so there is nothing to gain from a child table.
type orderRepo struct {
	db pgx.Tx
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	var itemsJSON []byte
	var status, discountType string
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerPhone, &o.CustomerAddress, &o.CustomerTRN, &itemsJSON,
		&o.StartDate, &o.EndDate, &o.ReturnDate, &status, &discountType, &o.Discount.Value,
		&o.Subtotal, &o.TaxAmount, &o.TotalAmount, &o.PaidAmount, &o.LateFee, &o.DamageFee,
		&o.Balance, &o.PaymentMethod, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = order.Status(status)
	o.Discount.Type = billing.DiscountType(discountType)
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, wrapQueryErr("failed to list orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list orders", err)
	}
	return orders, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, wrapQueryErr("order not found", err)
	}
	return o, nil
}

func (r *orderRepo) Create(ctx context.Context, o *order.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, customer_id, customer_name, customer_phone, customer_address, customer_trn, items,
			start_date, end_date, return_date, status, discount_type, discount_value,
			subtotal_amount, tax_amount, total_amount, paid_amount, late_fee, damage_fee,
			balance_amount, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone, o.CustomerAddress, o.CustomerTRN, itemsJSON,
		o.StartDate, o.EndDate, o.ReturnDate, o.Status.String(), string(o.Discount.Type), o.Discount.Value,
		o.Subtotal, o.TaxAmount, o.TotalAmount, o.PaidAmount, o.LateFee, o.DamageFee,
		o.Balance, o.PaymentMethod, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return wrapQueryErr("failed to create order", err)
	}
	return nil
}

func (r *orderRepo) Update(ctx context.Context, o *order.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET items = $2, start_date = $3, end_date = $4, return_date = $5,
			status = $6, subtotal_amount = $7, tax_amount = $8, total_amount = $9,
			paid_amount = $10, late_fee = $11, damage_fee = $12, balance_amount = $13,
			payment_method = $14, notes = $15, updated_at = $16
		WHERE id = $1`,
		o.ID, itemsJSON, o.StartDate, o.EndDate, o.ReturnDate,
		o.Status.String(), o.Subtotal, o.TaxAmount, o.TotalAmount,
		o.PaidAmount, o.LateFee, o.DamageFee, o.Balance,
		o.PaymentMethod, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		return wrapQueryErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
