package pgstore

import (
	"context"

	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const equipmentColumns = `id, name, category, description, price_per_day, replacement_value,
	total_quantity, available_quantity, damaged_quantity, status, created_at, updated_at`

type equipmentRepo struct {
	db pgx.Tx
}

func scanEquipment(row pgx.Row) (*equipment.Item, error) {
	var item equipment.Item
	var status string
	err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Description,
		&item.PricePerDay, &item.ReplacementValue,
		&item.TotalQuantity, &item.AvailableQuantity, &item.DamagedQuantity,
		&status, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Status = equipment.Status(status)
	return &item, nil
}

func (r *equipmentRepo) List(ctx context.Context) ([]*equipment.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY name`)
	if err != nil {
		return nil, wrapQueryErr("failed to list equipment", err)
	}
	defer rows.Close()

	var items []*equipment.Item
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan equipment", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list equipment", err)
	}
	return items, nil
}

func (r *equipmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*equipment.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)
	item, err := scanEquipment(row)
	if err != nil {
		return nil, wrapQueryErr("equipment not found", err)
	}
	return item, nil
}

func (r *equipmentRepo) Create(ctx context.Context, item *equipment.Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO equipment (id, name, category, description, price_per_day, replacement_value,
			total_quantity, available_quantity, damaged_quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID, item.Name, item.Category, item.Description, item.PricePerDay, item.ReplacementValue,
		item.TotalQuantity, item.AvailableQuantity, item.DamagedQuantity, item.Status.String(),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return wrapQueryErr("failed to create equipment", err)
	}
	return nil
}

func (r *equipmentRepo) Update(ctx context.Context, item *equipment.Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE equipment SET name = $2, category = $3, description = $4, price_per_day = $5,
			replacement_value = $6, total_quantity = $7, available_quantity = $8,
			damaged_quantity = $9, status = $10, updated_at = $11
		WHERE id = $1`,
		item.ID, item.Name, item.Category, item.Description, item.PricePerDay, item.ReplacementValue,
		item.TotalQuantity, item.AvailableQuantity, item.DamagedQuantity, item.Status.String(),
		item.UpdatedAt,
	)
	if err != nil {
		return wrapQueryErr("failed to update equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *equipmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *equipmentRepo) CountByCategory(ctx context.Context, categoryName string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM equipment WHERE category = $1`, categoryName).Scan(&count)
	if err != nil {
		return 0, wrapQueryErr("failed to count equipment by category", err)
	}
	return count, nil
}

type categoryRepo struct {
	db pgx.Tx
}

func (r *categoryRepo) List(ctx context.Context) ([]*equipment.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, wrapQueryErr("failed to list categories", err)
	}
	defer rows.Close()

	var categories []*equipment.Category
	for rows.Next() {
		var c equipment.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, wrapQueryErr("failed to scan category", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list categories", err)
	}
	return categories, nil
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*equipment.Category, error) {
	var c equipment.Category
	err := r.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, wrapQueryErr("category not found", err)
	}
	return &c, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *equipment.Category) error {
	_, err := r.db.Exec(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2)`, category.ID, category.Name)
	if err != nil {
		return wrapQueryErr("failed to create category", err)
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
