package usecase

import (
	"context"
	"errors"

	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category already exists")
)

type CreateEquipmentParams struct {
	Name             string
	Category         string
	Description      string
	PricePerDay      float64
	ReplacementValue float64
	TotalQuantity    int
	Status           equipment.Status
}

type UpdateEquipmentParams struct {
	Name              *string
	Category          *string
	Description       *string
	PricePerDay       *float64
	ReplacementValue  *float64
	TotalQuantity     *int
	AvailableQuantity *int
	DamagedQuantity   *int
	Status            *equipment.Status
}

type CatalogUseCase interface {
	ListEquipment(ctx context.Context) ([]*equipment.Item, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*equipment.Item, error)
	CreateEquipment(ctx context.Context, params CreateEquipmentParams) (*equipment.Item, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, params UpdateEquipmentParams) (*equipment.Item, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]*equipment.Category, error)
	CreateCategory(ctx context.Context, name string) (*equipment.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	store shared.Store
	clock clock.Clock
}

func NewCatalogUseCase(store shared.Store, clk clock.Clock) CatalogUseCase {
	return &catalogUseCaseImpl{store: store, clock: clk}
}

func (u *catalogUseCaseImpl) ListEquipment(ctx context.Context) ([]*equipment.Item, error) {
	var result []*equipment.Item
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Equipment().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *catalogUseCaseImpl) GetEquipment(ctx context.Context, id uuid.UUID) (*equipment.Item, error) {
	var result *equipment.Item
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Equipment().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEquipmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *catalogUseCaseImpl) CreateEquipment(ctx context.Context, params CreateEquipmentParams) (*equipment.Item, error) {
	item, err := equipment.NewItem(
		params.Name,
		params.Category,
		params.Description,
		params.PricePerDay,
		params.ReplacementValue,
		params.TotalQuantity,
		params.Status,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	item.CreatedAt = u.clock.Now()
	item.UpdatedAt = u.clock.Now()

	err = u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Equipment().Create(ctx, item); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (u *catalogUseCaseImpl) UpdateEquipment(ctx context.Context, id uuid.UUID, params UpdateEquipmentParams) (*equipment.Item, error) {
	var updated *equipment.Item
	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Equipment().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEquipmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if params.Name != nil {
			if *params.Name == "" {
				return errs.Mark(equipment.ErrInvalidName, ErrDomainValidationFailed)
			}
			item.Name = *params.Name
		}
		if params.Category != nil {
			item.Category = *params.Category
		}
		if params.Description != nil {
			item.Description = *params.Description
		}
		if params.PricePerDay != nil {
			if *params.PricePerDay < 0 {
				return errs.Mark(equipment.ErrInvalidPrice, ErrDomainValidationFailed)
			}
			item.PricePerDay = *params.PricePerDay
		}
		if params.ReplacementValue != nil {
			if *params.ReplacementValue < 0 {
				return errs.Mark(equipment.ErrInvalidPrice, ErrDomainValidationFailed)
			}
			item.ReplacementValue = *params.ReplacementValue
		}
		if params.TotalQuantity != nil {
			if *params.TotalQuantity < 0 {
				return errs.Mark(equipment.ErrInvalidQuantity, ErrDomainValidationFailed)
			}
			item.TotalQuantity = *params.TotalQuantity
		}
		if params.AvailableQuantity != nil {
			if *params.AvailableQuantity < 0 {
				return errs.Mark(equipment.ErrInvalidQuantity, ErrDomainValidationFailed)
			}
			item.AvailableQuantity = *params.AvailableQuantity
		}
		if params.DamagedQuantity != nil {
			if *params.DamagedQuantity < 0 {
				return errs.Mark(equipment.ErrInvalidQuantity, ErrDomainValidationFailed)
			}
			item.DamagedQuantity = *params.DamagedQuantity
		}
		if params.Status != nil {
			if _, err := equipment.NewStatus(string(*params.Status)); err != nil {
				return errs.Mark(err, ErrDomainValidationFailed)
			}
			item.Status = *params.Status
		}

		item.UpdatedAt = u.clock.Now()
		if err := tx.Equipment().Update(ctx, item); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *catalogUseCaseImpl) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Equipment().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEquipmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *catalogUseCaseImpl) ListCategories(ctx context.Context) ([]*equipment.Category, error) {
	var result []*equipment.Category
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		categories, err := tx.Categories().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = categories
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *catalogUseCaseImpl) CreateCategory(ctx context.Context, name string) (*equipment.Category, error) {
	category, err := equipment.NewCategory(name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	err = u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Categories().Create(ctx, category); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateCategory
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to remove a category that equipment still references.
func (u *catalogUseCaseImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		category, err := tx.Categories().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCategoryNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		inUse, err := tx.Equipment().CountByCategory(ctx, category.Name)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if inUse > 0 {
			return errs.Mark(equipment.ErrCategoryInUse, ErrDomainValidationFailed)
		}

		if err := tx.Categories().Delete(ctx, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
