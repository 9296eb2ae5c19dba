package usecase

import (
	"context"

	"rentdesk/internal/domain/customer"
	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerParams struct {
	Name    string
	Phone   string
	Email   string
	Address string
	TRN     string
}

type CustomerUseCase interface {
	List(ctx context.Context) ([]*customer.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Create(ctx context.Context, params CustomerParams) (*customer.Customer, error)
	Update(ctx context.Context, id uuid.UUID, params CustomerParams) (*customer.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerUseCaseImpl struct {
	store shared.Store
	clock clock.Clock
}

func NewCustomerUseCase(store shared.Store, clk clock.Clock) CustomerUseCase {
	return &customerUseCaseImpl{store: store, clock: clk}
}

func (u *customerUseCaseImpl) List(ctx context.Context) ([]*customer.Customer, error) {
	var result []*customer.Customer
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		customers, err := tx.Customers().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = customers
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *customerUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var result *customer.Customer
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Customers().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *customerUseCaseImpl) Create(ctx context.Context, params CustomerParams) (*customer.Customer, error) {
	c, err := customer.NewCustomer(params.Name, params.Phone, params.Email, params.Address, params.TRN)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	c.CreatedAt = u.clock.Now()
	c.UpdatedAt = u.clock.Now()

	err = u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Create(ctx, c); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *customerUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params CustomerParams) (*customer.Customer, error) {
	if params.Name == "" {
		return nil, errs.Mark(customer.ErrInvalidName, ErrDomainValidationFailed)
	}

	var updated *customer.Customer
	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Customers().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		c.Name = params.Name
		c.Phone = params.Phone
		c.Email = params.Email
		c.Address = params.Address
		c.TRN = params.TRN
		c.UpdatedAt = u.clock.Now()

		if err := tx.Customers().Update(ctx, c); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *customerUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
