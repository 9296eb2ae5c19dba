package usecase

import (
	"context"
	"errors"
	"time"

	"rentdesk/internal/domain/billing"
	"rentdesk/internal/domain/customer"
	"rentdesk/internal/domain/order"
	"rentdesk/internal/domain/settings"
	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrEquipmentNotFound = errors.New("equipment not found")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type OrderLineInput struct {
	EquipmentID uuid.UUID
	Quantity    int
}

type CreateOrderParams struct {
	CustomerID    uuid.UUID
	Items         []OrderLineInput
	StartDate     time.Time
	EndDate       time.Time
	Discount      billing.Discount
	PaidAmount    float64
	PaymentMethod string
	Notes         string
	AsQuotation   bool
}

// ReturnParams describes one return visit. Lines present in Good are
// settled completely: damaged is the complement of good against the
// line's remaining count. Lines absent from Good stay outstanding.
type ReturnParams struct {
	Good             map[uuid.UUID]int
	ReplacementCosts map[uuid.UUID]float64

	// LateFee overrides the suggested fee when set.
	LateFee *float64
}

type UpdateOrderParams struct {
	Items             []OrderLineInput // nil keeps the current line items
	StartDate         *time.Time
	EndDate           *time.Time
	AdditionalPayment float64
	LateFee           *float64
	DamageFee         *float64
	PaymentMethod     *string
	Notes             *string
}

type InvoiceData struct {
	Order    *order.Order
	Customer *customer.Customer
	Settings settings.Settings
}

type OrderUseCase interface {
	Create(ctx context.Context, params CreateOrderParams) (*order.Order, error)
	ConvertQuotation(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ProcessReturn(ctx context.Context, id uuid.UUID, params ReturnParams) (*order.Order, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateOrderParams) (*order.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)
	List(ctx context.Context) ([]*order.Order, error)
	History(ctx context.Context) ([]*order.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Invoice(ctx context.Context, id uuid.UUID) (*InvoiceData, error)
}

type orderUseCaseImpl struct {
	store shared.Store
	clock clock.Clock
}

func NewOrderUseCase(store shared.Store, clk clock.Clock) OrderUseCase {
	return &orderUseCaseImpl{store: store, clock: clk}
}

func (u *orderUseCaseImpl) Create(ctx context.Context, params CreateOrderParams) (*order.Order, error) {
	if len(params.Items) == 0 {
		return nil, errs.Mark(order.ErrNoLineItems, ErrDomainValidationFailed)
	}
	for _, in := range params.Items {
		if in.Quantity <= 0 {
			return nil, errs.Mark(order.ErrInvalidQuantity, ErrDomainValidationFailed)
		}
	}
	if params.PaidAmount < 0 {
		return nil, errs.Mark(order.ErrNegativePayment, ErrDomainValidationFailed)
	}

	var created *order.Order
	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindByID(ctx, params.CustomerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cfg, err := tx.Settings().Get(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		items := make([]order.LineItem, 0, len(params.Items))
		for _, in := range params.Items {
			item, err := tx.Equipment().FindByID(ctx, in.EquipmentID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrEquipmentNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			if !params.AsQuotation {
				if err := item.Reserve(in.Quantity); err != nil {
					return err
				}
				if err := tx.Equipment().Update(ctx, item); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}

			items = append(items, order.LineItem{
				EquipmentID: item.ID,
				Name:        item.Name,
				PricePerDay: item.PricePerDay,
				Quantity:    in.Quantity,
			})
		}

		o := &order.Order{
			ID:              uuid.New(),
			CustomerID:      cust.ID,
			CustomerName:    cust.Name,
			CustomerPhone:   cust.Phone,
			CustomerAddress: cust.Address,
			CustomerTRN:     cust.TRN,
			Items:           items,
			StartDate:       params.StartDate,
			EndDate:         params.EndDate,
			Status:          order.StatusActive,
			Discount:        params.Discount,
			PaidAmount:      params.PaidAmount,
			PaymentMethod:   params.PaymentMethod,
			Notes:           params.Notes,
			CreatedAt:       u.clock.Now(),
			UpdatedAt:       u.clock.Now(),
		}
		if params.AsQuotation {
			o.Status = order.StatusQuotation
		}

		u.reprice(o, params.StartDate, params.EndDate, cfg.TaxPercentage)

		if err := tx.Orders().Create(ctx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *orderUseCaseImpl) ConvertQuotation(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var converted *order.Order
	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := u.findOrder(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := o.Activate(); err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		for _, li := range o.Items {
			item, err := tx.Equipment().FindByID(ctx, li.EquipmentID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrEquipmentNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := item.Reserve(li.Quantity); err != nil {
				return err
			}
			if err := tx.Equipment().Update(ctx, item); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		o.UpdatedAt = u.clock.Now()
		if err := tx.Orders().Update(ctx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		converted = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return converted, nil
}

func (u *orderUseCaseImpl) ProcessReturn(ctx context.Context, id uuid.UUID, params ReturnParams) (*order.Order, error) {
	if params.LateFee != nil && *params.LateFee < 0 {
		return nil, errs.Mark(order.ErrNegativeFee, ErrDomainValidationFailed)
	}
	for _, cost := range params.ReplacementCosts {
		if cost < 0 {
			return nil, errs.Mark(order.ErrNegativeFee, ErrDomainValidationFailed)
		}
	}

	var processed *order.Order
	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := u.findOrder(ctx, tx, id)
		if err != nil {
			return err
		}
		if !o.Returnable() {
			return errs.Mark(order.ErrNotReturnable, ErrDomainValidationFailed)
		}

		today := clock.Today(u.clock)

		// The suggestion always derives from the originally billed total,
		// so compute it before any early-return proration.
		daysLate := billing.DaysLate(o.EndDate, today)
		suggestedFee := billing.SuggestedLateFee(o.TotalAmount, o.DurationDays(), daysLate)

		cfg, err := tx.Settings().Get(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if billing.Days(o.StartDate, today) < o.DurationDays() {
			u.reprice(o, o.StartDate, today, cfg.TaxPercentage)
		}

		for eqID, good := range params.Good {
			li := o.Line(eqID)
			if li == nil {
				return errs.Mark(order.ErrUnknownEquipment, ErrDomainValidationFailed)
			}
			remaining := li.Remaining()
			if remaining <= 0 {
				continue // already settled on a previous visit
			}
			if good < 0 || good > remaining {
				return errs.Mark(errs.Newf("good count %d out of range for %s", good, li.Name), ErrDomainValidationFailed)
			}
			damaged := remaining - good

			li.QuantityReturnedGood += good
			li.QuantityReturnedDamaged += damaged
			cost := params.ReplacementCosts[eqID]
			li.ReplacementCost += cost
			o.DamageFee += cost

			item, err := tx.Equipment().FindByID(ctx, eqID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrEquipmentNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			item.AcceptReturn(good, damaged)
			if err := tx.Equipment().Update(ctx, item); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if params.LateFee != nil {
			o.LateFee = *params.LateFee
		} else {
			o.LateFee = suggestedFee
		}

		if o.AllReturned() {
			o.Status = order.StatusReturned
		} else {
			o.Status = order.StatusPartiallyReturned
		}
		o.ReturnDate = &today
		o.RecalculateBalance()
		o.UpdatedAt = u.clock.Now()

		if err := tx.Orders().Update(ctx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		processed = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return processed, nil
}

func (u *orderUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateOrderParams) (*order.Order, error) {
	var updated *order.Order
	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := u.findOrder(ctx, tx, id)
		if err != nil {
			return err
		}

		changesComposition := params.Items != nil || params.StartDate != nil || params.EndDate != nil
		if changesComposition && o.ItemsFrozen() {
			return errs.Mark(order.ErrItemsFrozen, ErrDomainValidationFailed)
		}
		if params.AdditionalPayment < 0 {
			return errs.Mark(order.ErrNegativePayment, ErrDomainValidationFailed)
		}
		if (params.LateFee != nil && *params.LateFee < 0) || (params.DamageFee != nil && *params.DamageFee < 0) {
			return errs.Mark(order.ErrNegativeFee, ErrDomainValidationFailed)
		}

		if params.Items != nil {
			if err := u.replaceItems(ctx, tx, o, params.Items); err != nil {
				return err
			}
		}
		if params.StartDate != nil {
			o.StartDate = *params.StartDate
		}
		if params.EndDate != nil {
			o.EndDate = *params.EndDate
		}

		if changesComposition {
			cfg, err := tx.Settings().Get(ctx)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			u.reprice(o, o.StartDate, o.EndDate, cfg.TaxPercentage)
		}

		o.PaidAmount += params.AdditionalPayment
		if params.LateFee != nil {
			o.LateFee = *params.LateFee
		}
		if params.DamageFee != nil {
			o.DamageFee = *params.DamageFee
		}
		if params.PaymentMethod != nil {
			o.PaymentMethod = *params.PaymentMethod
		}
		if params.Notes != nil {
			o.Notes = *params.Notes
		}

		o.RecalculateBalance()
		o.UpdatedAt = u.clock.Now()
		if err := tx.Orders().Update(ctx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// replaceItems swaps the order's line items for a new set. For active
// orders the old reservations are credited back before the new ones are
// debited, so quantity can move between items in one call without a
// spurious shortfall.
func (u *orderUseCaseImpl) replaceItems(ctx context.Context, tx shared.Tx, o *order.Order, inputs []OrderLineInput) error {
	if len(inputs) == 0 {
		return errs.Mark(order.ErrNoLineItems, ErrDomainValidationFailed)
	}
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return errs.Mark(order.ErrInvalidQuantity, ErrDomainValidationFailed)
		}
	}

	holdsStock := o.Status == order.StatusActive

	if holdsStock {
		for _, li := range o.Items {
			item, err := tx.Equipment().FindByID(ctx, li.EquipmentID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrEquipmentNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			item.Release(li.Quantity)
			if err := tx.Equipment().Update(ctx, item); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
	}

	items := make([]order.LineItem, 0, len(inputs))
	for _, in := range inputs {
		item, err := tx.Equipment().FindByID(ctx, in.EquipmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEquipmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if holdsStock {
			if err := item.Reserve(in.Quantity); err != nil {
				return err
			}
			if err := tx.Equipment().Update(ctx, item); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		items = append(items, order.LineItem{
			EquipmentID: item.ID,
			Name:        item.Name,
			PricePerDay: item.PricePerDay,
			Quantity:    in.Quantity,
		})
	}

	o.Items = items
	return nil
}

// reprice recomputes the billed amounts for the given period, keeping the
// discount fixed at its original terms, then restores the balance identity.
func (u *orderUseCaseImpl) reprice(o *order.Order, start, end time.Time, taxPercentage float64) {
	amounts := billing.Compute(o.BillingLines(), start, end, o.Discount, taxPercentage)
	o.Subtotal = amounts.Subtotal
	o.TaxAmount = amounts.Tax
	o.TotalAmount = amounts.Total
	o.RecalculateBalance()
}

func (u *orderUseCaseImpl) findOrder(ctx context.Context, tx shared.Tx, id uuid.UUID) (*order.Order, error) {
	o, err := tx.Orders().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return o, nil
}

func (u *orderUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var found *order.Order
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := u.findOrder(ctx, tx, id)
		if err != nil {
			return err
		}
		found = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (u *orderUseCaseImpl) List(ctx context.Context) ([]*order.Order, error) {
	var result []*order.Order
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		orders, err := tx.Orders().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = orders
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// History lists finished business: fully returned orders with nothing owed.
func (u *orderUseCaseImpl) History(ctx context.Context) ([]*order.Order, error) {
	orders, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	settled := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Settled() {
			settled = append(settled, o)
		}
	}
	return settled, nil
}

// Delete releases any stock still held before removing the order.
func (u *orderUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := u.findOrder(ctx, tx, id)
		if err != nil {
			return err
		}

		if o.Status == order.StatusActive || o.Status == order.StatusPartiallyReturned {
			for _, li := range o.Items {
				if li.Remaining() <= 0 {
					continue
				}
				item, err := tx.Equipment().FindByID(ctx, li.EquipmentID)
				if err != nil {
					if infra.IsKind(err, infra.KindNotFound) {
						continue
					}
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
				item.Release(li.Remaining())
				if err := tx.Equipment().Update(ctx, item); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}
		}

		if err := tx.Orders().Delete(ctx, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *orderUseCaseImpl) Invoice(ctx context.Context, id uuid.UUID) (*InvoiceData, error) {
	var data *InvoiceData
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := u.findOrder(ctx, tx, id)
		if err != nil {
			return err
		}

		cust, err := tx.Customers().FindByID(ctx, o.CustomerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cfg, err := tx.Settings().Get(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		data = &InvoiceData{Order: o, Customer: cust, Settings: cfg}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
