package order

import (
	"time"

	"rentdesk/internal/domain/billing"
	"rentdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoLineItems      = errs.New("order requires at least one line item")
	ErrInvalidQuantity  = errs.New("line item quantity must be positive")
	ErrInvalidStatus    = errs.New("invalid order status")
	ErrNotQuotation     = errs.New("order is not a quotation")
	ErrNotReturnable    = errs.New("order has no outstanding rentals to return")
	ErrItemsFrozen      = errs.New("items and dates cannot change after a return has been processed")
	ErrNegativePayment  = errs.New("payment amount cannot be negative")
	ErrNegativeFee      = errs.New("fee amount cannot be negative")
	ErrUnknownEquipment = errs.New("return references equipment not on the order")
)

type Status string

const (
	StatusQuotation         Status = "Quotation"
	StatusActive            Status = "Active"
	StatusPartiallyReturned Status = "Partially Returned"
	StatusReturned          Status = "Returned"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusQuotation, StatusActive, StatusPartiallyReturned, StatusReturned:
		return Status(s), nil
	default:
		return "", errs.Mark(errs.Newf("unknown order status %q", s), ErrInvalidStatus)
	}
}

func (s Status) String() string { return string(s) }

// LineItem snapshots the equipment name and price at order time so later
// catalog edits do not rewrite past orders.
type LineItem struct {
	EquipmentID             uuid.UUID `json:"equipment_id"`
	Name                    string    `json:"name"`
	PricePerDay             float64   `json:"price_per_day"`
	Quantity                int       `json:"quantity"`
	QuantityReturnedGood    int       `json:"quantity_returned_good"`
	QuantityReturnedDamaged int       `json:"quantity_returned_damaged"`
	ReplacementCost         float64   `json:"replacement_cost"`
}

// Remaining is the number of rented units not yet accounted for by a return.
func (li LineItem) Remaining() int {
	return li.Quantity - li.QuantityReturnedGood - li.QuantityReturnedDamaged
}

func (li LineItem) FullyReturned() bool {
	return li.Remaining() <= 0
}

// Order denormalizes the customer's name, phone, address and TRN at
// creation time so later customer edits do not rewrite past orders.
type Order struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerTRN     string
	Items           []LineItem
	StartDate       time.Time
	EndDate         time.Time
	ReturnDate      *time.Time
	Status          Status
	Discount        billing.Discount
	Subtotal        float64
	TaxAmount       float64
	TotalAmount     float64
	PaidAmount      float64
	LateFee         float64
	DamageFee       float64
	Balance         float64
	PaymentMethod   string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecalculateBalance restores the balance identity after any financial change.
func (o *Order) RecalculateBalance() {
	o.Balance = billing.Balance(o.TotalAmount, o.LateFee, o.DamageFee, o.PaidAmount)
}

func (o *Order) AllReturned() bool {
	for _, li := range o.Items {
		if !li.FullyReturned() {
			return false
		}
	}
	return true
}

// ItemsFrozen reports whether the item set and rental dates are locked.
// Once any units have been released back to stock, editing the order's
// composition would desynchronize stock accounting.
func (o *Order) ItemsFrozen() bool {
	return o.Status == StatusPartiallyReturned || o.Status == StatusReturned
}

func (o *Order) Returnable() bool {
	return o.Status == StatusActive || o.Status == StatusPartiallyReturned
}

// Settled orders are finished business: fully returned with nothing owed.
func (o *Order) Settled() bool {
	return o.Status == StatusReturned && o.Balance <= 0
}

// Activate converts a quotation into a live rental. Stock reservation is
// the caller's responsibility and must happen in the same transaction.
func (o *Order) Activate() error {
	if o.Status != StatusQuotation {
		return ErrNotQuotation
	}
	o.Status = StatusActive
	return nil
}

func (o *Order) Line(equipmentID uuid.UUID) *LineItem {
	for i := range o.Items {
		if o.Items[i].EquipmentID == equipmentID {
			return &o.Items[i]
		}
	}
	return nil
}

// BillingLines projects the line items into calculator inputs.
func (o *Order) BillingLines() []billing.Line {
	lines := make([]billing.Line, len(o.Items))
	for i, li := range o.Items {
		lines[i] = billing.Line{UnitPrice: li.PricePerDay, Quantity: li.Quantity}
	}
	return lines
}

func (o *Order) DurationDays() int {
	return billing.Days(o.StartDate, o.EndDate)
}
