package equipment

import (
	"fmt"
	"time"

	"rentdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errs.New("equipment name is required")
	ErrInvalidPrice    = errs.New("price per day cannot be negative")
	ErrInvalidQuantity = errs.New("quantities cannot be negative")
	ErrInvalidStatus   = errs.New("invalid equipment status")
)

type Status string

const (
	StatusNew       Status = "New"
	StatusReusable  Status = "Reusable"
	StatusAvailable Status = "Available"
	StatusDamaged   Status = "Damaged"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusReusable, StatusAvailable, StatusDamaged:
		return Status(s), nil
	default:
		return "", errs.Mark(errs.Newf("unknown equipment status %q", s), ErrInvalidStatus)
	}
}

func (s Status) String() string { return string(s) }

// StockConflictError reports a reservation that exceeds available stock.
type StockConflictError struct {
	EquipmentID uuid.UUID
	Name        string
	Requested   int
	Available   int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}

func (e *StockConflictError) Shortfall() int {
	return e.Requested - e.Available
}

type Item struct {
	ID                uuid.UUID
	Name              string
	Category          string
	Description       string
	PricePerDay       float64
	ReplacementValue  float64
	TotalQuantity     int
	AvailableQuantity int
	DamagedQuantity   int
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewItem(name, category, description string, pricePerDay, replacementValue float64, totalQuantity int, status Status) (*Item, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if pricePerDay < 0 || replacementValue < 0 {
		return nil, ErrInvalidPrice
	}
	if totalQuantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := NewStatus(string(status)); err != nil {
		return nil, err
	}

	return &Item{
		ID:                uuid.New(),
		Name:              name,
		Category:          category,
		Description:       description,
		PricePerDay:       pricePerDay,
		ReplacementValue:  replacementValue,
		TotalQuantity:     totalQuantity,
		AvailableQuantity: totalQuantity,
		Status:            status,
	}, nil
}

// Reserve takes units out of available stock for an active rental.
func (i *Item) Reserve(quantity int) error {
	if quantity > i.AvailableQuantity {
		return &StockConflictError{
			EquipmentID: i.ID,
			Name:        i.Name,
			Requested:   quantity,
			Available:   i.AvailableQuantity,
		}
	}
	i.AvailableQuantity -= quantity
	return nil
}

// Release puts reserved units back without any damage accounting.
// Used when an active order's line items shrink or the order is cancelled.
func (i *Item) Release(quantity int) {
	i.AvailableQuantity += quantity
}

// AcceptReturn restocks good units and writes off damaged ones.
// Damaged units leave the rentable pool entirely: they are counted in
// DamagedQuantity and removed from TotalQuantity rather than held for repair.
func (i *Item) AcceptReturn(good, damaged int) {
	i.AvailableQuantity += good
	i.DamagedQuantity += damaged
	i.TotalQuantity -= damaged
	if i.TotalQuantity < 0 {
		i.TotalQuantity = 0
	}

	if i.AvailableQuantity > 0 {
		i.Status = StatusAvailable
	} else if i.DamagedQuantity > 0 {
		i.Status = StatusDamaged
	}
}
