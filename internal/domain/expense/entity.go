package expense

import (
	"time"

	"rentdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errs.New("expense amount must be positive")
	ErrInvalidReason = errs.New("expense reason is required")
)

// Expense records money going out: fuel, repairs, purchases. Optionally
// tied to the order that caused it.
type Expense struct {
	ID        uuid.UUID
	OrderID   *uuid.UUID
	StaffName string
	Amount    float64
	Reason    string
	Notes     string
	Date      time.Time
	CreatedAt time.Time
}

func NewExpense(orderID *uuid.UUID, staffName string, amount float64, reason, notes string, date time.Time) (*Expense, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if reason == "" {
		return nil, ErrInvalidReason
	}
	return &Expense{
		ID:        uuid.New(),
		OrderID:   orderID,
		StaffName: staffName,
		Amount:    amount,
		Reason:    reason,
		Notes:     notes,
		Date:      date,
	}, nil
}
