package request

import (
	"time"

	"rentdesk/internal/usecase"

	"github.com/google/uuid"
)

type ExpenseRequest struct {
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	StaffName string     `json:"staff_name"`
	Amount    float64    `json:"amount" binding:"required"`
	Reason    string     `json:"reason" binding:"required"`
	Notes     string     `json:"notes"`
	Date      *string    `json:"date,omitempty"`
}

func (r ExpenseRequest) ToParams() (usecase.ExpenseParams, error) {
	var date time.Time
	if parsed, err := ParseOptionalDate(r.Date); err != nil {
		return usecase.ExpenseParams{}, err
	} else if parsed != nil {
		date = *parsed
	}

	return usecase.ExpenseParams{
		OrderID:   r.OrderID,
		StaffName: r.StaffName,
		Amount:    r.Amount,
		Reason:    r.Reason,
		Notes:     r.Notes,
		Date:      date,
	}, nil
}
