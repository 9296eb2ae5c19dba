package response

import (
	"time"

	"rentdesk/internal/domain/expense"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ExpenseResponse struct {
	ID        uuid.UUID  `json:"id"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	StaffName string     `json:"staff_name"`
	Amount    float64    `json:"amount"`
	Reason    string     `json:"reason"`
	Notes     string     `json:"notes"`
	Date      string     `json:"date"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromExpense(e *expense.Expense) *ExpenseResponse {
	resp := &ExpenseResponse{}
	_ = copier.Copy(resp, e)
	resp.Date = e.Date.Format(dateLayout)
	return resp
}

func FromExpenses(expenses []*expense.Expense) []*ExpenseResponse {
	out := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = FromExpense(e)
	}
	return out
}
