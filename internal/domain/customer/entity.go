package customer

import (
	"time"

	"rentdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidName = errs.New("customer name is required")

type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	Address   string
	TRN       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCustomer(name, phone, email, address, trn string) (*Customer, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Customer{
		ID:      uuid.New(),
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		TRN:     trn,
	}, nil
}
