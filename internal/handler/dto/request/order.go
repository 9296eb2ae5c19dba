package request

import (
	"rentdesk/internal/domain/billing"
	"rentdesk/internal/usecase"

	"github.com/google/uuid"
)

type OrderLineRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	CustomerID    uuid.UUID          `json:"customer_id" binding:"required"`
	Items         []OrderLineRequest `json:"items" binding:"required"`
	StartDate     string             `json:"start_date" binding:"required"`
	EndDate       string             `json:"end_date" binding:"required"`
	DiscountType  string             `json:"discount_type,omitempty"`
	DiscountValue float64            `json:"discount_value,omitempty"`
	PaidAmount    float64            `json:"paid_amount"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	AsQuotation   bool               `json:"as_quotation"`
}

func (r CreateOrderRequest) ToParams() (usecase.CreateOrderParams, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return usecase.CreateOrderParams{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return usecase.CreateOrderParams{}, err
	}

	discount := billing.NoDiscount()
	if r.DiscountType != "" {
		discount, err = billing.NewDiscount(billing.DiscountType(r.DiscountType), r.DiscountValue)
		if err != nil {
			return usecase.CreateOrderParams{}, err
		}
	}

	return usecase.CreateOrderParams{
		CustomerID:    r.CustomerID,
		Items:         toLineInputs(r.Items),
		StartDate:     start,
		EndDate:       end,
		Discount:      discount,
		PaidAmount:    r.PaidAmount,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		AsQuotation:   r.AsQuotation,
	}, nil
}

type UpdateOrderRequest struct {
	Items             []OrderLineRequest `json:"items,omitempty"`
	StartDate         *string            `json:"start_date,omitempty"`
	EndDate           *string            `json:"end_date,omitempty"`
	AdditionalPayment float64            `json:"additional_payment"`
	LateFee           *float64           `json:"late_fee,omitempty"`
	DamageFee         *float64           `json:"damage_fee,omitempty"`
	PaymentMethod     *string            `json:"payment_method,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
}

func (r UpdateOrderRequest) ToParams() (usecase.UpdateOrderParams, error) {
	start, err := ParseOptionalDate(r.StartDate)
	if err != nil {
		return usecase.UpdateOrderParams{}, err
	}
	end, err := ParseOptionalDate(r.EndDate)
	if err != nil {
		return usecase.UpdateOrderParams{}, err
	}

	params := usecase.UpdateOrderParams{
		StartDate:         start,
		EndDate:           end,
		AdditionalPayment: r.AdditionalPayment,
		LateFee:           r.LateFee,
		DamageFee:         r.DamageFee,
		PaymentMethod:     r.PaymentMethod,
		Notes:             r.Notes,
	}
	if r.Items != nil {
		params.Items = toLineInputs(r.Items)
	}
	return params, nil
}

// ReturnLineRequest settles one line completely: units not reported good
// count as damaged.
type ReturnLineRequest struct {
	EquipmentID     uuid.UUID `json:"equipment_id" binding:"required"`
	GoodQuantity    int       `json:"good_quantity"`
	ReplacementCost float64   `json:"replacement_cost"`
}

type ReturnRequest struct {
	Lines   []ReturnLineRequest `json:"lines" binding:"required"`
	LateFee *float64            `json:"late_fee,omitempty"`
}

func (r ReturnRequest) ToParams() usecase.ReturnParams {
	good := make(map[uuid.UUID]int, len(r.Lines))
	costs := make(map[uuid.UUID]float64)
	for _, line := range r.Lines {
		good[line.EquipmentID] = line.GoodQuantity
		if line.ReplacementCost > 0 {
			costs[line.EquipmentID] = line.ReplacementCost
		}
	}
	return usecase.ReturnParams{
		Good:             good,
		ReplacementCosts: costs,
		LateFee:          r.LateFee,
	}
}

func toLineInputs(lines []OrderLineRequest) []usecase.OrderLineInput {
	inputs := make([]usecase.OrderLineInput, len(lines))
	for i, l := range lines {
		inputs[i] = usecase.OrderLineInput{EquipmentID: l.EquipmentID, Quantity: l.Quantity}
	}
	return inputs
}
