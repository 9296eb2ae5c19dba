package response

import (
	"time"

	"rentdesk/internal/domain/order"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type OrderLineResponse struct {
	EquipmentID             uuid.UUID `json:"equipment_id"`
	Name                    string    `json:"name"`
	PricePerDay             float64   `json:"price_per_day"`
	Quantity                int       `json:"quantity"`
	QuantityReturnedGood    int       `json:"quantity_returned_good"`
	QuantityReturnedDamaged int       `json:"quantity_returned_damaged"`
	ReplacementCost         float64   `json:"replacement_cost"`
	Remaining               int       `json:"remaining"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	CustomerID      uuid.UUID           `json:"customer_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	CustomerTRN     string              `json:"customer_trn,omitempty"`
	Items           []OrderLineResponse `json:"items"`
	StartDate       string              `json:"start_date"`
	EndDate         string              `json:"end_date"`
	ReturnDate      *string             `json:"return_date,omitempty"`
	Status          string              `json:"status"`
	DiscountType    string              `json:"discount_type"`
	DiscountValue   float64             `json:"discount_value"`
	Subtotal        float64             `json:"subtotal"`
	TaxAmount       float64             `json:"tax_amount"`
	TotalAmount     float64             `json:"total_amount"`
	PaidAmount      float64             `json:"paid_amount"`
	LateFee         float64             `json:"late_fee"`
	DamageFee       float64             `json:"damage_fee"`
	Balance         float64             `json:"balance"`
	PaymentMethod   string              `json:"payment_method"`
	Notes           string              `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromOrder(o *order.Order) *OrderResponse {
	resp := &OrderResponse{}
	_ = copier.Copy(resp, o)

	resp.Status = o.Status.String()
	resp.DiscountType = string(o.Discount.Type)
	resp.DiscountValue = o.Discount.Value
	resp.StartDate = o.StartDate.Format(dateLayout)
	resp.EndDate = o.EndDate.Format(dateLayout)
	if o.ReturnDate != nil {
		formatted := o.ReturnDate.Format(dateLayout)
		resp.ReturnDate = &formatted
	}

	resp.Items = make([]OrderLineResponse, len(o.Items))
	for i, li := range o.Items {
		_ = copier.Copy(&resp.Items[i], &li)
		resp.Items[i].Remaining = li.Remaining()
	}
	return resp
}

func FromOrders(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}
