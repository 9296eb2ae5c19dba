package response

import "rentdesk/internal/usecase"

// InvoiceResponse bundles everything a client needs to render an invoice
// without further round trips.
type InvoiceResponse struct {
	Order    *OrderResponse    `json:"order"`
	Customer *CustomerResponse `json:"customer"`
	Company  *SettingsResponse `json:"company"`
}

func FromInvoice(data *usecase.InvoiceData) *InvoiceResponse {
	return &InvoiceResponse{
		Order:    FromOrder(data.Order),
		Customer: FromCustomer(data.Customer),
		Company:  FromSettings(data.Settings),
	}
}
