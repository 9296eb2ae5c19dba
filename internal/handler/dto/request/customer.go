package request

import "rentdesk/internal/usecase"

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	TRN     string `json:"trn"`
}

func (r CustomerRequest) ToParams() usecase.CustomerParams {
	return usecase.CustomerParams{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		TRN:     r.TRN,
	}
}
