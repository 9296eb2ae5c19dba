package request

import (
	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/usecase"
)

type CreateEquipmentRequest struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	PricePerDay      float64 `json:"price_per_day"`
	ReplacementValue float64 `json:"replacement_value"`
	TotalQuantity    int     `json:"total_quantity"`
	Status           string  `json:"status"`
}

func (r CreateEquipmentRequest) ToParams() (usecase.CreateEquipmentParams, error) {
	status := equipment.StatusNew
	if r.Status != "" {
		parsed, err := equipment.NewStatus(r.Status)
		if err != nil {
			return usecase.CreateEquipmentParams{}, err
		}
		status = parsed
	}
	return usecase.CreateEquipmentParams{
		Name:             r.Name,
		Category:         r.Category,
		Description:      r.Description,
		PricePerDay:      r.PricePerDay,
		ReplacementValue: r.ReplacementValue,
		TotalQuantity:    r.TotalQuantity,
		Status:           status,
	}, nil
}

type UpdateEquipmentRequest struct {
	Name              *string  `json:"name,omitempty"`
	Category          *string  `json:"category,omitempty"`
	Description       *string  `json:"description,omitempty"`
	PricePerDay       *float64 `json:"price_per_day,omitempty"`
	ReplacementValue  *float64 `json:"replacement_value,omitempty"`
	TotalQuantity     *int     `json:"total_quantity,omitempty"`
	AvailableQuantity *int     `json:"available_quantity,omitempty"`
	DamagedQuantity   *int     `json:"damaged_quantity,omitempty"`
	Status            *string  `json:"status,omitempty"`
}

func (r UpdateEquipmentRequest) ToParams() (usecase.UpdateEquipmentParams, error) {
	params := usecase.UpdateEquipmentParams{
		Name:              r.Name,
		Category:          r.Category,
		Description:       r.Description,
		PricePerDay:       r.PricePerDay,
		ReplacementValue:  r.ReplacementValue,
		TotalQuantity:     r.TotalQuantity,
		AvailableQuantity: r.AvailableQuantity,
		DamagedQuantity:   r.DamagedQuantity,
	}
	if r.Status != nil {
		status, err := equipment.NewStatus(*r.Status)
		if err != nil {
			return usecase.UpdateEquipmentParams{}, err
		}
		params.Status = &status
	}
	return params, nil
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
