package response

import (
	"time"

	"rentdesk/internal/domain/equipment"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EquipmentResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	PricePerDay       float64   `json:"price_per_day"`
	ReplacementValue  float64   `json:"replacement_value"`
	TotalQuantity     int       `json:"total_quantity"`
	AvailableQuantity int       `json:"available_quantity"`
	DamagedQuantity   int       `json:"damaged_quantity"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromEquipment(item *equipment.Item) *EquipmentResponse {
	resp := &EquipmentResponse{}
	_ = copier.Copy(resp, item)
	resp.Status = item.Status.String()
	return resp
}

func FromEquipmentList(items []*equipment.Item) []*EquipmentResponse {
	out := make([]*EquipmentResponse, len(items))
	for i, item := range items {
		out[i] = FromEquipment(item)
	}
	return out
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromCategory(c *equipment.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name}
}

func FromCategories(categories []*equipment.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = FromCategory(c)
	}
	return out
}
