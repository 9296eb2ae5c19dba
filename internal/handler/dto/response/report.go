package response

import (
	"rentdesk/internal/usecase"

	"github.com/jinzhu/copier"
)

type ReportSummaryResponse struct {
	TotalSales       float64        `json:"total_sales"`
	Collected        float64        `json:"collected"`
	Outstanding      float64        `json:"outstanding"`
	TotalExpenses    float64        `json:"total_expenses"`
	NetRevenue       float64        `json:"net_revenue"`
	OrderCount       int            `json:"order_count"`
	OrdersByStatus   map[string]int `json:"orders_by_status"`
	EquipmentByState map[string]int `json:"equipment_by_state"`
	CategoryCounts   map[string]int `json:"category_counts"`
}

func FromReportSummary(s *usecase.ReportSummary) *ReportSummaryResponse {
	resp := &ReportSummaryResponse{}
	_ = copier.Copy(resp, s)
	return resp
}
