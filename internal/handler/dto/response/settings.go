package response

import (
	"rentdesk/internal/domain/settings"

	"github.com/jinzhu/copier"
)

type SettingsResponse struct {
	CompanyName   string  `json:"company_name"`
	LogoURL       string  `json:"logo_url"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Currency      string  `json:"currency"`
	TaxPercentage float64 `json:"tax_percentage"`
}

func FromSettings(s settings.Settings) *SettingsResponse {
	resp := &SettingsResponse{}
	_ = copier.Copy(resp, &s)
	return resp
}
