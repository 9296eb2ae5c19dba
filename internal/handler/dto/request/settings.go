package request

import "rentdesk/internal/domain/settings"

type SettingsRequest struct {
	CompanyName   string  `json:"company_name"`
	LogoURL       string  `json:"logo_url"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Currency      string  `json:"currency"`
	TaxPercentage float64 `json:"tax_percentage"`
}

func (r SettingsRequest) ToDomain() settings.Settings {
	return settings.Settings{
		CompanyName:   r.CompanyName,
		LogoURL:       r.LogoURL,
		Address:       r.Address,
		Phone:         r.Phone,
		Currency:      r.Currency,
		TaxPercentage: r.TaxPercentage,
	}
}
