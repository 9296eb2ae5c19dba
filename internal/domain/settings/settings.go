package settings

import "rentdesk/internal/pkg/errs"

var ErrInvalidTaxPercentage = errs.New("tax percentage must be between 0 and 100")

// Settings is a single-row document holding company identity and the
// tax rate applied to new orders. Existing orders keep their computed tax.
type Settings struct {
	CompanyName   string
	LogoURL       string
	Address       string
	Phone         string
	Currency      string
	TaxPercentage float64
}

func Default(taxPercentage float64) Settings {
	return Settings{
		Currency:      "$",
		TaxPercentage: taxPercentage,
	}
}

func (s Settings) Validate() error {
	if s.TaxPercentage < 0 || s.TaxPercentage > 100 {
		return ErrInvalidTaxPercentage
	}
	return nil
}
