package billing

import (
	"math"
	"time"

	"rentdesk/internal/pkg/errs"
)

var ErrInvalidDiscount = errs.New("invalid discount")

type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is fixed at order creation and never recomputed afterwards.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

func NewDiscount(discountType DiscountType, value float64) (Discount, error) {
	switch discountType {
	case DiscountNone:
		return Discount{Type: DiscountNone}, nil
	case DiscountPercentage:
		if value < 0 || value > 100 {
			return Discount{}, errs.Mark(errs.New("percentage discount must be between 0 and 100"), ErrInvalidDiscount)
		}
	case DiscountFixed:
		if value < 0 {
			return Discount{}, errs.Mark(errs.New("fixed discount cannot be negative"), ErrInvalidDiscount)
		}
	default:
		return Discount{}, errs.Mark(errs.Newf("unknown discount type %q", discountType), ErrInvalidDiscount)
	}
	return Discount{Type: discountType, Value: value}, nil
}

func NoDiscount() Discount {
	return Discount{Type: DiscountNone}
}

func (d Discount) IsZero() bool {
	return d.Type == "" || d.Type == DiscountNone || d.Value == 0
}

// AmountOff returns the monetary reduction for a given subtotal.
// A fixed discount larger than the subtotal clamps to the subtotal,
// so the discounted amount never goes below zero.
func (d Discount) AmountOff(subtotal float64) float64 {
	switch d.Type {
	case DiscountPercentage:
		return subtotal * d.Value / 100.0
	case DiscountFixed:
		if d.Value > subtotal {
			return subtotal
		}
		return d.Value
	default:
		return 0
	}
}

type Line struct {
	UnitPrice float64
	Quantity  int
}

type Amounts struct {
	Days     int
	Subtotal float64
	Discount float64
	Tax      float64
	Total    float64
}

// Days returns the chargeable rental duration between two dates.
// Same-day rentals charge one full day.
func Days(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	days := int(e.Sub(s).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func Subtotal(lines []Line, days int) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.UnitPrice * float64(l.Quantity) * float64(days)
	}
	return sum
}

// Compute derives the full charge breakdown for a rental period.
// Tax applies to the subtotal after the discount. Inverted or same-day
// ranges bill as one day, never an error.
func Compute(lines []Line, start, end time.Time, discount Discount, taxPercentage float64) Amounts {
	days := Days(start, end)
	subtotal := Subtotal(lines, days)
	off := discount.AmountOff(subtotal)
	taxable := subtotal - off
	tax := taxable * taxPercentage / 100.0

	return Amounts{
		Days:     days,
		Subtotal: subtotal,
		Discount: off,
		Tax:      tax,
		Total:    taxable + tax,
	}
}

// Balance is what the customer still owes. Negative means overpaid.
func Balance(total, lateFee, damageFee, paid float64) float64 {
	return total + lateFee + damageFee - paid
}

// SuggestedLateFee charges the average daily rate for each overdue day,
// rounded up to the next whole unit. Callers may override the suggestion.
func SuggestedLateFee(total float64, durationDays, daysLate int) float64 {
	if daysLate <= 0 {
		return 0
	}
	if durationDays < 1 {
		durationDays = 1
	}
	return math.Ceil(total / float64(durationDays) * float64(daysLate))
}

// DaysLate counts whole days past the scheduled end date.
func DaysLate(end, returnedAt time.Time) int {
	late := int(dateOnly(returnedAt).Sub(dateOnly(end)).Hours() / 24)
	if late < 0 {
		return 0
	}
	return late
}
