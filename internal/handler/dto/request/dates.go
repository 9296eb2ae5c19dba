package request

import (
	"time"

	"rentdesk/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("dates must use the YYYY-MM-DD format")

// ParseDate reads a calendar date. Rental periods carry no time of day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseOptionalDate returns nil for an absent value.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
