package dto

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day serialized as "2006-01-02". Leave ranges are
// inclusive day ranges, so the wire format carries no time-of-day component.
type Date struct {
	time.Time
}

// UnmarshalJSON parses a quoted yyyy-mm-dd string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as a quoted yyyy-mm-dd string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(time.DateOnly) + `"`), nil
}
