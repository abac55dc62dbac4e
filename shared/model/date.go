package model

import (
	"encoding/json"
	"fmt"
	"time"

	"hotel/shared/constant"

	"gopkg.in/yaml.v3"
)

const day = 24 * time.Hour

// Date is a calendar day without time of day or zone. The zero value means "no date".
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return Date{t: time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// DateOf keeps the calendar day of t as seen in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// ParseDate accepts only the YYYY-MM-DD form.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(constant.DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return Date{t: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return constant.Empty
	}

	return d.t.Format(constant.DateLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil counts whole days from d to other; negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String()) //nolint:wrapcheck
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode date: %w", err)
	}

	if raw == constant.Empty {
		*d = Date{}

		return nil
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalYAML() (any, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.String(), nil
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" || node.Value == constant.Empty {
		*d = Date{}

		return nil
	}

	parsed, err := ParseDate(node.Value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
