// Package civil holds a calendar date without a time of day.
package civil

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Date is stored as DATE and rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

func Parse(value string) (Date, error) {
	parsed, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return Date{Time: parsed}, nil
}

func MustParse(value string) Date {
	date, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return date
}

// Of truncates t to its calendar day in UTC.
func Of(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Time.Format(Layout)
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date must be a string")
	}
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		*d = Of(value)
		return nil
	case string:
		return d.scanString(value)
	case []byte:
		return d.scanString(string(value))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("civil: cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(value string) error {
	if len(value) >= len(Layout) {
		if parsed, err := Parse(value[:len(Layout)]); err == nil {
			*d = parsed
			return nil
		}
	}
	return fmt.Errorf("civil: cannot parse %q as date", value)
}
