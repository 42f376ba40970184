package accounting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is a money amount in hundredths of the currency unit.
type Cents int64

// FromFloat converts a currency amount, rounding half away from zero.
func FromFloat(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

func (c Cents) Float() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	sign := ""
	value := int64(c)
	if value < 0 {
		sign = "-"
		value = -value
	}
	return fmt.Sprintf("%s%d.%02d", sign, value/100, value%100)
}

// MarshalJSON renders a JSON number with exactly two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("amount must be a number")
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("amount must be finite")
	}
	*c = FromFloat(amount)
	return nil
}
