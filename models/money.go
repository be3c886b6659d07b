package models

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in cents. Keeping prices in integer cents avoids
// float drift in the discount math; the JSON form always carries exactly
// two decimal places (e.g. 8750 marshals as 87.50).
type Money int64

// MarshalJSON renders the amount as a plain JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return []byte(fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)), nil
}

// UnmarshalJSON accepts any JSON number and rounds it to the nearest cent.
func (m *Money) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid money amount %s: %w", data, err)
	}
	*m = Money(math.Round(f * 100))
	return nil
}

// MulWeeks multiplies a weekly amount by a whole number of weeks.
func (m Money) MulWeeks(weeks int) Money {
	return m * Money(weeks)
}
