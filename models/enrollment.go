package models

import (
	"fmt"
)

// TimeBlock identifies the daily pickup window the family selected.
type TimeBlock string

const (
	TimeBlockStandard  TimeBlock = "standard"
	TimeBlockExtendedA TimeBlock = "extendedA"
	TimeBlockExtendedB TimeBlock = "extendedB"
	TimeBlockExtendedC TimeBlock = "extendedC"
)

// School identifies whether the child attends a partner school.
type School string

const (
	SchoolAffiliated School = "affiliatedDiscountSchool"
	SchoolOther      School = "other"
)

// Frequency is the billing cadence the family commits to.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyQuarter  Frequency = "quarter"  // 3 months
	FrequencyHalf     Frequency = "half"     // 6 months
	FrequencyFullYear Frequency = "fullYear" // ten-month academic year
)

// EnrollmentConfig is the pricing input collected by the registration form.
// Example: {"daysPerWeek": 3, "timeBlock": "extendedA", "school": "other",
// "frequency": "monthly", "extensionsEnabled": true}
type EnrollmentConfig struct {
	DaysPerWeek       int       `json:"daysPerWeek"`
	TimeBlock         TimeBlock `json:"timeBlock"`
	School            School    `json:"school"`
	Frequency         Frequency `json:"frequency"`
	ExtensionsEnabled bool      `json:"extensionsEnabled"`
	AbacusEnabled     bool      `json:"abacusEnabled"`
	IsCarrington      bool      `json:"isCarrington"`
}

// Valid reports whether t is a known time block.
func (t TimeBlock) Valid() bool {
	switch t {
	case TimeBlockStandard, TimeBlockExtendedA, TimeBlockExtendedB, TimeBlockExtendedC:
		return true
	}
	return false
}

// Valid reports whether s is a known school value.
func (s School) Valid() bool {
	return s == SchoolAffiliated || s == SchoolOther
}

// Valid reports whether f is a known billing frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarter, FrequencyHalf, FrequencyFullYear:
		return true
	}
	return false
}

// Validate checks the ranges and enum values of the pricing input.
// The pricing engine assumes validated input, so every entry point must
// call this before computing a price.
func (c *EnrollmentConfig) Validate() error {
	if c.DaysPerWeek < 1 || c.DaysPerWeek > 5 {
		return fmt.Errorf("daysPerWeek must be between 1 and 5, got %d", c.DaysPerWeek)
	}
	if !c.TimeBlock.Valid() {
		return fmt.Errorf("unknown timeBlock %q", c.TimeBlock)
	}
	if !c.School.Valid() {
		return fmt.Errorf("unknown school %q", c.School)
	}
	if !c.Frequency.Valid() {
		return fmt.Errorf("unknown frequency %q", c.Frequency)
	}
	return nil
}
