package pricing

import (
	"afterschool-registration/models"
)

// Price tables, all amounts in cents. Kept as explicit maps so the
// eligibility rules stay auditable next to the rates they gate.

// baseWeeklyCents is the weekly tuition by days per week (75.00 per day).
var baseWeeklyCents = map[int]models.Money{
	1: 7500,
	2: 15000,
	3: 22500,
	4: 30000,
	5: 37500,
}

// surchargePerDayCents is the extended-hours add-on per attended day.
// It only applies when the family opted into extensions.
var surchargePerDayCents = map[models.TimeBlock]models.Money{
	models.TimeBlockStandard:  0,
	models.TimeBlockExtendedA: 3000,
	models.TimeBlockExtendedB: 3000,
	models.TimeBlockExtendedC: 5000,
}

// prepayRule is a flat weekly reduction granted for committing to a
// longer billing period, gated by a minimum number of days per week.
type prepayRule struct {
	WeeklyCents models.Money
	MinDays     int
}

var prepayRules = map[models.Frequency]prepayRule{
	models.FrequencyMonthly:  {WeeklyCents: 1000, MinDays: 1},
	models.FrequencyQuarter:  {WeeklyCents: 2500, MinDays: 3},
	models.FrequencyHalf:     {WeeklyCents: 4000, MinDays: 3},
	models.FrequencyFullYear: {WeeklyCents: 4000, MinDays: 3},
	// weekly billing carries no prepay discount
}

// periodWeeks is the number of weeks covered by one invoice. The full
// year approximates a ten-month academic calendar at 4 weeks per month.
var periodWeeks = map[models.Frequency]int{
	models.FrequencyWeekly:   1,
	models.FrequencyMonthly:  4,
	models.FrequencyQuarter:  12,
	models.FrequencyHalf:     24,
	models.FrequencyFullYear: 40,
}

const (
	// Abacus program: 350.00/month converted to a weekly figure at
	// 4 weeks per month. Priced independently of the core program and
	// never discounted.
	abacusWeeklyCents = models.Money(35000 / 4)

	// One-time registration fee for the abacus program, waived for
	// Carrington families.
	registrationFeeCents = models.Money(9000)

	// Partner-school discount: 40% off the core subtotal, requires at
	// least 2 days per week.
	schoolDiscountPct     = 40
	schoolDiscountMinDays = 2
)

// ComputePrice turns an enrollment configuration into a full price
// breakdown. Pure and deterministic: no I/O, no state, safe to call
// concurrently (the UI calls it per keystroke for the live quote).
// Input must already be validated; see models.EnrollmentConfig.Validate.
func ComputePrice(cfg models.EnrollmentConfig) models.PriceBreakdown {
	base := baseWeeklyCents[cfg.DaysPerWeek]

	var addOn models.Money
	if cfg.ExtensionsEnabled {
		addOn = surchargePerDayCents[cfg.TimeBlock] * models.Money(cfg.DaysPerWeek)
	}

	var abacus models.Money
	if cfg.AbacusEnabled {
		abacus = abacusWeeklyCents
	}

	// Only the core subtotal is eligible for discounts.
	subtotal := base + addOn

	var schoolDiscount models.Money
	if cfg.School == models.SchoolAffiliated && cfg.DaysPerWeek >= schoolDiscountMinDays {
		schoolDiscount = percentOf(subtotal, schoolDiscountPct)
	}

	var prepayDiscount models.Money
	if rule, ok := prepayRules[cfg.Frequency]; ok && cfg.DaysPerWeek >= rule.MinDays {
		prepayDiscount = rule.WeeklyCents
	}

	// Clamp before adding abacus: compounding discounts must never turn
	// the core program into a credit, and the abacus rate is exempt from
	// both discounts.
	net := subtotal - schoolDiscount - prepayDiscount
	if net < 0 {
		net = 0
	}
	final := net + abacus

	var fee models.Money
	if cfg.AbacusEnabled && !cfg.IsCarrington {
		fee = registrationFeeCents
	}

	weeks := periodWeeks[cfg.Frequency]

	return models.PriceBreakdown{
		BaseWeekly:           base,
		AddOnWeekly:          addOn,
		AbacusWeekly:         abacus,
		SchoolDiscountWeekly: schoolDiscount,
		PrepayDiscountWeekly: prepayDiscount,
		FinalWeekly:          final,
		PeriodWeeks:          weeks,
		RegistrationFee:      fee,
		TotalForPeriod:       final.MulWeeks(weeks) + fee,
	}
}

// percentOf computes pct% of an amount in cents, rounding half up to the
// nearest cent. Every value in the current tables divides exactly, so
// the rounding only matters if the tables change.
func percentOf(amount models.Money, pct int64) models.Money {
	return models.Money((int64(amount)*pct + 50) / 100)
}
