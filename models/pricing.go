package models

// PriceBreakdown is the complete result of one pricing computation.
// The UI renders it as the live quote and posts it back untouched as
// part of the registration payload.
type PriceBreakdown struct {
	BaseWeekly           Money `json:"baseWeekly"`           // tuition for daysPerWeek before add-ons and discounts
	AddOnWeekly          Money `json:"addOnWeekly"`          // extended-hours surcharge, 0 when extensions are disabled
	AbacusWeekly         Money `json:"abacusWeekly"`         // flat weekly rate of the abacus program, never discounted
	SchoolDiscountWeekly Money `json:"schoolDiscountWeekly"` // partner-school reduction on the core subtotal
	PrepayDiscountWeekly Money `json:"prepayDiscountWeekly"` // prepaid-frequency reduction on the core subtotal
	FinalWeekly          Money `json:"finalWeekly"`          // net weekly charge, clamped at zero before abacus is added
	PeriodWeeks          int   `json:"periodWeeks"`          // weeks covered by one invoice
	RegistrationFee      Money `json:"registrationFee"`      // one-time fee, charged once per registration
	TotalForPeriod       Money `json:"totalForPeriod"`       // finalWeekly × periodWeeks + registrationFee
}
