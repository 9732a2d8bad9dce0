/*
Package compensation aggregates base pay and differentials into totals.

PURPOSE:
  Two entry points combine a nurse's base pay with reported differentials:

  CalculateMonthlyCompensation (monthly.go)
    Dashboard aggregation. Takes differentials that already carry a
    monthly amount (from a saved calculation) and produces monthly
    totals plus the legacy night / weekend / specialty buckets.

  Estimator.Estimate (estimate.go)
    Instant estimate. Runs every differential through the contribution
    calculator against the catalog and produces a Result shaped like a
    saved calculation (items + metadata).

ARITHMETIC:
  Plain float64 throughout, summed left to right in input order so the
  same input always yields bit-identical output. Rounding to cents only
  happens at the storage boundary (RoundCents).

SEE ALSO:
  - differential/contribution.go: Per-item monthly formulas
  - paycalc/paycalc.go: Shift-aware base pay conversion
*/
package compensation

import (
	"strings"

	"github.com/shiftwise/pay-engine/paycalc"
)

// DifferentialAmount is a differential as the aggregation sees it.
// MonthlyAmount comes from an authoritative calculation when available;
// EstimatedHours drives the legacy value x hours approximation otherwise.
type DifferentialAmount struct {
	Type           string   `json:"type"`
	Value          float64  `json:"value"`
	Frequency      float64  `json:"frequency"`
	MonthlyAmount  *float64 `json:"monthly_amount,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
}

// Monthly returns the monthly dollars for d: MonthlyAmount, else
// Value x EstimatedHours, else 0.
func (d DifferentialAmount) Monthly() float64 {
	if d.MonthlyAmount != nil {
		return *d.MonthlyAmount
	}
	if d.EstimatedHours != nil {
		return d.Value * *d.EstimatedHours
	}
	return 0
}

// MonthlyDifferential is one differential with its resolved monthly amount.
type MonthlyDifferential struct {
	Type          string  `json:"type"`
	Value         float64 `json:"value"`
	Frequency     float64 `json:"frequency"`
	MonthlyAmount float64 `json:"monthly_amount"`
}

// MonthlyCalculations is the dashboard view of a nurse's monthly pay.
type MonthlyCalculations struct {
	MonthlyBase               float64               `json:"monthly_base"`
	TotalMonthlyDifferentials float64               `json:"total_monthly_differentials"`
	TotalMonthly              float64               `json:"total_monthly"`
	EffectiveHourlyRate       float64               `json:"effective_hourly_rate"`
	Differentials             []MonthlyDifferential `json:"differentials"`

	// Legacy buckets derived from the type name. Not authoritative.
	NightDifferential     float64 `json:"night_differential"`
	WeekendDifferential   float64 `json:"weekend_differential"`
	SpecialtyDifferential float64 `json:"specialty_differential"`
}

// CalculateMonthlyCompensation combines the monthly base from annualSalary
// with the monthly amount of every differential.
func CalculateMonthlyCompensation(annualSalary float64, differentials []DifferentialAmount, shiftHours float64) MonthlyCalculations {
	calc := MonthlyCalculations{
		MonthlyBase:   paycalc.AnnualToMonthly(annualSalary, shiftHours),
		Differentials: make([]MonthlyDifferential, 0, len(differentials)),
	}

	for _, d := range differentials {
		amount := d.Monthly()
		calc.Differentials = append(calc.Differentials, MonthlyDifferential{
			Type:          d.Type,
			Value:         d.Value,
			Frequency:     d.Frequency,
			MonthlyAmount: amount,
		})
		calc.TotalMonthlyDifferentials += amount

		switch bucketOf(d.Type) {
		case bucketNight:
			calc.NightDifferential += amount
		case bucketWeekend:
			calc.WeekendDifferential += amount
		default:
			calc.SpecialtyDifferential += amount
		}
	}

	calc.TotalMonthly = calc.MonthlyBase + calc.TotalMonthlyDifferentials
	calc.EffectiveHourlyRate = paycalc.MonthlyToHourly(calc.TotalMonthly, shiftHours)
	return calc
}

type bucket int

const (
	bucketSpecialty bucket = iota
	bucketNight
	bucketWeekend
)

// bucketOf picks the legacy bucket by case-insensitive substring. Night wins
// over weekend for a type mentioning both.
func bucketOf(typ string) bucket {
	lower := strings.ToLower(typ)
	switch {
	case strings.Contains(lower, "night"):
		return bucketNight
	case strings.Contains(lower, "weekend"):
		return bucketWeekend
	}
	return bucketSpecialty
}
