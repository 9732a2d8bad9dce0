/*
contribution.go - Monthly dollar contribution of a single differential

PURPOSE:
  Converts one Item into the dollars it adds to a nurse's month. The
  formula is selected from the catalog's value unit first, then its
  frequency unit:

    value unit   frequency unit   formula
    multiplier   hours/week       f * WeeksPerMonth * base * (v - 1)
    multiplier   days/year        (f * StandardShiftHours / 12) * base * (v - 1)
    multiplier   times/month      f * 4 * base * v
    $/hour       days/week        f * StandardShiftHours * WeeksPerMonth * v
    $/hour       days/month       f * StandardShiftHours * v
    $/hour       yes              HoursPerMonth * v
    percentage   days/month       f * 24 * base * v
    percentage   yes              96 * base * v
    $ fixed      any              f * v
    otherwise                     0 (FormulaUncovered)

  base is the hourly base rate.

ZERO RULES (checked in this order):
  1. Unknown type (nil config)   -> 0
  2. Frequency exactly zero      -> 0, even for binary units
  3. Uncovered combination       -> 0

SEE ALSO:
  - types.go: Unit parsing
  - compensation/estimate.go: Sums contributions into a result
*/
package differential

// Constants of the assumed nursing work pattern (12-hour shifts).
const (
	HoursPerMonth      = 173.33
	WeeksPerMonth      = 4.33
	StandardShiftHours = 12

	callBackHoursPerOccurrence = 4
	percentageHoursPerDay      = 24
	percentageHoursBinary      = 96
)

// Formula names a row of the contribution decision table.
type Formula int

const (
	FormulaUncovered Formula = iota
	FormulaUnknownType
	FormulaMultiplierHoursPerWeek
	FormulaMultiplierDaysPerYear
	FormulaMultiplierTimesPerMonth
	FormulaHourlyDaysPerWeek
	FormulaHourlyDaysPerMonth
	FormulaHourlyBinary
	FormulaPercentageDaysPerMonth
	FormulaPercentageBinary
	FormulaFixed
)

var formulaNames = map[Formula]string{
	FormulaUncovered:               "uncovered",
	FormulaUnknownType:             "unknown_type",
	FormulaMultiplierHoursPerWeek:  "multiplier_hours_per_week",
	FormulaMultiplierDaysPerYear:   "multiplier_days_per_year",
	FormulaMultiplierTimesPerMonth: "multiplier_times_per_month",
	FormulaHourlyDaysPerWeek:       "hourly_days_per_week",
	FormulaHourlyDaysPerMonth:      "hourly_days_per_month",
	FormulaHourlyBinary:            "hourly_binary",
	FormulaPercentageDaysPerMonth:  "percentage_days_per_month",
	FormulaPercentageBinary:        "percentage_binary",
	FormulaFixed:                   "fixed",
}

func (f Formula) String() string { return formulaNames[f] }

// Covered reports whether the formula produces a computed amount.
func (f Formula) Covered() bool {
	return f != FormulaUncovered && f != FormulaUnknownType
}

// SelectFormula picks the decision-table row for cfg.
func SelectFormula(cfg *TypeConfig) Formula {
	if cfg == nil {
		return FormulaUnknownType
	}
	freq := cfg.FrequencyUnit()

	switch cfg.ValueUnit() {
	case ValueMultiplier:
		switch freq {
		case FreqHoursPerWeek:
			return FormulaMultiplierHoursPerWeek
		case FreqDaysPerYear:
			return FormulaMultiplierDaysPerYear
		case FreqTimesPerMonth:
			return FormulaMultiplierTimesPerMonth
		}
	case ValueDollarsPerHour:
		switch freq {
		case FreqDaysPerWeek:
			return FormulaHourlyDaysPerWeek
		case FreqDaysPerMonth:
			return FormulaHourlyDaysPerMonth
		case FreqBinary:
			return FormulaHourlyBinary
		}
	case ValuePercentage:
		switch freq {
		case FreqDaysPerMonth:
			return FormulaPercentageDaysPerMonth
		case FreqBinary:
			return FormulaPercentageBinary
		}
	case ValueFixed:
		return FormulaFixed
	case ValuePerLevel, ValueDollarsPerMonth, ValueOther:
	}
	return FormulaUncovered
}

// ComputeMonthlyContribution returns the monthly dollars item adds on top of
// basePay (hourly). cfg may be nil for an unknown type.
func ComputeMonthlyContribution(item Item, cfg *TypeConfig, basePay float64) float64 {
	if cfg == nil {
		return 0
	}
	if item.Frequency == 0 {
		return 0
	}

	f, v := item.Frequency, item.Value
	switch SelectFormula(cfg) {
	case FormulaMultiplierHoursPerWeek:
		return f * WeeksPerMonth * basePay * (v - 1)
	case FormulaMultiplierDaysPerYear:
		return (f * StandardShiftHours / 12) * basePay * (v - 1)
	case FormulaMultiplierTimesPerMonth:
		return f * callBackHoursPerOccurrence * basePay * v
	case FormulaHourlyDaysPerWeek:
		return f * StandardShiftHours * WeeksPerMonth * v
	case FormulaHourlyDaysPerMonth:
		return f * StandardShiftHours * v
	case FormulaHourlyBinary:
		return HoursPerMonth * v
	case FormulaPercentageDaysPerMonth:
		return f * percentageHoursPerDay * basePay * v
	case FormulaPercentageBinary:
		return percentageHoursBinary * basePay * v
	case FormulaFixed:
		return f * v
	case FormulaUncovered, FormulaUnknownType:
	}
	return 0
}
