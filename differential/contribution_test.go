package differential_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiftwise/pay-engine/differential"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func config(typ, valueUnit, frequencyUnit string) *differential.TypeConfig {
	return &differential.TypeConfig{
		Type:           typ,
		Category:       differential.CategoryCommon,
		ValueRange:     differential.Range{Min: 0, Max: 100, Unit: valueUnit},
		FrequencyRange: differential.Range{Min: 0, Max: 100, Unit: frequencyUnit},
	}
}

func item(typ string, value, frequency float64) differential.Item {
	return differential.Item{Type: typ, Value: value, Frequency: frequency}
}

// =============================================================================
// DECISION TABLE
// =============================================================================

func TestComputeMonthlyContribution_DecisionTable(t *testing.T) {
	tests := []struct {
		name      string
		valueUnit string
		freqUnit  string
		value     float64
		frequency float64
		basePay   float64
		want      float64
		formula   differential.Formula
	}{
		{"multiplier hours/week", "multiplier", "hours/week", 1.5, 8, 40, 8 * 4.33 * 40 * 0.5, differential.FormulaMultiplierHoursPerWeek},
		{"multiplier days/year", "multiplier", "days/year", 1.5, 6, 40, 120, differential.FormulaMultiplierDaysPerYear},
		{"multiplier times/month uses full value", "multiplier", "times/month", 1.5, 2, 40, 480, differential.FormulaMultiplierTimesPerMonth},
		{"$/hour days/week", "$/hour", "days/week", 3, 2, 40, 2 * 12 * 4.33 * 3, differential.FormulaHourlyDaysPerWeek},
		{"$/hour days/month", "$/hour", "days/month", 2.5, 4, 40, 120, differential.FormulaHourlyDaysPerMonth},
		{"$/hour yes", "$/hour", "yes", 4, 1, 40, 693.32, differential.FormulaHourlyBinary},
		{"$/hour binary ignores frequency magnitude", "$/hour", "binary", 4, 3, 40, 693.32, differential.FormulaHourlyBinary},
		{"percentage days/month", "percentage", "days/month", 0.1, 3, 30, 216, differential.FormulaPercentageDaysPerMonth},
		{"percentage yes", "percentage", "yes", 0.05, 1, 30, 144, differential.FormulaPercentageBinary},
		{"$ fixed", "$ fixed", "times/month", 150, 3, 40, 450, differential.FormulaFixed},
		{"$ fixed substring", "$ fixed per shift", "anything", 100, 2, 40, 200, differential.FormulaFixed},
		{"per level is uncovered", "$/hour per level", "level", 1.5, 2, 40, 0, differential.FormulaUncovered},
		{"$/month is uncovered", "$/month", "yes", 200, 1, 40, 0, differential.FormulaUncovered},
		{"multiplier days/month is uncovered", "multiplier", "days/month", 1.5, 4, 40, 0, differential.FormulaUncovered},
		{"$/hour percentage is uncovered", "$/hour", "percentage", 5, 50, 40, 0, differential.FormulaUncovered},
		{"unrecognized value unit", "points", "days/month", 5, 2, 40, 0, differential.FormulaUncovered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config("X", tt.valueUnit, tt.freqUnit)

			got := differential.ComputeMonthlyContribution(item("X", tt.value, tt.frequency), cfg, tt.basePay)

			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.formula, differential.SelectFormula(cfg))
		})
	}
}

func TestComputeMonthlyContribution_NightShiftScenario(t *testing.T) {
	// GIVEN: Night differential of $4/hour, binary frequency, worked
	cfg := config("Night", "$/hour", "yes")

	// WHEN: Computing its monthly contribution
	got := differential.ComputeMonthlyContribution(item("Night", 4, 1), cfg, 45)

	// THEN: 173.33 hours x $4
	assert.InDelta(t, 693.32, got, 1e-9)
}

func TestComputeMonthlyContribution_OnCallScenario(t *testing.T) {
	// GIVEN: On-call at 10% of a $30 base rate, 3 days a month
	cfg := config("On_Call", "percentage", "days/month")

	got := differential.ComputeMonthlyContribution(item("On_Call", 0.1, 3), cfg, 30)

	// THEN: 3 x 24 x 30 x 0.1
	assert.InDelta(t, 216.0, got, 1e-9)
}

// =============================================================================
// ZERO RULES
// =============================================================================

func TestComputeMonthlyContribution_ZeroFrequency(t *testing.T) {
	// Property: frequency 0 contributes 0 whatever the value or units,
	// including binary frequency units.
	units := [][2]string{
		{"multiplier", "hours/week"},
		{"multiplier", "times/month"},
		{"$/hour", "days/week"},
		{"$/hour", "yes"},
		{"percentage", "yes"},
		{"percentage", "days/month"},
		{"$ fixed", "times/month"},
	}
	for _, u := range units {
		for _, value := range []float64{0, 0.1, 1.5, 4, 2500} {
			cfg := config("X", u[0], u[1])
			got := differential.ComputeMonthlyContribution(item("X", value, 0), cfg, 55)
			assert.Zero(t, got, "%s/%s value=%v", u[0], u[1], value)
		}
	}
}

func TestComputeMonthlyContribution_UnknownType(t *testing.T) {
	// Property: a nil config contributes 0 and never panics
	for _, it := range []differential.Item{
		item("Nope", 4, 1),
		item("", 0, 0),
		item("Night", 1e9, 1e9),
	} {
		assert.NotPanics(t, func() {
			assert.Zero(t, differential.ComputeMonthlyContribution(it, nil, 40))
		})
	}
	assert.Equal(t, differential.FormulaUnknownType, differential.SelectFormula(nil))
}

func TestComputeMonthlyContribution_UnknownTypeViaCatalog(t *testing.T) {
	catalog := differential.NewCatalog([]differential.TypeConfig{*config("Night", "$/hour", "yes")})

	got := differential.ComputeMonthlyContribution(item("Weekend", 4, 1), catalog.Lookup("Weekend"), 40)

	assert.Zero(t, got)
}

func TestComputeMonthlyContribution_NaNPropagates(t *testing.T) {
	// Malformed numbers are not guarded; callers validate first.
	cfg := config("X", "$ fixed", "times/month")
	got := differential.ComputeMonthlyContribution(item("X", math.NaN(), 2), cfg, 40)

	assert.True(t, math.IsNaN(got))
}

func TestComputeMonthlyContribution_Deterministic(t *testing.T) {
	cfg := config("Overtime", "multiplier", "hours/week")
	it := item("Overtime", 1.37, 7.3)

	first := differential.ComputeMonthlyContribution(it, cfg, 51.17)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, differential.ComputeMonthlyContribution(it, cfg, 51.17))
	}
}

func TestFormula_Covered(t *testing.T) {
	assert.False(t, differential.FormulaUncovered.Covered())
	assert.False(t, differential.FormulaUnknownType.Covered())
	assert.True(t, differential.FormulaFixed.Covered())
	assert.Equal(t, "hourly_binary", differential.FormulaHourlyBinary.String())
}
