package compensation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/pay-engine/compensation"
)

func amount(typ string, monthly float64) compensation.DifferentialAmount {
	return compensation.DifferentialAmount{Type: typ, Value: 1, Frequency: 1, MonthlyAmount: &monthly}
}

func TestCalculateMonthlyCompensation_BaseOnly(t *testing.T) {
	// GIVEN: $93,600 on 12-hour shifts (1872 h/year, $50/h)
	calc := compensation.CalculateMonthlyCompensation(93600, nil, 12)

	// THEN: Monthly base 7800, no differentials
	assert.InDelta(t, 7800.0, calc.MonthlyBase, 1e-9)
	assert.Zero(t, calc.TotalMonthlyDifferentials)
	assert.InDelta(t, 7800.0, calc.TotalMonthly, 1e-9)
	assert.InDelta(t, 50.0, calc.EffectiveHourlyRate, 1e-9)
	assert.NotNil(t, calc.Differentials)
	assert.Empty(t, calc.Differentials)
}

func TestCalculateMonthlyCompensation_Aggregates(t *testing.T) {
	diffs := []compensation.DifferentialAmount{
		amount("Night", 693.32),
		amount("Weekend", 120),
		amount("Charge_Nurse", 311.76),
	}

	calc := compensation.CalculateMonthlyCompensation(93600, diffs, 12)

	require.Len(t, calc.Differentials, 3)
	assert.Equal(t, "Night", calc.Differentials[0].Type)
	assert.InDelta(t, 693.32+120+311.76, calc.TotalMonthlyDifferentials, 1e-9)
	assert.Equal(t, calc.MonthlyBase+calc.TotalMonthlyDifferentials, calc.TotalMonthly)
	assert.InDelta(t, calc.TotalMonthly*12/1872, calc.EffectiveHourlyRate, 1e-9)

	assert.InDelta(t, 693.32, calc.NightDifferential, 1e-9)
	assert.InDelta(t, 120.0, calc.WeekendDifferential, 1e-9)
	assert.InDelta(t, 311.76, calc.SpecialtyDifferential, 1e-9)
}

func TestCalculateMonthlyCompensation_BucketsSumToTotal(t *testing.T) {
	// Property: legacy buckets partition the differential total
	diffs := []compensation.DifferentialAmount{
		amount("Night", 100),
		amount("night_weekend", 50),
		amount("WEEKEND", 25),
		amount("Preceptor", 10),
		amount("Holiday", 5),
	}

	calc := compensation.CalculateMonthlyCompensation(60000, diffs, 8)

	assert.InDelta(t, 150.0, calc.NightDifferential, 1e-9, "night wins over weekend")
	assert.InDelta(t, 25.0, calc.WeekendDifferential, 1e-9)
	assert.InDelta(t, 15.0, calc.SpecialtyDifferential, 1e-9)
	assert.InDelta(t, calc.TotalMonthlyDifferentials,
		calc.NightDifferential+calc.WeekendDifferential+calc.SpecialtyDifferential, 1e-9)
}

func TestCalculateMonthlyCompensation_EstimatedHoursFallback(t *testing.T) {
	hours := 40.0
	diffs := []compensation.DifferentialAmount{
		{Type: "Evening", Value: 3, Frequency: 1, EstimatedHours: &hours},
		{Type: "Preceptor", Value: 2, Frequency: 4},
	}

	calc := compensation.CalculateMonthlyCompensation(93600, diffs, 12)

	require.Len(t, calc.Differentials, 2)
	assert.InDelta(t, 120.0, calc.Differentials[0].MonthlyAmount, 1e-9)
	assert.Zero(t, calc.Differentials[1].MonthlyAmount)
	assert.InDelta(t, 120.0, calc.TotalMonthlyDifferentials, 1e-9)
}

func TestDifferentialAmount_MonthlyPrefersPrecomputed(t *testing.T) {
	monthly := 500.0
	hours := 10.0
	d := compensation.DifferentialAmount{Value: 4, MonthlyAmount: &monthly, EstimatedHours: &hours}

	assert.Equal(t, 500.0, d.Monthly())
}

func TestCalculateMonthlyCompensation_ShiftLengthChangesBase(t *testing.T) {
	twelve := compensation.CalculateMonthlyCompensation(93600, nil, 12)
	eight := compensation.CalculateMonthlyCompensation(93600, nil, 8)
	unset := compensation.CalculateMonthlyCompensation(93600, nil, 0)

	// The monthly base is annual/12 whatever the shift; the hourly rate is not.
	assert.InDelta(t, twelve.MonthlyBase, eight.MonthlyBase, 1e-9)
	assert.InDelta(t, 50.0, twelve.EffectiveHourlyRate, 1e-9)
	assert.InDelta(t, 45.0, eight.EffectiveHourlyRate, 1e-9)
	assert.Equal(t, twelve, unset)
}

func TestCalculateMonthlyCompensation_Deterministic(t *testing.T) {
	diffs := []compensation.DifferentialAmount{amount("Night", 0.1), amount("Weekend", 0.2), amount("Other", 0.3)}

	first := compensation.CalculateMonthlyCompensation(71234.56, diffs, 12)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, compensation.CalculateMonthlyCompensation(71234.56, diffs, 12))
	}
}
