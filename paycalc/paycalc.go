/*
Package paycalc converts base pay between annual, hourly and monthly figures.

PURPOSE:
  Nurses on 12-hour shifts are full-time at 36 scheduled hours a week
  (three shifts), so dividing an annual salary by 2080 hours understates
  their hourly rate. Every conversion here goes through the scheduled
  hours implied by the shift length.

SCHEDULED HOURS:
  shift 12h -> 36 h/week (3 x 12)
  shift 10h -> 40 h/week (4 x 10)
  shift  8h -> 40 h/week (5 x 8)
  other     -> 40 h/week
  <= 0      -> treated as a 12h shift

INVERSES:
  MonthlyToHourly(HourlyToMonthly(h, s), s) == h up to float rounding.
*/
package paycalc

const (
	WeeksPerYear  = 52
	MonthsPerYear = 12

	DefaultShiftHours   = 12
	FullTimeWeeklyHours = 40
)

var weeklyHoursByShift = map[float64]float64{
	12: 36,
	10: 40,
	8:  40,
}

// WeeklyHours returns the scheduled hours per week for a shift length.
func WeeklyHours(shiftHours float64) float64 {
	if shiftHours <= 0 {
		shiftHours = DefaultShiftHours
	}
	if h, ok := weeklyHoursByShift[shiftHours]; ok {
		return h
	}
	return FullTimeWeeklyHours
}

// AnnualHours returns the scheduled hours per year for a shift length.
func AnnualHours(shiftHours float64) float64 {
	return WeeklyHours(shiftHours) * WeeksPerYear
}

// AnnualToHourly converts an annual salary to an hourly rate.
func AnnualToHourly(annualSalary, shiftHours float64) float64 {
	return annualSalary / AnnualHours(shiftHours)
}

// HourlyToMonthly converts an hourly rate to a monthly amount.
func HourlyToMonthly(hourlyRate, shiftHours float64) float64 {
	return hourlyRate * AnnualHours(shiftHours) / MonthsPerYear
}

// MonthlyToHourly converts a monthly amount back to an hourly rate.
func MonthlyToHourly(monthlyAmount, shiftHours float64) float64 {
	return monthlyAmount * MonthsPerYear / AnnualHours(shiftHours)
}

// AnnualToMonthly converts an annual salary to a monthly base via the hourly rate.
func AnnualToMonthly(annualSalary, shiftHours float64) float64 {
	return HourlyToMonthly(AnnualToHourly(annualSalary, shiftHours), shiftHours)
}
