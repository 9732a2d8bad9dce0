package compensation

import "github.com/shopspring/decimal"

// RoundCents rounds a dollar amount to cents for storage and display.
func RoundCents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Rounded returns a copy of r with every dollar figure rounded to cents.
// Totals are rounded independently; they are not re-summed. r must be
// Finite: decimal cannot represent NaN or infinities.
func (r Result) Rounded() Result {
	out := Result{
		Items:         make(map[string]ItemResult, len(r.Items)),
		Differentials: make([]MonthlyDifferential, len(r.Differentials)),
		Metadata:      r.Metadata,
		Issues:        r.Issues,
	}
	for typ, item := range r.Items {
		item.Monthly = RoundCents(item.Monthly).InexactFloat64()
		item.Annual = RoundCents(item.Annual).InexactFloat64()
		out.Items[typ] = item
	}
	for i, d := range r.Differentials {
		d.MonthlyAmount = RoundCents(d.MonthlyAmount).InexactFloat64()
		out.Differentials[i] = d
	}
	out.Metadata.BaseMonthly = RoundCents(r.Metadata.BaseMonthly).InexactFloat64()
	out.Metadata.TotalMonthly = RoundCents(r.Metadata.TotalMonthly).InexactFloat64()
	out.Metadata.AnnualTotal = RoundCents(r.Metadata.AnnualTotal).InexactFloat64()
	out.Metadata.EffectiveHourly = RoundCents(r.Metadata.EffectiveHourly).InexactFloat64()
	return out
}
