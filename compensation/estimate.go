package compensation

import (
	"math"
	"time"

	"github.com/shiftwise/pay-engine/differential"
	"github.com/shiftwise/pay-engine/paycalc"
)

// =============================================================================
// RESULT - Shape of a compensation calculation
// =============================================================================

// Confidence grades how much a calculation can be trusted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// ItemResult is the computed contribution of one differential type.
type ItemResult struct {
	Value       float64 `json:"value"`
	Frequency   float64 `json:"frequency"`
	Monthly     float64 `json:"monthly"`
	Annual      float64 `json:"annual"`
	Description string  `json:"description"`
	Formula     string  `json:"formula"`
}

// Metadata carries the totals of a calculation.
type Metadata struct {
	BaseMonthly     float64    `json:"base_monthly"`
	TotalMonthly    float64    `json:"total_monthly"`
	AnnualTotal     float64    `json:"annual_total"`
	EffectiveHourly float64    `json:"effective_hourly"`
	Confidence      Confidence `json:"confidence,omitempty"`
	CalculationDate time.Time  `json:"calculation_date"`
}

// Result is a full compensation calculation.
//
// Items is keyed by type, so a type reported twice shows only its later
// entry there. Differentials keeps every entry in input order and is what
// the totals are summed from.
type Result struct {
	Items         map[string]ItemResult `json:"items"`
	Differentials []MonthlyDifferential `json:"differentials"`
	Metadata      Metadata              `json:"metadata"`
	Issues        []differential.Issue  `json:"issues,omitempty"`
}

// Amounts converts every entry of the result into aggregation input, in
// input order, carrying its computed monthly amount.
func (r Result) Amounts() []DifferentialAmount {
	out := make([]DifferentialAmount, 0, len(r.Differentials))
	for _, d := range r.Differentials {
		monthly := d.MonthlyAmount
		out = append(out, DifferentialAmount{
			Type:          d.Type,
			Value:         d.Value,
			Frequency:     d.Frequency,
			MonthlyAmount: &monthly,
		})
	}
	return out
}

// Finite reports whether every dollar figure of r is a finite number.
// Values far outside their range can overflow float64.
func (r Result) Finite() bool {
	m := r.Metadata
	for _, v := range []float64{m.BaseMonthly, m.TotalMonthly, m.AnnualTotal, m.EffectiveHourly} {
		if !finite(v) {
			return false
		}
	}
	for _, item := range r.Items {
		if !finite(item.Monthly) || !finite(item.Annual) {
			return false
		}
	}
	for _, d := range r.Differentials {
		if !finite(d.MonthlyAmount) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// =============================================================================
// ESTIMATOR
// =============================================================================

// EstimateInput is what a nurse reports.
type EstimateInput struct {
	AnnualSalary  float64
	ShiftHours    float64
	Differentials []differential.Item
}

// Estimator computes Results against a catalog.
type Estimator struct {
	Catalog *differential.Catalog
	Now     func() time.Time
}

// NewEstimator creates an estimator using the wall clock.
func NewEstimator(catalog *differential.Catalog) *Estimator {
	return &Estimator{Catalog: catalog, Now: time.Now}
}

// Estimate computes monthly and annual figures for in. Confidence is left
// empty; Score assigns it.
//
// Two entries with the same type both count toward the totals and both
// appear in Differentials; the items map keeps the later one.
func (e *Estimator) Estimate(in EstimateInput) Result {
	hourly := paycalc.AnnualToHourly(in.AnnualSalary, in.ShiftHours)
	baseMonthly := paycalc.AnnualToMonthly(in.AnnualSalary, in.ShiftHours)

	res := Result{
		Items:         make(map[string]ItemResult, len(in.Differentials)),
		Differentials: make([]MonthlyDifferential, 0, len(in.Differentials)),
	}

	var totalDifferentials float64
	for _, item := range in.Differentials {
		cfg := e.Catalog.Lookup(item.Type)
		monthly := differential.ComputeMonthlyContribution(item, cfg, hourly)
		totalDifferentials += monthly
		res.Differentials = append(res.Differentials, MonthlyDifferential{
			Type:          item.Type,
			Value:         item.Value,
			Frequency:     item.Frequency,
			MonthlyAmount: monthly,
		})

		res.Issues = append(res.Issues, differential.ValidateItem(item, cfg)...)
		res.Items[item.Type] = ItemResult{
			Value:       item.Value,
			Frequency:   item.Frequency,
			Monthly:     monthly,
			Annual:      monthly * paycalc.MonthsPerYear,
			Description: e.describe(item, cfg),
			Formula:     differential.SelectFormula(cfg).String(),
		}
	}

	total := baseMonthly + totalDifferentials
	res.Metadata = Metadata{
		BaseMonthly:     baseMonthly,
		TotalMonthly:    total,
		AnnualTotal:     total * paycalc.MonthsPerYear,
		EffectiveHourly: paycalc.MonthlyToHourly(total, in.ShiftHours),
		CalculationDate: e.now(),
	}
	return res
}

func (e *Estimator) describe(item differential.Item, cfg *differential.TypeConfig) string {
	d := differential.Describe(item, cfg)
	return e.Catalog.DisplayName(item.Type) + ": " + d.Display
}

func (e *Estimator) now() time.Time {
	if e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now().UTC()
}

// =============================================================================
// CONFIDENCE
// =============================================================================

// Score grades a calculation from its advisory issues:
//
//	LOW    any unknown type or uncovered unit combination
//	MEDIUM any value or frequency outside its range
//	HIGH   otherwise
func Score(issues []differential.Issue) Confidence {
	confidence := ConfidenceHigh
	for _, issue := range issues {
		switch issue.Code {
		case differential.IssueUnknownType, differential.IssueUncoveredUnits:
			return ConfidenceLow
		case differential.IssueValueOutOfRange, differential.IssueFrequencyOutRange:
			confidence = ConfidenceMedium
		}
	}
	return confidence
}
