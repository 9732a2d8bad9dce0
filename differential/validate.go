package differential

import "fmt"

// ValidateValue reports whether value lies inside the type's value range.
func ValidateValue(value float64, r Range) bool {
	return r.Contains(value)
}

// ValidateFrequency reports whether frequency lies inside the type's frequency range.
func ValidateFrequency(frequency float64, r Range) bool {
	return r.Contains(frequency)
}

// IssueCode classifies an advisory problem with a reported differential.
type IssueCode string

const (
	IssueUnknownType       IssueCode = "unknown_type"
	IssueValueOutOfRange   IssueCode = "value_out_of_range"
	IssueFrequencyOutRange IssueCode = "frequency_out_of_range"
	IssueUncoveredUnits    IssueCode = "uncovered_units"
)

// Issue is an advisory finding. The engine still computes with the raw
// numbers; callers decide whether to block submission.
type Issue struct {
	Type    string    `json:"type"`
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
}

// ValidateItem lists the advisory issues for item against cfg (nil when unknown).
func ValidateItem(item Item, cfg *TypeConfig) []Issue {
	if cfg == nil {
		return []Issue{{
			Type:    item.Type,
			Code:    IssueUnknownType,
			Message: fmt.Sprintf("unknown differential type %q", item.Type),
		}}
	}

	var issues []Issue
	if !ValidateValue(item.Value, cfg.ValueRange) {
		issues = append(issues, Issue{
			Type: item.Type,
			Code: IssueValueOutOfRange,
			Message: fmt.Sprintf("value %s outside [%s, %s] %s",
				num(item.Value), num(cfg.ValueRange.Min), num(cfg.ValueRange.Max), cfg.ValueRange.Unit),
		})
	}
	if !ValidateFrequency(item.Frequency, cfg.FrequencyRange) {
		issues = append(issues, Issue{
			Type: item.Type,
			Code: IssueFrequencyOutRange,
			Message: fmt.Sprintf("frequency %s outside [%s, %s] %s",
				num(item.Frequency), num(cfg.FrequencyRange.Min), num(cfg.FrequencyRange.Max), cfg.FrequencyRange.Unit),
		})
	}
	if item.Frequency != 0 && !SelectFormula(cfg).Covered() {
		issues = append(issues, Issue{
			Type: item.Type,
			Code: IssueUncoveredUnits,
			Message: fmt.Sprintf("no formula for value unit %q with frequency unit %q",
				cfg.ValueRange.Unit, cfg.FrequencyRange.Unit),
		})
	}
	return issues
}
