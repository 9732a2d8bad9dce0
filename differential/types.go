/*
Package differential normalizes nurse pay differentials into monthly dollars.

PURPOSE:
  A pay differential is an adjustment applied on top of base pay for a
  specific work condition: night shifts, weekends, on-call days, charge
  duty, certifications, sign-on bonuses. Each differential type declares
  the unit of its value (multiplier, $/hour, percentage...) and the unit
  of its frequency (hours/week, days/month, yes/no, ordinal level...).
  This package turns (type, value, frequency) into a monthly dollar figure
  and into a display descriptor for the UI.

KEY CONCEPTS IN THIS FILE (types.go):
  - ValueUnit / FrequencyUnit: closed enums parsed from catalog unit strings
  - Category: essential / common / rare / bonus classification
  - Range: legal bounds plus the raw unit string
  - TypeConfig: one catalog entry per differential type
  - Item: one reported differential (value object, never mutated)

PURITY:
  Nothing in this package performs I/O or holds mutable shared state.
  Unknown types, zero frequencies and uncovered unit combinations all
  degrade to a zero contribution; no function returns an error.

SEE ALSO:
  - catalog.go: Read-only lookup by type and category
  - contribution.go: Monthly contribution decision table
  - format.go: Display descriptors and frequency options
*/
package differential

import "strings"

// =============================================================================
// VALUE UNITS
// =============================================================================

// ValueUnit is the semantic unit of a differential's magnitude.
type ValueUnit int

const (
	ValueOther ValueUnit = iota
	ValueMultiplier
	ValueDollarsPerHour
	ValuePercentage
	ValueFixed
	ValuePerLevel
	ValueDollarsPerMonth
)

var valueUnitNames = map[ValueUnit]string{
	ValueOther:           "other",
	ValueMultiplier:      "multiplier",
	ValueDollarsPerHour:  "$/hour",
	ValuePercentage:      "percentage",
	ValueFixed:           "$ fixed",
	ValuePerLevel:        "per level",
	ValueDollarsPerMonth: "$/month",
}

func (u ValueUnit) String() string { return valueUnitNames[u] }

// ParseValueUnit maps a catalog unit string to its ValueUnit.
// Exact names are matched first, then the "$ fixed" and "per level"
// substrings, so "$/hour per level" is a per-level unit.
func ParseValueUnit(s string) ValueUnit {
	switch s {
	case "multiplier":
		return ValueMultiplier
	case "$/hour":
		return ValueDollarsPerHour
	case "percentage":
		return ValuePercentage
	case "$/month":
		return ValueDollarsPerMonth
	}
	switch {
	case strings.Contains(s, "$ fixed"):
		return ValueFixed
	case strings.Contains(s, "per level"):
		return ValuePerLevel
	}
	return ValueOther
}

// =============================================================================
// FREQUENCY UNITS
// =============================================================================

// FrequencyUnit is the semantic unit describing how often a differential applies.
type FrequencyUnit int

const (
	FreqNumeric FrequencyUnit = iota
	FreqBinary
	FreqDegree
	FreqTenure
	FreqLevel
	FreqPercentage
	FreqHoursPerWeek
	FreqDaysPerYear
	FreqTimesPerMonth
	FreqDaysPerWeek
	FreqDaysPerMonth
)

var frequencyUnitNames = map[FrequencyUnit]string{
	FreqNumeric:       "numeric",
	FreqBinary:        "yes",
	FreqDegree:        "degree",
	FreqTenure:        "tenure",
	FreqLevel:         "level",
	FreqPercentage:    "percentage",
	FreqHoursPerWeek:  "hours/week",
	FreqDaysPerYear:   "days/year",
	FreqTimesPerMonth: "times/month",
	FreqDaysPerWeek:   "days/week",
	FreqDaysPerMonth:  "days/month",
}

func (u FrequencyUnit) String() string { return frequencyUnitNames[u] }

// frequencyMatchers is ordered: more specific substrings come first so that
// "degree_level" is a degree and not a clinical ladder level.
var frequencyMatchers = []struct {
	substrings []string
	unit       FrequencyUnit
}{
	{[]string{"yes", "binary"}, FreqBinary},
	{[]string{"degree"}, FreqDegree},
	{[]string{"tenure"}, FreqTenure},
	{[]string{"level"}, FreqLevel},
	{[]string{"percentage"}, FreqPercentage},
	{[]string{"hours/week"}, FreqHoursPerWeek},
	{[]string{"days/year"}, FreqDaysPerYear},
	{[]string{"times/month"}, FreqTimesPerMonth},
	{[]string{"days/week"}, FreqDaysPerWeek},
	{[]string{"days/month"}, FreqDaysPerMonth},
}

// ParseFrequencyUnit maps a catalog frequency unit string to its FrequencyUnit.
// Anything unrecognized is a free numeric input.
func ParseFrequencyUnit(s string) FrequencyUnit {
	for _, m := range frequencyMatchers {
		for _, sub := range m.substrings {
			if strings.Contains(s, sub) {
				return m.unit
			}
		}
	}
	return FreqNumeric
}

// IsBinaryUnit reports whether a unit string denotes a yes/no toggle.
func IsBinaryUnit(s string) bool {
	return ParseFrequencyUnit(s) == FreqBinary
}

// =============================================================================
// CATEGORY
// =============================================================================

// Category classifies a differential type. It has no computational effect.
type Category string

const (
	CategoryEssential Category = "essential"
	CategoryCommon    Category = "common"
	CategoryRare      Category = "rare"
	CategoryBonus     Category = "bonus"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryEssential, CategoryCommon, CategoryRare, CategoryBonus}

// ParseCategory returns the category for s and whether it is recognized.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// =============================================================================
// RANGE / TYPE CONFIG / ITEM
// =============================================================================

// Range holds the legal bounds of a value or frequency and its raw unit.
type Range struct {
	Min  float64
	Max  float64
	Unit string
}

// Contains reports whether v lies in [Min, Max] inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// TypeConfig is the catalog metadata for one differential type.
type TypeConfig struct {
	Type           string
	DisplayName    string
	Category       Category
	ValueRange     Range
	FrequencyRange Range
	Description    string
}

// ValueUnit returns the parsed value unit of the config.
func (c TypeConfig) ValueUnit() ValueUnit { return ParseValueUnit(c.ValueRange.Unit) }

// FrequencyUnit returns the parsed frequency unit of the config.
func (c TypeConfig) FrequencyUnit() FrequencyUnit { return ParseFrequencyUnit(c.FrequencyRange.Unit) }

// Item is one reported differential. Treat it as a value: recomputing
// with different numbers means building a new Item.
type Item struct {
	Type      string
	Value     float64
	Frequency float64
}
