/*
format.go - Display descriptors for differential values and frequencies

PURPOSE:
  Presentation-only rendering of a differential for UI widgets. Every
  function here is total: unexpected input falls through to a generic
  descriptor instead of failing.

VALUE DESCRIPTORS (FormatValue / Describe):
  frequency 0 on a non-binary unit  -> "Not Applied" (ColorMuted)
  multiplier                        -> "1.5× rate" / "Time and a half" ...
  $/hour                            -> "+$4/hr"
  percentage                        -> "+10% of base"
  $ fixed                           -> "+$500" per occurrence
  per level                         -> "+$1/hr" per level
  $/month                           -> "+$200/mo"
  anything else                     -> raw value, raw unit as description

FREQUENCY INPUTS (FormatFrequencyDisplay / FrequencyOptions):
  binary      -> Yes / No toggle
  degree      -> ADN, BSN, MSN, DNP
  tenure      -> <5, 5-10, 10-15, 15+ years
  level       -> Level I .. Level IV
  percentage  -> 0/25/50/75 steps, only when the range max is 75
  otherwise   -> free numeric input
*/
package differential

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Color is the semantic color token of a descriptor. Each formatting
// branch has its own token.
type Color string

const (
	ColorMuted       Color = "text-gray-400"
	ColorNeutral     Color = "text-gray-600"
	ColorFavorable   Color = "text-emerald-600"
	ColorPremium     Color = "text-emerald-700"
	ColorHourly      Color = "text-blue-600"
	ColorPercentage  Color = "text-purple-600"
	ColorFixed       Color = "text-amber-600"
	ColorLevel       Color = "text-indigo-600"
	ColorMonthly     Color = "text-teal-600"
	ColorUnformatted Color = "text-gray-700"
)

// Display is a UI descriptor for one differential value.
type Display struct {
	Display     string `json:"display"`
	Description string `json:"description"`
	Tooltip     string `json:"tooltip"`
	Color       Color  `json:"color"`
}

// NotApplied is returned for differentials that do not occur.
var NotApplied = Display{
	Display:     "Not Applied",
	Description: "Does not apply to this position",
	Tooltip:     "This differential is not part of the reported schedule",
	Color:       ColorMuted,
}

var printer = message.NewPrinter(language.AmericanEnglish)

type multiplierPhrase struct {
	description string
	color       Color
}

var multiplierPhrases = map[float64]multiplierPhrase{
	1:   {"Standard rate", ColorNeutral},
	1.5: {"Time and a half", ColorFavorable},
	2:   {"Double time", ColorFavorable},
	2.5: {"Double time and a half", ColorPremium},
	3:   {"Triple time", ColorPremium},
}

// num renders a float the way a JavaScript number prints: no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// FormatValue renders value in unit. frequency 0 yields NotApplied unless
// unit is a yes/no unit.
func FormatValue(value float64, unit string, frequency float64) Display {
	return formatValue(value, unit, frequency, IsBinaryUnit(unit))
}

// Describe renders item using its catalog config. The yes/no exemption is
// taken from the config's frequency unit. A nil config renders the raw value.
func Describe(item Item, cfg *TypeConfig) Display {
	if cfg == nil {
		return formatValue(item.Value, "", item.Frequency, false)
	}
	return formatValue(item.Value, cfg.ValueRange.Unit, item.Frequency, cfg.FrequencyUnit() == FreqBinary)
}

func formatValue(value float64, unit string, frequency float64, binary bool) Display {
	if frequency == 0 && !binary {
		return NotApplied
	}

	switch ParseValueUnit(unit) {
	case ValueMultiplier:
		return formatMultiplier(value)
	case ValueDollarsPerHour:
		return Display{
			Display:     "+$" + num(value) + "/hr",
			Description: "per hour worked",
			Tooltip:     fmt.Sprintf("Adds %s to every eligible hour", money(value)),
			Color:       ColorHourly,
		}
	case ValuePercentage:
		pct := int(math.Round(value * 100))
		return Display{
			Display:     fmt.Sprintf("+%d%% of base", pct),
			Description: "of base rate",
			Tooltip:     fmt.Sprintf("Pays %d%% of the base hourly rate for eligible hours", pct),
			Color:       ColorPercentage,
		}
	case ValueFixed:
		return Display{
			Display:     "+$" + num(value),
			Description: "per occurrence",
			Tooltip:     fmt.Sprintf("Flat %s paid each time it occurs", money(value)),
			Color:       ColorFixed,
		}
	case ValuePerLevel:
		return Display{
			Display:     "+$" + num(value) + "/hr",
			Description: "per level",
			Tooltip:     fmt.Sprintf("Adds %s per hour for each level attained", money(value)),
			Color:       ColorLevel,
		}
	case ValueDollarsPerMonth:
		return Display{
			Display:     "+$" + num(value) + "/mo",
			Description: "per month",
			Tooltip:     fmt.Sprintf("Adds %s to each monthly paycheck", money(value)),
			Color:       ColorMonthly,
		}
	case ValueOther:
	}
	return Display{
		Display:     num(value),
		Description: unit,
		Tooltip:     num(value) + " " + unit,
		Color:       ColorUnformatted,
	}
}

func formatMultiplier(value float64) Display {
	display := num(value) + "× rate"
	if phrase, ok := multiplierPhrases[value]; ok {
		return Display{
			Display:     display,
			Description: phrase.description,
			Tooltip:     fmt.Sprintf("Paid at %s× the base hourly rate", num(value)),
			Color:       phrase.color,
		}
	}

	percentBonus := int(math.Round((value - 1) * 100))
	color := ColorFavorable
	if percentBonus <= 0 {
		color = ColorNeutral
	}
	return Display{
		Display:     display,
		Description: fmt.Sprintf("%+d%% over base", percentBonus),
		Tooltip:     fmt.Sprintf("Paid at %s× the base hourly rate (%d%% bonus)", num(value), percentBonus),
		Color:       color,
	}
}

// =============================================================================
// FREQUENCY DISPLAY & OPTIONS
// =============================================================================

// Ordered labels for the ordinal frequency units. The option value is the index.
var (
	DegreeLevels   = []string{"ADN", "BSN", "MSN", "DNP"}
	TenureLevels   = []string{"<5 years", "5-10 years", "10-15 years", "15+ years"}
	ClinicalLevels = []string{"Level I", "Level II", "Level III", "Level IV"}
	PercentSteps   = []float64{0, 25, 50, 75}
)

// percentStepMax is the range max that switches a percentage unit to steps.
const percentStepMax = 75

// InputKind tells the UI which control to render for a frequency.
type InputKind string

const (
	InputToggle  InputKind = "toggle"
	InputLevels  InputKind = "levels"
	InputPercent InputKind = "percent"
	InputNumeric InputKind = "numeric"
)

// Option is one selectable frequency value.
type Option struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// FrequencyInput describes the control for a frequency range.
type FrequencyInput struct {
	Kind    InputKind `json:"kind"`
	Options []Option  `json:"options,omitempty"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Unit    string    `json:"unit"`
}

func levelLabels(u FrequencyUnit) []string {
	switch u {
	case FreqDegree:
		return DegreeLevels
	case FreqTenure:
		return TenureLevels
	case FreqLevel:
		return ClinicalLevels
	}
	return nil
}

// FormatFrequencyDisplay renders a frequency for unit, e.g. "Yes", "MSN",
// "50%" or "3 days/month".
func FormatFrequencyDisplay(frequency float64, unit string) string {
	u := ParseFrequencyUnit(unit)
	switch u {
	case FreqBinary:
		if frequency > 0 {
			return "Yes"
		}
		return "No"
	case FreqDegree, FreqTenure, FreqLevel:
		labels := levelLabels(u)
		idx := int(frequency)
		if float64(idx) == frequency && idx >= 0 && idx < len(labels) {
			return labels[idx]
		}
		return num(frequency)
	case FreqPercentage:
		return num(frequency) + "%"
	}
	if unit == "" {
		return num(frequency)
	}
	return num(frequency) + " " + unit
}

// FrequencyOptions enumerates the inputs allowed by r, in display order.
func FrequencyOptions(r Range) FrequencyInput {
	in := FrequencyInput{Kind: InputNumeric, Min: r.Min, Max: r.Max, Unit: r.Unit}

	u := ParseFrequencyUnit(r.Unit)
	switch u {
	case FreqBinary:
		in.Kind = InputToggle
		in.Options = []Option{{Value: 0, Label: "No"}, {Value: 1, Label: "Yes"}}
	case FreqDegree, FreqTenure, FreqLevel:
		in.Kind = InputLevels
		for i, label := range levelLabels(u) {
			in.Options = append(in.Options, Option{Value: float64(i), Label: label})
		}
	case FreqPercentage:
		if r.Max == percentStepMax {
			in.Kind = InputPercent
			for _, step := range PercentSteps {
				in.Options = append(in.Options, Option{Value: step, Label: num(step) + "%"})
			}
		}
	}
	return in
}
