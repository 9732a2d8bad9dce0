/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's Go types from the external contract consumed by the
  onboarding UI.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Catalog:
    TypeConfigDTO (wraps factory.TypeConfigJSON), TypesByCategoryDTO

  Estimates:
    EstimateRequest, DifferentialDTO, CalculationDTO

  Formatting:
    FormatRequest, FormattedDifferentialDTO

  Aggregation:
    MonthlyRequest (returns compensation.MonthlyCalculations)

  Scenarios:
    ScenarioDTO, LoadScenarioRequest, LoadScenarioResponse

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/catalog.go: TypeConfigJSON type
*/
package api

import (
	"github.com/shiftwise/pay-engine/compensation"
	"github.com/shiftwise/pay-engine/differential"
	"github.com/shiftwise/pay-engine/factory"
)

// =============================================================================
// CATALOG
// =============================================================================

// TypeConfigDTO represents a catalog entry in API responses.
type TypeConfigDTO struct {
	factory.TypeConfigJSON
	Formula string `json:"formula"`
}

// TypesByCategoryDTO lists type IDs grouped by category, in catalog order.
type TypesByCategoryDTO struct {
	All       []string `json:"all"`
	Essential []string `json:"essential"`
	Common    []string `json:"common"`
	Rare      []string `json:"rare"`
	Bonus     []string `json:"bonus"`
}

// =============================================================================
// ESTIMATES
// =============================================================================

// DifferentialDTO is one reported differential.
type DifferentialDTO struct {
	Type      string  `json:"type"`
	Value     float64 `json:"value"`
	Frequency float64 `json:"frequency"`
}

func (d DifferentialDTO) item() differential.Item {
	return differential.Item{Type: d.Type, Value: d.Value, Frequency: d.Frequency}
}

// EstimateRequest is the body of preview and calculate.
type EstimateRequest struct {
	AnnualSalary  float64           `json:"annual_salary"`
	ShiftHours    float64           `json:"shift_hours,omitempty"`
	Differentials []DifferentialDTO `json:"differentials"`
}

// CalculationDTO is a persisted calculation.
type CalculationDTO struct {
	ID           string              `json:"id"`
	AnnualSalary float64             `json:"annual_salary"`
	ShiftHours   float64             `json:"shift_hours"`
	Result       compensation.Result `json:"result"`
	CreatedAt    string              `json:"created_at"`
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatRequest asks for display descriptors of several differentials.
type FormatRequest struct {
	Differentials []DifferentialDTO `json:"differentials"`
}

// FormattedDifferentialDTO is the display descriptor of one differential.
type FormattedDifferentialDTO struct {
	Type             string               `json:"type"`
	DisplayName      string               `json:"display_name"`
	Value            differential.Display `json:"value"`
	FrequencyDisplay string               `json:"frequency_display"`
	Known            bool                 `json:"known"`
}

// =============================================================================
// AGGREGATION
// =============================================================================

// MonthlyRequest is the body of POST /api/compensation/monthly.
type MonthlyRequest struct {
	AnnualSalary  float64                           `json:"annual_salary"`
	ShiftHours    float64                           `json:"shift_hours,omitempty"`
	Differentials []compensation.DifferentialAmount `json:"differentials"`
}

// =============================================================================
// SCENARIOS
// =============================================================================

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Profiles    int    `json:"profiles"`
}

// LoadScenarioRequest is the body of POST /api/scenarios/load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// LoadScenarioResponse reports the calculations a scenario saved.
type LoadScenarioResponse struct {
	Status         string   `json:"status"`
	Scenario       string   `json:"scenario"`
	CalculationIDs []string `json:"calculation_ids"`
}

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
