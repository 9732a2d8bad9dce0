/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:
  Provides pre-built nurse profiles that populate the database with
  realistic saved calculations for demos and UI development. Each
  scenario restores the default catalog and saves one calculation per
  profile through the same path as POST /calculate.

AVAILABLE SCENARIOS:
  new-grad-nights:  New graduate on 12-hour nights with weekend premium
  charge-nurse:     Experienced day nurse with charge, preceptor, holidays
  float-pool:       Float pool nurse with overtime and call-backs
  eight-hour:       8-hour evening staff with on-call and bonuses
  mixed-unit:       Whole unit, includes ladder/degree pay that has no formula

HOW SCENARIOS WORK:
  1. Reset database (clear all data)
  2. Seed the default differential catalog and reload the cache
  3. Calculate and save every profile of the scenario

USAGE VIA API:
  POST /api/scenarios/load
  {"scenario_id": "charge-nurse"}

NOTE:
  Scenarios reset the database, including catalog edits. Only use in
  development/demo environments.

SEE ALSO:
  - handlers.go: saveCalculation, shared with Calculate
  - factory/catalog.json: Catalog restored on load
*/
package api

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/shiftwise/pay-engine/compensation"
	"github.com/shiftwise/pay-engine/differential"
	"github.com/shiftwise/pay-engine/factory"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

type scenario struct {
	ScenarioDTO
	profiles []compensation.EstimateInput
}

func diffs(items ...differential.Item) []differential.Item { return items }

var scenarios = []scenario{
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "new-grad-nights",
			Name:        "New Grad Nights",
			Description: "First-year RN on 12-hour nights with weekend premium",
		},
		profiles: []compensation.EstimateInput{
			{AnnualSalary: 72800, ShiftHours: 12, Differentials: diffs(
				differential.Item{Type: "Night", Value: 4, Frequency: 1},
				differential.Item{Type: "Weekend", Value: 2, Frequency: 4},
			)},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "charge-nurse",
			Name:        "Charge Nurse",
			Description: "Experienced day nurse taking charge and precepting, works holidays",
		},
		profiles: []compensation.EstimateInput{
			{AnnualSalary: 98000, ShiftHours: 12, Differentials: diffs(
				differential.Item{Type: "Charge_Nurse", Value: 2.5, Frequency: 2},
				differential.Item{Type: "Preceptor", Value: 1.5, Frequency: 6},
				differential.Item{Type: "Holiday", Value: 1.5, Frequency: 6},
				differential.Item{Type: "Certification", Value: 1, Frequency: 0},
			)},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "float-pool",
			Name:        "Float Pool",
			Description: "Float pool nurse picking up overtime and call-backs",
		},
		profiles: []compensation.EstimateInput{
			{AnnualSalary: 88400, ShiftHours: 12, Differentials: diffs(
				differential.Item{Type: "Float_Pool", Value: 5, Frequency: 1},
				differential.Item{Type: "Overtime", Value: 1.5, Frequency: 8},
				differential.Item{Type: "Call_Back", Value: 1.5, Frequency: 2},
				differential.Item{Type: "Shift_Pickup_Bonus", Value: 150, Frequency: 3},
			)},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "eight-hour",
			Name:        "8-Hour Evenings",
			Description: "Five 8-hour evening shifts a week with on-call and a sign-on bonus",
		},
		profiles: []compensation.EstimateInput{
			{AnnualSalary: 68640, ShiftHours: 8, Differentials: diffs(
				differential.Item{Type: "Evening", Value: 2, Frequency: 1},
				differential.Item{Type: "On_Call", Value: 0.1, Frequency: 4},
				differential.Item{Type: "Bilingual", Value: 0.05, Frequency: 1},
				differential.Item{Type: "Sign_On_Bonus", Value: 2500, Frequency: 1},
			)},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "mixed-unit",
			Name:        "Mixed Unit",
			Description: "Three nurses on one unit, including ladder and degree pay that calculate as zero",
		},
		profiles: []compensation.EstimateInput{
			{AnnualSalary: 81120, ShiftHours: 12, Differentials: diffs(
				differential.Item{Type: "Night", Value: 3.5, Frequency: 1},
				differential.Item{Type: "Clinical_Ladder", Value: 1, Frequency: 2},
			)},
			{AnnualSalary: 93600, ShiftHours: 12, Differentials: diffs(
				differential.Item{Type: "Degree", Value: 1.5, Frequency: 1},
				differential.Item{Type: "Tenure", Value: 1, Frequency: 2},
				differential.Item{Type: "Weekend", Value: 3, Frequency: 4},
			)},
			{AnnualSalary: 76000, ShiftHours: 10, Differentials: diffs(
				differential.Item{Type: "Education_Stipend", Value: 200, Frequency: 1},
				differential.Item{Type: "Retention_Bonus", Value: 1000, Frequency: 1},
			)},
		},
	},
}

func findScenario(id string) (scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return scenario{}, false
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	out := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		out[i] = s.ScenarioDTO
		out[i].Profiles = len(s.profiles)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	current := h.currentScenario
	h.mu.RUnlock()

	s, ok := findScenario(current)
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	dto := s.ScenarioDTO
	dto.Profiles = len(s.profiles)
	writeJSON(w, http.StatusOK, dto)
}

// LoadScenario resets the database and loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	s, ok := findScenario(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	ids, err := h.loadScenario(r.Context(), s)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	writeJSON(w, http.StatusOK, LoadScenarioResponse{
		Status:         "loaded",
		Scenario:       s.ID,
		CalculationIDs: ids,
	})
}

// =============================================================================
// SCENARIO LOADER
// =============================================================================

func (h *Handler) loadScenario(ctx context.Context, s scenario) ([]string, error) {
	h.mu.Lock()
	h.currentScenario = ""
	h.mu.Unlock()

	if err := h.Store.Reset(ctx); err != nil {
		return nil, err
	}
	if _, err := h.SeedCatalog(ctx, factory.DefaultCatalogJSON); err != nil {
		return nil, err
	}
	if err := h.LoadCatalog(ctx); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(s.profiles))
	for _, in := range s.profiles {
		dto, err := h.saveCalculation(ctx, in)
		if err != nil {
			return nil, err
		}
		ids = append(ids, dto.ID)
	}

	h.mu.Lock()
	h.currentScenario = s.ID
	h.mu.Unlock()
	return ids, nil
}
