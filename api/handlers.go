/*
handlers.go - HTTP API handlers for the differential engine

PURPOSE:
  Exposes the catalog, instant estimates, saved calculations and display
  formatting over REST. Handles HTTP request/response and JSON, and
  delegates every number to the differential / compensation packages.

ENDPOINTS:
  Catalog:
    GET    /api/differentials/config                         Full catalog
    GET    /api/differentials/config/{type}                  One entry
    PUT    /api/differentials/config/{type}                  Upsert entry
    DELETE /api/differentials/config/{type}                  Remove entry
    GET    /api/differentials/config/{type}/frequency-options Input control
    GET    /api/differentials/types                          IDs by category

  Calculations:
    POST   /api/differentials/preview                        Estimate only
    POST   /api/differentials/calculate                      Estimate + save
    GET    /api/differentials/calculations                   Recent saves
    GET    /api/differentials/calculations/{id}              One save
    GET    /api/differentials/calculations/{id}/monthly      Saved -> monthly

  Display:
    POST   /api/differentials/format                         Descriptors

  Aggregation:
    POST   /api/compensation/monthly                         Monthly totals

  Scenarios (scenarios.go):
    GET    /api/scenarios                                    Demo profiles
    GET    /api/scenarios/current                            Loaded profile
    POST   /api/scenarios/load                               Reset + load

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: Catalog and calculation persistence
  - CatalogFactory: JSON to TypeConfig conversion
  - Cached catalog, swapped whole after every catalog write

CONFIDENCE:
  preview and calculate both grade their result with compensation.Score.
  Uncovered unit combinations and unknown types are logged so the silent
  zero they produce stays visible.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid body or catalog definition
  - 404: Type or calculation not found
  - 422: Amounts overflow (values far outside their ranges)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/shiftwise/pay-engine/compensation"
	"github.com/shiftwise/pay-engine/differential"
	"github.com/shiftwise/pay-engine/factory"
	"github.com/shiftwise/pay-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store          *sqlite.Store
	CatalogFactory *factory.CatalogFactory

	// DefaultShiftHours applies when a request omits shift_hours.
	DefaultShiftHours float64

	// Now and NewID are replaceable for tests.
	Now   func() time.Time
	NewID func() string

	mu              sync.RWMutex
	catalog         *differential.Catalog
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store, defaultShiftHours float64) *Handler {
	return &Handler{
		Store:             store,
		CatalogFactory:    factory.NewCatalogFactory(),
		DefaultShiftHours: defaultShiftHours,
		Now:               time.Now,
		NewID:             uuid.NewString,
		catalog:           differential.NewCatalog(nil),
	}
}

// SeedCatalog stores the default catalog if the store has none.
func (h *Handler) SeedCatalog(ctx context.Context, catalogJSON []byte) (bool, error) {
	configs, err := h.CatalogFactory.ParseCatalog(catalogJSON)
	if err != nil {
		return false, err
	}

	records := make([]sqlite.TypeConfigRecord, 0, len(configs))
	for _, cfg := range configs {
		rec, err := h.toRecord(cfg)
		if err != nil {
			return false, err
		}
		records = append(records, rec)
	}
	return h.Store.SeedTypeConfigs(ctx, records)
}

// LoadCatalog loads the catalog from the database into cache.
func (h *Handler) LoadCatalog(ctx context.Context) error {
	records, err := h.Store.ListTypeConfigs(ctx)
	if err != nil {
		return err
	}

	configs := make([]differential.TypeConfig, 0, len(records))
	for _, r := range records {
		cfg, err := h.CatalogFactory.ParseTypeConfig([]byte(r.ConfigJSON))
		if err != nil {
			log.Printf("Warning: skipping invalid differential %s: %v", r.Type, err)
			continue
		}
		configs = append(configs, cfg)
	}

	h.mu.Lock()
	h.catalog = differential.NewCatalog(configs)
	h.mu.Unlock()
	return nil
}

// Catalog returns the cached catalog.
func (h *Handler) Catalog() *differential.Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalog
}

func (h *Handler) toRecord(cfg differential.TypeConfig) (sqlite.TypeConfigRecord, error) {
	data, err := h.CatalogFactory.Marshal(cfg)
	if err != nil {
		return sqlite.TypeConfigRecord{}, err
	}
	return sqlite.TypeConfigRecord{
		Type:       cfg.Type,
		Category:   string(cfg.Category),
		ConfigJSON: string(data),
	}, nil
}

func (h *Handler) toDTO(cfg differential.TypeConfig) TypeConfigDTO {
	return TypeConfigDTO{
		TypeConfigJSON: h.CatalogFactory.ToJSON(cfg),
		Formula:        differential.SelectFormula(&cfg).String(),
	}
}

// =============================================================================
// CATALOG HANDLERS
// =============================================================================

// ListTypeConfigs returns the whole catalog in order.
func (h *Handler) ListTypeConfigs(w http.ResponseWriter, r *http.Request) {
	all := h.Catalog().All()
	dtos := make([]TypeConfigDTO, len(all))
	for i, cfg := range all {
		dtos[i] = h.toDTO(cfg)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetTypeConfig returns a single catalog entry.
func (h *Handler) GetTypeConfig(w http.ResponseWriter, r *http.Request) {
	typ := chi.URLParam(r, "type")

	cfg, ok := h.Catalog().Get(typ)
	if !ok {
		writeError(w, http.StatusNotFound, "Differential type not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, h.toDTO(cfg))
}

// PutTypeConfig creates (201) or replaces (200) a catalog entry.
func (h *Handler) PutTypeConfig(w http.ResponseWriter, r *http.Request) {
	typ := chi.URLParam(r, "type")

	var req factory.TypeConfigJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Type == "" {
		req.Type = typ
	}
	if req.Type != typ {
		writeError(w, http.StatusBadRequest, "Body type does not match URL", fmt.Errorf("%q != %q", req.Type, typ))
		return
	}

	cfg, err := h.CatalogFactory.FromJSON(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid differential definition", err)
		return
	}

	existing, err := h.Store.GetTypeConfig(r.Context(), typ)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get differential", err)
		return
	}

	rec, err := h.toRecord(cfg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode differential", err)
		return
	}
	if err := h.Store.SaveTypeConfig(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save differential", err)
		return
	}
	if err := h.LoadCatalog(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload catalog", err)
		return
	}

	status := http.StatusOK
	if existing == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, h.toDTO(cfg))
}

// DeleteTypeConfig removes a catalog entry.
func (h *Handler) DeleteTypeConfig(w http.ResponseWriter, r *http.Request) {
	typ := chi.URLParam(r, "type")

	err := h.Store.DeleteTypeConfig(r.Context(), typ)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Differential type not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete differential", err)
		return
	}
	if err := h.LoadCatalog(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload catalog", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTypes returns type IDs grouped by category.
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	catalog := h.Catalog()
	orEmpty := func(s []string) []string {
		if s == nil {
			return []string{}
		}
		return s
	}
	writeJSON(w, http.StatusOK, TypesByCategoryDTO{
		All:       orEmpty(catalog.Types()),
		Essential: orEmpty(catalog.ListByCategory(differential.CategoryEssential)),
		Common:    orEmpty(catalog.ListByCategory(differential.CategoryCommon)),
		Rare:      orEmpty(catalog.ListByCategory(differential.CategoryRare)),
		Bonus:     orEmpty(catalog.ListByCategory(differential.CategoryBonus)),
	})
}

// GetFrequencyOptions returns the input control for a type's frequency.
func (h *Handler) GetFrequencyOptions(w http.ResponseWriter, r *http.Request) {
	typ := chi.URLParam(r, "type")

	cfg, ok := h.Catalog().Get(typ)
	if !ok {
		writeError(w, http.StatusNotFound, "Differential type not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, differential.FrequencyOptions(cfg.FrequencyRange))
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// errNonFinite is returned when a calculation overflows float64.
var errNonFinite = errors.New("calculation produced a non-finite amount")

// Preview returns an estimate without saving it.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeEstimate(w, r)
	if !ok {
		return
	}

	result := h.estimate(in)
	if !result.Finite() {
		writeError(w, http.StatusUnprocessableEntity, "Differential amounts are too large to calculate", errNonFinite)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Calculate computes an estimate and saves it with amounts rounded to cents.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeEstimate(w, r)
	if !ok {
		return
	}

	dto, err := h.saveCalculation(r.Context(), in)
	if errors.Is(err, errNonFinite) {
		writeError(w, http.StatusUnprocessableEntity, "Differential amounts are too large to calculate", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save calculation", err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

func (h *Handler) saveCalculation(ctx context.Context, in compensation.EstimateInput) (CalculationDTO, error) {
	estimate := h.estimate(in)
	if !estimate.Finite() {
		return CalculationDTO{}, errNonFinite
	}
	result := estimate.Rounded()

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return CalculationDTO{}, fmt.Errorf("failed to encode calculation: %w", err)
	}

	rec := sqlite.CalculationRecord{
		ID:              h.NewID(),
		AnnualSalary:    compensation.RoundCents(in.AnnualSalary),
		ShiftHours:      in.ShiftHours,
		BaseMonthly:     compensation.RoundCents(result.Metadata.BaseMonthly),
		TotalMonthly:    compensation.RoundCents(result.Metadata.TotalMonthly),
		AnnualTotal:     compensation.RoundCents(result.Metadata.AnnualTotal),
		EffectiveHourly: compensation.RoundCents(result.Metadata.EffectiveHourly),
		Confidence:      string(result.Metadata.Confidence),
		ResultJSON:      string(resultJSON),
		CreatedAt:       result.Metadata.CalculationDate,
	}
	if err := h.Store.SaveCalculation(ctx, rec); err != nil {
		return CalculationDTO{}, err
	}

	return CalculationDTO{
		ID:           rec.ID,
		AnnualSalary: in.AnnualSalary,
		ShiftHours:   in.ShiftHours,
		Result:       result,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	}, nil
}

// GetCalculation returns a saved calculation.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Store.GetCalculation(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Calculation not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get calculation", err)
		return
	}

	dto, err := toCalculationDTO(*rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to decode calculation", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// GetCalculationMonthly re-aggregates a saved calculation into the monthly
// dashboard view, using the amounts stored with it.
func (h *Handler) GetCalculationMonthly(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Store.GetCalculation(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Calculation not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get calculation", err)
		return
	}

	var result compensation.Result
	if err := json.Unmarshal([]byte(rec.ResultJSON), &result); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to decode calculation", err)
		return
	}

	calc := compensation.CalculateMonthlyCompensation(rec.AnnualSalary.InexactFloat64(), result.Amounts(), rec.ShiftHours)
	writeJSON(w, http.StatusOK, calc)
}

// ListCalculations returns recent saved calculations, newest first.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = n
	}

	recs, err := h.Store.ListCalculations(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list calculations", err)
		return
	}

	dtos := make([]CalculationDTO, 0, len(recs))
	for _, rec := range recs {
		dto, err := toCalculationDTO(rec)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to decode calculation", err)
			return
		}
		dtos = append(dtos, dto)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func toCalculationDTO(rec sqlite.CalculationRecord) (CalculationDTO, error) {
	var result compensation.Result
	if err := json.Unmarshal([]byte(rec.ResultJSON), &result); err != nil {
		return CalculationDTO{}, err
	}
	return CalculationDTO{
		ID:           rec.ID,
		AnnualSalary: rec.AnnualSalary.InexactFloat64(),
		ShiftHours:   rec.ShiftHours,
		Result:       result,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (h *Handler) decodeEstimate(w http.ResponseWriter, r *http.Request) (compensation.EstimateInput, bool) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return compensation.EstimateInput{}, false
	}
	if req.AnnualSalary <= 0 {
		writeError(w, http.StatusBadRequest, "annual_salary must be positive", nil)
		return compensation.EstimateInput{}, false
	}

	in := compensation.EstimateInput{
		AnnualSalary:  req.AnnualSalary,
		ShiftHours:    h.shiftHours(req.ShiftHours),
		Differentials: make([]differential.Item, len(req.Differentials)),
	}
	for i, d := range req.Differentials {
		in.Differentials[i] = d.item()
	}
	return in, true
}

// estimate runs the estimator and grades the result.
func (h *Handler) estimate(in compensation.EstimateInput) compensation.Result {
	est := &compensation.Estimator{Catalog: h.Catalog(), Now: h.Now}
	result := est.Estimate(in)
	result.Metadata.Confidence = compensation.Score(result.Issues)

	for _, issue := range result.Issues {
		switch issue.Code {
		case differential.IssueUncoveredUnits, differential.IssueUnknownType:
			log.Printf("Warning: %s contributes 0: %s", issue.Type, issue.Message)
		}
	}
	return result
}

func (h *Handler) shiftHours(requested float64) float64 {
	if requested > 0 {
		return requested
	}
	return h.DefaultShiftHours
}

// =============================================================================
// DISPLAY HANDLERS
// =============================================================================

// FormatDifferentials returns display descriptors for the submitted differentials.
func (h *Handler) FormatDifferentials(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	catalog := h.Catalog()
	out := make([]FormattedDifferentialDTO, len(req.Differentials))
	for i, d := range req.Differentials {
		cfg := catalog.Lookup(d.Type)
		dto := FormattedDifferentialDTO{
			Type:        d.Type,
			DisplayName: catalog.DisplayName(d.Type),
			Value:       differential.Describe(d.item(), cfg),
			Known:       cfg != nil,
		}
		if cfg != nil {
			dto.FrequencyDisplay = differential.FormatFrequencyDisplay(d.Frequency, cfg.FrequencyRange.Unit)
		} else {
			dto.FrequencyDisplay = differential.FormatFrequencyDisplay(d.Frequency, "")
		}
		out[i] = dto
	}
	writeJSON(w, http.StatusOK, out)
}

// =============================================================================
// AGGREGATION HANDLERS
// =============================================================================

// MonthlyCompensation aggregates base pay with pre-computed differential amounts.
func (h *Handler) MonthlyCompensation(w http.ResponseWriter, r *http.Request) {
	var req MonthlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.AnnualSalary <= 0 {
		writeError(w, http.StatusBadRequest, "annual_salary must be positive", nil)
		return
	}

	calc := compensation.CalculateMonthlyCompensation(req.AnnualSalary, req.Differentials, h.shiftHours(req.ShiftHours))
	writeJSON(w, http.StatusOK, calc)
}

// Health reports liveness and catalog size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"differential_types": h.Catalog().Len(),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
