/*
Package factory provides JSON to Go differential catalog conversion.

PURPOSE:
  Converts JSON differential type definitions into differential.TypeConfig
  values. Compensation analysts maintain the catalog as JSON (seeded from
  catalog.json, edited through the admin API), and the factory validates
  and builds the Go structs the engine reads.

JSON SCHEMA:
  {
    "version": 1,
    "differentials": [
      {
        "type": "Night",
        "display_name": "Night Shift",
        "category": "essential",
        "value_range": {"min": 0, "max": 15, "unit": "$/hour"},
        "frequency_range": {"min": 0, "max": 1, "unit": "yes"},
        "description": "Hourly premium for night shifts"
      }
    ]
  }

VALIDATION:
  - type must be non-empty
  - category must be essential, common, rare or bonus
  - min <= max for both ranges
  - both range units must be non-empty

  Units are not restricted to the recognized set: an unrecognized unit
  parses as ValueOther / FreqNumeric and contributes 0.

USAGE:
  f := factory.NewCatalogFactory()
  configs, err := f.ParseCatalog(factory.DefaultCatalogJSON)
  catalog := differential.NewCatalog(configs)

SEE ALSO:
  - differential/types.go: TypeConfig definition
  - store/sqlite/sqlite.go: Stores TypeConfigJSON per type
*/
package factory

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/shiftwise/pay-engine/differential"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// CatalogJSON is the JSON representation of a whole catalog.
type CatalogJSON struct {
	Version       int              `json:"version"`
	Differentials []TypeConfigJSON `json:"differentials"`
}

// TypeConfigJSON is the JSON representation of one differential type.
type TypeConfigJSON struct {
	Type           string    `json:"type"`
	DisplayName    string    `json:"display_name,omitempty"`
	Category       string    `json:"category"`
	ValueRange     RangeJSON `json:"value_range"`
	FrequencyRange RangeJSON `json:"frequency_range"`
	Description    string    `json:"description,omitempty"`
}

// RangeJSON represents a value or frequency range.
type RangeJSON struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// =============================================================================
// CATALOG FACTORY
// =============================================================================

// CatalogFactory converts JSON catalog definitions to Go structs.
type CatalogFactory struct{}

// NewCatalogFactory creates a new catalog factory.
func NewCatalogFactory() *CatalogFactory {
	return &CatalogFactory{}
}

// ParseCatalog parses a catalog document. Entries keep their document order.
func (f *CatalogFactory) ParseCatalog(data []byte) ([]differential.TypeConfig, error) {
	var cj CatalogJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	configs := make([]differential.TypeConfig, 0, len(cj.Differentials))
	for i, tj := range cj.Differentials {
		cfg, err := f.FromJSON(tj)
		if err != nil {
			return nil, fmt.Errorf("differential %d: %w", i, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// ParseTypeConfig parses a single type definition.
func (f *CatalogFactory) ParseTypeConfig(data []byte) (differential.TypeConfig, error) {
	var tj TypeConfigJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return differential.TypeConfig{}, fmt.Errorf("failed to parse differential JSON: %w", err)
	}
	return f.FromJSON(tj)
}

// FromJSON validates tj and converts it to a TypeConfig.
func (f *CatalogFactory) FromJSON(tj TypeConfigJSON) (differential.TypeConfig, error) {
	if tj.Type == "" {
		return differential.TypeConfig{}, ErrMissingType
	}

	category, ok := differential.ParseCategory(tj.Category)
	if !ok {
		return differential.TypeConfig{}, &CategoryError{Type: tj.Type, Category: tj.Category}
	}

	valueRange, err := parseRange(tj.Type, "value_range", tj.ValueRange)
	if err != nil {
		return differential.TypeConfig{}, err
	}
	frequencyRange, err := parseRange(tj.Type, "frequency_range", tj.FrequencyRange)
	if err != nil {
		return differential.TypeConfig{}, err
	}

	return differential.TypeConfig{
		Type:           tj.Type,
		DisplayName:    tj.DisplayName,
		Category:       category,
		ValueRange:     valueRange,
		FrequencyRange: frequencyRange,
		Description:    tj.Description,
	}, nil
}

// ToJSON converts a TypeConfig back to its JSON form.
func (f *CatalogFactory) ToJSON(cfg differential.TypeConfig) TypeConfigJSON {
	return TypeConfigJSON{
		Type:           cfg.Type,
		DisplayName:    cfg.DisplayName,
		Category:       string(cfg.Category),
		ValueRange:     RangeJSON(cfg.ValueRange),
		FrequencyRange: RangeJSON(cfg.FrequencyRange),
		Description:    cfg.Description,
	}
}

// Marshal encodes cfg as a single type definition.
func (f *CatalogFactory) Marshal(cfg differential.TypeConfig) ([]byte, error) {
	return json.Marshal(f.ToJSON(cfg))
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func parseRange(typ, field string, rj RangeJSON) (differential.Range, error) {
	if rj.Unit == "" {
		return differential.Range{}, &RangeError{Type: typ, Field: field, Range: rj, Reason: "missing unit"}
	}
	if rj.Min > rj.Max {
		return differential.Range{}, &RangeError{Type: typ, Field: field, Range: rj, Reason: "min greater than max"}
	}
	return differential.Range(rj), nil
}
