package differential

import "strings"

// =============================================================================
// CATALOG - Read-only lookup of differential type metadata
// =============================================================================

// Catalog is an ordered, immutable set of TypeConfig entries keyed by type.
// Build a new Catalog to change its contents.
type Catalog struct {
	order   []string
	configs map[string]TypeConfig
}

// NewCatalog builds a catalog preserving the order of configs.
// A repeated type keeps its first position and its last config.
func NewCatalog(configs []TypeConfig) *Catalog {
	c := &Catalog{
		order:   make([]string, 0, len(configs)),
		configs: make(map[string]TypeConfig, len(configs)),
	}
	for _, cfg := range configs {
		if _, exists := c.configs[cfg.Type]; !exists {
			c.order = append(c.order, cfg.Type)
		}
		c.configs[cfg.Type] = cfg
	}
	return c
}

// Get returns the config for typ. A missing type is a normal outcome:
// callers treat it as "no contribution".
func (c *Catalog) Get(typ string) (TypeConfig, bool) {
	if c == nil {
		return TypeConfig{}, false
	}
	cfg, ok := c.configs[typ]
	return cfg, ok
}

// Lookup is Get returning a pointer, nil when absent.
func (c *Catalog) Lookup(typ string) *TypeConfig {
	cfg, ok := c.Get(typ)
	if !ok {
		return nil
	}
	return &cfg
}

// ListByCategory returns the type IDs of a category in catalog order.
func (c *Catalog) ListByCategory(category Category) []string {
	if c == nil {
		return nil
	}
	var out []string
	for _, typ := range c.order {
		if c.configs[typ].Category == category {
			out = append(out, typ)
		}
	}
	return out
}

// Types returns every type ID in catalog order.
func (c *Catalog) Types() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns every config in catalog order.
func (c *Catalog) All() []TypeConfig {
	if c == nil {
		return nil
	}
	out := make([]TypeConfig, 0, len(c.order))
	for _, typ := range c.order {
		out = append(out, c.configs[typ])
	}
	return out
}

// Len returns the number of types.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// DisplayName returns the human label for typ, falling back to the type ID
// with underscores turned into spaces.
func (c *Catalog) DisplayName(typ string) string {
	if cfg, ok := c.Get(typ); ok && cfg.DisplayName != "" {
		return cfg.DisplayName
	}
	return strings.ReplaceAll(typ, "_", " ")
}
