package factory

import _ "embed"

// DefaultCatalogJSON is the stock nurse differential catalog.
//
//go:embed catalog.json
var DefaultCatalogJSON []byte
