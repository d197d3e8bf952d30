// Package api holds the OpenAPI document of the HTTP surface.
package api

import _ "embed"

// Spec is the raw OpenAPI 3 document served by the HTTP adapter.
//
//go:embed openapi.yml
var Spec []byte
