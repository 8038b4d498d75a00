// Package schema contains embedded JSON Schemas for the reference-data
// tables.
package schema

import "embed"

// FS contains the embedded table schemas.
//
//go:embed *.json
var FS embed.FS
