// Package schemas embeds the JSON Schemas for files users author by hand:
// saved filter presets and application request bodies.
package schemas

import "embed"

// Names of the embedded schema files.
const (
	Filters     = "filters.schema.json"
	Application = "application.schema.json"
)

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Read returns the raw content of an embedded schema.
func Read(name string) ([]byte, error) {
	return FS.ReadFile(name)
}
