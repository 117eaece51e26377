// Package schema validates artifact files against embedded JSON Schemas.
// Validation is advisory: the collectors stay lenient (missing fields fold
// as zero), while `qreport report validate` uses this package to make
// malformed input visible before it silently contributes nothing.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Kind names an artifact schema.
type Kind string

const (
	KindPerformance   Kind = "performance"
	KindAccessibility Kind = "accessibility"
	KindVisual        Kind = "visual"
)

// KindForFile guesses the artifact kind from a file's base name prefix.
// Returns "" for files no schema covers (e.g. Playwright E2E reports, whose
// shape varies by reporter version).
func KindForFile(base string) Kind {
	switch {
	case hasPrefix(base, "performance-"):
		return KindPerformance
	case hasPrefix(base, "accessibility-"):
		return KindAccessibility
	case hasPrefix(base, "visual-"):
		return KindVisual
	default:
		return ""
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func compile(kind Kind) (*jsonschema.Schema, error) {
	name := fmt.Sprintf("schemas/%s.schema.json", kind)
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown artifact kind %q: %w", kind, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource %s: %w", name, err)
	}
	return compiler.Compile(name)
}

// ValidateFile validates one artifact file against the schema for kind.
// The returned slice holds human-readable failures; it is empty when the
// file conforms.
func ValidateFile(path string, kind Kind) ([]string, error) {
	sch, err := compile(kind)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return []string{fmt.Sprintf("not valid JSON: %v", err)}, nil
	}

	if err := sch.Validate(value); err != nil {
		return []string{err.Error()}, nil
	}
	return nil, nil
}
