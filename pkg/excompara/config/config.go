// Package config loads optional settings files for the comparator.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prodsec/excompara/pkg/excompara"
)

// File mirrors the YAML settings file. Every field is optional; unset
// fields keep their defaults.
type File struct {
	IdentifierColumn string   `yaml:"identifier_column"`
	SummarySheet     string   `yaml:"summary_sheet"`
	SkipSheets       []string `yaml:"skip_sheets"`
	Output           string   `yaml:"output"`
}

// Load reads a YAML settings file and overlays it on opts. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Load(path string, opts excompara.Options) (excompara.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading config: %w", err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return opts, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if f.IdentifierColumn != "" {
		opts.IdentifierColumn = f.IdentifierColumn
	}
	if f.SummarySheet != "" {
		opts.SummarySheet = f.SummarySheet
	}
	if f.SkipSheets != nil {
		opts.SkipSheets = f.SkipSheets
	}
	if f.Output != "" {
		opts.OutputPath = f.Output
	}
	return opts, nil
}
