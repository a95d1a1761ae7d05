// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// ReadInputFile loads raw findings and query context from a YAML file.
func ReadInputFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("reading input file: %w", err)
	}
	var in Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("parsing input file: %w", err)
	}
	if in.Query.Query == "" {
		return Input{}, fmt.Errorf("input file %s: query is empty", path)
	}
	return in, nil
}

// WriteResultFile saves a complete pipeline result to a YAML file.
func WriteResultFile(path string, result *types.Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result from disk.
func ReadResultFile(path string) (*types.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var result types.Result
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &result, nil
}

// FormatJSON writes the result as indented JSON to w.
func FormatJSON(result *types.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
