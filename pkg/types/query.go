// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractedEntities holds the structured entities the query-understanding
// layer pulled out of the free-text query. All lists keep extraction order.
type ExtractedEntities struct {
	// Components lists component names or families (e.g. "gate driver").
	Components []string `json:"components,omitempty" yaml:"components,omitempty"`

	// Technologies lists technology terms (e.g. "GaN", "SiC").
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`

	// PartNumbers lists explicit manufacturer part numbers.
	PartNumbers []string `json:"part_numbers,omitempty" yaml:"part_numbers,omitempty"`
}

// All returns every extracted entity in a single list, in field order.
func (e ExtractedEntities) All() []string {
	out := make([]string, 0, len(e.Components)+len(e.Technologies)+len(e.PartNumbers))
	out = append(out, e.Components...)
	out = append(out, e.Technologies...)
	out = append(out, e.PartNumbers...)
	return out
}

// QueryContext is the finished output of the query-understanding layer.
// The pipeline consumes it read-only; it never re-parses the raw query.
type QueryContext struct {
	// Query is the raw free-text research query.
	Query string `json:"query" yaml:"query"`

	// Entities are the structured entities extracted from the query.
	Entities ExtractedEntities `json:"entities,omitempty" yaml:"entities,omitempty"`

	// TargetRegions lists the regions the researcher cares about, in
	// priority order (e.g. ["EU", "Asia"]).
	TargetRegions []string `json:"target_regions,omitempty" yaml:"target_regions,omitempty"`

	// Domains lists the detected technical domains (e.g. "power_electronics").
	Domains []string `json:"domains,omitempty" yaml:"domains,omitempty"`
}
