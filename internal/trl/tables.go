// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trl classifies papers, patents, and components on the 1-9
// technology readiness scale (stage 5). Three classification paths share
// one definition table and one descending keyword-indicator table; both are
// injected so tests can substitute their own.
// Implements: prd002-trl R1-R4;
//
//	docs/ARCHITECTURE.md § TRL Classification.
package trl

// MinTRL and MaxTRL bound the technology readiness scale.
const (
	MinTRL = 1
	MaxTRL = 9
)

// Tables holds the canonical TRL definitions and the keyword indicators
// each classification path scans against entity text.
type Tables struct {
	// Definitions maps each level to its canonical description.
	Definitions map[int]string

	// Indicators maps each level to keywords whose presence in an
	// entity's text suggests that level. Paths scan descending, so a
	// level-9 keyword outranks a level-3 keyword in the same text.
	Indicators map[int][]string
}

// DefaultTables is the built-in TRL knowledge.
var DefaultTables = Tables{
	Definitions: map[int]string{
		1: "Basic principles observed and reported",
		2: "Technology concept and/or application formulated",
		3: "Analytical and experimental critical function proof of concept",
		4: "Component validation in laboratory environment",
		5: "Component validation in relevant environment",
		6: "System/subsystem model or prototype in relevant environment",
		7: "System prototype demonstration in operational environment",
		8: "Actual system completed and qualified through test and demonstration",
		9: "Actual system proven through successful mission operations",
	},
	Indicators: map[int][]string{
		1: {"theoretical", "principle", "basic research", "hypothesis"},
		2: {"concept", "feasibility", "proposed", "initial design", "formulated"},
		3: {"experiment", "proof of concept", "lab test", "prototype", "demonstration"},
		4: {"laboratory validation", "component test", "bench test", "validated"},
		5: {"field test", "relevant environment", "pilot", "validation"},
		6: {"prototype demonstration", "system test", "beta", "engineering"},
		7: {"pre-production", "qualification", "operational test", "prototype"},
		8: {"production", "qualified", "certified", "compliant", "manufacturing"},
		9: {"deployed", "commercial", "mass production", "proven", "operational"},
	},
}

// Definition returns the canonical description for a level, or "" for
// levels outside the scale.
func (t Tables) Definition(level int) string {
	return t.Definitions[level]
}

// Phase boundaries of the TRL scale: research 1-3, development 4-6,
// production 7-9.
const (
	developmentFloor = 4
	productionFloor  = 7
)
