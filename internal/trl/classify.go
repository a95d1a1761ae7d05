// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trl

import (
	"fmt"
	"strings"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// Classification is the outcome of one TRL assessment. Justification is a
// deterministic concatenation of the triggering reasons; identical input
// always yields the identical string.
type Classification struct {
	TRL           int
	Confidence    float64
	Justification string
}

// Classifier assigns TRL levels from heuristic evidence. The zero value is
// not usable; construct with NewClassifier.
type Classifier struct {
	tables Tables
}

// NewClassifier returns a classifier over the given tables. Nil maps fall
// back to DefaultTables.
func NewClassifier(tables Tables) *Classifier {
	if tables.Definitions == nil {
		tables.Definitions = DefaultTables.Definitions
	}
	if tables.Indicators == nil {
		tables.Indicators = DefaultTables.Indicators
	}
	return &Classifier{tables: tables}
}

// Component classifies a component. Lifecycle is the primary signal;
// distributor stock refines Active parts, and a published datasheet floors
// the level at 7. With no signal at all the component defaults to
// mid-range TRL 5.
func (c *Classifier) Component(comp types.Component) Classification {
	var reasons []string
	level := 5

	lifecycle := types.Lifecycle(strings.ToLower(string(comp.Lifecycle)))
	switch lifecycle {
	case "active":
		totalStock := comp.TotalStock()
		distributors := comp.StockedDistributors()
		switch {
		case totalStock > 1000 && distributors >= 2:
			level = 9
			reasons = append(reasons, fmt.Sprintf("Mass production: %d units across %d distributors", totalStock, distributors))
		case totalStock > 100:
			level = 8
			reasons = append(reasons, fmt.Sprintf("Production qualified: %d units available", totalStock))
		default:
			level = 7
			reasons = append(reasons, "Active lifecycle with limited production")
		}
	case "nrnd":
		level = 8
		reasons = append(reasons, "Not recommended for new design (was production-ready)")
	case "obsolete":
		level = 9
		reasons = append(reasons, "Obsolete (was fully deployed)")
	}

	if comp.DatasheetURL != "" {
		if level < 7 {
			level = 7
		}
		reasons = append(reasons, "Published datasheet available")
	}

	if n := len(comp.Specifications); n > 5 {
		reasons = append(reasons, fmt.Sprintf("Comprehensive specifications (%d parameters)", n))
	}
	if n := len(comp.Applications); n > 0 {
		reasons = append(reasons, fmt.Sprintf("Documented applications: %d", n))
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "No lifecycle, availability, or datasheet signal; defaulting to mid-range")
	}

	confidence := 0.6
	switch lifecycle {
	case "active", "nrnd", "obsolete":
		confidence += 0.2
	}
	if len(comp.Availability) > 0 {
		confidence += 0.1
	}
	if comp.DatasheetURL != "" {
		confidence += 0.1
	}
	confidence = min(confidence, 1.0)

	return Classification{
		TRL:           level,
		Confidence:    confidence,
		Justification: justification(level, reasons),
	}
}

// paperCap bounds paper classifications: papers rarely demonstrate
// deployed systems, whatever their vocabulary claims.
const paperCap = 6

// Paper classifies a paper by scanning the indicator table from TRL 9 down
// to 1 against title+abstract. The first level with a matching keyword
// wins; no match defaults to TRL 2.
func (c *Classifier) Paper(p types.Paper) Classification {
	text := strings.ToLower(p.Title + " " + p.Abstract)

	level := 2
	confidence := 0.5
	var reasons []string

	for lvl := MaxTRL; lvl >= MinTRL; lvl-- {
		matches := indicatorMatches(text, c.tables.Indicators[lvl])
		if len(matches) > 0 {
			level = lvl
			reasons = append(reasons, "Indicators: "+strings.Join(matches[:min(len(matches), 3)], ", "))
			confidence = 0.6 + 0.05*float64(len(matches))
			break
		}
	}

	if level > paperCap {
		level = paperCap
		reasons = append(reasons, "Adjusted: papers typically describe TRL <= 6")
	}
	reasons = append(reasons, "Source: academic paper")

	confidence = min(confidence, 0.8)

	return Classification{
		TRL:           level,
		Confidence:    confidence,
		Justification: justification(level, reasons),
	}
}

// patentCap bounds patent classifications.
const patentCap = 7

// Patent classifies a patent. Legal status sets the base level (Granted 5,
// anything else 4); a higher indicator match in title+abstract replaces
// the base, capped at 7.
func (c *Classifier) Patent(p types.Patent) Classification {
	text := strings.ToLower(p.Title + " " + p.Abstract)

	var (
		level      int
		confidence float64
		reasons    []string
	)
	if strings.Contains(strings.ToLower(string(p.Status)), "granted") {
		level = 5
		confidence = 0.7
		reasons = append(reasons, "Granted patent")
	} else {
		level = 4
		confidence = 0.6
		reasons = append(reasons, "Pending patent")
	}

	for lvl := MaxTRL; lvl > level; lvl-- {
		matches := indicatorMatches(text, c.tables.Indicators[lvl])
		if len(matches) > 0 {
			level = lvl
			reasons = append(reasons, "Indicators: "+strings.Join(matches[:min(len(matches), 2)], ", "))
			confidence += 0.1
			break
		}
	}

	if level > patentCap {
		level = patentCap
		reasons = append(reasons, "Adjusted: patents typically describe TRL <= 7")
	}

	confidence = min(confidence, 0.85)

	return Classification{
		TRL:           level,
		Confidence:    confidence,
		Justification: justification(level, reasons),
	}
}

// indicatorMatches returns the indicators contained in text, in table order.
func indicatorMatches(text string, indicators []string) []string {
	var matches []string
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			matches = append(matches, ind)
		}
	}
	return matches
}

func justification(level int, reasons []string) string {
	return fmt.Sprintf("TRL %d: %s", level, strings.Join(reasons, "; "))
}
