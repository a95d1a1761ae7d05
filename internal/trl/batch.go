// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trl

import (
	"fmt"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// Components classifies every component and returns the annotated list.
// Input records are not mutated.
func (c *Classifier) Components(components []types.Component) []types.Component {
	out := make([]types.Component, len(components))
	for i, comp := range components {
		cl := c.Component(comp)
		comp.TRL = cl.TRL
		comp.TRLConfidence = cl.Confidence
		comp.TRLJustification = cl.Justification
		out[i] = comp
	}
	return out
}

// Papers classifies every paper and returns the annotated list.
func (c *Classifier) Papers(papers []types.Paper) []types.Paper {
	out := make([]types.Paper, len(papers))
	for i, p := range papers {
		cl := c.Paper(p)
		p.TRL = cl.TRL
		p.TRLConfidence = cl.Confidence
		p.TRLJustification = cl.Justification
		out[i] = p
	}
	return out
}

// Patents classifies every patent and returns the annotated list.
func (c *Classifier) Patents(patents []types.Patent) []types.Patent {
	out := make([]types.Patent, len(patents))
	for i, p := range patents {
		cl := c.Patent(p)
		p.TRL = cl.TRL
		p.TRLConfidence = cl.Confidence
		p.TRLJustification = cl.Justification
		out[i] = p
	}
	return out
}

// Distribution builds the "TRL 1".."TRL 9" histogram across all classified
// records. Every bucket is present, zero or not, so consumers can render a
// complete table.
func Distribution(papers []types.Paper, patents []types.Patent, components []types.Component) map[string]int {
	dist := make(map[string]int, MaxTRL)
	for lvl := MinTRL; lvl <= MaxTRL; lvl++ {
		dist[bucket(lvl)] = 0
	}
	count := func(lvl int) {
		if lvl >= MinTRL && lvl <= MaxTRL {
			dist[bucket(lvl)]++
		}
	}
	for _, p := range papers {
		count(p.TRL)
	}
	for _, p := range patents {
		count(p.TRL)
	}
	for _, c := range components {
		count(c.TRL)
	}
	return dist
}

func bucket(level int) string {
	return fmt.Sprintf("TRL %d", level)
}

// Maturity labels chosen by the dominant phase share.
const (
	MaturityMature      = "Mature - predominantly production-ready solutions"
	MaturityDevelopment = "Active development - solutions approaching market"
	MaturityResearch    = "Early research - mostly experimental solutions"
	MaturityMixed       = "Mixed maturity - solutions at various stages"
)

// Analyze turns a TRL distribution into phase percentages (research 1-3,
// development 4-6, production 7-9) and an overall maturity label. An empty
// distribution yields the zero analysis.
func Analyze(distribution map[string]int) types.MaturityAnalysis {
	total := 0
	for _, n := range distribution {
		total += n
	}
	if total == 0 {
		return types.MaturityAnalysis{}
	}

	phase := func(from, to int) float64 {
		n := 0
		for lvl := from; lvl <= to; lvl++ {
			n += distribution[bucket(lvl)]
		}
		return float64(n) / float64(total) * 100
	}

	analysis := types.MaturityAnalysis{
		ResearchPct:     phase(MinTRL, developmentFloor-1),
		DevelopmentPct:  phase(developmentFloor, productionFloor-1),
		ProductionPct:   phase(productionFloor, MaxTRL),
		TotalClassified: total,
	}

	switch {
	case analysis.ProductionPct > 60:
		analysis.Overall = MaturityMature
	case analysis.DevelopmentPct > 50:
		analysis.Overall = MaturityDevelopment
	case analysis.ResearchPct > 50:
		analysis.Overall = MaturityResearch
	default:
		analysis.Overall = MaturityMixed
	}
	return analysis
}
