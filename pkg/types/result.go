// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ee-scout result
// processing pipeline.
// Implements: prd001-pipeline (entity records, R2.1-R2.4);
//
//	prd002-trl (derived TRL fields);
//	prd003-synthesis (SynthesisResult, Result);
//	docs/ARCHITECTURE.md § Data Structures.
package types

import (
	"fmt"
	"time"
)

// RelationType labels a cross-reference edge between two entities.
type RelationType string

const (
	// RelationCites marks a paper whose text mentions a patent number.
	RelationCites RelationType = "cites"

	// RelationImplements marks a patent whose text mentions a component category.
	RelationImplements RelationType = "implements"

	// RelationDiscusses marks a paper whose text mentions a component category.
	RelationDiscusses RelationType = "discusses"
)

// CrossReference is a typed edge between two entities of possibly different
// types. Both endpoints always name records present in the processed result
// set; the cross-referencer never creates dangling edges.
type CrossReference struct {
	FromID   string       `json:"from_id" yaml:"from_id"`
	FromType string       `json:"from_type" yaml:"from_type"`
	ToID     string       `json:"to_id" yaml:"to_id"`
	ToType   string       `json:"to_type" yaml:"to_type"`
	Relation RelationType `json:"relation" yaml:"relation"`
}

// ClusterGroup is one category bucket of the component clusterer. Part
// numbers keep the order in which components entered the cluster.
type ClusterGroup struct {
	Category    string   `json:"category" yaml:"category"`
	PartNumbers []string `json:"part_numbers" yaml:"part_numbers"`
}

// Recommendation is one entry of the ranked component shortlist.
type Recommendation struct {
	PartNumber   string   `json:"part_number" yaml:"part_number"`
	Manufacturer string   `json:"manufacturer" yaml:"manufacturer"`
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
	TRL          int      `json:"trl" yaml:"trl"`
	Lifecycle    string   `json:"lifecycle,omitempty" yaml:"lifecycle,omitempty"`

	// Score is the composite recommendation score (TRL, lifecycle,
	// availability, efficiency).
	Score float64 `json:"score" yaml:"score"`

	// Rationale explains which score components fired.
	Rationale string `json:"rationale" yaml:"rationale"`

	Pros []string `json:"pros,omitempty" yaml:"pros,omitempty"`
	Cons []string `json:"cons,omitempty" yaml:"cons,omitempty"`

	// Applications lists documented use cases carried over from the component.
	Applications []string `json:"applications,omitempty" yaml:"applications,omitempty"`
}

// SupplyChainHealth summarizes distributor stock across the surviving
// supply-chain records.
type SupplyChainHealth struct {
	// Status is "healthy", "low_stock", or "no_data".
	Status string `json:"status" yaml:"status"`

	// TotalStock is the summed stock across all records and distributors.
	TotalStock int `json:"total_stock,omitempty" yaml:"total_stock,omitempty"`

	// ActiveComponents counts records with an Active lifecycle.
	ActiveComponents int `json:"active_components,omitempty" yaml:"active_components,omitempty"`

	// ComponentsChecked counts the records assessed.
	ComponentsChecked int `json:"components_checked,omitempty" yaml:"components_checked,omitempty"`
}

// MaturityAnalysis summarizes the TRL distribution as phase percentages.
type MaturityAnalysis struct {
	// ResearchPct is the share of classified items at TRL 1-3, in percent.
	ResearchPct float64 `json:"research_pct" yaml:"research_pct"`

	// DevelopmentPct is the share at TRL 4-6, in percent.
	DevelopmentPct float64 `json:"development_pct" yaml:"development_pct"`

	// ProductionPct is the share at TRL 7-9, in percent.
	ProductionPct float64 `json:"production_pct" yaml:"production_pct"`

	// Overall is the maturity label derived from the largest phase share.
	Overall string `json:"overall" yaml:"overall"`

	// TotalClassified counts the items with a defined TRL.
	TotalClassified int `json:"total_classified" yaml:"total_classified"`
}

// FindingCounts holds the per-type record counts of a processed set.
type FindingCounts struct {
	Papers      int `json:"papers" yaml:"papers"`
	Patents     int `json:"patents" yaml:"patents"`
	Components  int `json:"components" yaml:"components"`
	SupplyChain int `json:"supply_chain" yaml:"supply_chain"`
}

// Total sums the per-type counts.
func (c FindingCounts) Total() int {
	return c.Papers + c.Patents + c.Components + c.SupplyChain
}

// SynthesisResult is the structured summary computed from the filtered and
// classified record set (stage 9).
type SynthesisResult struct {
	// Counts holds the surviving record counts per entity type.
	Counts FindingCounts `json:"counts" yaml:"counts"`

	// CrossReferenceCount is the number of detected cross-reference edges.
	CrossReferenceCount int `json:"cross_reference_count" yaml:"cross_reference_count"`

	// Summary is the one-paragraph executive summary.
	Summary string `json:"summary" yaml:"summary"`

	// KeyFindings lists the top findings (research highlight,
	// production-ready component count, supply-chain risks).
	KeyFindings []string `json:"key_findings,omitempty" yaml:"key_findings,omitempty"`

	// TechnologyTrends lists derived trend statements.
	TechnologyTrends []string `json:"technology_trends,omitempty" yaml:"technology_trends,omitempty"`

	// Recommendations is the scored component shortlist, best first.
	Recommendations []Recommendation `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`

	// SupplyChain is the aggregate stock health assessment.
	SupplyChain SupplyChainHealth `json:"supply_chain" yaml:"supply_chain"`

	// TRLDistribution maps "TRL 1".."TRL 9" to classified-item counts.
	TRLDistribution map[string]int `json:"trl_distribution,omitempty" yaml:"trl_distribution,omitempty"`

	// Maturity is the phase breakdown of the TRL distribution.
	Maturity MaturityAnalysis `json:"maturity" yaml:"maturity"`
}

// ProcessedSet holds the per-type record lists after filtering, classification,
// and ranking.
type ProcessedSet struct {
	Papers      []Paper             `json:"papers" yaml:"papers"`
	Patents     []Patent            `json:"patents" yaml:"patents"`
	Components  []Component         `json:"components" yaml:"components"`
	SupplyChain []SupplyChainRecord `json:"supply_chain" yaml:"supply_chain"`
}

// TotalFindings counts records across all four lists.
func (s ProcessedSet) TotalFindings() int {
	return len(s.Papers) + len(s.Patents) + len(s.Components) + len(s.SupplyChain)
}

// Metadata describes a pipeline invocation.
type Metadata struct {
	// RunID uniquely identifies the invocation.
	RunID string `json:"run_id" yaml:"run_id"`

	// PipelineStages is the number of stages executed, fixed at 10.
	PipelineStages int `json:"pipeline_stages" yaml:"pipeline_stages"`

	// TotalFindings counts the surviving records across all types.
	TotalFindings int `json:"total_findings" yaml:"total_findings"`

	// ProcessedAt is the completion timestamp (UTC).
	ProcessedAt time.Time `json:"processed_at" yaml:"processed_at"`
}

// Result is the complete output of one pipeline invocation. Consumers
// (result store, serializers, streaming producers) treat it as an opaque
// value object.
type Result struct {
	Query           QueryContext     `json:"query" yaml:"query"`
	Processed       ProcessedSet     `json:"processed" yaml:"processed"`
	CrossReferences []CrossReference `json:"cross_references,omitempty" yaml:"cross_references,omitempty"`
	Clusters        []ClusterGroup   `json:"clusters,omitempty" yaml:"clusters,omitempty"`
	Synthesis       SynthesisResult  `json:"synthesis" yaml:"synthesis"`
	Report          string           `json:"report" yaml:"report"`
	Metadata        Metadata         `json:"metadata" yaml:"metadata"`
}

// SummaryChunk is one incremental update a serving layer can stream to a
// client while presenting a finished result.
type SummaryChunk struct {
	Type    string   `json:"type" yaml:"type"`
	Message string   `json:"message" yaml:"message"`
	Count   int      `json:"count,omitempty" yaml:"count,omitempty"`
	Preview []string `json:"preview,omitempty" yaml:"preview,omitempty"`
}

// SummaryChunks breaks the result into per-type update chunks: papers,
// patents, components, supply chain, then the synthesis summary. Types with
// no surviving records produce no chunk.
func (r Result) SummaryChunks() []SummaryChunk {
	var chunks []SummaryChunk

	if n := len(r.Processed.Papers); n > 0 {
		preview := make([]string, 0, 3)
		for _, p := range r.Processed.Papers[:min(n, 3)] {
			preview = append(preview, p.Title)
		}
		chunks = append(chunks, SummaryChunk{
			Type:    "papers",
			Message: fmt.Sprintf("Found %d academic papers", n),
			Count:   n,
			Preview: preview,
		})
	}
	if n := len(r.Processed.Patents); n > 0 {
		preview := make([]string, 0, 3)
		for _, p := range r.Processed.Patents[:min(n, 3)] {
			preview = append(preview, p.PatentNumber)
		}
		chunks = append(chunks, SummaryChunk{
			Type:    "patents",
			Message: fmt.Sprintf("Found %d patents", n),
			Count:   n,
			Preview: preview,
		})
	}
	if n := len(r.Processed.Components); n > 0 {
		preview := make([]string, 0, 3)
		for _, c := range r.Processed.Components[:min(n, 3)] {
			preview = append(preview, c.PartNumber)
		}
		chunks = append(chunks, SummaryChunk{
			Type:    "components",
			Message: fmt.Sprintf("Found %d components", n),
			Count:   n,
			Preview: preview,
		})
	}
	if n := len(r.Processed.SupplyChain); n > 0 {
		chunks = append(chunks, SummaryChunk{
			Type:    "supply_chain",
			Message: fmt.Sprintf("Checked supply chain for %d components", n),
			Count:   n,
		})
	}
	if r.Synthesis.Summary != "" {
		chunks = append(chunks, SummaryChunk{
			Type:    "synthesis",
			Message: "Analysis complete",
			Preview: []string{r.Synthesis.Summary},
		})
	}
	return chunks
}
