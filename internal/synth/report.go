// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// Render produces the final markdown report from the synthesis (stage 10).
// Sections appear in fixed order; a section whose underlying data is empty
// is omitted entirely rather than rendered with a placeholder. With no
// findings at all, only the header survives.
func Render(qc types.QueryContext, syn types.SynthesisResult, generatedAt time.Time) string {
	var b strings.Builder

	query := qc.Query
	if query == "" {
		query = "Unknown query"
	}
	fmt.Fprintf(&b, "# EE Research Report\n\n")
	fmt.Fprintf(&b, "**Query:** %s\n\n", query)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", generatedAt.UTC().Format("2006-01-02 15:04 UTC"))

	if syn.Counts.Total() > 0 {
		fmt.Fprintf(&b, "## Executive Summary\n\n%s\n\n", syn.Summary)
	}

	if len(syn.KeyFindings) > 0 {
		b.WriteString("## Key Findings\n\n")
		for _, finding := range syn.KeyFindings {
			fmt.Fprintf(&b, "- %s\n", finding)
		}
		b.WriteString("\n")
	}

	if len(syn.TechnologyTrends) > 0 {
		b.WriteString("## Technology Trends\n\n")
		for _, trend := range syn.TechnologyTrends {
			fmt.Fprintf(&b, "- %s\n", trend)
		}
		b.WriteString("\n")
	}

	if len(syn.Recommendations) > 0 {
		b.WriteString("## Recommended Components\n\n")
		for i, rec := range syn.Recommendations {
			fmt.Fprintf(&b, "%d. **%s** (%s)\n", i+1, rec.PartNumber, rec.Manufacturer)
			fmt.Fprintf(&b, "   - TRL: %d\n", rec.TRL)
			if rec.Lifecycle != "" {
				fmt.Fprintf(&b, "   - Lifecycle: %s\n", rec.Lifecycle)
			}
			fmt.Fprintf(&b, "   - Rationale: %s\n", rec.Rationale)
			b.WriteString("\n")
		}
	}

	if syn.SupplyChain.Status != "" && syn.SupplyChain.Status != HealthNoData {
		b.WriteString("## Supply Chain Status\n\n")
		fmt.Fprintf(&b, "- Overall Health: **%s**\n", strings.ToUpper(syn.SupplyChain.Status))
		fmt.Fprintf(&b, "- Total Stock: %d units\n", syn.SupplyChain.TotalStock)
		fmt.Fprintf(&b, "- Active Components: %d\n\n", syn.SupplyChain.ActiveComponents)
	}

	if total := distributionTotal(syn.TRLDistribution); total > 0 {
		b.WriteString("## Technology Readiness Distribution\n\n")
		b.WriteString("| TRL Level | Count |\n")
		b.WriteString("|-----------|-------|\n")
		for level := 1; level <= 9; level++ {
			key := fmt.Sprintf("TRL %d", level)
			if count := syn.TRLDistribution[key]; count > 0 {
				fmt.Fprintf(&b, "| %s | %d |\n", key, count)
			}
		}
		b.WriteString("\n")
	}

	if syn.Maturity.TotalClassified > 0 {
		b.WriteString("## Maturity Assessment\n\n")
		fmt.Fprintf(&b, "- Research Phase (TRL 1-3): %.1f%%\n", syn.Maturity.ResearchPct)
		fmt.Fprintf(&b, "- Development Phase (TRL 4-6): %.1f%%\n", syn.Maturity.DevelopmentPct)
		fmt.Fprintf(&b, "- Production Phase (TRL 7-9): %.1f%%\n", syn.Maturity.ProductionPct)
		if syn.Maturity.Overall != "" {
			fmt.Fprintf(&b, "- Overall: %s\n", syn.Maturity.Overall)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*This report was generated by ee-scout.*\n")

	return b.String()
}

func distributionTotal(distribution map[string]int) int {
	total := 0
	for _, n := range distribution {
		total += n
	}
	return total
}
