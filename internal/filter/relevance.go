// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"strings"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// relevanceScore counts how many distinct query terms and extracted
// entities appear in text (already lowercased). Each term counts once no
// matter how often it occurs.
func relevanceScore(text string, terms []string, entities []string) int {
	return countDistinct(text, terms) + countDistinct(text, entities)
}

// countDistinct counts the needles contained in text, each at most once.
func countDistinct(text string, needles []string) int {
	score := 0
	seen := make(map[string]bool, len(needles))
	for _, needle := range needles {
		n := strings.ToLower(needle)
		if !seen[n] && strings.Contains(text, n) {
			seen[n] = true
			score++
		}
	}
	return score
}

// relevant applies the threshold: at least threshold x len(terms) matches,
// counting entity matches as equivalent to term matches. The bar is
// deliberately low; dropping a truly relevant record is the failure mode to
// avoid, a marginal survivor costs only reading time downstream.
func relevant(text string, qc types.QueryContext, threshold float64) bool {
	terms := strings.Fields(strings.ToLower(qc.Query))
	score := relevanceScore(strings.ToLower(text), terms, qc.Entities.All())
	return float64(score) >= threshold*float64(len(terms))
}

// RelevantPapers keeps papers whose title+abstract matches enough query
// terms or entities. Components bypass relevance filtering: the part search
// that produced them already matched the query.
func RelevantPapers(papers []types.Paper, qc types.QueryContext, threshold float64) []types.Paper {
	kept := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if relevant(p.Title+" "+p.Abstract, qc, threshold) {
			kept = append(kept, p)
		}
	}
	return kept
}

// RelevantPatents keeps patents whose title+abstract matches enough query
// terms or entities.
func RelevantPatents(patents []types.Patent, qc types.QueryContext, threshold float64) []types.Patent {
	kept := make([]types.Patent, 0, len(patents))
	for _, p := range patents {
		if relevant(p.Title+" "+p.Abstract, qc, threshold) {
			kept = append(kept, p)
		}
	}
	return kept
}
