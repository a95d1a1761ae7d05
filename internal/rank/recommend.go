// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// Recommendation score weights. The composite prefers parts that are
// production-proven, in active production, well stocked, and efficient.
const (
	scoreTRLHigh = 30 // TRL >= 8
	scoreTRLMid  = 20 // TRL >= 6
	scoreTRLLow  = 10

	scoreLifecycleActive = 25
	scoreLifecycleNRND   = 5

	scoreStockHigh = 20 // > 1000 units
	scoreStockMid  = 10 // > 100 units

	scoreEfficiencyMax = 25 // efficiency spec scaled 0-25
)

// Score computes the composite recommendation score for a component. The
// supply-chain record supplements stock and pricing when the component
// record carries no availability of its own; rec may be nil.
func Score(c types.Component, rec *types.SupplyChainRecord) float64 {
	score := 0.0

	switch {
	case c.TRL >= 8:
		score += scoreTRLHigh
	case c.TRL >= 6:
		score += scoreTRLMid
	default:
		score += scoreTRLLow
	}

	switch c.Lifecycle {
	case types.LifecycleActive:
		score += scoreLifecycleActive
	case types.LifecycleNRND:
		score += scoreLifecycleNRND
	}

	switch stock := totalStock(c, rec); {
	case stock > 1000:
		score += scoreStockHigh
	case stock > 100:
		score += scoreStockMid
	}

	if eff, ok := c.SpecFloat("efficiency"); ok {
		score += eff / 100 * scoreEfficiencyMax
	}

	return score
}

// Recommend scores all components, sorts them best first, and returns the
// top max as recommendations with rationale, pros, and cons. Sorting is
// stable, so equal scores keep the ranked component order.
func Recommend(components []types.Component, supplyChain []types.SupplyChainRecord, max int) []types.Recommendation {
	records := make(map[string]*types.SupplyChainRecord, len(supplyChain))
	for i := range supplyChain {
		records[supplyChain[i].PartNumber] = &supplyChain[i]
	}

	type scored struct {
		comp  types.Component
		score float64
	}
	list := make([]scored, 0, len(components))
	for _, c := range components {
		list = append(list, scored{comp: c, score: Score(c, records[c.PartNumber])})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})
	list = truncate(list, max)

	recs := make([]types.Recommendation, 0, len(list))
	for _, s := range list {
		rec := records[s.comp.PartNumber]
		recs = append(recs, types.Recommendation{
			PartNumber:   s.comp.PartNumber,
			Manufacturer: s.comp.Manufacturer,
			Category:     s.comp.Category,
			TRL:          s.comp.TRL,
			Lifecycle:    string(s.comp.Lifecycle),
			Score:        s.score,
			Rationale:    rationale(s.comp, rec),
			Pros:         pros(s.comp),
			Cons:         cons(s.comp, rec),
			Applications: s.comp.Applications,
		})
	}
	return recs
}

func totalStock(c types.Component, rec *types.SupplyChainRecord) int {
	if stock := c.TotalStock(); stock > 0 {
		return stock
	}
	if rec != nil {
		return rec.TotalStock()
	}
	return 0
}

// rationale names the score components that fired.
func rationale(c types.Component, rec *types.SupplyChainRecord) string {
	var reasons []string
	if c.TRL >= 8 {
		reasons = append(reasons, "production-ready (TRL 8+)")
	}
	if c.Lifecycle == types.LifecycleActive {
		reasons = append(reasons, "active lifecycle")
	}
	if totalStock(c, rec) > 1000 {
		reasons = append(reasons, "good availability")
	}
	if eff, ok := c.SpecFloat("efficiency"); ok && eff > 90 {
		reasons = append(reasons, fmt.Sprintf("high efficiency (%g%%)", eff))
	}
	if len(reasons) == 0 {
		return "General purpose use"
	}
	return "Recommended for: " + strings.Join(reasons, ", ")
}

func pros(c types.Component) []string {
	out := make([]string, 0, 5)
	out = append(out, c.Features[:min(len(c.Features), 3)]...)
	if c.TRL >= 8 {
		out = append(out, "Production-proven")
	}
	if c.Lifecycle == types.LifecycleActive {
		out = append(out, "Long-term availability")
	}
	return out[:min(len(out), 5)]
}

func cons(c types.Component, rec *types.SupplyChainRecord) []string {
	var out []string
	if c.Lifecycle == types.LifecycleNRND {
		out = append(out, "Not recommended for new designs")
	}
	if totalStock(c, rec) < 100 {
		out = append(out, "Limited availability")
	}
	if c.TRL < 7 {
		out = append(out, "Not yet production-ready")
	}
	if rec != nil && rec.Pricing.UnitPriceUSD > 10 {
		out = append(out, fmt.Sprintf("Higher cost ($%.2f)", rec.Pricing.UnitPriceUSD))
	}
	if len(out) == 0 {
		return []string{"None significant"}
	}
	return out
}
