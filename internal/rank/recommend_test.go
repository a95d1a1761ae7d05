// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"math"
	"strings"
	"testing"

	"github.com/pdiddy/ee-scout/pkg/types"
)

func TestScoreComposite(t *testing.T) {
	comp := types.Component{
		PartNumber: "UCC21520",
		TRL:        9,
		Lifecycle:  types.LifecycleActive,
		Availability: map[string]types.DistributorStock{
			"Digi-Key": {Stock: 2000},
		},
		Specifications: map[string]any{"efficiency": 96.0},
	}
	// 30 (TRL) + 25 (Active) + 20 (stock) + 24 (efficiency) = 99.
	if got := Score(comp, nil); math.Abs(got-99) > 1e-9 {
		t.Errorf("Score = %g, want 99", got)
	}
}

func TestScoreFloor(t *testing.T) {
	// A bare component still scores the TRL floor.
	if got := Score(types.Component{TRL: 3}, nil); got != scoreTRLLow {
		t.Errorf("Score = %g, want %d", got, scoreTRLLow)
	}
}

func TestScoreUsesSupplyChainStock(t *testing.T) {
	comp := types.Component{PartNumber: "X", TRL: 8}
	rec := types.SupplyChainRecord{
		PartNumber: "X",
		Availability: map[string]types.DistributorStock{
			"Mouser": {Stock: 1500},
		},
	}
	if got := Score(comp, &rec); got != scoreTRLHigh+scoreStockHigh {
		t.Errorf("Score = %g, want %d", got, scoreTRLHigh+scoreStockHigh)
	}
}

func TestRecommendTopFive(t *testing.T) {
	components := make([]types.Component, 8)
	for i := range components {
		components[i] = types.Component{
			PartNumber:   string(rune('A' + i)),
			Manufacturer: "Acme",
			TRL:          i + 1,
		}
	}

	recs := Recommend(components, nil, 5)
	if len(recs) != 5 {
		t.Fatalf("len = %d, want 5", len(recs))
	}
	// Best first: highest TRL wins.
	if recs[0].PartNumber != "H" {
		t.Errorf("recs[0] = %q, want H", recs[0].PartNumber)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("scores not descending at %d", i)
		}
	}
}

func TestRecommendRationaleAndProsCons(t *testing.T) {
	components := []types.Component{
		{
			PartNumber:   "GOOD1",
			Manufacturer: "Infineon",
			Category:     "Gate Driver",
			TRL:          9,
			Lifecycle:    types.LifecycleActive,
			Features:     []string{"5kV isolation", "4A drive", "UVLO", "interlock"},
			Applications: []string{"motor drives"},
			Availability: map[string]types.DistributorStock{"Digi-Key": {Stock: 3000}},
		},
		{
			PartNumber:   "WEAK1",
			Manufacturer: "Acme",
			TRL:          4,
			Lifecycle:    types.LifecycleNRND,
		},
	}
	supplyChain := []types.SupplyChainRecord{
		{PartNumber: "WEAK1", Pricing: types.Pricing{UnitPriceUSD: 14.50}},
	}

	recs := Recommend(components, supplyChain, 5)
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}

	good := recs[0]
	if good.PartNumber != "GOOD1" {
		t.Fatalf("recs[0] = %q, want GOOD1", good.PartNumber)
	}
	if !strings.Contains(good.Rationale, "production-ready") || !strings.Contains(good.Rationale, "good availability") {
		t.Errorf("rationale = %q", good.Rationale)
	}
	if len(good.Pros) != 5 {
		t.Errorf("pros = %v, want 5 entries (3 features + 2 derived)", good.Pros)
	}
	if len(good.Cons) != 1 || good.Cons[0] != "None significant" {
		t.Errorf("cons = %v", good.Cons)
	}

	weak := recs[1]
	joined := strings.Join(weak.Cons, "; ")
	for _, want := range []string{"new designs", "Limited availability", "Not yet production-ready", "$14.50"} {
		if !strings.Contains(joined, want) {
			t.Errorf("cons %q missing %q", joined, want)
		}
	}
	if weak.Rationale != "General purpose use" {
		t.Errorf("rationale = %q", weak.Rationale)
	}
}
