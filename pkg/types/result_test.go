// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestFindingCountsTotal(t *testing.T) {
	c := FindingCounts{Papers: 2, Patents: 1, Components: 3, SupplyChain: 1}
	if c.Total() != 7 {
		t.Errorf("Total() = %d, want 7", c.Total())
	}
}

func TestSummaryChunks(t *testing.T) {
	r := Result{
		Processed: ProcessedSet{
			Papers: []Paper{
				{Title: "P1"}, {Title: "P2"}, {Title: "P3"}, {Title: "P4"},
			},
			Components: []Component{{PartNumber: "A"}},
		},
		Synthesis: SynthesisResult{Summary: "done"},
	}

	chunks := r.SummaryChunks()
	if len(chunks) != 3 {
		t.Fatalf("len = %d, want 3 (papers, components, synthesis)", len(chunks))
	}

	papers := chunks[0]
	if papers.Type != "papers" || papers.Count != 4 {
		t.Errorf("papers chunk = %+v", papers)
	}
	// Preview is capped at the first three titles.
	if len(papers.Preview) != 3 || papers.Preview[0] != "P1" {
		t.Errorf("preview = %v", papers.Preview)
	}

	if chunks[1].Type != "components" || chunks[1].Count != 1 {
		t.Errorf("components chunk = %+v", chunks[1])
	}
	if chunks[2].Type != "synthesis" || chunks[2].Preview[0] != "done" {
		t.Errorf("synthesis chunk = %+v", chunks[2])
	}
}

func TestSummaryChunksEmptyResult(t *testing.T) {
	if chunks := (Result{}).SummaryChunks(); len(chunks) != 0 {
		t.Errorf("chunks = %+v, want none", chunks)
	}
}
