// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xref

import (
	"testing"

	"github.com/pdiddy/ee-scout/pkg/types"
)

func TestBuildEdges(t *testing.T) {
	papers := []types.Paper{
		{DOI: "10.1/a", Title: "Survey of gate driver ICs", Abstract: "builds on US10892345 and commercial gate driver parts"},
		{DOI: "10.2/b", Title: "Optics", Abstract: "unrelated"},
	}
	patents := []types.Patent{
		{PatentNumber: "US10892345", Title: "Gate driver with slew control", Abstract: "a gate driver circuit"},
		{PatentNumber: "EP555", Title: "Lens assembly", Abstract: "an optical lens"},
	}
	components := []types.Component{
		{PartNumber: "UCC21520", Category: "Gate Driver"},
		{PartNumber: "LM317", Category: "Regulator"},
	}

	edges := Build(papers, patents, components)

	var cites, implements, discusses int
	for _, e := range edges {
		switch e.Relation {
		case types.RelationCites:
			cites++
			if e.FromID != "10.1/a" || e.ToID != "US10892345" {
				t.Errorf("unexpected cites edge: %+v", e)
			}
		case types.RelationImplements:
			implements++
			if e.ToID != "UCC21520" {
				t.Errorf("unexpected implements edge: %+v", e)
			}
		case types.RelationDiscusses:
			discusses++
		}
	}
	if cites != 1 || implements != 1 || discusses != 1 {
		t.Errorf("edge counts cites/implements/discusses = %d/%d/%d, want 1/1/1", cites, implements, discusses)
	}
}

func TestBuildNoDanglingEdges(t *testing.T) {
	papers := []types.Paper{
		{DOI: "10.1/a", Title: "Mentions US999999", Abstract: "which is not in the result set"},
	}
	// The patent the paper cites was filtered out upstream; with no
	// matching record no edge may be created.
	edges := Build(papers, nil, nil)
	if len(edges) != 0 {
		t.Errorf("edges = %+v, want none", edges)
	}
}

func TestBuildEmptyCategoryNeverMatches(t *testing.T) {
	patents := []types.Patent{
		{PatentNumber: "US1", Title: "anything", Abstract: "text"},
	}
	components := []types.Component{
		{PartNumber: "X1"}, // no category
	}
	if edges := Build(nil, patents, components); len(edges) != 0 {
		t.Errorf("edges = %+v, want none", edges)
	}
}
