// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"reflect"
	"testing"

	"github.com/pdiddy/ee-scout/pkg/types"
)

func TestPapersFirstSeenWins(t *testing.T) {
	papers := []types.Paper{
		{DOI: "10.1/x", Title: "GaN converters", Abstract: "first version"},
		{DOI: "10.1/x", Title: "GaN converters", Abstract: "different abstract"},
		{DOI: "10.2/y", Title: "SiC modules"},
	}

	unique := Papers(papers)
	if len(unique) != 2 {
		t.Fatalf("len = %d, want 2", len(unique))
	}
	// No merge: the first-seen record survives untouched.
	if unique[0].Abstract != "first version" {
		t.Errorf("abstract = %q, want first-seen record", unique[0].Abstract)
	}
	if unique[1].DOI != "10.2/y" {
		t.Errorf("order not preserved: second survivor is %q", unique[1].DOI)
	}
}

func TestPapersTitleHashFallback(t *testing.T) {
	papers := []types.Paper{
		{Title: "Wide Bandgap   Semiconductors"},
		{Title: "wide bandgap semiconductors"}, // same title, different case/spacing
		{Title: "Something else entirely"},
	}

	unique := Papers(papers)
	if len(unique) != 2 {
		t.Errorf("len = %d, want 2 (normalized titles collide)", len(unique))
	}
}

func TestPaperKeyStable(t *testing.T) {
	p := types.Paper{Title: "Stable Title"}
	if PaperKey(p) != PaperKey(p) {
		t.Error("key not deterministic")
	}
	withDOI := types.Paper{DOI: "10.1/z", Title: "Stable Title"}
	if PaperKey(withDOI) != "10.1/z" {
		t.Errorf("key = %q, want DOI", PaperKey(withDOI))
	}
}

func TestPapersIdempotent(t *testing.T) {
	papers := []types.Paper{
		{DOI: "10.1/a"},
		{DOI: "10.1/a"},
		{Title: "no doi"},
		{Title: "no doi"},
	}
	once := Papers(papers)
	twice := Papers(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("not idempotent: %v != %v", once, twice)
	}
}

func TestPatents(t *testing.T) {
	patents := []types.Patent{
		{PatentNumber: "US111", Title: "A"},
		{PatentNumber: "US111", Title: "B"},
		{PatentNumber: "", Title: "keyless"},
		{PatentNumber: "EP222", Title: "C"},
	}
	unique := Patents(patents)
	if len(unique) != 2 {
		t.Fatalf("len = %d, want 2", len(unique))
	}
	if unique[0].Title != "A" || unique[1].PatentNumber != "EP222" {
		t.Errorf("unexpected survivors: %+v", unique)
	}
}

func TestComponentsAndSupplyChain(t *testing.T) {
	components := []types.Component{
		{PartNumber: "LM5155", Manufacturer: "TI"},
		{PartNumber: "LM5155", Manufacturer: "Texas Instruments"},
		{PartNumber: "TPS5430", Manufacturer: "TI"},
	}
	if got := Components(components); len(got) != 2 {
		t.Errorf("components len = %d, want 2", len(got))
	}

	records := []types.SupplyChainRecord{
		{PartNumber: "LM5155"},
		{PartNumber: "LM5155"},
	}
	if got := SupplyChain(records); len(got) != 1 {
		t.Errorf("supply chain len = %d, want 1", len(got))
	}
}
