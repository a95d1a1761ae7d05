// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"strings"
	"testing"

	"github.com/pdiddy/ee-scout/pkg/types"
)

var longAbstract = strings.Repeat("wide bandgap power conversion ", 4)

func TestPaperValid(t *testing.T) {
	tests := []struct {
		name  string
		paper types.Paper
		want  bool
	}{
		{"complete", types.Paper{Title: "T", Authors: []string{"A"}, Abstract: longAbstract}, true},
		{"missing title", types.Paper{Authors: []string{"A"}, Abstract: longAbstract}, false},
		{"no authors", types.Paper{Title: "T", Abstract: longAbstract}, false},
		{"short abstract", types.Paper{Title: "T", Authors: []string{"A"}, Abstract: "too short"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaperValid(tt.paper); got != tt.want {
				t.Errorf("PaperValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatentValid(t *testing.T) {
	tests := []struct {
		name   string
		patent types.Patent
		want   bool
	}{
		{"complete", types.Patent{PatentNumber: "US1", Title: "T", Abstract: "A"}, true},
		{"missing number", types.Patent{Title: "T", Abstract: "A"}, false},
		{"missing abstract", types.Patent{PatentNumber: "US1", Title: "T"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PatentValid(tt.patent); got != tt.want {
				t.Errorf("PatentValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQualityComponentsDropsKeyless(t *testing.T) {
	components := []types.Component{
		{PartNumber: "LM5155", Manufacturer: "Texas Instruments"},
		{Manufacturer: "Texas Instruments"}, // no part number
		{PartNumber: "TPS5430"},             // no manufacturer
	}
	kept := QualityComponents(components)
	if len(kept) != 1 {
		t.Fatalf("len = %d, want 1", len(kept))
	}
	if kept[0].PartNumber != "LM5155" {
		t.Errorf("kept %q, want LM5155", kept[0].PartNumber)
	}
}
