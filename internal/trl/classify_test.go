// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trl

import (
	"strings"
	"testing"

	"github.com/pdiddy/ee-scout/pkg/types"
)

func classifier() *Classifier {
	return NewClassifier(DefaultTables)
}

func TestComponentActiveHighStock(t *testing.T) {
	comp := types.Component{
		PartNumber: "IRF540N",
		Lifecycle:  types.LifecycleActive,
		Availability: map[string]types.DistributorStock{
			"Digi-Key": {Stock: 800},
			"Mouser":   {Stock: 500},
			"Farnell":  {Stock: 200},
		},
	}

	cl := classifier().Component(comp)
	if cl.TRL != 9 {
		t.Errorf("TRL = %d, want 9", cl.TRL)
	}
	// 0.6 base + 0.2 lifecycle + 0.1 availability = 0.9.
	if cl.Confidence < 0.8 {
		t.Errorf("confidence = %.2f, want >= 0.8", cl.Confidence)
	}
	if !strings.Contains(cl.Justification, "1500 units across 3 distributors") {
		t.Errorf("justification = %q", cl.Justification)
	}
}

func TestComponentPaths(t *testing.T) {
	tests := []struct {
		name     string
		comp     types.Component
		wantTRL  int
		wantConf float64
	}{
		{
			name: "active moderate stock",
			comp: types.Component{Lifecycle: types.LifecycleActive, Availability: map[string]types.DistributorStock{
				"Mouser": {Stock: 500},
			}},
			wantTRL:  8,
			wantConf: 0.9,
		},
		{
			name:     "active no stock data",
			comp:     types.Component{Lifecycle: types.LifecycleActive},
			wantTRL:  7,
			wantConf: 0.8,
		},
		{
			name:     "nrnd",
			comp:     types.Component{Lifecycle: types.LifecycleNRND},
			wantTRL:  8,
			wantConf: 0.8,
		},
		{
			name:     "obsolete",
			comp:     types.Component{Lifecycle: types.LifecycleObsolete},
			wantTRL:  9,
			wantConf: 0.8,
		},
		{
			name:     "datasheet floor",
			comp:     types.Component{Lifecycle: types.LifecycleUnknown, DatasheetURL: "https://example.com/ds.pdf"},
			wantTRL:  7,
			wantConf: 0.7,
		},
		{
			name:     "no signal defaults mid-range",
			comp:     types.Component{},
			wantTRL:  5,
			wantConf: 0.6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := classifier().Component(tt.comp)
			if cl.TRL != tt.wantTRL {
				t.Errorf("TRL = %d, want %d", cl.TRL, tt.wantTRL)
			}
			if diff := cl.Confidence - tt.wantConf; diff > 0.001 || diff < -0.001 {
				t.Errorf("confidence = %.2f, want %.2f", cl.Confidence, tt.wantConf)
			}
		})
	}
}

func TestComponentConfidenceCapped(t *testing.T) {
	comp := types.Component{
		Lifecycle:    types.LifecycleActive,
		DatasheetURL: "https://example.com/ds.pdf",
		Availability: map[string]types.DistributorStock{
			"Digi-Key": {Stock: 5000},
			"Mouser":   {Stock: 5000},
		},
	}
	cl := classifier().Component(comp)
	if cl.Confidence > 1.0 {
		t.Errorf("confidence = %.2f, want <= 1.0", cl.Confidence)
	}
}

func TestPaperProofOfConcept(t *testing.T) {
	paper := types.Paper{
		Title:    "A proof of concept for resonant gate drive",
		Abstract: "We present a proof of concept built in our laboratory.",
	}
	cl := classifier().Paper(paper)
	if cl.TRL != 3 {
		t.Errorf("TRL = %d, want 3", cl.TRL)
	}
	if !strings.Contains(cl.Justification, "proof of concept") {
		t.Errorf("justification = %q", cl.Justification)
	}
}

func TestPaperCappedAtSix(t *testing.T) {
	paper := types.Paper{
		Title:    "Deployed commercial converter systems",
		Abstract: "mass production results from a deployed commercial platform",
	}
	cl := classifier().Paper(paper)
	if cl.TRL != 6 {
		t.Errorf("TRL = %d, want 6 (capped)", cl.TRL)
	}
	if !strings.Contains(cl.Justification, "Adjusted") {
		t.Errorf("justification should note the cap adjustment: %q", cl.Justification)
	}
	if cl.Confidence > 0.8 {
		t.Errorf("confidence = %.2f, want <= 0.8", cl.Confidence)
	}
}

func TestPaperDefault(t *testing.T) {
	paper := types.Paper{Title: "On something unrelated", Abstract: "with plain wording"}
	cl := classifier().Paper(paper)
	if cl.TRL != 2 {
		t.Errorf("TRL = %d, want 2", cl.TRL)
	}
	if cl.Confidence != 0.5 {
		t.Errorf("confidence = %.2f, want 0.5", cl.Confidence)
	}
}

func TestPatentPendingNoIndicators(t *testing.T) {
	patent := types.Patent{
		PatentNumber: "US1",
		Title:        "Novel switching arrangement",
		Abstract:     "An arrangement of switches.",
		Status:       types.PatentPending,
	}
	cl := classifier().Patent(patent)
	if cl.TRL != 4 {
		t.Errorf("TRL = %d, want 4", cl.TRL)
	}
	if cl.Confidence != 0.6 {
		t.Errorf("confidence = %.2f, want 0.6", cl.Confidence)
	}
}

func TestPatentGrantedWithUpgrade(t *testing.T) {
	patent := types.Patent{
		PatentNumber: "US2",
		Title:        "Qualified manufacturing process",
		Abstract:     "A production process, qualified and certified.",
		Status:       types.PatentGranted,
	}
	cl := classifier().Patent(patent)
	if cl.TRL != 8 {
		t.Errorf("TRL = %d, want 8", cl.TRL)
	}
	// 0.7 base + 0.1 upgrade = 0.8.
	if diff := cl.Confidence - 0.8; diff > 0.001 || diff < -0.001 {
		t.Errorf("confidence = %.2f, want 0.8", cl.Confidence)
	}
}

func TestPatentCappedAtSeven(t *testing.T) {
	patent := types.Patent{
		PatentNumber: "US3",
		Title:        "Deployed commercial system",
		Abstract:     "proven in mass production, deployed commercially",
		Status:       types.PatentGranted,
	}
	cl := classifier().Patent(patent)
	if cl.TRL != 7 {
		t.Errorf("TRL = %d, want 7 (capped)", cl.TRL)
	}
	if cl.Confidence > 0.85 {
		t.Errorf("confidence = %.2f, want <= 0.85", cl.Confidence)
	}
}

func TestClassificationDeterministic(t *testing.T) {
	paper := types.Paper{Title: "prototype pilot study", Abstract: "a field test and pilot"}
	a := classifier().Paper(paper)
	b := classifier().Paper(paper)
	if a != b {
		t.Errorf("classification not reproducible: %+v vs %+v", a, b)
	}
}

func TestRangeInvariant(t *testing.T) {
	inputs := []types.Component{
		{},
		{Lifecycle: types.LifecycleActive},
		{Lifecycle: "weird"},
		{DatasheetURL: "x"},
	}
	for _, comp := range inputs {
		cl := classifier().Component(comp)
		if cl.TRL < MinTRL || cl.TRL > MaxTRL {
			t.Errorf("TRL %d out of range for %+v", cl.TRL, comp)
		}
		if cl.Confidence < 0 || cl.Confidence > 1 {
			t.Errorf("confidence %.2f out of range for %+v", cl.Confidence, comp)
		}
	}
}

func TestInjectedTables(t *testing.T) {
	tables := Tables{
		Definitions: DefaultTables.Definitions,
		Indicators: map[int][]string{
			9: {"frobnicated"},
		},
	}
	paper := types.Paper{Title: "a frobnicated device", Abstract: "entirely frobnicated"}
	cl := NewClassifier(tables).Paper(paper)
	if cl.TRL != 6 {
		t.Errorf("TRL = %d, want 6 (match at 9, capped)", cl.TRL)
	}
}
