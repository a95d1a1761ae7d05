// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter drops records that carry no signal: quality filtering on
// mandatory fields (stage 2), relevance filtering against the query
// (stage 3), and regional filtering/annotation (stage 4).
// Implements: prd001-pipeline R2.1-R2.4, R3.1-R3.3, R4.1-R4.3;
//
//	docs/ARCHITECTURE.md § Filtering.
package filter

import "github.com/pdiddy/ee-scout/pkg/types"

// minAbstractLen is the shortest abstract considered meaningful. Anything
// shorter is usually a truncated snippet or a placeholder.
const minAbstractLen = 50

// PaperValid reports whether a paper carries the mandatory fields: title,
// at least one author, and an abstract longer than minAbstractLen.
func PaperValid(p types.Paper) bool {
	return p.Title != "" && len(p.Authors) > 0 && len(p.Abstract) > minAbstractLen
}

// PatentValid reports whether a patent carries title, abstract, and number.
func PatentValid(p types.Patent) bool {
	return p.Title != "" && p.Abstract != "" && p.PatentNumber != ""
}

// ComponentValid reports whether a component carries part number and
// manufacturer.
func ComponentValid(c types.Component) bool {
	return c.PartNumber != "" && c.Manufacturer != ""
}

// QualityPapers drops papers failing the mandatory-field predicate. Dropped
// records are not flagged or reported; quality filtering is routine data
// cleaning, not a fault.
func QualityPapers(papers []types.Paper) []types.Paper {
	kept := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if PaperValid(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// QualityPatents drops patents failing the mandatory-field predicate.
func QualityPatents(patents []types.Patent) []types.Patent {
	kept := make([]types.Patent, 0, len(patents))
	for _, p := range patents {
		if PatentValid(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// QualityComponents drops components failing the mandatory-field predicate.
func QualityComponents(components []types.Component) []types.Component {
	kept := make([]types.Component, 0, len(components))
	for _, c := range components {
		if ComponentValid(c) {
			kept = append(kept, c)
		}
	}
	return kept
}
