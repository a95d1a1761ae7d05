// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xref detects textual links between papers, patents, and
// components (stage 6). A link exists when one entity's identity or
// category text appears verbatim (case-insensitive) inside another's
// title+abstract. Edges are built only between records in the current
// result set, so no dangling references can exist.
//
// The nested scans are quadratic, which is fine at pipeline scale (<=20
// papers, <=20 patents, <=30 components). Larger sets would warrant a
// substring index such as Aho-Corasick over the identifiers.
// Implements: prd003-synthesis R1.1-R1.3;
//
//	docs/ARCHITECTURE.md § Cross-Referencing.
package xref

import (
	"strings"

	"github.com/pdiddy/ee-scout/internal/dedup"
	"github.com/pdiddy/ee-scout/pkg/types"
)

// Entity type labels used in cross-reference edges.
const (
	TypePaper     = "paper"
	TypePatent    = "patent"
	TypeComponent = "component"
)

// Build scans the post-filter record set and returns all detected edges:
// paper cites patent, patent implements component, paper discusses
// component. Edge order is deterministic: outer list order, then inner.
func Build(papers []types.Paper, patents []types.Patent, components []types.Component) []types.CrossReference {
	var edges []types.CrossReference

	// Papers citing patents by number.
	for _, paper := range papers {
		text := strings.ToLower(paper.Title + " " + paper.Abstract)
		for _, patent := range patents {
			num := strings.ToLower(patent.PatentNumber)
			if num != "" && strings.Contains(text, num) {
				edges = append(edges, types.CrossReference{
					FromID:   dedup.PaperKey(paper),
					FromType: TypePaper,
					ToID:     patent.PatentNumber,
					ToType:   TypePatent,
					Relation: types.RelationCites,
				})
			}
		}
	}

	// Patents describing component categories.
	for _, patent := range patents {
		text := strings.ToLower(patent.Title + " " + patent.Abstract)
		for _, comp := range components {
			cat := strings.ToLower(comp.Category)
			if cat != "" && strings.Contains(text, cat) {
				edges = append(edges, types.CrossReference{
					FromID:   patent.PatentNumber,
					FromType: TypePatent,
					ToID:     comp.PartNumber,
					ToType:   TypeComponent,
					Relation: types.RelationImplements,
				})
			}
		}
	}

	// Papers discussing component categories.
	for _, paper := range papers {
		text := strings.ToLower(paper.Title + " " + paper.Abstract)
		for _, comp := range components {
			cat := strings.ToLower(comp.Category)
			if cat != "" && strings.Contains(text, cat) {
				edges = append(edges, types.CrossReference{
					FromID:   dedup.PaperKey(paper),
					FromType: TypePaper,
					ToID:     comp.PartNumber,
					ToType:   TypeComponent,
					Relation: types.RelationDiscusses,
				})
			}
		}
	}

	return edges
}
