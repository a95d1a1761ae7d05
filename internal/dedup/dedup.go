// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup collapses duplicate records per entity type (stage 1).
// Implements: prd001-pipeline R1.1-R1.4;
//
//	docs/ARCHITECTURE.md § Deduplication.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// PaperKey returns the identity key for a paper: its DOI, or a stable
// content hash of the normalized title when the DOI is absent. The hash is
// SHA-256 so the same title yields the same key across runs and hosts.
func PaperKey(p types.Paper) string {
	if p.DOI != "" {
		return p.DOI
	}
	sum := sha256.Sum256([]byte(normalizeTitle(p.Title)))
	return "title:" + hex.EncodeToString(sum[:])
}

// normalizeTitle lowercases the title, strips punctuation, and collapses
// runs of whitespace, so formatting variants of the same title collide.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Papers removes duplicate papers. The first occurrence of each identity
// key wins; later duplicates are dropped without field merging, and the
// surviving list keeps first-seen order.
func Papers(papers []types.Paper) []types.Paper {
	seen := make(map[string]bool, len(papers))
	unique := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		key := PaperKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	return unique
}

// Patents removes duplicate patents by patent number, first seen wins.
// Patents without a number carry no identity and are dropped here; they
// would not survive the quality filter either.
func Patents(patents []types.Patent) []types.Patent {
	seen := make(map[string]bool, len(patents))
	unique := make([]types.Patent, 0, len(patents))
	for _, p := range patents {
		if p.PatentNumber == "" || seen[p.PatentNumber] {
			continue
		}
		seen[p.PatentNumber] = true
		unique = append(unique, p)
	}
	return unique
}

// Components removes duplicate components by part number, first seen wins.
func Components(components []types.Component) []types.Component {
	seen := make(map[string]bool, len(components))
	unique := make([]types.Component, 0, len(components))
	for _, c := range components {
		if c.PartNumber == "" || seen[c.PartNumber] {
			continue
		}
		seen[c.PartNumber] = true
		unique = append(unique, c)
	}
	return unique
}

// SupplyChain removes duplicate supply-chain records by part number, first
// seen wins.
func SupplyChain(records []types.SupplyChainRecord) []types.SupplyChainRecord {
	seen := make(map[string]bool, len(records))
	unique := make([]types.SupplyChainRecord, 0, len(records))
	for _, r := range records {
		if r.PartNumber == "" || seen[r.PartNumber] {
			continue
		}
		seen[r.PartNumber] = true
		unique = append(unique, r)
	}
	return unique
}
