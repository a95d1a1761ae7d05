// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank orders each entity type by its type-specific criteria and
// truncates to the configured caps (stage 7), and scores components for
// the recommendation shortlist.
// Implements: prd003-synthesis R2.1-R2.4;
//
//	docs/ARCHITECTURE.md § Ranking.
package rank

import (
	"sort"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// Papers sorts papers newest first and truncates to max. Papers with an
// unknown year sort last. The sort is stable so equal years keep input
// order.
func Papers(papers []types.Paper, max int) []types.Paper {
	ranked := make([]types.Paper, len(papers))
	copy(ranked, papers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Year > ranked[j].Year
	})
	return truncate(ranked, max)
}

// Patents sorts patents by filing date, newest first, and truncates to max.
// ISO dates are zero-padded, so plain string comparison orders
// chronologically; patents without a filing date sort last.
func Patents(patents []types.Patent, max int) []types.Patent {
	ranked := make([]types.Patent, len(patents))
	copy(ranked, patents)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FilingDate > ranked[j].FilingDate
	})
	return truncate(ranked, max)
}

// Components sorts components by TRL, production-ready first, and
// truncates to max. Ties keep stable input order.
func Components(components []types.Component, max int) []types.Component {
	ranked := make([]types.Component, len(components))
	copy(ranked, components)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TRL > ranked[j].TRL
	})
	return truncate(ranked, max)
}

func truncate[T any](list []T, max int) []T {
	if max > 0 && len(list) > max {
		return list[:max]
	}
	return list
}
