// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cluster groups components by category for comparison (stage 8).
// Category string equality is the whole contract; no semantic clustering.
package cluster

import "github.com/pdiddy/ee-scout/pkg/types"

// OtherCategory is the bucket for components without a category.
const OtherCategory = "Other"

// ByCategory groups components into category buckets. Buckets appear in
// first-seen order and each bucket keeps component insertion order.
func ByCategory(components []types.Component) []types.ClusterGroup {
	index := make(map[string]int)
	var groups []types.ClusterGroup

	for _, c := range components {
		category := c.Category
		if category == "" {
			category = OtherCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, types.ClusterGroup{Category: category})
		}
		groups[i].PartNumbers = append(groups[i].PartNumbers, c.PartNumber)
	}
	return groups
}
