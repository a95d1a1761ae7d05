// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cluster

import (
	"reflect"
	"testing"

	"github.com/pdiddy/ee-scout/pkg/types"
)

func TestByCategory(t *testing.T) {
	components := []types.Component{
		{PartNumber: "A", Category: "Gate Driver"},
		{PartNumber: "B", Category: "MOSFET"},
		{PartNumber: "C", Category: "Gate Driver"},
		{PartNumber: "D"}, // no category
	}

	groups := ByCategory(components)
	want := []types.ClusterGroup{
		{Category: "Gate Driver", PartNumbers: []string{"A", "C"}},
		{Category: "MOSFET", PartNumbers: []string{"B"}},
		{Category: "Other", PartNumbers: []string{"D"}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("groups = %+v, want %+v", groups, want)
	}
}

func TestByCategoryEmpty(t *testing.T) {
	if groups := ByCategory(nil); len(groups) != 0 {
		t.Errorf("groups = %+v, want none", groups)
	}
}
