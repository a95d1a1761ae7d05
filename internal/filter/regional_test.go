// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"testing"

	"github.com/pdiddy/ee-scout/pkg/types"
)

func TestManufacturerRegion(t *testing.T) {
	tests := []struct {
		manufacturer string
		want         string
	}{
		{"Infineon Technologies AG", "EU"},
		{"STMicroelectronics N.V.", "EU"},
		{"Renesas Electronics", "Asia"},
		{"SK Hynix", "Asia"},
		{"Texas Instruments", "US"},
		{"Acme Semiconductors", RegionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.manufacturer, func(t *testing.T) {
			if got := DefaultRegionTable.ManufacturerRegion(tt.manufacturer); got != tt.want {
				t.Errorf("ManufacturerRegion(%q) = %q, want %q", tt.manufacturer, got, tt.want)
			}
		})
	}
}

func TestRegionalComponentsAdvisory(t *testing.T) {
	components := []types.Component{
		{PartNumber: "A", Manufacturer: "Infineon"},
		{PartNumber: "B", Manufacturer: "Acme"}, // unknown origin, still kept
		{PartNumber: "C", Manufacturer: "Acme", Availability: map[string]types.DistributorStock{
			"Farnell": {Stock: 10, Region: "EU"},
		}},
	}

	kept := RegionalComponents(components, []string{"EU"}, DefaultRegionTable, false)
	if len(kept) != 3 {
		t.Fatalf("advisory mode dropped components: len = %d, want 3", len(kept))
	}
	if kept[0].ManufacturerRegion != "EU" || len(kept[0].Regions) != 1 {
		t.Errorf("component A not annotated: %+v", kept[0])
	}
	if kept[1].ManufacturerRegion != RegionUnknown || len(kept[1].Regions) != 0 {
		t.Errorf("component B annotation wrong: %+v", kept[1])
	}
	if len(kept[2].Regions) != 1 || kept[2].Regions[0] != "EU" {
		t.Errorf("distributor region not picked up: %+v", kept[2])
	}
}

func TestRegionalComponentsStrict(t *testing.T) {
	components := []types.Component{
		{PartNumber: "A", Manufacturer: "Infineon"},
		{PartNumber: "B", Manufacturer: "Acme"},
	}
	kept := RegionalComponents(components, []string{"EU"}, DefaultRegionTable, true)
	if len(kept) != 1 || kept[0].PartNumber != "A" {
		t.Errorf("strict mode survivors: %+v", kept)
	}
}

func TestRegionalSupplyChain(t *testing.T) {
	records := []types.SupplyChainRecord{
		{PartNumber: "A", Availability: map[string]types.DistributorStock{
			"Mouser": {Stock: 100, Region: "US"},
		}},
		{PartNumber: "B", Availability: map[string]types.DistributorStock{
			"LCSC": {Stock: 500, Region: "Asia"},
		}},
	}

	kept := RegionalSupplyChain(records, []string{"Asia"})
	if len(kept) != 1 || kept[0].PartNumber != "B" {
		t.Errorf("survivors: %+v", kept)
	}

	// No targets: pass-through.
	if kept := RegionalSupplyChain(records, nil); len(kept) != 2 {
		t.Errorf("no-target len = %d, want 2", len(kept))
	}
}
