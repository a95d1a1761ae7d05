// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"slices"
	"strings"

	"github.com/pdiddy/ee-scout/pkg/types"
)

// RegionEntry maps one region to the manufacturer-name substrings that
// identify it. Matching is case-insensitive substring containment, so
// "STMicroelectronics N.V." matches "stmicroelectronics".
type RegionEntry struct {
	Region        string
	Manufacturers []string
}

// RegionTable is an ordered manufacturer→region lookup. Order matters:
// the first entry whose substring matches wins.
type RegionTable []RegionEntry

// DefaultRegionTable is the built-in manufacturer→region mapping. Injected
// as a value so tests can substitute their own table.
var DefaultRegionTable = RegionTable{
	{Region: "EU", Manufacturers: []string{"infineon", "stmicroelectronics", "nxp", "philips"}},
	{Region: "Asia", Manufacturers: []string{"renesas", "rohm", "toshiba", "panasonic", "samsung", "sk hynix", "mediatek"}},
	{Region: "US", Manufacturers: []string{"texas instruments", "analog devices", "microchip", "on semiconductor", "maxim", "intel"}},
}

// RegionUnknown marks manufacturers absent from the table. Unknown origin
// never excludes a component.
const RegionUnknown = "Unknown"

// ManufacturerRegion returns the region a manufacturer maps to, or
// RegionUnknown when it appears in no table entry.
func (t RegionTable) ManufacturerRegion(manufacturer string) string {
	mfr := strings.ToLower(manufacturer)
	for _, entry := range t {
		for _, sub := range entry.Manufacturers {
			if strings.Contains(mfr, sub) {
				return entry.Region
			}
		}
	}
	return RegionUnknown
}

// RegionalComponents annotates each component with its manufacturer region
// and the target regions it matched (manufacturer origin or distributor
// presence). Matching is advisory for manufacturer origin: components stay
// in the result set regardless, unless strict is set, in which case
// components matching no target region are dropped. With no target regions
// the stage only annotates.
func RegionalComponents(components []types.Component, targets []string, table RegionTable, strict bool) []types.Component {
	kept := make([]types.Component, 0, len(components))
	for _, c := range components {
		c.ManufacturerRegion = table.ManufacturerRegion(c.Manufacturer)
		c.Regions = nil
		if slices.Contains(targets, c.ManufacturerRegion) {
			c.Regions = append(c.Regions, c.ManufacturerRegion)
		}
		for _, d := range c.Availability {
			if d.Region != "" && slices.Contains(targets, d.Region) && !slices.Contains(c.Regions, d.Region) {
				c.Regions = append(c.Regions, d.Region)
			}
		}
		slices.Sort(c.Regions)

		if strict && len(targets) > 0 && len(c.Regions) == 0 {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// RegionalSupplyChain keeps records with at least one distributor in a
// target region. Unlike manufacturer origin this is exclusionary: stock a
// researcher cannot buy in their region is not availability. With no target
// regions every record is kept.
func RegionalSupplyChain(records []types.SupplyChainRecord, targets []string) []types.SupplyChainRecord {
	if len(targets) == 0 {
		return records
	}
	kept := make([]types.SupplyChainRecord, 0, len(records))
	for _, r := range records {
		for _, d := range r.Availability {
			if slices.Contains(targets, d.Region) {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept
}
