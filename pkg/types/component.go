// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Lifecycle is the manufacturer-declared production status of a component.
type Lifecycle string

const (
	LifecycleActive   Lifecycle = "Active"
	LifecycleNRND     Lifecycle = "NRND"
	LifecycleObsolete Lifecycle = "Obsolete"
	LifecycleUnknown  Lifecycle = "Unknown"
)

// DistributorStock describes one distributor's availability for a part.
type DistributorStock struct {
	// Stock is the unit count currently in stock.
	Stock int `json:"stock" yaml:"stock"`

	// LeadTimeWeeks is the restock lead time in weeks.
	LeadTimeWeeks int `json:"lead_time_weeks,omitempty" yaml:"lead_time_weeks,omitempty"`

	// Region is the distributor's region (e.g. "EU", "Asia", "US").
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// Component holds the metadata of an electronic component.
// PartNumber is the identity key; Manufacturer is required by the quality
// filter. Per prd001-pipeline R2.3.
type Component struct {
	// PartNumber is the manufacturer part number (e.g. "STM32G474RET6").
	PartNumber string `json:"part_number" yaml:"part_number"`

	// Manufacturer is the producing company.
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`

	// Category is the component family (e.g. "Gate Driver", "MOSFET").
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Lifecycle is the production status: Active, NRND, Obsolete, or Unknown.
	Lifecycle Lifecycle `json:"lifecycle,omitempty" yaml:"lifecycle,omitempty"`

	// Specifications maps parameter names to values. Numeric parameters
	// (e.g. "efficiency") feed the recommendation score.
	Specifications map[string]any `json:"specifications,omitempty" yaml:"specifications,omitempty"`

	// Features lists marketing/datasheet feature bullets in source order.
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`

	// Applications lists documented use cases in source order.
	Applications []string `json:"applications,omitempty" yaml:"applications,omitempty"`

	// DatasheetURL points at the published datasheet, if any.
	DatasheetURL string `json:"datasheet_url,omitempty" yaml:"datasheet_url,omitempty"`

	// Availability maps distributor name to stock data.
	Availability map[string]DistributorStock `json:"availability,omitempty" yaml:"availability,omitempty"`

	// TRL is the classified technology readiness level (1-9). Zero until
	// the maturity classifier has run.
	TRL int `json:"trl,omitempty" yaml:"trl,omitempty"`

	// TRLConfidence is the classification confidence in [0,1].
	TRLConfidence float64 `json:"trl_confidence,omitempty" yaml:"trl_confidence,omitempty"`

	// TRLJustification is the deterministic, human-readable reasoning
	// behind the classification.
	TRLJustification string `json:"trl_justification,omitempty" yaml:"trl_justification,omitempty"`

	// ManufacturerRegion is the region the manufacturer maps to
	// ("EU", "Asia", "US", or "Unknown"). Set by the regional filter.
	ManufacturerRegion string `json:"manufacturer_region,omitempty" yaml:"manufacturer_region,omitempty"`

	// Regions lists the target regions the component matched. Set by the
	// regional filter; advisory, never a drop criterion for components.
	Regions []string `json:"regions,omitempty" yaml:"regions,omitempty"`
}

// SpecFloat returns the named specification as a float64. It accepts
// float64 and int values; anything else reports ok=false.
func (c Component) SpecFloat(name string) (float64, bool) {
	v, ok := c.Specifications[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// TotalStock sums stock across all distributors.
func (c Component) TotalStock() int {
	total := 0
	for _, d := range c.Availability {
		total += d.Stock
	}
	return total
}

// StockedDistributors counts distributors with stock on hand.
func (c Component) StockedDistributors() int {
	n := 0
	for _, d := range c.Availability {
		if d.Stock > 0 {
			n++
		}
	}
	return n
}

// PriceBreak is one quantity tier of a distributor price schedule.
type PriceBreak struct {
	Quantity     int     `json:"quantity" yaml:"quantity"`
	UnitPriceUSD float64 `json:"unit_price_usd" yaml:"unit_price_usd"`
}

// Pricing holds distributor pricing for a part.
type Pricing struct {
	// UnitPriceUSD is the single-unit price.
	UnitPriceUSD float64 `json:"unit_price_usd,omitempty" yaml:"unit_price_usd,omitempty"`

	// PriceBreaks lists quantity tiers in ascending quantity order.
	PriceBreaks []PriceBreak `json:"price_breaks,omitempty" yaml:"price_breaks,omitempty"`
}

// SupplyChainRecord holds distributor stock and pricing for a part.
// PartNumber is the identity key and correlates the record to a Component.
type SupplyChainRecord struct {
	// PartNumber is the manufacturer part number.
	PartNumber string `json:"part_number" yaml:"part_number"`

	// Lifecycle is the production status as reported by the supply-chain source.
	Lifecycle Lifecycle `json:"lifecycle,omitempty" yaml:"lifecycle,omitempty"`

	// Availability maps distributor name to stock data.
	Availability map[string]DistributorStock `json:"availability,omitempty" yaml:"availability,omitempty"`

	// Pricing holds unit pricing and quantity breaks.
	Pricing Pricing `json:"pricing,omitempty" yaml:"pricing,omitempty"`

	// OverallHealth is the source's own risk assessment (e.g. "at_risk").
	OverallHealth string `json:"overall_health,omitempty" yaml:"overall_health,omitempty"`
}

// TotalStock sums stock across all distributors.
func (r SupplyChainRecord) TotalStock() int {
	total := 0
	for _, d := range r.Availability {
		total += d.Stock
	}
	return total
}
