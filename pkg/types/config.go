// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProcessConfig holds the tunable parameters of the result-processing
// pipeline. Zero values select the documented defaults, so an empty config
// is valid. Per prd001-pipeline R5.1-R5.4.
type ProcessConfig struct {
	// RelevanceThreshold is the fraction of query terms that must appear
	// in a paper or patent text for it to survive the relevance filter.
	// Default 0.3. The low bar is deliberate: dropping a truly relevant
	// record costs more than keeping a marginal one.
	RelevanceThreshold float64 `json:"relevance_threshold" yaml:"relevance_threshold"`

	// StrictRegional drops components whose manufacturer region is outside
	// the target regions. Default false: manufacturer origin is advisory
	// and only annotates the record.
	StrictRegional bool `json:"strict_regional" yaml:"strict_regional"`

	// MaxPapers caps the ranked paper list. Default 20.
	MaxPapers int `json:"max_papers" yaml:"max_papers"`

	// MaxPatents caps the ranked patent list. Default 20.
	MaxPatents int `json:"max_patents" yaml:"max_patents"`

	// MaxComponents caps the ranked component list. Default 30.
	MaxComponents int `json:"max_components" yaml:"max_components"`

	// MaxRecommendations caps the component shortlist. Default 5.
	MaxRecommendations int `json:"max_recommendations" yaml:"max_recommendations"`

	// HealthyStockThreshold is the total unit count above which the
	// supply chain is assessed "healthy". Default 5000.
	HealthyStockThreshold int `json:"healthy_stock_threshold" yaml:"healthy_stock_threshold"`

	// RecentWindowYears is the lookback window for trend detection.
	// Default 2.
	RecentWindowYears int `json:"recent_window_years" yaml:"recent_window_years"`
}

// Default values for ProcessConfig.
const (
	DefaultRelevanceThreshold    = 0.3
	DefaultMaxPapers             = 20
	DefaultMaxPatents            = 20
	DefaultMaxComponents         = 30
	DefaultMaxRecommendations    = 5
	DefaultHealthyStockThreshold = 5000
	DefaultRecentWindowYears     = 2
)

// WithDefaults returns a copy of the config with zero fields replaced by
// the documented defaults.
func (c ProcessConfig) WithDefaults() ProcessConfig {
	if c.RelevanceThreshold <= 0 {
		c.RelevanceThreshold = DefaultRelevanceThreshold
	}
	if c.MaxPapers <= 0 {
		c.MaxPapers = DefaultMaxPapers
	}
	if c.MaxPatents <= 0 {
		c.MaxPatents = DefaultMaxPatents
	}
	if c.MaxComponents <= 0 {
		c.MaxComponents = DefaultMaxComponents
	}
	if c.MaxRecommendations <= 0 {
		c.MaxRecommendations = DefaultMaxRecommendations
	}
	if c.HealthyStockThreshold <= 0 {
		c.HealthyStockThreshold = DefaultHealthyStockThreshold
	}
	if c.RecentWindowYears <= 0 {
		c.RecentWindowYears = DefaultRecentWindowYears
	}
	return c
}

// StoreConfig holds settings for the result store.
type StoreConfig struct {
	// StoreDir is the base directory for the store (contains results.db).
	StoreDir string `json:"store_dir" yaml:"store_dir"`

	// MaxRuns caps retained runs; when set, saving prunes the oldest runs
	// beyond the limit. Zero keeps everything.
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}
