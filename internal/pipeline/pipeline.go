// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs raw research findings through the ten-stage
// processing pipeline and assembles the final result.
// Implements: prd001-pipeline (R1-R5);
//
//	docs/ARCHITECTURE.md § Pipeline.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/ee-scout/internal/cluster"
	"github.com/pdiddy/ee-scout/internal/dedup"
	"github.com/pdiddy/ee-scout/internal/filter"
	"github.com/pdiddy/ee-scout/internal/rank"
	"github.com/pdiddy/ee-scout/internal/synth"
	"github.com/pdiddy/ee-scout/internal/trl"
	"github.com/pdiddy/ee-scout/internal/xref"
	"github.com/pdiddy/ee-scout/pkg/types"
)

// pipelineStages is the fixed stage count reported in result metadata.
const pipelineStages = 10

// Input carries the raw findings and the query context that produced them.
type Input struct {
	Query       types.QueryContext        `json:"query" yaml:"query"`
	Papers      []types.Paper             `json:"papers" yaml:"papers"`
	Patents     []types.Patent            `json:"patents" yaml:"patents"`
	Components  []types.Component         `json:"components" yaml:"components"`
	SupplyChain []types.SupplyChainRecord `json:"supply_chain" yaml:"supply_chain"`
}

// TotalFindings counts raw records across all four lists.
func (in Input) TotalFindings() int {
	return len(in.Papers) + len(in.Patents) + len(in.Components) + len(in.SupplyChain)
}

// Process runs the full pipeline over the input. Stages 1-4 (dedup, quality,
// relevance, regional) run as four concurrent lanes, one per entity type;
// the remaining stages run sequentially over the merged set. Process returns
// either a complete result or an error, never a partial result. Progress
// lines go to w.
func Process(ctx context.Context, in Input, cfg types.ProcessConfig, w io.Writer) (*types.Result, error) {
	if in.Query.Query == "" {
		return nil, fmt.Errorf("invalid input: query context is empty")
	}
	cfg = cfg.WithDefaults()

	fmt.Fprintf(w, "Processing %d raw findings...\n", in.TotalFindings())

	set, err := filterLanes(ctx, in, cfg, w)
	if err != nil {
		return nil, err
	}

	// Stage 5: TRL classification.
	classifier := trl.NewClassifier(trl.DefaultTables)
	set.Papers = classifier.Papers(set.Papers)
	set.Patents = classifier.Patents(set.Patents)
	set.Components = classifier.Components(set.Components)
	fmt.Fprintf(w, "Classified TRL for %d findings\n", set.TotalFindings())

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline canceled: %w", err)
	}

	// Stage 6: cross-referencing.
	refs := xref.Build(set.Papers, set.Patents, set.Components)
	fmt.Fprintf(w, "Built %d cross-references\n", len(refs))

	// Stage 7: ranking and truncation.
	set.Papers = rank.Papers(set.Papers, cfg.MaxPapers)
	set.Patents = rank.Patents(set.Patents, cfg.MaxPatents)
	set.Components = rank.Components(set.Components, cfg.MaxComponents)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline canceled: %w", err)
	}

	// Stage 8: clustering.
	clusters := cluster.ByCategory(set.Components)

	// Stage 9: synthesis.
	now := time.Now().UTC()
	recommendations := rank.Recommend(set.Components, set.SupplyChain, cfg.MaxRecommendations)
	distribution := trl.Distribution(set.Papers, set.Patents, set.Components)
	maturity := trl.Analyze(distribution)
	synthesis := synth.Synthesize(set, refs, recommendations, distribution, maturity, cfg, now)

	// Stage 10: report rendering.
	report := synth.Render(in.Query, synthesis, now)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline canceled: %w", err)
	}

	result := &types.Result{
		Query:           in.Query,
		Processed:       set,
		CrossReferences: refs,
		Clusters:        clusters,
		Synthesis:       synthesis,
		Report:          report,
		Metadata: types.Metadata{
			RunID:          uuid.NewString(),
			PipelineStages: pipelineStages,
			TotalFindings:  set.TotalFindings(),
			ProcessedAt:    now,
		},
	}

	fmt.Fprintf(w, "Pipeline complete: %d findings survived\n", result.Metadata.TotalFindings)
	return result, nil
}

// filterLanes runs stages 1-4 as one concurrent lane per entity type and
// merges the survivors at the barrier.
func filterLanes(ctx context.Context, in Input, cfg types.ProcessConfig, w io.Writer) (types.ProcessedSet, error) {
	type laneResult struct {
		name string
		set  types.ProcessedSet
		err  error
	}

	lanes := []struct {
		name string
		run  func() (types.ProcessedSet, error)
	}{
		{"papers", func() (types.ProcessedSet, error) {
			papers := dedup.Papers(in.Papers)
			papers = filter.QualityPapers(papers)
			papers = filter.RelevantPapers(papers, in.Query, cfg.RelevanceThreshold)
			return types.ProcessedSet{Papers: papers}, nil
		}},
		{"patents", func() (types.ProcessedSet, error) {
			patents := dedup.Patents(in.Patents)
			patents = filter.QualityPatents(patents)
			patents = filter.RelevantPatents(patents, in.Query, cfg.RelevanceThreshold)
			return types.ProcessedSet{Patents: patents}, nil
		}},
		{"components", func() (types.ProcessedSet, error) {
			components := dedup.Components(in.Components)
			components = filter.QualityComponents(components)
			components = filter.RegionalComponents(components, in.Query.TargetRegions, filter.DefaultRegionTable, cfg.StrictRegional)
			return types.ProcessedSet{Components: components}, nil
		}},
		{"supply chain", func() (types.ProcessedSet, error) {
			records := dedup.SupplyChain(in.SupplyChain)
			records = filter.RegionalSupplyChain(records, in.Query.TargetRegions)
			return types.ProcessedSet{SupplyChain: records}, nil
		}},
	}

	ch := make(chan laneResult, len(lanes))
	var wg sync.WaitGroup

	for _, lane := range lanes {
		wg.Add(1)
		go func(name string, run func() (types.ProcessedSet, error)) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				ch <- laneResult{name: name, err: err}
				return
			}
			set, err := run()
			ch <- laneResult{name: name, set: set, err: err}
		}(lane.name, lane.run)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var merged types.ProcessedSet
	for lr := range ch {
		if lr.err != nil {
			return types.ProcessedSet{}, fmt.Errorf("%s lane: %w", lr.name, lr.err)
		}
		merged.Papers = append(merged.Papers, lr.set.Papers...)
		merged.Patents = append(merged.Patents, lr.set.Patents...)
		merged.Components = append(merged.Components, lr.set.Components...)
		merged.SupplyChain = append(merged.SupplyChain, lr.set.SupplyChain...)
	}

	if err := ctx.Err(); err != nil {
		return types.ProcessedSet{}, fmt.Errorf("pipeline canceled: %w", err)
	}

	fmt.Fprintf(w, "Filtered to %d findings (%d papers, %d patents, %d components, %d supply records)\n",
		merged.TotalFindings(), len(merged.Papers), len(merged.Patents),
		len(merged.Components), len(merged.SupplyChain))
	return merged, nil
}
