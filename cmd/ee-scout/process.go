// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ee-scout/internal/pipeline"
	"github.com/pdiddy/ee-scout/internal/resultstore"
	"github.com/pdiddy/ee-scout/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process [input-file]",
	Short: "Run raw findings through the ten-stage processing pipeline",
	Long: `Process reads raw findings (papers, patents, components, supply chain
records) and a query context from a YAML input file, runs the ten-stage
pipeline, and prints the rendered report. The full result is saved to the
result store unless --no-store is set, and can additionally be written to
a YAML or JSON file with --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	in, err := pipeline.ReadInputFile(args[0])
	if err != nil {
		return err
	}

	cfg := processConfigFromFlags(cmd)

	result, err := pipeline.Process(cmd.Context(), in, cfg, os.Stderr)
	if err != nil {
		return err
	}

	for _, chunk := range result.SummaryChunks() {
		fmt.Fprintln(os.Stderr, chunk.Message)
	}

	noStore, _ := cmd.Flags().GetBool("no-store")
	if !noStore {
		store, err := resultstore.NewStore(storeConfigFromFlags(cmd))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(cmd.Context(), result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved run %s\n", result.Metadata.RunID)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := writeResult(result, output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote result to %s\n", output)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return pipeline.FormatJSON(result, os.Stdout)
	}
	fmt.Print(result.Report)
	return nil
}

// writeResult saves the result to path, choosing the codec by extension.
func writeResult(result *types.Result, path string) error {
	if strings.HasSuffix(path, ".json") {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		return pipeline.FormatJSON(result, f)
	}
	return pipeline.WriteResultFile(path, result)
}

func processConfigFromFlags(cmd *cobra.Command) types.ProcessConfig {
	cfg := types.ProcessConfig{
		RelevanceThreshold:    viper.GetFloat64("relevance_threshold"),
		StrictRegional:        viper.GetBool("strict_regional"),
		MaxPapers:             viper.GetInt("max_papers"),
		MaxPatents:            viper.GetInt("max_patents"),
		MaxComponents:         viper.GetInt("max_components"),
		MaxRecommendations:    viper.GetInt("max_recommendations"),
		HealthyStockThreshold: viper.GetInt("healthy_stock_threshold"),
		RecentWindowYears:     viper.GetInt("recent_window_years"),
	}

	if cmd.Flags().Changed("relevance-threshold") {
		cfg.RelevanceThreshold, _ = cmd.Flags().GetFloat64("relevance-threshold")
	}
	if cmd.Flags().Changed("strict-regional") {
		cfg.StrictRegional, _ = cmd.Flags().GetBool("strict-regional")
	}
	if cmd.Flags().Changed("max-papers") {
		cfg.MaxPapers, _ = cmd.Flags().GetInt("max-papers")
	}
	if cmd.Flags().Changed("max-patents") {
		cfg.MaxPatents, _ = cmd.Flags().GetInt("max-patents")
	}
	if cmd.Flags().Changed("max-components") {
		cfg.MaxComponents, _ = cmd.Flags().GetInt("max-components")
	}
	if cmd.Flags().Changed("max-recommendations") {
		cfg.MaxRecommendations, _ = cmd.Flags().GetInt("max-recommendations")
	}
	return cfg
}

func storeConfigFromFlags(cmd *cobra.Command) types.StoreConfig {
	storeDir, _ := cmd.Flags().GetString("store-dir")
	if storeDir == "" {
		storeDir = viper.GetString("store_dir")
	}
	if storeDir == "" {
		storeDir = "results"
	}
	maxRuns, _ := cmd.Flags().GetInt("max-runs")
	if maxRuns == 0 {
		maxRuns = viper.GetInt("max_runs")
	}
	return types.StoreConfig{StoreDir: storeDir, MaxRuns: maxRuns}
}

func init() {
	processCmd.Flags().Float64("relevance-threshold", types.DefaultRelevanceThreshold, "fraction of query terms required for relevance")
	processCmd.Flags().Bool("strict-regional", false, "drop components outside the target regions instead of annotating")
	processCmd.Flags().Int("max-papers", types.DefaultMaxPapers, "maximum papers in the result")
	processCmd.Flags().Int("max-patents", types.DefaultMaxPatents, "maximum patents in the result")
	processCmd.Flags().Int("max-components", types.DefaultMaxComponents, "maximum components in the result")
	processCmd.Flags().Int("max-recommendations", types.DefaultMaxRecommendations, "maximum recommended components")
	processCmd.Flags().String("output", "", "write the full result to a file (.yaml or .json)")
	processCmd.Flags().Bool("json", false, "print the full result as JSON instead of the report")
	processCmd.Flags().Bool("no-store", false, "do not save the result to the store")
	processCmd.Flags().String("store-dir", "", "result store directory (default: ./results)")
	processCmd.Flags().Int("max-runs", 0, "prune the store to this many runs (0 = keep all)")

	rootCmd.AddCommand(processCmd)
}
