// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ee-scout/internal/pipeline"
	"github.com/pdiddy/ee-scout/internal/resultstore"
	"github.com/pdiddy/ee-scout/internal/synth"
	"github.com/pdiddy/ee-scout/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage stored pipeline runs (list, show, report, delete)",
	Long: `Store manages the local SQLite database of completed pipeline runs.
Use subcommands to list past runs, reload a full result, print or export
a report, or delete a run.`,
}

// --- list subcommand ---

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, most recent first",
	RunE:  runStoreList,
}

func runStoreList(cmd *cobra.Command, args []string) error {
	store, err := resultstore.NewStore(storeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	resultstore.FormatTable(summaries, os.Stdout)
	return nil
}

// --- show subcommand ---

var storeShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Print a stored result as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreShow,
}

func runStoreShow(cmd *cobra.Command, args []string) error {
	store, err := resultstore.NewStore(storeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return pipeline.FormatJSON(result, os.Stdout)
	}

	data, err := resultYAML(result)
	if err != nil {
		return err
	}
	fmt.Print(data)
	return nil
}

// --- report subcommand ---

var storeReportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Print or export the rendered report of a stored run",
	Long: `Report prints the markdown report of a stored run to stdout. With
--html the report is converted to an HTML fragment, and with --output it
is written to a file instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runStoreReport,
}

func runStoreReport(cmd *cobra.Command, args []string) error {
	store, err := resultstore.NewStore(storeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := store.Report(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if html, _ := cmd.Flags().GetBool("html"); html {
		report, err = synth.RenderHTML(report)
		if err != nil {
			return err
		}
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := os.WriteFile(output, []byte(report), 0o644); err != nil {
			return fmt.Errorf("writing report file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote report to %s\n", output)
		return nil
	}

	fmt.Print(report)
	return nil
}

// --- delete subcommand ---

var storeDeleteCmd = &cobra.Command{
	Use:   "delete [run-id]",
	Short: "Delete a stored run",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreDelete,
}

func runStoreDelete(cmd *cobra.Command, args []string) error {
	store, err := resultstore.NewStore(storeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted run %s\n", args[0])
	return nil
}

func resultYAML(result *types.Result) (string, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshaling result: %w", err)
	}
	return string(data), nil
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("store-dir", "", "result store directory (default: ./results)")
	storeCmd.PersistentFlags().Int("max-runs", 0, "prune the store to this many runs (0 = keep all)")

	storeShowCmd.Flags().Bool("json", false, "output the result as JSON")

	storeReportCmd.Flags().Bool("html", false, "convert the report to HTML")
	storeReportCmd.Flags().String("output", "", "write the report to a file")

	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeShowCmd)
	storeCmd.AddCommand(storeReportCmd)
	storeCmd.AddCommand(storeDeleteCmd)

	rootCmd.AddCommand(storeCmd)
}
