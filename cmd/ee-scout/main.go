// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ee-scout CLI.
// Implements: prd001-pipeline, prd002-trl, prd003-synthesis,
//             prd004-report, prd005-store (CLI surface).
// See docs/ARCHITECTURE.md § Pipeline, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ee-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "ee-scout",
	Short: "Result processing pipeline for EE research findings",
	Long: `ee-scout processes raw electrical-engineering research findings (papers,
patents, components, supply chain records) through a ten-stage pipeline:
deduplication, quality and relevance filtering, regional filtering, TRL
classification, cross-referencing, ranking, clustering, synthesis, and
report rendering.

Run the pipeline with 'process', then list, show, or export past runs
with 'store'.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ee-scout.yaml or ~/.config/ee-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ee-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ee-scout"))
		}
	}

	viper.SetEnvPrefix("EE_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
