// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/foreman/pkg/tracker"
)

var version = "v0.1.0"

// scanFlags holds CLI flag values that override foreman.yaml settings.
// Only flags explicitly changed by the user are applied (checked via
// cmd.Flags().Changed).
var scanFlags struct {
	projectsDir string
	workers     int
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "foreman",
	Short: "foreman tracks agent development pipeline status",
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan all projects and write status reports",
	Long:  "Scan every project directory, normalize its documents, and write a STATUS.md report per project.",
	RunE:  runScan,
}

var reportCmd = &cobra.Command{
	Use:   "report <project-dir>",
	Short: "Print the rendered status report for one project",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

var summaryCmd = &cobra.Command{
	Use:   "summary <project-dir>",
	Short: "Print the YAML status summary for one project",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "foreman.yaml", "path to the foreman configuration file")
	scanCmd.Flags().StringVar(&scanFlags.projectsDir, "projects-dir", "", "override projects_dir from foreman.yaml")
	scanCmd.Flags().IntVar(&scanFlags.workers, "workers", 0, "override workers from foreman.yaml")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
}

// loadTracker loads the tool configuration (missing file yields
// defaults) and applies any explicit flag overrides.
func loadTracker(cmd *cobra.Command) (*tracker.Tracker, error) {
	cfg, err := tracker.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("projects-dir") {
		cfg.ProjectsDir = scanFlags.projectsDir
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = scanFlags.workers
	}
	return tracker.New(cfg), nil
}

func runScan(cmd *cobra.Command, args []string) error {
	t, err := loadTracker(cmd)
	if err != nil {
		return err
	}
	results, err := t.Scan(cmd.Context())
	if err != nil {
		return err
	}

	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Dir, res.Err)
			continue
		}
		fmt.Printf("%s: %d agents, %.1f%% complete\n",
			res.Status.ProjectName, res.Progress.TotalAgents, res.Progress.ProjectPercent)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d project(s) failed", failures, len(results))
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	t, err := loadTracker(cmd)
	if err != nil {
		return err
	}
	res := t.LoadProject(args[0])
	fmt.Print(res.Report)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	t, err := loadTracker(cmd)
	if err != nil {
		return err
	}
	res := t.LoadProject(args[0])
	out, err := yaml.Marshal(tracker.Summarize(res.Status, res.Progress))
	if err != nil {
		return fmt.Errorf("marshalling summary: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
