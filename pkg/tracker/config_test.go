// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ProjectsDir != "projects" {
		t.Errorf("ProjectsDir = %q, want projects", cfg.ProjectsDir)
	}
	if cfg.ConfigFile != "configuration.yaml" {
		t.Errorf("ConfigFile = %q, want configuration.yaml", cfg.ConfigFile)
	}
	if cfg.StatusFile != "status.yaml" {
		t.Errorf("StatusFile = %q, want status.yaml", cfg.StatusFile)
	}
	if cfg.ReportFile != "STATUS.md" {
		t.Errorf("ReportFile = %q, want STATUS.md", cfg.ReportFile)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "foreman.yaml")
	os.WriteFile(path, []byte("projects_dir: agents\nworkers: 8\nstatus_file: state.yaml\n"), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ProjectsDir != "agents" {
		t.Errorf("ProjectsDir = %q, want agents", cfg.ProjectsDir)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.StatusFile != "state.yaml" {
		t.Errorf("StatusFile = %q, want state.yaml", cfg.StatusFile)
	}
	// Unset fields still get defaults.
	if cfg.ReportFile != "STATUS.md" {
		t.Errorf("ReportFile = %q, want STATUS.md", cfg.ReportFile)
	}
}

func TestLoadConfig_ParseErrorIsFatal(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "foreman.yaml")
	os.WriteFile(path, []byte("projects_dir: [unclosed\n  :::"), 0o644)

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig(malformed) should return an error; the tool config is trusted input")
	}
}
