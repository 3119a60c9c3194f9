// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all tracker settings. Consuming tools either construct
// a Config in Go code and pass it to New(), or place a foreman.yaml at
// the repository root and call LoadConfig().
type Config struct {
	// ProjectsDir is the directory whose subdirectories are the
	// tracked agent projects (default "projects").
	ProjectsDir string `yaml:"projects_dir"`

	// ConfigFile is the per-project configuration document filename
	// (default "configuration.yaml").
	ConfigFile string `yaml:"config_file"`

	// StatusFile is the per-project status document filename
	// (default "status.yaml").
	StatusFile string `yaml:"status_file"`

	// ReportFile is the rendered report filename written into each
	// project directory (default "STATUS.md").
	ReportFile string `yaml:"report_file"`

	// Workers is the maximum number of project pipelines processed
	// in parallel during a scan (default 4).
	Workers int `yaml:"workers"`
}

func (c *Config) applyDefaults() {
	if c.ProjectsDir == "" {
		c.ProjectsDir = "projects"
	}
	if c.ConfigFile == "" {
		c.ConfigFile = "configuration.yaml"
	}
	if c.StatusFile == "" {
		c.StatusFile = "status.yaml"
	}
	if c.ReportFile == "" {
		c.ReportFile = "STATUS.md"
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
}

// LoadConfig reads a configuration YAML file and returns a Config. A
// missing file returns the defaults without error; an unparseable file
// is an error, because the tool's own configuration is trusted input,
// unlike the project documents it tracks.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}
