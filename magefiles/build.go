// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/magefile/mage/sh"

	"github.com/mesh-intelligence/foreman/pkg/tracker"
)

// Build compiles the foreman binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/foreman", "./cmd/foreman")
}

// Install installs the foreman binary with go install.
func Install() error {
	return sh.RunV("go", "install", "./cmd/foreman")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Scan generates status reports for every project, using foreman.yaml
// when present.
func Scan() error {
	cfg, err := tracker.LoadConfig("foreman.yaml")
	if err != nil {
		return err
	}
	results, err := tracker.New(cfg).Scan(context.Background())
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("%s: %v\n", res.Dir, res.Err)
			continue
		}
		fmt.Printf("%s: %.1f%%\n", res.Status.ProjectName, res.Progress.ProjectPercent)
	}
	return nil
}
