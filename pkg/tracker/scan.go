// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Scan processes every project under Config.ProjectsDir and writes each
// rendered report to <project>/<Config.ReportFile>. Project pipelines
// share no mutable state, so they run in parallel, at most
// Config.Workers at a time. One project's failure is recorded in its
// own ProjectResult.Err and never affects its siblings; the report file
// is only written after the project's pipeline completes fully.
//
// Results are returned in directory-name order regardless of
// completion order. The returned error covers only the enumeration of
// ProjectsDir itself.
func (t *Tracker) Scan(ctx context.Context) ([]ProjectResult, error) {
	dirs, err := t.projectDirs()
	if err != nil {
		return nil, err
	}
	logf("scan: %d project(s) under %s, workers=%d", len(dirs), t.cfg.ProjectsDir, t.cfg.Workers)

	results := make([]ProjectResult, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.cfg.Workers)

	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i] = ProjectResult{Dir: dir, Err: gctx.Err()}
				return nil
			}
			res := t.LoadProject(dir)
			reportPath := filepath.Join(dir, t.cfg.ReportFile)
			if err := os.WriteFile(reportPath, []byte(res.Report), 0o644); err != nil {
				res.Err = fmt.Errorf("writing report: %w", err)
				logf("scan: %s: %v", dir, res.Err)
			}
			results[i] = res
			return nil // per-project failures are isolated, never group-fatal
		})
	}
	// Always nil: per-project failures live in their result slot.
	_ = g.Wait()
	return results, nil
}

// projectDirs lists the project directories under ProjectsDir, sorted
// by name for deterministic result ordering.
func (t *Tracker) projectDirs() ([]string, error) {
	entries, err := os.ReadDir(t.cfg.ProjectsDir)
	if err != nil {
		return nil, fmt.Errorf("reading projects dir: %w", err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(t.cfg.ProjectsDir, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
