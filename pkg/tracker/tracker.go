// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"os"
	"path/filepath"
	"time"
)

// Tracker generates status reports for agent projects on disk. Each
// project directory holds two documents: a configuration document
// (description metadata) and a status document (one of the three
// historical layouts). Both are untrusted; the worst case for any
// malformed input is a report with zero agents, never an error.
type Tracker struct {
	cfg Config
	now func() time.Time
}

// New creates a Tracker, applying configuration defaults.
func New(cfg Config) *Tracker {
	cfg.applyDefaults()
	return &Tracker{cfg: cfg, now: time.Now}
}

// ProjectResult is the full output of one project's pipeline.
type ProjectResult struct {
	Dir      string
	Status   ProjectStatus
	Progress AggregateProgress
	Diag     Diagnostics
	Report   string
	// Err records a per-project file-system failure during a scan
	// (e.g. an unwritable report file). It never reflects document
	// content, which degrades instead of failing.
	Err error
}

// LoadProject runs the full pipeline for one project directory:
// read both documents, normalize, aggregate, render. Missing or
// unreadable documents are handled identically to malformed ones.
func (t *Tracker) LoadProject(dir string) ProjectResult {
	statusDoc := t.readDocument(filepath.Join(dir, t.cfg.StatusFile))
	configDoc := t.readDocument(filepath.Join(dir, t.cfg.ConfigFile))

	ps, diag := BuildStatus(statusDoc, configDoc, filepath.Base(dir))
	agg := Aggregate(ps)

	return ProjectResult{
		Dir:      dir,
		Status:   ps,
		Progress: agg,
		Diag:     diag,
		Report:   RenderReport(ps, agg, t.now()),
	}
}

// readDocument reads and parses one project document. A missing or
// unreadable file degrades to an empty mapping, same as any other
// non-mapping shape.
func (t *Tracker) readDocument(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		logf("readDocument: %s: %v", path, err)
		return map[string]any{}
	}
	return LoadDocument(data)
}
