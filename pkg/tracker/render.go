// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"fmt"
	"strings"
	"time"
)

// RenderReport serializes the aggregated state into a markdown status
// report. Output is a pure function of its inputs: identical status,
// progress, and timestamp produce byte-identical text. Agents appear in
// source authoring order; stages in canonical order, with unrecognized
// stages appended in source order.
func RenderReport(ps ProjectStatus, agg AggregateProgress, generatedAt time.Time) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "# Project Status: %s\n\n", ps.ProjectName)
	if ps.Description != "" {
		fmt.Fprintf(&buf, "> %s\n\n", ps.Description)
	}
	fmt.Fprintf(&buf, "Generated: %s\n\n", generatedAt.UTC().Format(time.RFC3339))

	buf.WriteString("## Progress\n\n")
	if len(ps.Agents) == 0 {
		buf.WriteString("No agents found.\n")
	} else {
		buf.WriteString("| Agent | Current Stage | Complete |\n")
		buf.WriteString("|-------|---------------|----------|\n")
		for _, a := range ps.Agents {
			fmt.Fprintf(&buf, "| %s | %s | %s |\n",
				a.Name, CurrentStage(a), formatPercent(AgentPercent(a)))
		}
	}
	fmt.Fprintf(&buf, "\nProject: %s complete (%d/%d agents done)\n",
		formatPercent(agg.ProjectPercent), agg.CompletedAgents, agg.TotalAgents)

	if len(ps.Agents) > 0 {
		buf.WriteString("\n## Pipelines\n")
		for _, a := range ps.Agents {
			fmt.Fprintf(&buf, "\n### %s\n\n", a.Name)
			writePipeline(&buf, a.Pipeline)
		}
	}

	return buf.String()
}

// writePipeline writes one agent's stage checklist: all seven canonical
// stages in order, then any unrecognized stages the document carried.
func writePipeline(buf *strings.Builder, pipeline []StageResult) {
	byStage := make(map[string]StageResult, len(pipeline))
	var extras []StageResult
	for _, sr := range pipeline {
		if isCanonicalStage(sr.Stage) {
			byStage[sr.Stage] = sr // last entry wins
			continue
		}
		extras = append(extras, sr)
	}

	for _, stage := range canonicalStages {
		sr := byStage[stage]
		writeStageLine(buf, stage, sr.Completed, sr.DocumentRef, "")
	}
	for _, sr := range extras {
		writeStageLine(buf, sr.Stage, sr.Completed, sr.DocumentRef, " (untracked)")
	}
}

// writeStageLine writes one checklist line.
func writeStageLine(buf *strings.Builder, stage string, completed bool, ref, suffix string) {
	mark := " "
	if completed {
		mark = "x"
	}
	fmt.Fprintf(buf, "- [%s] %s", mark, stage)
	if ref != "" {
		fmt.Fprintf(buf, " (doc: %s)", ref)
	}
	buf.WriteString(suffix)
	buf.WriteByte('\n')
}

// formatPercent renders a percentage with one decimal place.
func formatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
