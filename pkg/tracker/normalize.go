// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

// Status documents have drifted across three incompatible layouts over
// the project's history. This file is the only place that knowledge
// lives: each layout is detected by structural inspection and converted
// into the one canonical agent sequence.
//
// Layouts, in detection precedence order:
//
//  1. project_info holding a sequence of project mappings, each with
//     name and agents (current layout).
//  2. project_info holding a single project mapping (compat layout,
//     treated as a one-element project list).
//  3. project holding a sequence of agent mappings directly, with no
//     project-level nesting (legacy layout).

// Layout identifiers recorded in Diagnostics.
const (
	LayoutProjectInfoList = "project_info_list"
	LayoutProjectInfoMap  = "project_info_map"
	LayoutLegacy          = "legacy"
	LayoutUnrecognized    = "unrecognized"
)

// StageResult is one pipeline entry of a normalized agent.
type StageResult struct {
	Stage       string
	Completed   bool
	DocumentRef string
}

// NormalizedAgent is the canonical form of one agent regardless of
// which layout the status document used. Immutable once produced.
type NormalizedAgent struct {
	Name     string
	Pipeline []StageResult
}

// ProjectStatus is the normalized view of one project. Agents is never
// nil: absence of data yields an empty sequence.
type ProjectStatus struct {
	ProjectName string
	Description string
	Agents      []NormalizedAgent
}

// Diagnostics carries auxiliary observability detail from
// normalization. It never blocks report generation.
type Diagnostics struct {
	Layout          string
	SkippedProjects int
	SkippedAgents   int
	SkippedStages   int
}

// BuildStatus normalizes a status document and a configuration
// document into a ProjectStatus. Both documents are untrusted raw parse
// results; any shape is accepted. fallbackName is used when the status
// document carries no project name (the legacy layout never does).
func BuildStatus(statusDoc, configDoc any, fallbackName string) (ProjectStatus, Diagnostics) {
	status := asMapping(statusDoc)
	config := asMapping(configDoc)

	agents, name, diag := normalizeAgents(status)
	if name == "" {
		name = asString(config["name"])
	}
	if name == "" {
		name = fallbackName
	}

	logf("buildStatus: project=%q layout=%s agents=%d skippedProjects=%d skippedAgents=%d skippedStages=%d",
		name, diag.Layout, len(agents), diag.SkippedProjects, diag.SkippedAgents, diag.SkippedStages)

	return ProjectStatus{
		ProjectName: name,
		Description: asString(config["description"]),
		Agents:      agents,
	}, diag
}

// normalizeAgents detects the status document layout and extracts the
// canonical agent sequence plus the project name, when the layout
// carries one. An unrecognized layout yields zero agents, not an error.
func normalizeAgents(status map[string]any) ([]NormalizedAgent, string, Diagnostics) {
	agents := []NormalizedAgent{}

	if info, ok := status["project_info"]; ok {
		switch v := info.(type) {
		case []any:
			diag := Diagnostics{Layout: LayoutProjectInfoList}
			name := ""
			for _, entry := range v {
				m, isMap := asMappingOK(entry)
				if !isMap {
					diag.SkippedProjects++
					continue
				}
				if name == "" {
					name = asString(m["name"])
				}
				agents = append(agents, extractAgents(asSequence(m["agents"]), &diag)...)
			}
			return agents, name, diag
		case map[string]any, map[any]any:
			diag := Diagnostics{Layout: LayoutProjectInfoMap}
			m := asMapping(v)
			agents = append(agents, extractAgents(asSequence(m["agents"]), &diag)...)
			return agents, asString(m["name"]), diag
		}
		// project_info present with an unusable type falls through to
		// the legacy check before giving up.
	}

	if proj, ok := status["project"]; ok {
		if seq, isSeq := proj.([]any); isSeq {
			diag := Diagnostics{Layout: LayoutLegacy}
			agents = append(agents, extractAgents(seq, &diag)...)
			return agents, "", diag
		}
	}

	return agents, "", Diagnostics{Layout: LayoutUnrecognized}
}

// extractAgents converts a raw agent sequence into NormalizedAgents.
// Non-mapping elements are skipped silently so one malformed entry
// cannot discard valid siblings.
func extractAgents(seq []any, diag *Diagnostics) []NormalizedAgent {
	agents := make([]NormalizedAgent, 0, len(seq))
	for _, entry := range seq {
		m, isMap := asMappingOK(entry)
		if !isMap {
			diag.SkippedAgents++
			continue
		}
		agents = append(agents, NormalizedAgent{
			Name:     asString(m["name"]),
			Pipeline: extractPipeline(m["pipeline"], diag),
		})
	}
	return agents
}

// extractPipeline converts a raw pipeline value into StageResults. A
// non-sequence pipeline degrades to empty; entries that are not
// mappings, lack a stage identifier, or lack a completion indicator
// are skipped. Stage identifiers outside the canonical set are
// preserved for forward compatibility.
func extractPipeline(v any, diag *Diagnostics) []StageResult {
	seq := asSequence(v)
	pipeline := make([]StageResult, 0, len(seq))
	for _, entry := range seq {
		m, isMap := asMappingOK(entry)
		if !isMap {
			diag.SkippedStages++
			continue
		}
		stage := asString(m["stage"])
		if stage == "" {
			diag.SkippedStages++
			continue
		}
		indicator, ok := m["status"]
		if !ok {
			indicator, ok = m["completed"]
		}
		if !ok {
			// A stage entry must expose a completion indicator.
			diag.SkippedStages++
			continue
		}
		completed := asBool(indicator)
		ref := asString(m["document"])
		if ref == "" {
			ref = asString(m["file"])
		}
		pipeline = append(pipeline, StageResult{
			Stage:       stage,
			Completed:   completed,
			DocumentRef: ref,
		})
	}
	return pipeline
}
