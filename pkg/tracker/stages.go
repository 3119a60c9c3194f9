// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

// The seven canonical pipeline stages, in development order. Every
// agent is measured against this fixed list: a stage missing from a
// status document counts as not completed, so a truncated pipeline can
// never report an inflated percentage.
var canonicalStages = []string{
	"requirements_analyzer",
	"system_architect",
	"agent_designer",
	"prompt_engineer",
	"tools_developer",
	"agent_code_developer",
	"agent_developer_manager",
}

// Synthetic states reported alongside the canonical stages.
const (
	// StageUnknown is reported when an agent has no recognized
	// pipeline data at all.
	StageUnknown = "unknown"
	// StageDone is reported when all canonical stages are completed.
	StageDone = "done"
)

// stageSet indexes the canonical stage identifiers.
var stageSet = func() map[string]bool {
	m := make(map[string]bool, len(canonicalStages))
	for _, s := range canonicalStages {
		m[s] = true
	}
	return m
}()

// isCanonicalStage reports whether s is one of the seven tracked stage
// identifiers. Unrecognized identifiers are preserved in normalized
// output but excluded from percent computation.
func isCanonicalStage(s string) bool {
	return stageSet[s]
}

// completionByStage folds a pipeline into completion flags per
// canonical stage. When a stage appears more than once, the last entry
// wins. The second return value is the number of recognized entries.
func completionByStage(pipeline []StageResult) (map[string]bool, int) {
	done := make(map[string]bool, len(canonicalStages))
	recognized := 0
	for _, sr := range pipeline {
		if !isCanonicalStage(sr.Stage) {
			continue
		}
		recognized++
		done[sr.Stage] = sr.Completed
	}
	return done, recognized
}

// CurrentStage computes the snapshot state of an agent: the first
// canonical stage, in order, that is not completed. An agent with no
// recognized stages is StageUnknown; an agent with all seven completed
// is StageDone.
func CurrentStage(a NormalizedAgent) string {
	done, recognized := completionByStage(a.Pipeline)
	if recognized == 0 {
		return StageUnknown
	}
	for _, s := range canonicalStages {
		if !done[s] {
			return s
		}
	}
	return StageDone
}

// AgentPercent returns the agent's completion percentage. The
// denominator is always the canonical stage count, regardless of how
// many stages the source document listed.
func AgentPercent(a NormalizedAgent) float64 {
	done, _ := completionByStage(a.Pipeline)
	completed := 0
	for _, s := range canonicalStages {
		if done[s] {
			completed++
		}
	}
	return round1(100 * float64(completed) / float64(len(canonicalStages)))
}
