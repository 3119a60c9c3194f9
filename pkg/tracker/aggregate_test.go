// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import "testing"

func TestAggregate_ZeroAgents(t *testing.T) {
	t.Parallel()
	agg := Aggregate(ProjectStatus{ProjectName: "p1", Agents: []NormalizedAgent{}})
	if agg.TotalAgents != 0 {
		t.Errorf("TotalAgents = %d, want 0", agg.TotalAgents)
	}
	if agg.ProjectPercent != 0 {
		t.Errorf("ProjectPercent = %v, want 0", agg.ProjectPercent)
	}
	if agg.CompletedAgents != 0 {
		t.Errorf("CompletedAgents = %d, want 0", agg.CompletedAgents)
	}
}

func TestAggregate_MeanOfAgentPercents(t *testing.T) {
	t.Parallel()
	ps := ProjectStatus{Agents: []NormalizedAgent{
		{Name: "a1", Pipeline: pipelineOf("requirements_analyzer")},                                      // 14.3
		{Name: "a2", Pipeline: pipelineOf("requirements_analyzer", "system_architect", "agent_designer")}, // 42.9
	}}
	agg := Aggregate(ps)
	if agg.TotalAgents != 2 {
		t.Errorf("TotalAgents = %d, want 2", agg.TotalAgents)
	}
	if agg.PerAgentPercent["a1"] != 14.3 {
		t.Errorf("PerAgentPercent[a1] = %v, want 14.3", agg.PerAgentPercent["a1"])
	}
	if agg.PerAgentPercent["a2"] != 42.9 {
		t.Errorf("PerAgentPercent[a2] = %v, want 42.9", agg.PerAgentPercent["a2"])
	}
	if agg.ProjectPercent != 28.6 {
		t.Errorf("ProjectPercent = %v, want 28.6", agg.ProjectPercent)
	}
}

func TestAggregate_CompletedAgents(t *testing.T) {
	t.Parallel()
	ps := ProjectStatus{Agents: []NormalizedAgent{
		{Name: "done", Pipeline: pipelineOf(canonicalStages...)},
		{Name: "started", Pipeline: pipelineOf("requirements_analyzer")},
		{Name: "empty"},
	}}
	agg := Aggregate(ps)
	if agg.CompletedAgents != 1 {
		t.Errorf("CompletedAgents = %d, want 1", agg.CompletedAgents)
	}
	if agg.PerAgentPercent["empty"] != 0 {
		t.Errorf("PerAgentPercent[empty] = %v, want 0", agg.PerAgentPercent["empty"])
	}
}

func TestAggregate_ProjectPercentMonotonic(t *testing.T) {
	t.Parallel()
	before := Aggregate(ProjectStatus{Agents: []NormalizedAgent{
		{Name: "a1", Pipeline: pipelineOf("requirements_analyzer")},
		{Name: "a2"},
	}})
	after := Aggregate(ProjectStatus{Agents: []NormalizedAgent{
		{Name: "a1", Pipeline: pipelineOf("requirements_analyzer", "system_architect")},
		{Name: "a2"},
	}})
	if after.ProjectPercent < before.ProjectPercent {
		t.Errorf("ProjectPercent decreased: %v -> %v", before.ProjectPercent, after.ProjectPercent)
	}
}
