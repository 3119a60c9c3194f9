// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSummarize_Fields(t *testing.T) {
	t.Parallel()
	ps, agg := renderFixture()
	s := Summarize(ps, agg)

	if s.ProjectName != "p1" {
		t.Errorf("ProjectName = %q, want p1", s.ProjectName)
	}
	if s.TotalAgents != 2 || s.CompletedAgents != 0 {
		t.Errorf("totals = %d/%d, want 2/0", s.TotalAgents, s.CompletedAgents)
	}
	if len(s.Agents) != 2 {
		t.Fatalf("Agents = %d, want 2", len(s.Agents))
	}
	if s.Agents[0].Name != "zeta" || s.Agents[0].CurrentStage != "system_architect" {
		t.Errorf("agent[0] = %+v", s.Agents[0])
	}
	if s.Agents[0].PercentComplete != 14.3 {
		t.Errorf("PercentComplete = %v, want 14.3", s.Agents[0].PercentComplete)
	}
	// Pipeline carries every source entry, including unrecognized stages.
	if len(s.Agents[0].Pipeline) != 2 {
		t.Errorf("pipeline = %+v, want 2 entries", s.Agents[0].Pipeline)
	}
	if s.Agents[0].Pipeline[0].Document != "reqs.md" {
		t.Errorf("Document = %q, want reqs.md", s.Agents[0].Pipeline[0].Document)
	}
}

func TestSummarize_SerializedKeys(t *testing.T) {
	t.Parallel()
	ps, agg := renderFixture()
	out, err := yaml.Marshal(Summarize(ps, agg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		"project_name:", "description:", "agents:", "name:", "current_stage:",
		"percent_complete:", "pipeline:", "total_agents:", "completed_agents:",
		"project_percent:",
	} {
		if !strings.Contains(string(out), key) {
			t.Errorf("serialized summary missing key %s:\n%s", key, out)
		}
	}
}

func TestSummarize_EmptyProject(t *testing.T) {
	t.Parallel()
	ps := ProjectStatus{ProjectName: "empty", Agents: []NormalizedAgent{}}
	s := Summarize(ps, Aggregate(ps))
	if s.Agents == nil {
		t.Error("Agents is nil, want empty sequence")
	}
	if s.ProjectPercent != 0 {
		t.Errorf("ProjectPercent = %v, want 0", s.ProjectPercent)
	}
}
