// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import "math"

// AggregateProgress is the per-project rollup of agent stage state.
type AggregateProgress struct {
	TotalAgents     int
	CompletedAgents int
	PerAgentPercent map[string]float64
	ProjectPercent  float64
}

// round1 rounds to one decimal place. All percentages in the report go
// through this so repeated generation is byte-identical.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Aggregate rolls per-agent stage state into project summary
// statistics. A project with zero agents reports zero percent and zero
// totals; an agent with zero stages contributes 0%.
func Aggregate(ps ProjectStatus) AggregateProgress {
	agg := AggregateProgress{
		TotalAgents:     len(ps.Agents),
		PerAgentPercent: make(map[string]float64, len(ps.Agents)),
	}

	sum := 0.0
	for _, a := range ps.Agents {
		pct := AgentPercent(a)
		agg.PerAgentPercent[a.Name] = pct
		sum += pct
		if pct == 100 {
			agg.CompletedAgents++
		}
	}
	if len(ps.Agents) > 0 {
		agg.ProjectPercent = round1(sum / float64(len(ps.Agents)))
	}
	return agg
}
