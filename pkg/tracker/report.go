// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

// Summary is the serializable form of a project's status and progress,
// consumable by any presentation layer (dashboard, CLI, JSON API).
type Summary struct {
	ProjectName     string         `yaml:"project_name" json:"project_name"`
	Description     string         `yaml:"description,omitempty" json:"description,omitempty"`
	Agents          []AgentSummary `yaml:"agents" json:"agents"`
	TotalAgents     int            `yaml:"total_agents" json:"total_agents"`
	CompletedAgents int            `yaml:"completed_agents" json:"completed_agents"`
	ProjectPercent  float64        `yaml:"project_percent" json:"project_percent"`
}

// AgentSummary is the serializable form of one agent.
type AgentSummary struct {
	Name            string         `yaml:"name" json:"name"`
	CurrentStage    string         `yaml:"current_stage" json:"current_stage"`
	PercentComplete float64        `yaml:"percent_complete" json:"percent_complete"`
	Pipeline        []StageSummary `yaml:"pipeline" json:"pipeline"`
}

// StageSummary is the serializable form of one pipeline entry.
type StageSummary struct {
	Stage     string `yaml:"stage" json:"stage"`
	Completed bool   `yaml:"completed" json:"completed"`
	Document  string `yaml:"document,omitempty" json:"document,omitempty"`
}

// Summarize combines a ProjectStatus and its AggregateProgress into a
// Summary. Agent and stage ordering follows the normalized status.
func Summarize(ps ProjectStatus, agg AggregateProgress) Summary {
	agents := make([]AgentSummary, 0, len(ps.Agents))
	for _, a := range ps.Agents {
		pipeline := make([]StageSummary, 0, len(a.Pipeline))
		for _, sr := range a.Pipeline {
			pipeline = append(pipeline, StageSummary{
				Stage:     sr.Stage,
				Completed: sr.Completed,
				Document:  sr.DocumentRef,
			})
		}
		agents = append(agents, AgentSummary{
			Name:            a.Name,
			CurrentStage:    CurrentStage(a),
			PercentComplete: AgentPercent(a),
			Pipeline:        pipeline,
		})
	}
	return Summary{
		ProjectName:     ps.ProjectName,
		Description:     ps.Description,
		Agents:          agents,
		TotalAgents:     agg.TotalAgents,
		CompletedAgents: agg.CompletedAgents,
		ProjectPercent:  agg.ProjectPercent,
	}
}
