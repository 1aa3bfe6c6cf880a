package models

import "github.com/Aditi2k5/ai-job-dashboard/internal/metrics"

// DisplayArticle is a job impact record prepared for the dashboard. It is
// rebuilt on every request and never stored.
type DisplayArticle struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Source      string   `json:"source"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	URL         string   `json:"url"`
	Summary     string   `json:"summary"`
	FullContent string   `json:"fullContent"`
	Insights    Insights `json:"insights"`
}

// Insights holds the derived metrics shown alongside an article
type Insights struct {
	JobsAffected      int           `json:"jobsAffected"`
	CompaniesInvolved int           `json:"companiesInvolved"`
	Timeframe         string        `json:"timeframe"`
	Sectors           []string      `json:"sectors"`
	SkillsReplaced    []string      `json:"skillsReplaced,omitempty"`
	SkillsCreated     []string      `json:"skillsCreated,omitempty"`
	Trend             metrics.Trend `json:"trend"`
	ImpactScore       int           `json:"impactScore"`
	GeographicSpread  []string      `json:"geographicSpread"`
	CostSavings       *string       `json:"costSavings,omitempty"`
	JobCreationRatio  *float64      `json:"jobCreationRatio,omitempty"`
}
