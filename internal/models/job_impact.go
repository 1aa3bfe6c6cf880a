package models

import (
	"database/sql"
)

// JobImpactRecordTable is the default table holding job impact rows
const JobImpactRecordTable = "jobs_tracker"

// JobImpactRecord is one stored row of pre-aggregated AI job impact data.
// Every column besides the id is nullable text: counts may be stored as
// strings and list columns hold either JSON arrays or comma separated values.
type JobImpactRecord struct {
	ID    int64          `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title sql.NullString `json:"title" db:"title" gorm:"type:text"`
	URL   sql.NullString `json:"url" db:"url" gorm:"type:text"`

	// Job counts
	JobsAtRisk   sql.NullString `json:"jobs_at_risk" db:"jobs_at_risk" gorm:"type:varchar(64)"`
	JobsReplaced sql.NullString `json:"jobs_replaced" db:"jobs_replaced" gorm:"type:varchar(64)"`
	NewAIJobs    sql.NullString `json:"new_ai_jobs" db:"new_ai_jobs" gorm:"column:new_ai_jobs;type:varchar(64)"`

	// List columns
	SkillsRemaining  sql.NullString `json:"skills_remaining" db:"skills_remaining" gorm:"type:text"`
	SkillsAutomated  sql.NullString `json:"skills_automated" db:"skills_automated" gorm:"type:text"`
	AffectedIndustry sql.NullString `json:"affected_industry" db:"affected_industry" gorm:"type:text"`
	FundingData      sql.NullString `json:"funding_data" db:"funding_data" gorm:"type:text"`

	// Precomputed text
	Summary          sql.NullString `json:"summary" db:"summary" gorm:"type:text"`
	DetailedAnalysis sql.NullString `json:"detailed_analysis" db:"detailed_analysis" gorm:"type:text"`
}

// TableName sets the table name for the JobImpactRecord model
func (JobImpactRecord) TableName() string {
	return JobImpactRecordTable
}

// Text returns the column value, treating NULL as empty
func Text(value sql.NullString) string {
	if !value.Valid {
		return ""
	}
	return value.String
}

// NewText wraps a string as a non-NULL column value, or NULL when empty
func NewText(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
