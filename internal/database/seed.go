package database

import (
	"fmt"
	"log"

	"github.com/Aditi2k5/ai-job-dashboard/internal/models"

	"gorm.io/gorm"
)

// SampleRecords returns fixture rows for local development. They mix the
// storage shapes found in production: JSON arrays, comma separated lists,
// quoted labels and missing values.
func SampleRecords() []models.JobImpactRecord {
	return []models.JobImpactRecord{
		{
			Title:            models.NewText(`"AI Reshapes Customer Support Centers"`),
			URL:              models.NewText("https://www.reuters.com/technology/ai-customer-support"),
			JobsAtRisk:       models.NewText("120000"),
			JobsReplaced:     models.NewText("45000"),
			NewAIJobs:        models.NewText("30000"),
			SkillsRemaining:  models.NewText(`["Complex problem solving", "Empathy"]`),
			SkillsAutomated:  models.NewText(`["Ticket triage", "FAQ responses"]`),
			AffectedIndustry: models.NewText(`["Customer Service", "Retail"]`),
			FundingData:      models.NewText(`["Raised $1.5 billion in Series D"]`),
		},
		{
			Title:            models.NewText("Banks Automate Back Office Reconciliation"),
			URL:              models.NewText("https://www.ft.com/content/bank-automation"),
			JobsAtRisk:       models.NewText("50000"),
			JobsReplaced:     models.NewText("10000"),
			NewAIJobs:        models.NewText("60000"),
			SkillsRemaining:  models.NewText("Audit, Regulatory judgement"),
			SkillsAutomated:  models.NewText("Bookkeeping, Reconciliation"),
			AffectedIndustry: models.NewText("Industry: Finance"),
			FundingData:      models.NewText("Funding: $250M"),
		},
		{
			Title:            models.NewText("Generative Design Tools Enter Architecture Firms"),
			URL:              models.NewText("https://techcrunch.com/2024/generative-design"),
			JobsAtRisk:       models.NewText("8000"),
			JobsReplaced:     models.NewText("2000"),
			NewAIJobs:        models.NewText("8000"),
			SkillsRemaining:  models.NewText(`["Client relations"]`),
			SkillsAutomated:  models.NewText(`["Drafting"]`),
			AffectedIndustry: models.NewText(`["Construction"]`),
			Summary:          models.NewText("Design automation shifts drafting work toward model supervision."),
		},
		{
			Title: models.NewText("Untracked Pilot Program"),
		},
	}
}

// Seed inserts the sample records into table. An existing non-empty table is
// left untouched unless force is set.
func Seed(db *gorm.DB, table string, force bool) (int, error) {
	if db == nil {
		return 0, fmt.Errorf("database connection not established")
	}
	if table == "" {
		table = models.JobImpactRecordTable
	}

	var existing int64
	if err := db.Table(table).Count(&existing).Error; err != nil {
		return 0, fmt.Errorf("failed to count existing records: %w", err)
	}
	if existing > 0 && !force {
		log.Printf("Table %s already has %d records, skipping seed", table, existing)
		return 0, nil
	}

	records := SampleRecords()
	if err := db.Table(table).Create(&records).Error; err != nil {
		return 0, fmt.Errorf("failed to insert sample records: %w", err)
	}

	return len(records), nil
}
