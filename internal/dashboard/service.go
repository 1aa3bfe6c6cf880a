package dashboard

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/Aditi2k5/ai-job-dashboard/internal/articles"
	"github.com/Aditi2k5/ai-job-dashboard/internal/funding"
	"github.com/Aditi2k5/ai-job-dashboard/internal/metrics"
	"github.com/Aditi2k5/ai-job-dashboard/internal/models"
	"github.com/Aditi2k5/ai-job-dashboard/internal/repository"
	"github.com/Aditi2k5/ai-job-dashboard/internal/textclean"
)

// DefaultTopN is how many entries each ranked widget shows
const DefaultTopN = 5

// Overview aggregates every stored record into the dashboard widgets
type Overview struct {
	RecordCount        int                   `json:"recordCount"`
	TotalJobsAtRisk    int                   `json:"totalJobsAtRisk"`
	TotalJobsReplaced  int                   `json:"totalJobsReplaced"`
	TotalNewAIJobs     int                   `json:"totalNewAiJobs"`
	NetJobChange       int                   `json:"netJobChange"`
	AverageImpactScore float64               `json:"averageImpactScore"`
	TrendBreakdown     map[metrics.Trend]int `json:"trendBreakdown"`
	TopSectors         []Count               `json:"topSectors"`
	TopSkillsAutomated []Count               `json:"topSkillsAutomated"`
	TopSkillsRemaining []Count               `json:"topSkillsRemaining"`
	LargestFunding     string                `json:"largestFunding,omitempty"`
	Display            DisplayTotals         `json:"display"`
}

// Count is one ranked entry of a widget
type Count struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DisplayTotals are the headline totals rendered for dashboard tiles
type DisplayTotals struct {
	JobsAtRisk   string `json:"jobsAtRisk"`
	JobsReplaced string `json:"jobsReplaced"`
	NewAIJobs    string `json:"newAiJobs"`
}

// Service builds dashboard overviews from stored records
type Service struct {
	repo repository.JobImpactRepository
	topN int
}

// NewService creates a dashboard service
func NewService(repo repository.JobImpactRepository, topN int) *Service {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Service{repo: repo, topN: topN}
}

// Overview loads every record and summarizes it
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	records, err := s.repo.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	overview := Summarize(records, s.topN)
	return &overview, nil
}

// Summarize aggregates records. Trends use the jobs at risk comparison and
// sectors are ranked by the jobs at risk they account for.
func Summarize(records []models.JobImpactRecord, topN int) Overview {
	overview := Overview{
		RecordCount: len(records),
		TrendBreakdown: map[metrics.Trend]int{
			metrics.TrendPositive: 0,
			metrics.TrendNegative: 0,
			metrics.TrendNeutral:  0,
		},
	}

	sectors := newTally()
	automated := newTally()
	remaining := newTally()

	var impactTotal int
	var largestAmount float64

	for _, record := range records {
		jobsAtRisk := textclean.ParseCount(models.Text(record.JobsAtRisk))
		jobsReplaced := textclean.ParseCount(models.Text(record.JobsReplaced))
		newAIJobs := textclean.ParseCount(models.Text(record.NewAIJobs))

		overview.TotalJobsAtRisk += jobsAtRisk
		overview.TotalJobsReplaced += jobsReplaced
		overview.TotalNewAIJobs += newAIJobs
		overview.TrendBreakdown[metrics.TrendFor(jobsAtRisk, newAIJobs)]++
		impactTotal += metrics.ImpactScore(jobsAtRisk, newAIJobs)

		recordSectors := articles.Sectors(record)
		if len(recordSectors) == 0 {
			recordSectors = []string{articles.DefaultCategory}
		}
		for _, sector := range recordSectors {
			sectors.add(sector, jobsAtRisk)
		}

		for _, skill := range textclean.DecodeList(models.Text(record.SkillsAutomated)) {
			automated.add(skill, 1)
		}
		for _, skill := range textclean.DecodeList(models.Text(record.SkillsRemaining)) {
			remaining.add(skill, 1)
		}

		token, found := funding.ParseList(textclean.DecodeList(models.Text(record.FundingData)))
		if !found {
			continue
		}
		if amount, ok := funding.Amount(token); ok && amount > largestAmount {
			largestAmount = amount
			overview.LargestFunding = token
		}
	}

	overview.NetJobChange = overview.TotalNewAIJobs - overview.TotalJobsReplaced
	if len(records) > 0 {
		overview.AverageImpactScore = math.Round(float64(impactTotal)/float64(len(records))*10) / 10
	}

	overview.TopSectors = sectors.top(topN)
	overview.TopSkillsAutomated = automated.top(topN)
	overview.TopSkillsRemaining = remaining.top(topN)

	overview.Display = DisplayTotals{
		JobsAtRisk:   textclean.Compact(overview.TotalJobsAtRisk),
		JobsReplaced: textclean.Compact(overview.TotalJobsReplaced),
		NewAIJobs:    textclean.Compact(overview.TotalNewAIJobs),
	}

	return overview
}

// tally sums values per name, case-insensitively, keeping the first spelling
type tally struct {
	names  map[string]string
	values map[string]int
}

func newTally() *tally {
	return &tally{
		names:  make(map[string]string),
		values: make(map[string]int),
	}
}

func (t *tally) add(name string, value int) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	key := strings.ToLower(name)
	if _, seen := t.names[key]; !seen {
		t.names[key] = name
	}
	t.values[key] += value
}

// top ranks names by value, dropping names whose value is zero
func (t *tally) top(n int) []Count {
	counts := make([]Count, 0, len(t.values))
	for key, value := range t.values {
		if value <= 0 {
			continue
		}
		counts = append(counts, Count{Name: t.names[key], Value: value})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Value != counts[j].Value {
			return counts[i].Value > counts[j].Value
		}
		return counts[i].Name < counts[j].Name
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
