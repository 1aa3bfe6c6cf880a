package articles

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Aditi2k5/ai-job-dashboard/internal/funding"
	"github.com/Aditi2k5/ai-job-dashboard/internal/metrics"
	"github.com/Aditi2k5/ai-job-dashboard/internal/models"
	"github.com/Aditi2k5/ai-job-dashboard/internal/textclean"
)

const (
	DefaultCategory = "Technology"
	DefaultTitle    = "Untitled Article"
	DatabaseSource  = "Future of Jobs Database"
	FallbackSource  = "Tech Analysis"
	Timeframe       = "2024-2026"
	dateLayout      = "2006-01-02"
)

// GeographicSpread is shown for every article until regions are stored
var GeographicSpread = []string{"North America", "Europe", "Asia-Pacific"}

// Transformer turns stored job impact records into display articles
type Transformer struct {
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewTransformer creates a transformer using the wall clock and a time seeded
// random source for company estimates
func NewTransformer() *Transformer {
	return NewTransformerWith(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewTransformerWith creates a transformer with an explicit clock and random
// source, so output is reproducible
func NewTransformerWith(now func() time.Time, rng *rand.Rand) *Transformer {
	return &Transformer{now: now, rng: rng}
}

// Card builds the list view of a record. Its trend compares new AI jobs with
// jobs already replaced and the source is the database label.
func (t *Transformer) Card(record models.JobImpactRecord) models.DisplayArticle {
	f := parseFields(record)
	return t.build(record, f, DatabaseSource, metrics.TrendAgainstReplaced(f.jobsReplaced, f.newAIJobs))
}

// Detail builds the single article view. Its trend compares new AI jobs with
// jobs at risk and the source is derived from the article URL.
func (t *Transformer) Detail(record models.JobImpactRecord) models.DisplayArticle {
	f := parseFields(record)
	return t.build(record, f, SourceFromURL(models.Text(record.URL)), metrics.TrendFor(f.jobsAtRisk, f.newAIJobs))
}

// Cards builds the list view of every record, preserving order
func (t *Transformer) Cards(records []models.JobImpactRecord) []models.DisplayArticle {
	cards := make([]models.DisplayArticle, len(records))
	for i, record := range records {
		cards[i] = t.Card(record)
	}
	return cards
}

func (t *Transformer) build(record models.JobImpactRecord, f fields, source string, trend metrics.Trend) models.DisplayArticle {
	category := DefaultCategory
	if len(f.sectors) > 0 {
		category = f.sectors[0]
	}

	sectors := f.sectors
	if len(sectors) == 0 {
		sectors = []string{category}
	}

	articleURL := strings.TrimSpace(models.Text(record.URL))
	if articleURL == "" {
		articleURL = "#"
	}

	summary := strings.TrimSpace(models.Text(record.Summary))
	if summary == "" {
		summary = generateSummary(f)
	}

	fullContent := strings.TrimSpace(models.Text(record.DetailedAnalysis))
	if fullContent == "" {
		fullContent = generateFullContent(f)
	}

	insights := models.Insights{
		JobsAffected:      f.jobsAtRisk,
		CompaniesInvolved: t.estimateCompanies(f.jobsAtRisk),
		Timeframe:         Timeframe,
		Sectors:           sectors,
		Trend:             trend,
		ImpactScore:       metrics.ImpactScore(f.jobsAtRisk, f.newAIJobs),
		GeographicSpread:  append([]string(nil), GeographicSpread...),
	}

	if len(f.skillsAutomated) > 0 {
		insights.SkillsReplaced = f.skillsAutomated
	}
	if len(f.skillsRemaining) > 0 {
		insights.SkillsCreated = f.skillsRemaining
	}
	if f.hasFunding {
		token := f.fundingToken
		insights.CostSavings = &token
	}
	if f.jobsReplaced > 0 || f.newAIJobs > 0 {
		ratio := metrics.JobCreationRatio(f.jobsReplaced, f.newAIJobs)
		insights.JobCreationRatio = &ratio
	}

	return models.DisplayArticle{
		ID:          record.ID,
		Title:       CleanTitle(models.Text(record.Title)),
		Source:      source,
		Date:        t.now().Format(dateLayout),
		Category:    category,
		URL:         articleURL,
		Summary:     summary,
		FullContent: fullContent,
		Insights:    insights,
	}
}

func (t *Transformer) estimateCompanies(jobsAtRisk int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return metrics.EstimateCompanies(jobsAtRisk, t.rng)
}

// fields are the coerced values of a record shared by both views
type fields struct {
	jobsAtRisk   int
	jobsReplaced int
	newAIJobs    int

	sectors         []string
	skillsRemaining []string
	skillsAutomated []string

	fundingToken string
	hasFunding   bool
}

func parseFields(record models.JobImpactRecord) fields {
	f := fields{
		jobsAtRisk:      textclean.ParseCount(models.Text(record.JobsAtRisk)),
		jobsReplaced:    textclean.ParseCount(models.Text(record.JobsReplaced)),
		newAIJobs:       textclean.ParseCount(models.Text(record.NewAIJobs)),
		sectors:         Sectors(record),
		skillsRemaining: textclean.DecodeList(models.Text(record.SkillsRemaining)),
		skillsAutomated: textclean.DecodeList(models.Text(record.SkillsAutomated)),
	}
	f.fundingToken, f.hasFunding = funding.ParseList(textclean.DecodeList(models.Text(record.FundingData)))
	return f
}

// Sectors returns the cleaned affected industries of a record
func Sectors(record models.JobImpactRecord) []string {
	return textclean.NormalizeAll(textclean.DecodeList(models.Text(record.AffectedIndustry)))
}

// CleanTitle trims whitespace and one pair of surrounding quote characters
func CleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title != "" && isQuote(title[0]) {
		title = title[1:]
	}
	if n := len(title); n > 0 && isQuote(title[n-1]) {
		title = title[:n-1]
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

// SourceFromURL derives a publication label from an article URL:
// "https://www.reuters.com/..." becomes "Reuters". URLs without a host
// fall back to a fixed label.
func SourceFromURL(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Hostname() == "" {
		return FallbackSource
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return FallbackSource
	}

	first, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(first)) + label[size:]
}

func generateSummary(f fields) string {
	industry := joinOr(f.sectors, "various industries")

	return fmt.Sprintf(
		"This analysis examines the impact of AI and automation on %s. "+
			"The study reveals that %s jobs are at risk of being affected, with %s positions potentially being replaced. "+
			"However, the technological advancement is also expected to create %s new AI-related positions, "+
			"indicating a shift in the job market rather than a net loss.",
		industry,
		textclean.Thousands(f.jobsAtRisk),
		textclean.Thousands(f.jobsReplaced),
		textclean.Thousands(f.newAIJobs),
	)
}

func generateFullContent(f fields) string {
	industry := joinOr(f.sectors, "technology")

	investment := "Significant investment will be required to manage this transition effectively."
	if f.hasFunding {
		investment = fmt.Sprintf("Investment in this transition is estimated at %s.", f.fundingToken)
	}

	paragraphs := []string{
		fmt.Sprintf("The %s sector is experiencing significant transformation due to artificial intelligence and automation technologies. "+
			"Our analysis indicates that %s positions are currently at risk of being impacted by these technological changes.",
			industry, textclean.Thousands(f.jobsAtRisk)),
		fmt.Sprintf("Job Displacement: Approximately %s traditional roles may be replaced by automated systems. "+
			"The skills most affected include: %s.",
			textclean.Thousands(f.jobsReplaced), joinOr(f.skillsAutomated, "not specified")),
		fmt.Sprintf("Job Creation: Despite the displacement, %s new positions are expected to emerge, "+
			"particularly in areas requiring human oversight of AI systems, creative problem-solving, and technical expertise.",
			textclean.Thousands(f.newAIJobs)),
		fmt.Sprintf("Skills Evolution: The workforce will need to adapt by developing new competencies. "+
			"Skills that remain valuable include: %s.",
			joinOr(f.skillsRemaining, "not specified")),
		fmt.Sprintf("Economic Impact: The transition represents both challenges and opportunities for the %s sector. %s",
			industry, investment),
	}

	return strings.Join(paragraphs, "\n\n")
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
