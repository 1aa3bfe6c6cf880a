package metrics

import (
	"math"
	"math/rand"
)

// Trend is the qualitative direction of job creation against displacement
type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendNeutral  Trend = "neutral"
)

// TrendFor compares new AI jobs with jobs at risk. Displacement only counts as
// negative once jobs at risk exceed one and a half times the new jobs.
func TrendFor(jobsAtRisk, newAIJobs int) Trend {
	switch {
	case newAIJobs > jobsAtRisk:
		return TrendPositive
	case float64(jobsAtRisk) > 1.5*float64(newAIJobs):
		return TrendNegative
	default:
		return TrendNeutral
	}
}

// TrendAgainstReplaced compares new AI jobs with jobs already replaced,
// with no tolerance band
func TrendAgainstReplaced(jobsReplaced, newAIJobs int) Trend {
	switch {
	case newAIJobs > jobsReplaced:
		return TrendPositive
	case jobsReplaced > newAIJobs:
		return TrendNegative
	default:
		return TrendNeutral
	}
}

// ImpactScore buckets the combined job counts into a 1-10 severity score
func ImpactScore(jobsAtRisk, newAIJobs int) int {
	total := jobsAtRisk + newAIJobs
	if jobsAtRisk > 0 && newAIJobs > math.MaxInt-jobsAtRisk {
		total = math.MaxInt
	}

	switch {
	case total > 100000:
		return 10
	case total > 50000:
		return 8
	case total > 10000:
		return 6
	case total > 1000:
		return 4
	case total > 100:
		return 2
	default:
		return 1
	}
}

// JobCreationRatio is new AI jobs per replaced job, rounded to one decimal.
// With nothing replaced the ratio is the new job count itself.
func JobCreationRatio(jobsReplaced, newAIJobs int) float64 {
	if jobsReplaced == 0 {
		if newAIJobs > 0 {
			return float64(newAIJobs)
		}
		return 0
	}
	return math.Round(float64(newAIJobs)/float64(jobsReplaced)*10) / 10
}

// companyBucket is an inclusive range of company counts for a jobs at risk band
type companyBucket struct {
	above int
	min   int
	span  int
}

var companyBuckets = []companyBucket{
	{above: 50000, min: 100, span: 500},
	{above: 10000, min: 50, span: 100},
	{above: 1000, min: 10, span: 50},
	{above: math.MinInt, min: 1, span: 10},
}

// EstimateCompanies guesses how many companies are involved from the jobs at
// risk. There is no stored company count yet, so the estimate is drawn from
// rng within a band picked by jobsAtRisk.
func EstimateCompanies(jobsAtRisk int, rng *rand.Rand) int {
	for _, bucket := range companyBuckets {
		if jobsAtRisk > bucket.above {
			return bucket.min + rng.Intn(bucket.span)
		}
	}
	return 1
}

// CompanyRange returns the inclusive bounds EstimateCompanies draws from
func CompanyRange(jobsAtRisk int) (int, int) {
	for _, bucket := range companyBuckets {
		if jobsAtRisk > bucket.above {
			return bucket.min, bucket.min + bucket.span - 1
		}
	}
	return 1, 1
}
