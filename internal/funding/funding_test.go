package funding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"Dollar billion word", "$1.5 billion", "$1.5B", true},
		{"Bare letter billion", "1.5B", "$1.5B", true},
		{"Billion word", "1.5 billion", "$1.5B", true},
		{"Dollar million word", "$250 million", "$250M", true},
		{"Bare letter million", "250m", "$250M", true},
		{"Large bare number assumed millions", "1500", "$1500M", true},
		{"Small bare number assumed thousands", "500", "$500K", true},
		{"Trailing zeros trimmed", "$1.50 billion", "$1.5B", true},
		{"Leading zeros trimmed", "007m", "$7M", true},
		{"Mixed case and padding", "   Raised $3 BILLION  ", "$3B", true},
		{"Billion pattern precedes million", "raised 2 million then 1 billion", "$1B", true},
		{"Letter b anywhere marks billions", "about 300", "$300B", true},
		{"Letter m anywhere marks millions", "team of 40", "$40M", true},
		{"Unsupported unit falls back", "funding 5k", "$5K", true},
		{"Empty", "", "", false},
		{"Whitespace", "   ", "", false},
		{"No numbers", "undisclosed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Parse(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseList(t *testing.T) {
	got, found := ParseList([]string{"Series B", "$40 million"})
	assert.True(t, found)
	assert.Equal(t, "$40M", got)

	got, found = ParseList([]string{"1.2", "billion"})
	assert.True(t, found)
	assert.Equal(t, "$1.2B", got)

	_, found = ParseList(nil)
	assert.False(t, found)
}

func TestCandidatesCollectsEveryPattern(t *testing.T) {
	assert.Equal(t, []string{"$2B", "$2B"}, Candidates("$2b"))
	assert.Equal(t,
		[]string{"$1B", "$2M", "$2M", "$1B"},
		Candidates("raised 2 million then 1 billion"),
	)
	assert.Equal(t, []string{"$500K"}, Candidates("500"))
	assert.Empty(t, Candidates(""))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		token    string
		expected float64
		ok       bool
	}{
		{"$1.5B", 1.5e9, true},
		{"$250M", 250e6, true},
		{"$500K", 500e3, true},
		{"1.5B", 0, false},
		{"$12T", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Amount(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}

func TestCostImpact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Saved $2.5B annually", "$2.5B"},
		{"Reduced costs by 30%", "30%"},
		{"3 billion in savings", "$3B"},
		{"120 Million over five years", "$120M"},
		{"500 thousand", "$500K"},
		{`{"note": "undisclosed"}`, "undisclosed"},
		{"", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CostImpact(tt.input))
		})
	}
}
