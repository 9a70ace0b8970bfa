package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCount(t *testing.T) {
	testCases := []struct {
		name     string
		matches  int
		expected int
	}{
		{"default when unset", 0, 30},
		{"default when negative", -5, 30},
		{"passes through valid values", 12, 12},
		{"caps at the maximum", 500, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := &PlayerStatsFilter{Matches: tc.matches}
			assert.Equal(t, tc.expected, f.MatchCount())
		})
	}
}

func TestAsFilter(t *testing.T) {
	params := &PlayerStatsQueryParams{Matches: 20, Queue: 420, Fresh: true}

	filter := params.AsFilter("TestPlayer", "TAG1")

	assert.Equal(t, "TestPlayer", filter.GameName)
	assert.Equal(t, "TAG1", filter.GameTag)
	assert.Equal(t, 20, filter.Matches)
	assert.Equal(t, 420, filter.Queue)
	assert.True(t, filter.Fresh)
}
