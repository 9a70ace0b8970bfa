package statsservice

import (
	leaguefetcher "riftstats/fetcher/data/league"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(value string) *string {
	return &value
}

func TestExtractRankedBucketing(t *testing.T) {
	entries := []leaguefetcher.LeagueEntry{
		{
			QueueType:    strPtr("RANKED_SOLO_5x5"),
			Tier:         strPtr("GOLD"),
			Rank:         strPtr("II"),
			LeaguePoints: 56,
			Wins:         60,
			Losses:       40,
		},
		{
			QueueType:    strPtr("RANKED_FLEX_5x5"),
			Tier:         strPtr("SILVER"),
			Rank:         strPtr("I"),
			LeaguePoints: 20,
			Wins:         10,
			Losses:       30,
		},
		// Unknown queue types are ignored.
		{
			QueueType: strPtr("CHERRY"),
			Wins:      5,
			Losses:    5,
		},
	}

	summary := ExtractRanked(entries)

	assert.NotNil(t, summary.SoloQueue)
	assert.Equal(t, "GOLD", summary.SoloQueue.Tier)
	assert.Equal(t, "II", summary.SoloQueue.Rank)
	assert.Equal(t, 56, summary.SoloQueue.LeaguePoints)
	assert.Equal(t, 60.0, summary.SoloQueue.WinRate)
	// GOLD base + division II + lp.
	assert.Equal(t, 30000+5000+56, summary.SoloQueue.NumericRank)

	assert.NotNil(t, summary.FlexQueue)
	assert.Equal(t, 25.0, summary.FlexQueue.WinRate)
}

// A queue absent from the input leaves the summary nil.
func TestExtractRankedAbsentQueues(t *testing.T) {
	tests := []struct {
		name     string
		entries  []leaguefetcher.LeagueEntry
		wantSolo bool
		wantFlex bool
	}{
		{
			name:     "no entries at all",
			entries:  nil,
			wantSolo: false,
			wantFlex: false,
		},
		{
			name: "solo only",
			entries: []leaguefetcher.LeagueEntry{
				{QueueType: strPtr("RANKED_SOLO_5x5"), Tier: strPtr("IRON"), Rank: strPtr("IV")},
			},
			wantSolo: true,
			wantFlex: false,
		},
		{
			name: "nil queue type is skipped",
			entries: []leaguefetcher.LeagueEntry{
				{Wins: 10, Losses: 10},
			},
			wantSolo: false,
			wantFlex: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ExtractRanked(tt.entries)

			assert.Equal(t, tt.wantSolo, summary.SoloQueue != nil)
			assert.Equal(t, tt.wantFlex, summary.FlexQueue != nil)
		})
	}
}

// Win rate stays zero without any game instead of dividing by zero.
func TestExtractRankedZeroGames(t *testing.T) {
	entries := []leaguefetcher.LeagueEntry{
		{QueueType: strPtr("RANKED_SOLO_5x5"), Tier: strPtr("BRONZE"), Rank: strPtr("III")},
	}

	summary := ExtractRanked(entries)

	assert.Equal(t, 0.0, summary.SoloQueue.WinRate)
}
