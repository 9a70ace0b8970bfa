package statsservice

import (
	"riftstats/api/dto"
	challengesfetcher "riftstats/fetcher/data/challenges"
	"sort"
)

const (
	topAchievementCount    = 10
	recentAchievementCount = 5
)

// categoryAliases maps each current category name to the legacy name the
// upstream used before the rename. Whichever of the pair is present on a
// payload contributes it's value.
var categoryAliases = map[string]string{
	"COMBAT": "IMAGINATION",
	"LEGACY": "VETERANCY",
}

// NormalizeChallenges reshapes the raw challenge payload into the fixed
// five-category structure plus the top and recent achievement lists.
// A nil payload produces a all-zero result.
func NormalizeChallenges(raw *challengesfetcher.PlayerChallenges) *dto.ChallengeSummary {
	summary := &dto.ChallengeSummary{
		TopAchievements:    []dto.Achievement{},
		RecentAchievements: []dto.Achievement{},
	}

	if raw == nil {
		return summary
	}

	summary.Categories = dto.CategoryPoints{
		Combat:     categoryValue(raw.CategoryPoints, "COMBAT"),
		Expertise:  categoryValue(raw.CategoryPoints, "EXPERTISE"),
		Teamwork:   categoryValue(raw.CategoryPoints, "TEAMWORK"),
		Collection: categoryValue(raw.CategoryPoints, "COLLECTION"),
		Legacy:     categoryValue(raw.CategoryPoints, "LEGACY"),
	}

	if raw.TotalPoints != nil {
		summary.Total = &dto.ChallengeTotal{
			Points:     raw.TotalPoints.Current,
			Level:      raw.TotalPoints.Level,
			Percentile: raw.TotalPoints.Percentile,
		}
	}

	// Top achievements ranked by value, falling back to the percentile
	// for challenges that don't report a raw value.
	ranked := make([]challengesfetcher.ChallengeProgress, len(raw.Challenges))
	copy(ranked, raw.Challenges)
	sort.SliceStable(ranked, func(i, j int) bool {
		return rankingValue(ranked[i]) > rankingValue(ranked[j])
	})

	for _, challenge := range ranked {
		if len(summary.TopAchievements) >= topAchievementCount {
			break
		}
		summary.TopAchievements = append(summary.TopAchievements, toAchievement(challenge))
	}

	// Recent achievements need a positive achieved timestamp.
	achieved := []challengesfetcher.ChallengeProgress{}
	for _, challenge := range raw.Challenges {
		if challenge.AchievedTime > 0 {
			achieved = append(achieved, challenge)
		}
	}
	sort.SliceStable(achieved, func(i, j int) bool {
		return achieved[i].AchievedTime > achieved[j].AchievedTime
	})

	for _, challenge := range achieved {
		if len(summary.RecentAchievements) >= recentAchievementCount {
			break
		}
		summary.RecentAchievements = append(summary.RecentAchievements, toAchievement(challenge))
	}

	return summary
}

// categoryValue resolves a category by it's current name, transparently
// accepting the legacy alias. Missing on both names defaults to zero.
func categoryValue(categories map[string]challengesfetcher.CategoryValue, name string) float64 {
	if value, exists := categories[name]; exists {
		return value.Current
	}

	if alias, hasAlias := categoryAliases[name]; hasAlias {
		if value, exists := categories[alias]; exists {
			return value.Current
		}
	}

	return 0
}

func rankingValue(challenge challengesfetcher.ChallengeProgress) float64 {
	if challenge.Value != 0 {
		return challenge.Value
	}
	return challenge.Percentile
}

func toAchievement(challenge challengesfetcher.ChallengeProgress) dto.Achievement {
	return dto.Achievement{
		ChallengeId:  challenge.ChallengeId,
		Level:        challenge.Level,
		Value:        challenge.Value,
		Percentile:   challenge.Percentile,
		AchievedTime: challenge.AchievedTime,
	}
}
