package challengesfetcher

import "encoding/json"

// PlayerChallenges is the raw challenge-progress payload for a player.
type PlayerChallenges struct {
	TotalPoints    *ChallengePoints         `json:"totalPoints"`
	CategoryPoints map[string]CategoryValue `json:"categoryPoints"`
	Challenges     []ChallengeProgress      `json:"challenges"`
}

// ChallengePoints are the overall point totals of a player.
type ChallengePoints struct {
	Level      string  `json:"level"`
	Current    int     `json:"current"`
	Max        int     `json:"max"`
	Percentile float64 `json:"percentile"`
}

// CategoryValue accepts both shapes the API has shipped over time:
// a bare number, or a object exposing a "current" field.
type CategoryValue struct {
	Current float64
}

func (cv *CategoryValue) UnmarshalJSON(b []byte) error {
	// Try the bare number first.
	var number float64
	if err := json.Unmarshal(b, &number); err == nil {
		cv.Current = number
		return nil
	}

	// Fall back to the object shape.
	var object struct {
		Current float64 `json:"current"`
	}
	if err := json.Unmarshal(b, &object); err != nil {
		return err
	}

	cv.Current = object.Current
	return nil
}

func (cv CategoryValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(cv.Current)
}

// ChallengeProgress is a single challenge progression entry.
type ChallengeProgress struct {
	ChallengeId  int64   `json:"challengeId"`
	Level        string  `json:"level"`
	Value        float64 `json:"value"`
	Percentile   float64 `json:"percentile"`
	AchievedTime int64   `json:"achievedTime"`
}
