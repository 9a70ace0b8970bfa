package filters

// PlayerStatsQueryParams are the query parameters for the stats endpoint.
type PlayerStatsQueryParams struct {
	Matches int  `form:"matches,default=30" binding:"omitempty,min=1"`
	Queue   int  `form:"queue"`
	Fresh   bool `form:"fresh"`
}

// PlayerStatsFilter is the resolved filter the service receives, including
// the path identity.
type PlayerStatsFilter struct {
	GameName string
	GameTag  string
	Matches  int
	Queue    int
	Fresh    bool
}

// Maximum matches a single request is allowed to pull.
const maxMatchCount = 100

// AsFilter merges the query parameters with the path identity.
func (q *PlayerStatsQueryParams) AsFilter(gameName, gameTag string) *PlayerStatsFilter {
	return &PlayerStatsFilter{
		GameName: gameName,
		GameTag:  gameTag,
		Matches:  q.Matches,
		Queue:    q.Queue,
		Fresh:    q.Fresh,
	}
}

// MatchCount returns the bounded match count.
// Could use max on the form, but that would return a error.
func (f *PlayerStatsFilter) MatchCount() int {
	if f.Matches <= 0 {
		return 30
	}
	if f.Matches > maxMatchCount {
		return maxMatchCount
	}
	return f.Matches
}
