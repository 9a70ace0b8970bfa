package queuevalues

// Queue type strings used by the league-v4 entries.
const (
	SoloQueueType = "RANKED_SOLO_5x5"
	FlexQueueType = "RANKED_FLEX_5x5"
)

// Queue ids for the ranked queues.
var RankedQueueValue = map[int]string{
	420: SoloQueueType,
	440: FlexQueueType,
}

// Queues that have defined positions.
// Needed to verify if the team_position value is valid or not. Sometimes could be "".
var QueuesWithPositions = []int{400, 420, 430, 440, 490, 700, 900, 1020, 1400, 1900}
