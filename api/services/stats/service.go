package statsservice

import (
	"context"
	"fmt"
	"riftstats/api/cache"
	"riftstats/api/dto"
	"riftstats/api/filters"
	challengesfetcher "riftstats/fetcher/data/challenges"
	leaguefetcher "riftstats/fetcher/data/league"
	masteryfetcher "riftstats/fetcher/data/mastery"
	matchfetcher "riftstats/fetcher/data/match"
	playerfetcher "riftstats/fetcher/data/player"
	"riftstats/pkg/logger"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// Memory tier expiry of the assembled payloads.
	payloadMemoryCacheDuration = 5 * time.Minute
	// How many match detail requests run at once.
	matchFetchConcurrency = 5
)

// PlayerDataFetcher is the upstream boundary of the aggregation pipeline.
// The riot implementation lives in riotfetcher.go, the tests use a mock.
type PlayerDataFetcher interface {
	GetAccountByRiotId(gameName string, tagLine string) (*playerfetcher.Account, error)
	GetSummonerByPuuid(puuid string) (*playerfetcher.SummonerByPuuid, error)
	GetMatchIds(puuid string, count int, queue int) ([]string, error)
	GetMatchData(matchId string) (*matchfetcher.MatchData, error)
	GetMasteriesByPuuid(puuid string) ([]masteryfetcher.MasteryEntry, error)
	GetLeagueByPuuid(puuid string) ([]leaguefetcher.LeagueEntry, error)
	GetPlayerChallenges(puuid string) (*challengesfetcher.PlayerChallenges, error)
	GetClashHistory(puuid string) (any, error)
}

// StatsService runs the aggregation pipeline over the fetched inputs and
// memoizes the assembled payloads.
type StatsService struct {
	memCache     *cache.MemCache
	payloadCache cache.PayloadCache
	thresholds   Thresholds
	log          *logger.NewLogger
	newFetcher   func(region string) PlayerDataFetcher
	now          func() time.Time

	mu       sync.Mutex
	fetchers map[string]PlayerDataFetcher
}

// StatsServiceDeps is the dependency list for the stats service.
type StatsServiceDeps struct {
	MemCache     *cache.MemCache
	PayloadCache cache.PayloadCache
	Thresholds   Thresholds
	Logger       *logger.NewLogger
	NewFetcher   func(region string) PlayerDataFetcher
	Now          func() time.Time
}

// NewStatsService creates a stats service.
func NewStatsService(deps *StatsServiceDeps) *StatsService {
	thresholds := deps.Thresholds
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds()
	}

	newFetcher := deps.NewFetcher
	if newFetcher == nil {
		newFetcher = NewRiotFetcher
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &StatsService{
		memCache:     deps.MemCache,
		payloadCache: deps.PayloadCache,
		thresholds:   thresholds,
		log:          deps.Logger,
		newFetcher:   newFetcher,
		now:          now,
		fetchers:     make(map[string]PlayerDataFetcher),
	}
}

// fetcherFor returns the fetcher of a region, creating it on first use.
func (ss *StatsService) fetcherFor(region string) PlayerDataFetcher {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if fetcher, exists := ss.fetchers[region]; exists {
		return fetcher
	}

	fetcher := ss.newFetcher(region)
	ss.fetchers[region] = fetcher
	return fetcher
}

// playerInputs are the resolved upstream payloads the pipeline runs over.
type playerInputs struct {
	summoner   *playerfetcher.SummonerByPuuid
	matches    []matchfetcher.MatchData
	masteries  []masteryfetcher.MasteryEntry
	league     []leaguefetcher.LeagueEntry
	challenges *challengesfetcher.PlayerChallenges
	clash      any
}

// GetPlayerSummary resolves the player, fans the upstream fetches out,
// runs the pipeline and returns the assembled payload, honoring the TTL
// caches keyed by player identity plus match/mastery counts.
func (ss *StatsService) GetPlayerSummary(ctx context.Context, region string, f *filters.PlayerStatsFilter) (*dto.AggregatedPlayerPayload, error) {
	fetcher := ss.fetcherFor(region)

	account, err := fetcher.GetAccountByRiotId(f.GameName, f.GameTag)
	if err != nil {
		return nil, fmt.Errorf("couldn't resolve the account: %w", err)
	}

	inputs, err := ss.fetchInputs(ctx, fetcher, account.Puuid, f.MatchCount(), f.Queue)
	if err != nil {
		return nil, err
	}

	key := payloadKey(account.GameName, account.TagLine, len(inputs.matches), len(inputs.masteries))

	if !f.Fresh {
		if cached := ss.getFromCaches(ctx, key); cached != nil {
			return cached, nil
		}
	}

	payload := ss.assemble(account, region, inputs)
	ss.populateCaches(ctx, key, payload)

	return payload, nil
}

// fetchInputs runs the independent upstream fetches concurrently and waits
// for all of them. Mastery, league, challenge and clash failures degrade to
// empty inputs instead of failing the whole request.
func (ss *StatsService) fetchInputs(ctx context.Context, fetcher PlayerDataFetcher, puuid string, matchCount int, queue int) (*playerInputs, error) {
	matchIds, err := fetcher.GetMatchIds(puuid, matchCount, queue)
	if err != nil {
		return nil, fmt.Errorf("couldn't list the matches: %w", err)
	}

	inputs := &playerInputs{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		summoner, err := fetcher.GetSummonerByPuuid(puuid)
		if err != nil {
			ss.logWarn("summoner fetch degraded: %v", err)
			return nil
		}
		inputs.summoner = summoner
		return nil
	})

	g.Go(func() error {
		masteries, err := fetcher.GetMasteriesByPuuid(puuid)
		if err != nil {
			ss.logWarn("mastery fetch degraded: %v", err)
			return nil
		}
		inputs.masteries = masteries
		return nil
	})

	g.Go(func() error {
		league, err := fetcher.GetLeagueByPuuid(puuid)
		if err != nil {
			ss.logWarn("league fetch degraded: %v", err)
			return nil
		}
		inputs.league = league
		return nil
	})

	g.Go(func() error {
		challenges, err := fetcher.GetPlayerChallenges(puuid)
		if err != nil {
			ss.logWarn("challenges fetch degraded: %v", err)
			return nil
		}
		inputs.challenges = challenges
		return nil
	})

	g.Go(func() error {
		clash, err := fetcher.GetClashHistory(puuid)
		if err != nil {
			ss.logWarn("clash fetch degraded: %v", err)
			return nil
		}
		inputs.clash = clash
		return nil
	})

	// Match details keep the id order (newest first), a failed single
	// match is skipped rather than failing the request.
	fetched := make([]*matchfetcher.MatchData, len(matchIds))
	mg, _ := errgroup.WithContext(ctx)
	mg.SetLimit(matchFetchConcurrency)
	for i, matchId := range matchIds {
		i, matchId := i, matchId
		mg.Go(func() error {
			match, err := fetcher.GetMatchData(matchId)
			if err != nil {
				ss.logWarn("match %s fetch degraded: %v", matchId, err)
				return nil
			}
			fetched[i] = match
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := mg.Wait(); err != nil {
		return nil, err
	}

	inputs.matches = make([]matchfetcher.MatchData, 0, len(fetched))
	for _, match := range fetched {
		if match != nil {
			inputs.matches = append(inputs.matches, *match)
		}
	}

	return inputs, nil
}

// assemble runs the six pipeline stages over the resolved inputs.
func (ss *StatsService) assemble(account *playerfetcher.Account, region string, inputs *playerInputs) *dto.AggregatedPlayerPayload {
	payload := &dto.AggregatedPlayerPayload{
		PlayerInfo: dto.PlayerInfo{
			Puuid:    account.Puuid,
			GameName: account.GameName,
			TagLine:  account.TagLine,
			Region:   region,
		},
	}

	if inputs.summoner != nil {
		payload.PlayerInfo.ProfileIconId = inputs.summoner.ProfileIconId
		payload.PlayerInfo.SummonerLevel = inputs.summoner.SummonerLevel
	}

	// Stages 1-4 are independent, 5 derives from 1 and 2, 6 is this method.
	payload.MatchStats = ExtractMatchStats(inputs.matches, account.Puuid, ss.now())
	payload.RecentMatches = BuildRecentMatches(inputs.matches, account.Puuid)
	payload.ChampionMastery = AggregateMastery(inputs.masteries, inputs.matches, account.Puuid)
	payload.Challenges = NormalizeChallenges(inputs.challenges)
	payload.Ranked = ExtractRanked(inputs.league)
	payload.Clash = NormalizeClash(inputs.clash)
	payload.Insights = SynthesizeInsights(payload.MatchStats, payload.ChampionMastery, payload.RecentMatches, ss.thresholds)

	return payload
}

// payloadKey builds the composite cache key.
func payloadKey(gameName, tagLine string, matchCount, masteryCount int) string {
	return fmt.Sprintf("%s#%s-%d-%d", gameName, tagLine, matchCount, masteryCount)
}

// getFromCaches checks the memory tier first, then the redis tier.
func (ss *StatsService) getFromCaches(ctx context.Context, key string) *dto.AggregatedPlayerPayload {
	if ss.memCache != nil {
		if cached := ss.memCache.Get(key); cached != nil {
			return cached.(*dto.AggregatedPlayerPayload)
		}
	}

	if ss.payloadCache != nil {
		redisCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()

		cached, err := ss.payloadCache.GetPayload(redisCtx, key)
		if err == nil && cached != nil {
			if ss.memCache != nil {
				ss.memCache.Set(key, cached, payloadMemoryCacheDuration)
			}
			return cached
		}
	}

	return nil
}

// populateCaches sets both cache tiers. A stale entry is simply overwritten.
func (ss *StatsService) populateCaches(ctx context.Context, key string, payload *dto.AggregatedPlayerPayload) {
	if ss.memCache != nil {
		ss.memCache.Set(key, payload, payloadMemoryCacheDuration)
	}

	if ss.payloadCache != nil {
		if err := ss.payloadCache.SetPayload(ctx, key, payload); err != nil {
			ss.logWarn("payload cache write failed: %v", err)
		}
	}
}

func (ss *StatsService) logWarn(format string, args ...interface{}) {
	if ss.log != nil {
		ss.log.Warnf(format, args...)
	}
}
