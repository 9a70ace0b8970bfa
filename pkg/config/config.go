package config

import (
	"os"
	"strconv"
	"time"
)

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Bucket configuration for the log uploads.
type BucketConfiguration struct {
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
	Region       string
}

// Insights configuration for the external AI summarization endpoint.
type InsightsConfiguration struct {
	Endpoint string
	Timeout  time.Duration
}

// Threshold policy driving the improvement-area flags, tunable per
// deployment through the environment.
type ThresholdsConfiguration struct {
	VisionAverage             float64
	DeathsAverage             float64
	WinRate                   float64
	DamagePerMinute           float64
	CsAverage                 float64
	KillParticipation         float64
	KillParticipationMinGames int
	RecentWinRateDrop         float64
}

// Rate limit window configuration for the Riot API.
type RateWindow struct {
	Count         int
	ResetInterval time.Duration
}

type RateLimits struct {
	Lower  RateWindow
	Higher RateWindow
}

var (
	ApiKey     string
	Bucket     BucketConfiguration
	Insights   InsightsConfiguration
	Limits     RateLimits
	Redis      RedisConfiguration
	Thresholds ThresholdsConfiguration
)

// Load the variables.
func LoadEnv() {
	ApiKey = os.Getenv("RIOT_API_KEY")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the bucket configuration.
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")
	Bucket.Region = os.Getenv("BUCKET_REGION")

	// Load the AI insights endpoint.
	Insights.Endpoint = os.Getenv("INSIGHTS_ENDPOINT")
	Insights.Timeout = durationEnv("INSIGHTS_TIMEOUT_SECONDS", 15*time.Second)

	// Load the insight threshold policy.
	Thresholds.VisionAverage = floatEnv("INSIGHT_VISION_AVERAGE", 20)
	Thresholds.DeathsAverage = floatEnv("INSIGHT_DEATHS_AVERAGE", 6)
	Thresholds.WinRate = floatEnv("INSIGHT_WIN_RATE", 50)
	Thresholds.DamagePerMinute = floatEnv("INSIGHT_DAMAGE_PER_MINUTE", 400)
	Thresholds.CsAverage = floatEnv("INSIGHT_CS_AVERAGE", 150)
	Thresholds.KillParticipation = floatEnv("INSIGHT_KILL_PARTICIPATION", 50)
	Thresholds.KillParticipationMinGames = intEnv("INSIGHT_KILL_PARTICIPATION_MIN_GAMES", 10)
	Thresholds.RecentWinRateDrop = floatEnv("INSIGHT_RECENT_WIN_RATE_DROP", 10)

	// Riot development keys allow 20 requests each 1s and 100 each 2min.
	Limits.Lower = RateWindow{
		Count:         intEnv("RIOT_LIMIT_LOWER_COUNT", 20),
		ResetInterval: durationEnv("RIOT_LIMIT_LOWER_SECONDS", time.Second),
	}
	Limits.Higher = RateWindow{
		Count:         intEnv("RIOT_LIMIT_HIGHER_COUNT", 100),
		ResetInterval: durationEnv("RIOT_LIMIT_HIGHER_SECONDS", 2*time.Minute),
	}
}

// intEnv reads a integer environment variable with a fallback default.
func intEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return value
}

// floatEnv reads a float environment variable with a fallback default.
func floatEnv(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}

	return value
}

// durationEnv reads a duration in seconds with a fallback default.
func durationEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return time.Duration(seconds) * time.Second
}
