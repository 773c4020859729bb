package config

import "time"

// Defaults applied when the corresponding variable is unset
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "scoreline"
	DefaultVersion     = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultAutoScoreInterval            = 1 * time.Minute
	DefaultLeaderboardRecomputeInterval = 15 * time.Minute
	DefaultLeaderboardCacheSize         = 256
	DefaultLeaderboardCacheTTL          = 30 * time.Second

	DefaultEventMaxRetries = 5
	DefaultEventRetryDelay = 2 * time.Second
	DefaultDeadLetterPath  = "logs/deadletter.jsonl"

	DefaultEventLogRetention       = 90 * 24 * time.Hour
	DefaultEventLogCleanupInterval = 24 * time.Hour
)
