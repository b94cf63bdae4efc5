package store

import (
	"time"

	"qualifiers/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	// AppName is reported to Postgres as application_name and to ClickHouse as client info
	AppName string
	// Role and Tag describe the running binary in ClickHouse client info
	Role string
	Tag  string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // ping attempts before Open gives up, default 20
	PingTimeout    time.Duration // per attempt, default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
}

// ConfigFromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_*.
// Postgres is enabled when a DBURL is present.
func ConfigFromEnv(appName, role, tag string) Config {
	pgc := config.New().Prefix("SERVICE_PGSQL_")
	chc := config.New().Prefix("SERVICE_CLICKHOUSE_")

	url := pgc.MayString("DBURL", "")
	cfg := Config{
		AppName: appName,
		Role:    role,
		Tag:     tag,
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(pgc.MayInt("MAX_CONNS", 8)),
			LogSQL:         pgc.MayBool("LOG_SQL", false),
			SlowQueryMs:    pgc.MayInt("SLOW_MS", 200),
			ConnectRetries: pgc.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pgc.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled: chc.MayBool("ENABLED", false),
			URL:     chc.MayString("DBURL", ""),
		},
	}
	if cfg.CH.Enabled && cfg.CH.URL == "" {
		chc.Require("DBURL")
	}
	return cfg
}
