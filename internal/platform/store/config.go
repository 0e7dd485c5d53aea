package store

import (
	"time"

	"profanity/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	// AppName is reported to both servers as the client name
	AppName string
	// Role tags the process in clickhouse client info
	Role string

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

	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
}

// FromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* under root.
// URLs are only required for backends that are enabled
func FromEnv(root config.Conf, app, role string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")

	cfg := Config{AppName: app, Role: role}

	cfg.PG.Enabled = pg.MayBool("ENABLED", false)
	if cfg.PG.Enabled {
		cfg.PG.URL = pg.MustString("DBURL")
		cfg.PG.MaxConns = int32(pg.MayInt("MAX_CONNS", 4))
		cfg.PG.SlowQueryMs = pg.MayInt("SLOW_MS", 500)
		cfg.PG.LogSQL = pg.MayBool("LOG_SQL", false)
		cfg.PG.ConnectRetries = pg.MayInt("CONNECT_RETRIES", 6)
		cfg.PG.PingTimeout = pg.MayDuration("PING_TIMEOUT", 3*time.Second)
	}

	cfg.CH.Enabled = ch.MayBool("ENABLED", false)
	if cfg.CH.Enabled {
		cfg.CH.URL = ch.MustString("DBURL")
	}
	return cfg
}
