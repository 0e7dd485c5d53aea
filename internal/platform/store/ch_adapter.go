package store

import (
	"context"
	"time"

	"profanity/internal/platform/logger"
	"profanity/internal/platform/store/ch"
)

var _ Clickhouse = (*ch.CH)(nil)

// openCH dials clickhouse and checks it answers. A failed ping is logged, not fatal,
// since event writes are best effort
func openCH(ctx context.Context, cfg Config, log logger.Logger) (Clickhouse, error) {
	c, err := ch.Open(ctx, ch.Config{URL: cfg.CH.URL, App: cfg.AppName, Role: cfg.Role})
	if err != nil {
		return nil, err
	}
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pctx); err != nil {
		log.Warn().Err(err).Msg("clickhouse not reachable yet")
	}
	return c, nil
}
