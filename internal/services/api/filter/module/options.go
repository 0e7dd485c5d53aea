package module

import (
	"time"

	"profanity/internal/core/filter"
	"profanity/internal/platform/config"
	fsvc "profanity/internal/services/api/filter/service"
)

// Options controls the shared filter and its optional backends
type Options struct {
	Filter filter.Config

	// Persist keeps list mutations in postgres and replays them on Start
	Persist bool
	// Events appends one row per text call to clickhouse
	Events         bool
	EventsBuffer   int
	EventsBatch    int
	EventsInterval time.Duration
}

// FromConfig reads filter settings, e.g. under CORE_FILTER_
func FromConfig(cfg config.Conf) Options {
	return Options{
		Filter:         fsvc.ConfigFromEnv(cfg),
		Persist:        cfg.MayBool("PERSIST", true),
		Events:         cfg.MayBool("EVENTS", true),
		EventsBuffer:   cfg.MayInt("EVENTS_BUFFER", 4096),
		EventsBatch:    cfg.MayInt("EVENTS_BATCH", 500),
		EventsInterval: cfg.MayDuration("EVENTS_INTERVAL", 2*time.Second),
	}
}
