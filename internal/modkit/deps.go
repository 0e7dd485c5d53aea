package modkit

import (
	"profanity/internal/platform/config"
	"profanity/internal/platform/logger"
	"profanity/internal/platform/metrics"
	"profanity/internal/platform/store"
)

// Deps are the shared dependencies every module may use. Any of them may be nil
// except Cfg; modules check before use
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	PG      store.TxRunner
	CH      store.Clickhouse
	Metrics *metrics.Metrics
}

// Logger returns Log or a component logger when unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
