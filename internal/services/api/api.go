// Package api mounts the HTTP API: filter and meta modules under /api/v1,
// plus docs, profiler and metrics
package api

import (
	"context"

	"profanity/internal/platform/config"
	"profanity/internal/platform/logger"
	"profanity/internal/platform/metrics"
	phttp "profanity/internal/platform/net/http"
	"profanity/internal/platform/store"

	"profanity/internal/modkit"
	"profanity/internal/modkit/httpkit"
	"profanity/internal/modkit/swaggerkit"

	filtermod "profanity/internal/services/api/filter/module"
	metamod "profanity/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	// Config is the API namespace, e.g. CORE_API_
	Config config.Conf
	// Filter configures the shared filter and its backends
	Filter filtermod.Options
	// Store may be nil or hold no backends
	Store   *store.Store
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	EnableSwagger  bool
	EnableProfiler bool
	Docs           swaggerkit.Options
}

// API is a mounted API. Close it after the server stops
type API struct {
	filter *filtermod.Module
}

// Mount builds the modules, loads persisted overrides and mounts every route on r
func Mount(ctx context.Context, r phttp.Router, opt Options) (*API, error) {
	deps := modkit.Deps{Log: opt.Logger, Cfg: opt.Config, Metrics: opt.Metrics}
	if opt.Store != nil {
		deps.PG, deps.CH = opt.Store.PG, opt.Store.CH
	}

	fm := filtermod.New(deps, opt.Filter)
	if err := fm.Start(ctx); err != nil {
		fm.Close()
		return nil, err
	}
	ports := modkit.MustPortsOf[filtermod.Ports](fm)

	mods := []modkit.Module{
		metamod.New(deps, modkit.WithPorts(ports)),
		fm,
	}

	swaggerkit.Mount(r, opt.EnableSwagger, opt.Docs)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config, opt.Metrics), func(api httpkit.Router) {
		for _, m := range mods {
			deps.Logger("api").Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
	return &API{filter: fm}, nil
}

// Close flushes buffered filter events
func (a *API) Close() {
	if a != nil && a.filter != nil {
		a.filter.Close()
	}
}
