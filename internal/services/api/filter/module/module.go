// Package module wires the filter into the API using modkit
package module

import (
	"context"

	"profanity/internal/core/filter"
	modkit "profanity/internal/modkit"
	"profanity/internal/modkit/httpkit"
	"profanity/internal/platform/logger"

	"profanity/internal/services/api/filter/domain"
	fhttp "profanity/internal/services/api/filter/http"
	frepo "profanity/internal/services/api/filter/repo"
	fsvc "profanity/internal/services/api/filter/service"
)

// Module implements modkit.Module for the filter endpoints
type Module struct {
	b   modkit.Built
	log *logger.Logger

	svc       *fsvc.Svc
	overrides *frepo.Overrides
	events    *frepo.Events
}

// Ports is what the filter module offers other modules
type Ports struct {
	Filter domain.ServicePort
}

// New builds the shared filter and its service. Backends missing from deps
// switch the matching feature off
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("filter"),
		modkit.WithPrefix("/filter"),
	}, opts...)...)

	m := &Module{b: b, log: deps.Logger("filter")}

	fopts := []filter.Option{filter.WithConfig(opt.Filter)}
	if deps.Metrics != nil {
		fopts = append(fopts, filter.WithCompileHook(deps.Metrics.ObserveCompile))
	}
	f, err := filter.New(fopts...)
	if err != nil {
		m.log.Panic().Err(err).Msg("build filter")
	}

	sopts := []fsvc.Option{fsvc.WithLogger(m.log), fsvc.WithMetrics(deps.Metrics)}
	if opt.Persist && deps.PG != nil {
		m.overrides = frepo.NewOverrides(deps.PG, frepo.NewPG())
		sopts = append(sopts, fsvc.WithOverrides(m.overrides))
	}
	if opt.Events && deps.CH != nil {
		m.events = frepo.NewEvents(deps.CH, frepo.EventsOptions{
			Buffer:    opt.EventsBuffer,
			BatchSize: opt.EventsBatch,
			Interval:  opt.EventsInterval,
		}, deps.Metrics, m.log)
		sopts = append(sopts, fsvc.WithEvents(m.events))
	}
	m.svc = fsvc.New(f, sopts...)
	return m
}

// Start creates the override table, replays overrides and starts event delivery
func (m *Module) Start(ctx context.Context) error {
	if m.overrides != nil {
		if err := m.overrides.EnsureSchema(ctx); err != nil {
			return err
		}
		n, err := m.svc.Load(ctx)
		if err != nil {
			return err
		}
		m.log.Info().Int("overrides", n).Msg("filter overrides loaded")
	}
	if m.events != nil {
		m.events.Run(ctx)
	}
	return nil
}

// Close flushes buffered events
func (m *Module) Close() {
	if m.events != nil {
		m.events.Close()
	}
}

// Service exposes the service for in-process callers
func (m *Module) Service() *fsvc.Svc { return m.svc }

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports implements modkit.Module
func (m *Module) Ports() any { return Ports{Filter: m.svc} }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { fhttp.Register(sub, m.svc) })
}

var _ modkit.Module = (*Module)(nil)
