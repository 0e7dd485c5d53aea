// Package module wires meta endpoints into the API
package module

import (
	"time"

	"profanity/internal/core/version"
	modkit "profanity/internal/modkit"
	"profanity/internal/modkit/httpkit"

	fmod "profanity/internal/services/api/filter/module"
	metahttp "profanity/internal/services/api/meta/http"
)

// Module implements modkit.Module
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// Ports are what meta consumes from other modules; pass them with modkit.WithPorts
type Ports = fmod.Ports

// New constructs the meta module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	hd := metahttp.Deps{ServiceName: version.Service, StartedAt: time.Now()}
	if deps.PG != nil {
		if p, ok := deps.PG.(metahttp.Pinger); ok {
			hd.PG = p
		}
	}
	if deps.CH != nil {
		hd.CH = deps.CH
	}
	p, _ := b.Ports.(Ports)
	hd.Filter = p.Filter

	return &Module{b: b, deps: hd}
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports implements modkit.Module; meta offers nothing
func (m *Module) Ports() any { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { metahttp.Register(sub, m.deps) })
}

var _ modkit.Module = (*Module)(nil)
