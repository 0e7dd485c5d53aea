// Package modkit wires API modules: shared deps, build options and the Module surface
package modkit

import (
	"fmt"

	"profanity/internal/modkit/httpkit"
)

// Module is what the API mounts. Ports exposes values other modules may consume
type Module interface {
	Name() string
	MountRoutes(r httpkit.Router)
	Ports() any
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// PortsOf returns m's ports as T
func PortsOf[T any](m Module) (T, bool) {
	p, ok := m.Ports().(T)
	return p, ok
}

// MustPortsOf is PortsOf that panics on a wiring mistake
func MustPortsOf[T any](m Module) T {
	p, ok := PortsOf[T](m)
	if !ok {
		var want T
		panic(fmt.Sprintf("modkit: module %q has ports %T, want %T", m.Name(), m.Ports(), want))
	}
	return p
}
