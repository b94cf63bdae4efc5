// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "qualifiers/internal/modkit"
	phttp "qualifiers/internal/platform/net/http"
	str "qualifiers/internal/platform/strings"
	ptime "qualifiers/internal/platform/time"

	metahttp "qualifiers/internal/services/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps    modkit.Deps
	name    string
	prefix  string
	service string
	mws     []func(http.Handler) http.Handler

	startedAt time.Time
}

// New constructs a meta module reporting as service
func New(deps modkit.Deps, service string, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		service:   service,
		mws:       b.Mw,
		startedAt: ptime.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r phttp.Router) {
	r.Route(str.MustPrefix(m.prefix), func(rr phttp.Router) {
		if len(m.mws) > 0 {
			rr.Use(m.mws...)
		}
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: m.service,
			StartedAt:   m.startedAt,
			PG:          m.deps.PG,
			CH:          m.deps.CH,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
