// Package module wires the qualifiers import and lookup services using modkit
package module

import (
	"context"
	"net/http"

	"qualifiers/internal/core/qualifier"
	modkit "qualifiers/internal/modkit"
	"qualifiers/internal/modkit/repokit"
	phttp "qualifiers/internal/platform/net/http"
	"qualifiers/internal/services/qualifiers/domain"
	qhttp "qualifiers/internal/services/qualifiers/http"
	"qualifiers/internal/services/qualifiers/repo"
	"qualifiers/internal/services/qualifiers/service"
)

// Ports exposed by the qualifiers module. Lookup and Storage are nil without postgres
type Ports struct {
	Importer domain.ImporterPort
	Lookup   domain.LookupPort
	Storage  domain.StoragePort
}

// Module implements modkit.Module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	opts   Options
	svc    service.Service
	mirror *repo.Mirror
	ports  Ports
}

var _ modkit.Module = (*Module)(nil)

// New builds the module from config merged with overrides. Postgres is required
// unless overrides.DryRun is set; clickhouse is used only when Mirror is on
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("qualifiers")}, opts...)...)
	cfg := FromConfig(deps.Cfg).merge(overrides)

	m := &Module{deps: deps, name: b.Name, prefix: b.Prefix, mws: b.Mw, opts: cfg}

	binder := repo.NewPG()
	var db repokit.TxRunner
	if deps.PG != nil {
		db = deps.PG
		if cfg.StatementTimeout > 0 {
			db = repokit.WithBeginHooks(db, repokit.StatementTimeout(cfg.StatementTimeout))
		}
		m.svc = service.New(db, binder)
		m.ports.Lookup = m.svc
		m.ports.Storage = binder.Bind(db)
	} else if !cfg.DryRun {
		panic("qualifiers module: postgres is required unless running dry")
	}

	var mirror domain.MirrorPort
	if cfg.Mirror && deps.CH != nil && !cfg.DryRun {
		m.mirror = repo.NewMirror(deps.CH)
		mirror = m.mirror
	} else if cfg.Mirror && deps.CH == nil {
		deps.Log.Warn().Msg("CORE_IMPORT_MIRROR is on but clickhouse is disabled; mirroring off")
	}

	m.ports.Importer = service.NewImporter(db, binder, mirror, service.Config{
		Policy:    cfg.Policy,
		BatchSize: cfg.BatchSize,
		MaxErrors: cfg.MaxErrors,
		TxRetries: cfg.TxRetries,
		DryRun:    cfg.DryRun,
	})
	return m
}

// Options returns the resolved import options
func (m *Module) Options() Options { return m.opts }

// DecodeOptions are the decoder options matching the configured casing
func (m *Module) DecodeOptions() []qualifier.Option {
	return []qualifier.Option{qualifier.WithCasing(m.opts.Casing)}
}

// Prepare applies the postgres schema and, when mirroring, the clickhouse table
func (m *Module) Prepare(ctx context.Context) error {
	if m.ports.Storage != nil {
		if err := m.ports.Storage.Prepare(ctx); err != nil {
			return err
		}
	}
	if m.mirror != nil {
		return m.mirror.Prepare(ctx)
	}
	return nil
}

// MountRoutes mounts the lookup endpoints; without postgres there is nothing to serve
func (m *Module) MountRoutes(r phttp.Router) {
	if m.svc == nil {
		return
	}
	mount := func(rr phttp.Router) {
		if len(m.mws) > 0 {
			rr.Use(m.mws...)
		}
		qhttp.Register(rr, m.svc)
	}
	if m.prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(m.prefix, mount)
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
