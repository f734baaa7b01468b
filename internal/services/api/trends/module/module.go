// Package module wires trends into the API using modkit
package module

import (
	"net/http"

	modkit "dagsplott/internal/modkit"
	"dagsplott/internal/modkit/httpkit"
	str "dagsplott/internal/platform/strings"
	"dagsplott/internal/services/api/trends/domain"
	trendshttp "dagsplott/internal/services/api/trends/http"
	trendssvc "dagsplott/internal/services/api/trends/service"
)

// Ports exposed by the trends module
type Ports struct {
	Service domain.ServicePort
}

// Module implements the trends module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc trendssvc.Service
}

// New constructs the trends module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("trends"), modkit.WithPrefix("/trends")}, opts...)...)

	mo := FromConfig(deps.Cfg)
	svc := trendssvc.New(deps.Corpus, deps.Titles, trendssvc.Config{
		SessionTTL: mo.SessionTTL,
		SearchBase: mo.SearchBase,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		trendshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "trends") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }
