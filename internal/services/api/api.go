// Package api provides the HTTP API for the dashboard backend
package api

import (
	"dagsplott/internal/adapters/corpus"
	"dagsplott/internal/adapters/titles"
	"dagsplott/internal/platform/config"
	"dagsplott/internal/platform/logger"
	phttp "dagsplott/internal/platform/net/http"

	"dagsplott/internal/modkit"
	"dagsplott/internal/modkit/httpkit"
	"dagsplott/internal/modkit/swaggerkit"

	metamod "dagsplott/internal/services/api/meta/module"
	trendsmod "dagsplott/internal/services/api/trends/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Corpus         *corpus.Client
	Titles         *titles.List
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		Corpus: opt.Corpus,
		Titles: opt.Titles,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []modkit.Module{
		metamod.New(deps),
		trendsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler live outside the versioned prefix
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
