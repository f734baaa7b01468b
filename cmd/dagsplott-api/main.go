// @title         Dagsplott API
// @version       0.1.0
// @description   Word frequency charts over the national newspaper corpus

package main

import (
	"context"

	"dagsplott/internal/adapters/corpus"
	"dagsplott/internal/adapters/titles"
	"dagsplott/internal/platform/config"
	"dagsplott/internal/platform/logger"
	phttp "dagsplott/internal/platform/net/http"

	"dagsplott/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (DAGSPLOTT_API_*)
	root := config.New()
	apiCfg := root.Prefix("DAGSPLOTT_API_")
	corpusCfg := root.Prefix("CORPUS_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// upstream counts client
	client := corpus.NewClient(corpus.FromConfig(corpusCfg))

	// publication catalogue; a missing file degrades to a fallback entry
	catalog := titles.Load(apiCfg.MayString("TITLES_PATH", "titles.csv"))

	// http server (reads DAGSPLOTT_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Corpus:         client,
			Titles:         catalog,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
