package modkit

import (
	"dagsplott/internal/adapters/corpus"
	"dagsplott/internal/adapters/titles"
	"dagsplott/internal/platform/config"
	"dagsplott/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Corpus *corpus.Client
	Titles *titles.List
}
