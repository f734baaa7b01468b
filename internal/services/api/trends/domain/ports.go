package domain

import (
	"context"
	"time"

	"dagsplott/internal/core/ngram"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Chart(ctx context.Context, in ChartInput) (ChartOutput, error)
	Series(ctx context.Context, in SeriesInput) (SeriesOutput, error)
	Export(ctx context.Context, in ExportInput) (ExportOutput, error)
	Titles(ctx context.Context) (TitlesOutput, error)
}

// CorpusPort abstracts the upstream counts API so the service can be tested
// against a fake
type CorpusPort interface {
	NgramCounts(ctx context.Context, words []string, start, end time.Time, title string) (ngram.Series, error)
}
