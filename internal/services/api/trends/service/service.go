// Package service contains the trends workflows: fetch, normalize, adjust,
// render and export
package service

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"dagsplott/internal/adapters/corpus"
	"dagsplott/internal/adapters/export"
	"dagsplott/internal/adapters/titles"
	"dagsplott/internal/core/chart"
	"dagsplott/internal/core/ngram"
	"dagsplott/internal/core/wordlist"
	perr "dagsplott/internal/platform/errors"
	"dagsplott/internal/platform/logger"
	"dagsplott/internal/services/api/trends/domain"
)

// States reported alongside chart and series payloads
const (
	StateOK    = "ok"
	StateEmpty = "empty"
)

const isoDate = "2006-01-02"

// Config holds service settings
type Config struct {
	// SessionTTL bounds how long a cached snapshot may be reused
	SessionTTL time.Duration

	// SearchBase overrides the deep link base URL, mostly for tests
	SearchBase string
}

// Service defines the trends service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the trends service
type Svc struct {
	corpus  domain.CorpusPort
	catalog *titles.List
	sess    *sessions
	log     logger.Logger
	cfg     Config

	// seams for tests
	now   func() time.Time
	newID func() string
}

// New constructs a trends service
func New(cp domain.CorpusPort, catalog *titles.List, cfg Config) *Svc {
	if cp == nil {
		panic("trends.Service requires a non nil CorpusPort")
	}
	if catalog == nil {
		panic("trends.Service requires a non nil title catalogue")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = time.Hour
	}
	now := time.Now
	return &Svc{
		corpus:  cp,
		catalog: catalog,
		sess:    newSessions(cfg.SessionTTL, now),
		log:     *logger.Named("trends"),
		cfg:     cfg,
		now:     now,
		newID:   uuid.NewString,
	}
}

// Chart resolves the query and renders the figure plus summary and deep links
func (s *Svc) Chart(ctx context.Context, in domain.ChartInput) (domain.ChartOutput, error) {
	id := s.sessionID(in.SessionID)
	q, err := parseQuery(in.Query)
	if err != nil {
		return domain.ChartOutput{}, err
	}

	snap, cached := s.resolve(ctx, id, q)
	adjusted := ngram.Adjust(snap, q.mid, q.periodSize, smoothOrDefault(in.Render.Smooth), s.now())

	out := domain.ChartOutput{
		SessionID: id,
		State:     StateOK,
		Cached:    cached,
		Figure: chart.Build(adjusted, chart.Options{
			Mode:    in.Render.Mode,
			Theme:   in.Render.Theme,
			Opacity: in.Render.Opacity,
			Width:   in.Render.Width,
		}),
		Summary: s.summary(in.Query, q),
		Links:   s.links(q),
	}
	if adjusted.Empty() {
		out.State = StateEmpty
	}
	return out, nil
}

// Series resolves the query and returns the adjusted table as parallel arrays
func (s *Svc) Series(ctx context.Context, in domain.SeriesInput) (domain.SeriesOutput, error) {
	id := s.sessionID(in.SessionID)
	q, err := parseQuery(in.Query)
	if err != nil {
		return domain.SeriesOutput{}, err
	}

	snap, _ := s.resolve(ctx, id, q)
	adjusted := ngram.Adjust(snap, q.mid, q.periodSize, smoothOrDefault(in.Smooth), s.now())

	out := domain.SeriesOutput{SessionID: id, State: StateOK, Words: adjusted.Words}
	if adjusted.Empty() {
		out.State = StateEmpty
		return out, nil
	}
	out.Dates = make([]string, len(adjusted.Dates))
	for i, d := range adjusted.Dates {
		out.Dates[i] = d.Format(isoDate)
	}
	out.Values = adjusted.Values
	return out, nil
}

// Export resolves the query and encodes the adjusted table as a workbook
func (s *Svc) Export(ctx context.Context, in domain.ExportInput) (domain.ExportOutput, error) {
	id := s.sessionID(in.SessionID)
	q, err := parseQuery(in.Query)
	if err != nil {
		return domain.ExportOutput{}, err
	}

	snap, _ := s.resolve(ctx, id, q)
	adjusted := ngram.Adjust(snap, q.mid, q.periodSize, smoothOrDefault(in.Smooth), s.now())

	content, err := export.Xlsx(adjusted)
	if err != nil {
		return domain.ExportOutput{}, err
	}
	return domain.ExportOutput{
		Filename: s.filename(in.Filename),
		Content:  content,
	}, nil
}

// Titles returns the publication catalogue for the filter dropdown
func (s *Svc) Titles(context.Context) (domain.TitlesOutput, error) {
	return domain.TitlesOutput{
		Titles: s.catalog.All(),
		Count:  s.catalog.Count(),
	}, nil
}

// query is the parsed, validated form of domain.Query
type query struct {
	words       []string
	compare     []string
	publication string
	mid         time.Time
	periodSize  int
}

func parseQuery(in domain.Query) (query, error) {
	mid, err := time.Parse(isoDate, in.MidDate)
	if err != nil {
		return query{}, perr.InvalidArgf("mid_date %q is not a date", in.MidDate)
	}
	words := wordlist.Parse(in.Words)
	if len(words) == 0 {
		return query{}, perr.InvalidArgf("words %q contains no searchable word", in.Words)
	}
	return query{
		words:       words,
		compare:     wordlist.ParseComparison(in.Compare),
		publication: strings.TrimSpace(in.Publication),
		mid:         ngram.Day(mid),
		periodSize:  in.PeriodSize,
	}, nil
}

// key fingerprints the data inputs; render inputs deliberately excluded
func (q query) key() string {
	return strings.Join([]string{
		strings.Join(q.words, ","),
		strings.Join(q.compare, ","),
		q.publication,
		q.mid.Format(isoDate),
		strconv.Itoa(q.periodSize),
	}, "|")
}

// resolve returns the normalized super-window series for the query, reusing
// the session snapshot when the data inputs are unchanged. Upstream failures
// degrade to an empty series so the dashboard renders an empty chart instead
// of an error page.
func (s *Svc) resolve(ctx context.Context, id string, q query) (ngram.Series, bool) {
	s.sess.sweep()

	key := q.key()
	if series, ok := s.sess.get(id, key); ok {
		return series, true
	}

	gen := s.sess.begin(id)

	lo := q.mid.AddDate(0, 0, -ngram.MaxDays)
	hi := q.mid.AddDate(0, 0, ngram.MaxDays)

	raw, err := s.corpus.NgramCounts(ctx, q.words, lo, hi, q.publication)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("counts fetch failed, serving empty")
		return ngram.Series{}, false
	}

	var ref ngram.Reference
	if len(q.compare) > 0 {
		cmp, err := s.corpus.NgramCounts(ctx, q.compare, lo, hi, q.publication)
		if err != nil {
			s.log.Warn().Err(err).Str("session_id", id).Msg("reference fetch failed, serving empty")
			return ngram.Series{}, false
		}
		ref = ngram.SumColumns(cmp)
	}

	normalized := ngram.Normalize(raw, ref)
	if !s.sess.commit(id, gen, key, normalized) {
		s.log.Debug().Str("session_id", id).Msg("stale fetch discarded")
	}
	return normalized, false
}

func (s *Svc) sessionID(id string) string {
	if id == "" {
		return s.newID()
	}
	return id
}

// summary follows the dashboard status line format, Norwegian labels included.
// The period shown is the raw mid plus minus periodSize, not the clamped
// display window.
func (s *Svc) summary(raw domain.Query, q query) string {
	pub := q.publication
	if pub == "" {
		pub = "Alle"
	}
	start := q.mid.AddDate(0, 0, -q.periodSize)
	end := q.mid.AddDate(0, 0, q.periodSize)
	return fmt.Sprintf("Søk: %s | Publikasjon: %s | Periode: %s til %s",
		strings.TrimSpace(raw.Words), pub, start.Format(isoDate), end.Format(isoDate))
}

func (s *Svc) links(q query) []domain.QueryLink {
	start := q.mid.AddDate(0, 0, -q.periodSize)
	end := q.mid.AddDate(0, 0, q.periodSize)
	out := make([]domain.QueryLink, 0, len(q.words))
	for _, w := range q.words {
		out = append(out, domain.QueryLink{
			Word: w,
			URL:  corpus.SearchURL(s.cfg.SearchBase, w, start, end),
		})
	}
	return out
}

func (s *Svc) filename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		today := s.now().UTC().Format(isoDate)
		return fmt.Sprintf("dagsplott_%s_%s.xlsx", today, today)
	}
	if path.Ext(name) == "" {
		name += ".xlsx"
	}
	return name
}

func smoothOrDefault(smooth int) int {
	if smooth < 1 {
		return 3
	}
	return smooth
}
