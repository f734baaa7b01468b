// Package corpus provides the HTTP client for the newspaper ngram API
package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"time"

	"dagsplott/internal/core/ngram"
	"dagsplott/internal/platform/config"
	perr "dagsplott/internal/platform/errors"
	"dagsplott/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.nb.no/dhlab"
	defaultTimeout = 10 * time.Second
	defaultUA      = "dagsplott"

	ngramPath = "/ngram_newspapers"

	compactDate = "20060102"
	isoDate     = "2006-01-02"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// FromConfig reads client options from a CORPUS_* scoped config view
func FromConfig(cfg config.Conf) Options {
	return Options{
		BaseURL:   cfg.MayString("BASE_URL", baseURLDefault),
		UserAgent: cfg.MayString("USER_AGENT", defaultUA),
		Timeout:   cfg.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Client is a minimal corpus API client. No retries: a slow or failing
// upstream degrades to an empty series at the service layer, so hammering
// it again buys nothing.
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("corpus"),
	}
}

// Ping checks upstream reachability for readiness probes
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "corpus new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "corpus unreachable")
	}
	_ = drainAndClose(resp.Body)
	if resp.StatusCode >= 500 {
		return perr.Upstreamf("corpus status %d", resp.StatusCode)
	}
	return nil
}

// NgramCounts fetches daily occurrence counts per word for the inclusive
// period [start, end], optionally restricted to a single publication title.
// Words absent from the response are dropped from the result (partial data
// is not a fault); dates missing a word's count read as zero.
func (c *Client) NgramCounts(ctx context.Context, words []string, start, end time.Time, title string) (ngram.Series, error) {
	if len(words) == 0 {
		return ngram.Series{}, nil
	}

	body, err := json.Marshal(ngramRequest{
		Wordbag: words,
		Period:  [2]string{start.Format(compactDate), end.Format(compactDate)},
		Title:   title,
	})
	if err != nil {
		return ngram.Series{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "corpus marshal failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+ngramPath, bytes.NewReader(body))
	if err != nil {
		return ngram.Series{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "corpus new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	startAt := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return ngram.Series{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "corpus do failed")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Str("path", ngramPath).
		Int("status", resp.StatusCode).
		Int("words", len(words)).
		Dur("latency", time.Since(startAt)).
		Msg("corpus http response")

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return ngram.Series{}, perr.Upstreamf("corpus unexpected status %d body %s", resp.StatusCode, string(tail))
	}

	var wire ngramResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return ngram.Series{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "corpus decode failed")
	}

	return buildSeries(words, wire), nil
}

// buildSeries turns the wire map into a dense date-sorted series keeping the
// requested word order for the columns
func buildSeries(requested []string, wire ngramResponse) ngram.Series {
	if len(wire) == 0 {
		return ngram.Series{}
	}

	present := make(map[string]bool)
	dates := make([]time.Time, 0, len(wire))
	rows := make(map[time.Time]map[string]float64, len(wire))
	for ds, counts := range wire {
		d, err := time.Parse(isoDate, ds)
		if err != nil {
			continue
		}
		d = ngram.Day(d)
		if _, dup := rows[d]; !dup {
			dates = append(dates, d)
			rows[d] = make(map[string]float64, len(counts))
		}
		for w, n := range counts {
			rows[d][w] = n
			present[w] = true
		}
	}
	if len(dates) == 0 {
		return ngram.Series{}
	}
	sort.Slice(dates, func(a, b int) bool { return dates[a].Before(dates[b]) })

	out := ngram.Series{Dates: dates}
	for _, w := range requested {
		if present[w] {
			out.Words = append(out.Words, w)
		}
	}
	if len(out.Words) == 0 {
		return ngram.Series{}
	}

	out.Values = make([][]float64, len(dates))
	for i, d := range dates {
		row := make([]float64, len(out.Words))
		for j, w := range out.Words {
			row[j] = rows[d][w] // zero when absent
		}
		out.Values[i] = row
	}
	return out
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 1<<16))
	return rc.Close()
}
