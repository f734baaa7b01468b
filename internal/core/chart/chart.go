// Package chart maps an adjusted word-frequency series to a declarative
// plotly-style figure description consumed by the dashboard frontend
package chart

import (
	"fmt"

	"dagsplott/internal/core/ngram"
)

// Plot modes accepted by Options.Mode
const (
	ModeLines       = "lines"
	ModeMarkers     = "markers"
	ModeLineMarkers = "lines+markers"
)

// Themes accepted by Options.Theme
const (
	ThemeDefault = "plotly"
	ThemeWhite   = "plotly_white"
	ThemeDark    = "plotly_dark"
)

const (
	defaultOpacity = 0.9
	defaultWidth   = 3.0
	chartHeight    = 500
)

// Options are the cosmetic display knobs; zero values fall back to defaults
type Options struct {
	Mode    string
	Theme   string
	Opacity float64
	Width   float64
}

// Line styles a trace's stroke
type Line struct {
	Width float64 `json:"width"`
}

// Trace is one word's scatter trace
type Trace struct {
	Type          string    `json:"type"`
	X             []string  `json:"x"`
	Y             []float64 `json:"y"`
	Mode          string    `json:"mode"`
	Name          string    `json:"name"`
	Opacity       float64   `json:"opacity"`
	Line          Line      `json:"line"`
	HoverTemplate string    `json:"hovertemplate"`
}

// Axis carries an axis title
type Axis struct {
	Title string `json:"title"`
}

// Layout is the figure-wide presentation block
type Layout struct {
	Template  string `json:"template"`
	Height    int    `json:"height"`
	XAxis     Axis   `json:"xaxis"`
	YAxis     Axis   `json:"yaxis"`
	HoverMode string `json:"hovermode"`
}

// Figure is the full chart description: one trace per word plus layout
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Build renders a series into a figure. Pure; an empty series produces a
// figure with no traces and the standard layout.
func Build(s ngram.Series, o Options) Figure {
	if o.Mode == "" {
		o.Mode = ModeLines
	}
	if o.Theme == "" {
		o.Theme = ThemeDefault
	}
	if o.Opacity == 0 {
		o.Opacity = defaultOpacity
	}
	if o.Width == 0 {
		o.Width = defaultWidth
	}

	fig := Figure{
		Layout: Layout{
			Template:  o.Theme,
			Height:    chartHeight,
			XAxis:     Axis{Title: "Date"},
			YAxis:     Axis{Title: "Frequency"},
			HoverMode: "x unified",
		},
	}
	if s.Empty() {
		return fig
	}

	x := make([]string, len(s.Dates))
	for i, d := range s.Dates {
		x[i] = d.Format("2006-01-02")
	}

	fig.Data = make([]Trace, 0, len(s.Words))
	for j, w := range s.Words {
		y := make([]float64, len(s.Dates))
		for i := range s.Dates {
			y[i] = s.Values[i][j]
		}
		fig.Data = append(fig.Data, Trace{
			Type:          "scatter",
			X:             x,
			Y:             y,
			Mode:          o.Mode,
			Name:          w,
			Opacity:       o.Opacity,
			Line:          Line{Width: o.Width},
			HoverTemplate: fmt.Sprintf("%s<br>Date: %%{x}<br>Freq: %%{y}", w),
		})
	}
	return fig
}
