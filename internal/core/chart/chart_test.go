package chart_test

import (
	"strings"
	"testing"
	"time"

	"dagsplott/internal/core/chart"
	"dagsplott/internal/core/ngram"
)

func sample() ngram.Series {
	return ngram.Series{
		Words: []string{"frihet", "likhet"},
		Dates: []time.Time{
			time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		Values: [][]float64{{1, 10}, {2, 20}},
	}
}

func TestBuild_OneTracePerWord(t *testing.T) {
	fig := chart.Build(sample(), chart.Options{})

	if len(fig.Data) != 2 {
		t.Fatalf("expected 2 traces got %d", len(fig.Data))
	}
	if fig.Data[0].Name != "frihet" || fig.Data[1].Name != "likhet" {
		t.Fatalf("trace order does not follow word order: %v %v", fig.Data[0].Name, fig.Data[1].Name)
	}
	if fig.Data[1].Y[1] != 20 {
		t.Fatalf("expected y value 20 got %v", fig.Data[1].Y[1])
	}
	if fig.Data[0].X[0] != "2023-06-14" {
		t.Fatalf("expected ISO date on x axis got %q", fig.Data[0].X[0])
	}
}

func TestBuild_Defaults(t *testing.T) {
	fig := chart.Build(sample(), chart.Options{})

	tr := fig.Data[0]
	if tr.Mode != chart.ModeLines {
		t.Fatalf("expected default mode got %q", tr.Mode)
	}
	if tr.Opacity != 0.9 || tr.Line.Width != 3.0 {
		t.Fatalf("expected default styling got opacity %v width %v", tr.Opacity, tr.Line.Width)
	}
	if fig.Layout.Template != chart.ThemeDefault {
		t.Fatalf("expected default theme got %q", fig.Layout.Template)
	}
	if fig.Layout.Height != 500 || fig.Layout.HoverMode != "x unified" {
		t.Fatalf("unexpected layout %+v", fig.Layout)
	}
	if fig.Layout.XAxis.Title != "Date" || fig.Layout.YAxis.Title != "Frequency" {
		t.Fatalf("unexpected axis titles %+v", fig.Layout)
	}
}

func TestBuild_OptionsOverride(t *testing.T) {
	fig := chart.Build(sample(), chart.Options{
		Mode:    chart.ModeLineMarkers,
		Theme:   chart.ThemeDark,
		Opacity: 0.5,
		Width:   1.5,
	})

	tr := fig.Data[0]
	if tr.Mode != "lines+markers" || tr.Opacity != 0.5 || tr.Line.Width != 1.5 {
		t.Fatalf("options not applied: %+v", tr)
	}
	if fig.Layout.Template != "plotly_dark" {
		t.Fatalf("theme not applied: %q", fig.Layout.Template)
	}
}

func TestBuild_HoverTemplateNamesWord(t *testing.T) {
	fig := chart.Build(sample(), chart.Options{})
	if !strings.HasPrefix(fig.Data[0].HoverTemplate, "frihet<br>") {
		t.Fatalf("unexpected hover template %q", fig.Data[0].HoverTemplate)
	}
}

func TestBuild_EmptySeries(t *testing.T) {
	fig := chart.Build(ngram.Series{}, chart.Options{})
	if len(fig.Data) != 0 {
		t.Fatalf("expected no traces got %d", len(fig.Data))
	}
	if fig.Layout.Height != 500 {
		t.Fatalf("expected standard layout on empty input")
	}
}
