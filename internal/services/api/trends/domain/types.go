// Package domain holds DTOs for trends http and service contracts
package domain

import "dagsplott/internal/core/chart"

// Query carries the data inputs: everything that determines WHAT is fetched
// from the corpus. Changing any field invalidates the cached snapshot.
type Query struct {
	// Words is the comma-separated search string, up to 30 unique words
	Words string `json:"words" validate:"required,min=1,max=2000" example:"frihet, likhet"`

	// Publication restricts counts to one newspaper title; empty means all
	Publication string `json:"publication,omitempty" validate:"omitempty,max=200" example:"aftenposten"`

	// MidDate is the center of the display window
	MidDate string `json:"mid_date" validate:"required,datetime=2006-01-02" example:"2023-06-15"`

	// PeriodSize is the half-width of the display window in days
	PeriodSize int `json:"period_size" validate:"required,min=3,max=7400" example:"365"`

	// Compare is the comma-separated reference word list used as the
	// normalization denominator; an empty element means the whole corpus
	Compare string `json:"compare,omitempty" validate:"omitempty,max=2000" example:"og,i,"`
}

// RenderOpts carries the cosmetic inputs: changing only these re-renders
// from the cached snapshot without touching the corpus
type RenderOpts struct {
	Smooth  int     `json:"smooth,omitempty" validate:"omitempty,min=1,max=21" example:"3"`
	Theme   string  `json:"theme,omitempty" validate:"omitempty,oneof=plotly plotly_white plotly_dark" example:"plotly"`
	Opacity float64 `json:"opacity,omitempty" validate:"omitempty,min=0.1,max=1" example:"0.9"`
	Width   float64 `json:"width,omitempty" validate:"omitempty,min=0.5,max=20" example:"3"`
	Mode    string  `json:"mode,omitempty" validate:"omitempty,oneof=lines markers lines+markers" example:"lines"`
}

// ChartInput is the chart endpoint payload
type ChartInput struct {
	SessionID string     `json:"session_id,omitempty" validate:"omitempty,uuid4" example:"5f8b1a1e-4a2f-4b6e-9d7c-1c2d3e4f5a6b"`
	Query     Query      `json:"query"`
	Render    RenderOpts `json:"render"`
}

// QueryLink is a per-word deep link into the national library search UI
type QueryLink struct {
	Word string `json:"word" example:"frihet"`
	URL  string `json:"url"`
}

// ChartOutput is the chart endpoint result
type ChartOutput struct {
	SessionID string `json:"session_id"`

	// State is "ok" when data is plotted and "empty" when the query produced
	// nothing, including upstream failures which degrade to an empty chart
	State string `json:"state" example:"ok"`

	// Cached reports whether the snapshot was reused instead of refetched
	Cached bool `json:"cached"`

	Figure  chart.Figure `json:"figure"`
	Summary string       `json:"summary" example:"Søk: frihet | Publikasjon: Alle | Periode: 2022-06-15 til 2024-06-14"`
	Links   []QueryLink  `json:"links,omitempty"`
}

// SeriesInput is the raw-table endpoint payload
type SeriesInput struct {
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid4"`
	Query     Query  `json:"query"`
	Smooth    int    `json:"smooth,omitempty" validate:"omitempty,min=1,max=21"`
}

// SeriesOutput is the adjusted series as parallel arrays, one row per date
type SeriesOutput struct {
	SessionID string      `json:"session_id"`
	State     string      `json:"state" example:"ok"`
	Words     []string    `json:"words"`
	Dates     []string    `json:"dates"`
	Values    [][]float64 `json:"values"`
}

// ExportInput is the spreadsheet download payload
type ExportInput struct {
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid4"`
	Query     Query  `json:"query"`
	Smooth    int    `json:"smooth,omitempty" validate:"omitempty,min=1,max=21"`

	// Filename defaults to dagsplott_<today>_<today>.xlsx; the .xlsx
	// extension is appended when missing
	Filename string `json:"filename,omitempty" validate:"omitempty,max=200" example:"dagsplott_2026-08-25_2026-08-25.xlsx"`
}

// ExportOutput is the encoded workbook plus its download name
type ExportOutput struct {
	Filename string
	Content  []byte
}

// TitlesOutput lists the publication catalogue
type TitlesOutput struct {
	Titles []string `json:"titles"`
	Count  int      `json:"count" example:"212"`
}
