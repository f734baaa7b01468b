// Package http provides http transport for trends
package http

import (
	stdhttp "net/http"

	"dagsplott/internal/adapters/export"
	"dagsplott/internal/modkit/httpkit"
	"dagsplott/internal/services/api/trends/domain"
	svc "dagsplott/internal/services/api/trends/service"
)

// Register mounts trends endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// figure plus summary and deep links
	httpkit.PostJSON[domain.ChartInput](r, "/chart", h.chart)

	// adjusted table as parallel arrays
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)

	// spreadsheet download
	httpkit.PostDownload[domain.ExportInput](r, "/export", h.export)

	// publication catalogue
	httpkit.Get(r, "/titles", h.titles)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /trends/chart Trends trendsChart
// @Summary Render a word frequency chart
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.ChartInput true "Query"
// @Success 200 {object} domain.ChartOutput "ok"
// @Router /trends/chart [post]
func (h *handlers) chart(r *stdhttp.Request, in domain.ChartInput) (any, error) {
	return h.svc.Chart(r.Context(), in)
}

// swagger:route POST /trends/series Trends trendsSeries
// @Summary Adjusted frequency table
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Query"
// @Success 200 {object} domain.SeriesOutput "ok"
// @Router /trends/series [post]
func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

// swagger:route POST /trends/export Trends trendsExport
// @Summary Download the adjusted table as a workbook
// @Tags Trends
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param payload body domain.ExportInput true "Query"
// @Success 200 {file} binary "ok"
// @Router /trends/export [post]
func (h *handlers) export(r *stdhttp.Request, in domain.ExportInput) (string, string, []byte, error) {
	out, err := h.svc.Export(r.Context(), in)
	if err != nil {
		return "", "", nil, err
	}
	return out.Filename, export.ContentType, out.Content, nil
}

// swagger:route GET /trends/titles Trends trendsTitles
// @Summary Publication catalogue
// @Tags Trends
// @Produce json
// @Success 200 {object} domain.TitlesOutput "ok"
// @Router /trends/titles [get]
func (h *handlers) titles(r *stdhttp.Request) (any, error) {
	return h.svc.Titles(r.Context())
}
