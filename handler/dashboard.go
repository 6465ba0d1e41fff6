package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"portfolio-server/model"
)

const dashboardCacheCost = 1

// parseDashboardFilter builds a filter from query parameters, falling back
// to the defaults for anything missing or unrecognized.
func parseDashboardFilter(r *http.Request) model.DashboardFilter {
	f := model.DefaultDashboardFilter()
	q := r.URL.Query()

	switch p := model.DatePreset(q.Get("preset")); p {
	case model.PresetLast7Days, model.PresetLast30Days, model.PresetLast3Months, model.PresetLastYear:
		f.Preset = p
	case model.PresetCustom:
		f.Preset = p
		if start, err := time.Parse("2006-01-02", q.Get("start")); err == nil {
			f.StartDate = start
		}
		if end, err := time.Parse("2006-01-02", q.Get("end")); err == nil {
			f.EndDate = end
		}
	}

	switch g := model.Granularity(q.Get("granularity")); g {
	case model.GranularityHour, model.GranularityDay, model.GranularityWeek, model.GranularityMonth:
		f.Granularity = g
	}

	if raw := q.Get("categories"); raw != "" {
		f.Categories = strings.Split(raw, ",")
	}

	return f
}

// DashboardMetrics godoc
// @Summary Dashboard metrics
// @Description Returns metric cards, composite score, top content, alerts, goals and the trend window for the requested preset
// @Tags dashboard
// @Produce json
// @Param preset query string false "Date preset" Enums(last7days, last30days, last3months, lastyear, custom)
// @Param granularity query string false "Trend bucketing" Enums(hour, day, week, month)
// @Success 200 {object} metrics.DashboardData
// @Router /api/dashboard/metrics [get]
func (h *Handler) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	filter := parseDashboardFilter(r)

	cacheKey := fmt.Sprintf("dashboard:%s:%s", filter.Preset, filter.Granularity)
	if filter.Preset != model.PresetCustom {
		if cached, found := h.cache.Get(cacheKey); found {
			log.Debug().Str("key", cacheKey).Msg("Dashboard cache hit")
			SendJSONSuccess(w, http.StatusOK, cached)
			return
		}
	}

	data := h.metrics.Dashboard(filter, time.Now())

	if filter.Preset != model.PresetCustom {
		h.cache.Set(cacheKey, data, dashboardCacheCost)
	}

	SendJSONSuccess(w, http.StatusOK, data)
}

// DashboardExport godoc
// @Summary Export dashboard data
// @Description Streams the dashboard as a JSON dump or a CSV metric table
// @Tags dashboard
// @Produce json
// @Param format query string true "Export format" Enums(json, csv, pdf)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/dashboard/export [get]
func (h *Handler) DashboardExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	filter := parseDashboardFilter(r)

	switch format {
	case "", "json":
		payload, err := h.metrics.ExportJSON(filter, time.Now())
		if err != nil {
			SendJSONError(w, http.StatusInternalServerError, errors.New("export failed"), "")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="dashboard-export.json"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			log.Error().Err(err).Msg("Failed to write JSON export")
		}

	case "csv":
		payload, err := h.metrics.ExportCSV()
		if err != nil {
			SendJSONError(w, http.StatusInternalServerError, errors.New("export failed"), "")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="dashboard-export.csv"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			log.Error().Err(err).Msg("Failed to write CSV export")
		}

	case "pdf":
		SendJSONError(w, http.StatusNotImplemented, errors.New("pdf export not implemented"), "PDF export is not available yet")

	default:
		SendJSONError(w, http.StatusBadRequest, errors.New("unsupported export format"), "Supported formats: json, csv")
	}
}
