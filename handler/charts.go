package handler

import (
	"net/http"
	"strconv"
	"time"

	"portfolio-server/chart"
	"portfolio-server/model"
)

const (
	defaultChartWidth  = 800
	defaultChartHeight = 300
)

// ChartPayload bundles the precomputed SVG geometry for one dashboard view.
type ChartPayload struct {
	VisitorLine    chart.LineGeometry `json:"visitorLine"`
	VisitorArea    chart.AreaGeometry `json:"visitorArea"`
	TrafficSources []chart.BarRect    `json:"trafficSources"`
	DeviceShare    []chart.PieSlice   `json:"deviceShare"`
	Width          float64            `json:"width"`
	Height         float64            `json:"height"`
}

func trendSeries(trend []model.TimeSeriesPoint) chart.Series {
	series := make(chart.Series, 0, len(trend))
	for _, p := range trend {
		series = append(series, chart.Point{Label: p.Date, Value: p.Value})
	}
	return series
}

func categorySeries(stats []model.CategoryStat) chart.Series {
	series := make(chart.Series, 0, len(stats))
	for _, s := range stats {
		series = append(series, chart.Point{Label: s.Name, Value: s.Value, Color: s.Color})
	}
	return series
}

func chartDimension(raw string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
		return v
	}
	return fallback
}

// DashboardCharts godoc
// @Summary Dashboard chart geometry
// @Description Returns SVG drawing primitives for the trend, traffic-source and device-share charts at the requested canvas size
// @Tags dashboard
// @Produce json
// @Param preset query string false "Date preset" Enums(last7days, last30days, last3months, lastyear, custom)
// @Param width query number false "Canvas width in pixels" default(800)
// @Param height query number false "Canvas height in pixels" default(300)
// @Success 200 {object} ChartPayload
// @Router /api/dashboard/charts [get]
func (h *Handler) DashboardCharts(w http.ResponseWriter, r *http.Request) {
	filter := parseDashboardFilter(r)
	width := chartDimension(r.URL.Query().Get("width"), defaultChartWidth)
	height := chartDimension(r.URL.Query().Get("height"), defaultChartHeight)

	data := h.metrics.Dashboard(filter, time.Now())
	snapshot := h.metrics.Snapshot()

	trend := trendSeries(data.Trend)

	SendJSONSuccess(w, http.StatusOK, ChartPayload{
		VisitorLine:    chart.Line(trend, width, height),
		VisitorArea:    chart.Area(trend, width, height),
		TrafficSources: chart.Bar(categorySeries(snapshot.TrafficSources), width, height),
		DeviceShare:    chart.Pie(categorySeries(snapshot.DeviceShare), width, height),
		Width:          width,
		Height:         height,
	})
}
