package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"portfolio-server/model"
)

// Composite score weights. Fixed design constants, deliberately not
// configurable.
const (
	weightPerformance = 0.25
	weightConversion  = 0.25
	weightRetention   = 0.25
	weightBounce      = 0.25
)

// Alert thresholds, evaluated in declaration order.
const (
	bounceRateThreshold   = 40.0
	pageLoadThreshold     = 3.0
	responseRateThreshold = 90.0
)

// ComputeMetricCards maps the fixed set of headline fields into display
// cards. Pure function of the snapshot; fields are always present because
// the snapshot is generated internally.
func ComputeMetricCards(s *model.MetricsSnapshot) []model.MetricCard {
	change := trendChange(s.VisitorTrend, 7)

	return []model.MetricCard{
		{
			Title:      "Visitors",
			Value:      formatCount(s.Visitors),
			Change:     change,
			ChangeType: changeType(change),
			Icon:       "users",
			Color:      "blue",
			Trend:      trailing(s.VisitorTrend, 7),
		},
		{
			Title:      "Page Views",
			Value:      formatCount(s.PageViews),
			Change:     change,
			ChangeType: changeType(change),
			Icon:       "eye",
			Color:      "green",
		},
		{
			Title:      "Avg. Session",
			Value:      formatDuration(s.AvgSessionSeconds),
			Change:     0,
			ChangeType: model.ChangeNeutral,
			Icon:       "clock",
			Color:      "purple",
		},
		{
			Title:      "Bounce Rate",
			Value:      fmt.Sprintf("%.1f%%", s.BounceRate),
			Change:     0,
			ChangeType: model.ChangeNeutral,
			Icon:       "trending-down",
			Color:      "orange",
		},
		{
			Title:      "Conversion Rate",
			Value:      fmt.Sprintf("%.1f%%", s.ConversionRate),
			Change:     0,
			ChangeType: model.ChangeNeutral,
			Icon:       "target",
			Color:      "teal",
		},
		{
			Title:      "Performance",
			Value:      fmt.Sprintf("%.0f", s.PerformanceScore),
			Change:     0,
			ChangeType: model.ChangeNeutral,
			Icon:       "zap",
			Color:      "yellow",
		},
	}
}

// ComputeCompositeScore derives a single at-a-glance quality signal as a
// weighted average of four normalized inputs, rounded and clamped to
// [0,100].
func ComputeCompositeScore(s *model.MetricsSnapshot) int {
	conversion := s.ConversionRate * 10
	if conversion > 100 {
		conversion = 100
	}

	score := weightPerformance*s.PerformanceScore +
		weightConversion*conversion +
		weightRetention*s.RetentionRate +
		weightBounce*(100-s.BounceRate)

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// RankTopContent takes the most-viewed item from each content category and
// sorts the result descending by views. Ties preserve category declaration
// order (projects, blog, playground). Idempotent.
func RankTopContent(s *model.MetricsSnapshot) []model.TopContent {
	top := make([]model.TopContent, 0, 3)
	for _, group := range []struct {
		kind  string
		stats []model.ContentStat
	}{
		{"project", s.ProjectStats},
		{"blog", s.BlogStats},
		{"playground", s.PlaygroundStats},
	} {
		if best := mostViewed(group.stats); best != nil {
			top = append(top, model.TopContent{
				Type:       group.kind,
				Title:      best.Title,
				Views:      best.Views,
				Engagement: best.Engagement,
			})
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Views > top[j].Views
	})
	return top
}

func mostViewed(stats []model.ContentStat) *model.ContentStat {
	if len(stats) == 0 {
		return nil
	}
	best := &stats[0]
	for i := range stats[1:] {
		if stats[i+1].Views > best.Views {
			best = &stats[i+1]
		}
	}
	return best
}

// DeriveAlerts evaluates the fixed threshold rules in order and returns
// zero or more alerts. All thresholds passing yields an empty slice.
func DeriveAlerts(s *model.MetricsSnapshot) []model.Alert {
	alerts := []model.Alert{}

	if s.BounceRate > bounceRateThreshold {
		alerts = append(alerts, model.Alert{
			Severity:  model.AlertWarning,
			Message:   fmt.Sprintf("Bounce rate is %.1f%%, above the %.0f%% threshold", s.BounceRate, bounceRateThreshold),
			MetricKey: "bounceRate",
		})
	}
	if s.PageLoadTime > pageLoadThreshold {
		alerts = append(alerts, model.Alert{
			Severity:  model.AlertError,
			Message:   fmt.Sprintf("Page load time is %.1fs, above the %.0fs threshold", s.PageLoadTime, pageLoadThreshold),
			MetricKey: "pageLoadTime",
		})
	}
	if s.ContactResponseRate < responseRateThreshold {
		alerts = append(alerts, model.Alert{
			Severity:  model.AlertWarning,
			Message:   fmt.Sprintf("Contact response rate is %.1f%%, below the %.0f%% target", s.ContactResponseRate, responseRateThreshold),
			MetricKey: "contactResponseRate",
		})
	}

	return alerts
}

// ApplyDateFilter returns a copy of the snapshot whose visitor trend is
// sliced to the preset's trailing display window. Aggregate totals are NOT
// recomputed for the range: the filter affects only the time-series window.
// This reproduces the source system's behavior on purpose; do not extend it
// to re-derive totals without product confirmation.
func ApplyDateFilter(s *model.MetricsSnapshot, f model.DashboardFilter, now time.Time) *model.MetricsSnapshot {
	out := *s

	days := f.Preset.WindowDays()
	if f.Preset == model.PresetCustom {
		start, end := f.Resolve(now)
		days = int(end.Sub(start).Hours()/24) + 1
	}
	if days <= 0 {
		days = 30
	}

	out.VisitorTrend = trailing(s.VisitorTrend, days)
	return &out
}

// trailing returns the last n points of a series (all of them when fewer
// exist).
func trailing(points []model.TimeSeriesPoint, n int) []model.TimeSeriesPoint {
	if n >= len(points) {
		return points
	}
	return points[len(points)-n:]
}

// trendChange compares the trailing window against the window before it
// and returns the percentage change, rounded to one decimal.
func trendChange(points []model.TimeSeriesPoint, window int) float64 {
	if len(points) < 2*window {
		return 0
	}
	recent := sumValues(points[len(points)-window:])
	previous := sumValues(points[len(points)-2*window : len(points)-window])
	if previous == 0 {
		return 0
	}
	return math.Round((recent-previous)/previous*1000) / 10
}

func sumValues(points []model.TimeSeriesPoint) float64 {
	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	return total
}

func changeType(change float64) model.ChangeType {
	switch {
	case change > 0:
		return model.ChangeIncrease
	case change < 0:
		return model.ChangeDecrease
	default:
		return model.ChangeNeutral
	}
}

// formatCount renders large counters the way the dashboard displays them
// (12.4K, 1.2M).
func formatCount(v int64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", float64(v)/1_000)
	default:
		return fmt.Sprintf("%d", v)
	}
}

func formatDuration(seconds float64) string {
	m := int(seconds) / 60
	s := int(seconds) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
