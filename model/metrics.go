package model

import "time"

// DatePreset is a named shorthand for a date range resolved relative to now.
type DatePreset string

const (
	PresetLast7Days   DatePreset = "last7days"
	PresetLast30Days  DatePreset = "last30days"
	PresetLast3Months DatePreset = "last3months"
	PresetLastYear    DatePreset = "lastyear"
	PresetCustom      DatePreset = "custom"
)

// WindowDays returns the trailing display window for a preset. Custom
// presets resolve from the filter's explicit dates and return 0 here.
func (p DatePreset) WindowDays() int {
	switch p {
	case PresetLast7Days:
		return 7
	case PresetLast30Days:
		return 30
	case PresetLast3Months:
		return 90
	case PresetLastYear:
		return 365
	default:
		return 0
	}
}

// Granularity controls time-series bucketing on the dashboard.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// TimeSeriesPoint represents a point in time-series data
type TimeSeriesPoint struct {
	Date  string  `json:"date"`  // Date in "YYYY-MM-DD" format
	Value float64 `json:"value"` // Metric value on this date
}

// CategoryStat is a named share of a category distribution. Values within
// one group sum to ~100 (rounding tolerance).
type CategoryStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ContentStat is a single tracked content item (project, post, example).
type ContentStat struct {
	Title      string  `json:"title"`
	Views      int64   `json:"views"`
	Engagement float64 `json:"engagement"` // Percentage, 0-100
}

// MetricsSnapshot is an in-memory, point-in-time bundle of simulated
// analytics values. Constructed once at startup and mutated in place by the
// refresher; never persisted.
type MetricsSnapshot struct {
	Visitors            int64   `json:"visitors"`
	PageViews           int64   `json:"pageViews"`
	AvgSessionSeconds   float64 `json:"avgSessionSeconds"`
	BounceRate          float64 `json:"bounceRate"`          // Percentage, 0-100
	ConversionRate      float64 `json:"conversionRate"`      // Percentage, 0-100
	RetentionRate       float64 `json:"retentionRate"`       // Percentage, 0-100
	PerformanceScore    float64 `json:"performanceScore"`    // 0-100
	PageLoadTime        float64 `json:"pageLoadTime"`        // Seconds
	ContactResponseRate float64 `json:"contactResponseRate"` // Percentage, 0-100

	ProjectStats    []ContentStat `json:"projectStats"`
	BlogStats       []ContentStat `json:"blogStats"`
	PlaygroundStats []ContentStat `json:"playgroundStats"`

	TrafficSources []CategoryStat `json:"trafficSources"`
	DeviceShare    []CategoryStat `json:"deviceShare"`
	Engagement     []CategoryStat `json:"engagement"`

	VisitorTrend []TimeSeriesPoint `json:"visitorTrend"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// Clone returns a deep copy of the snapshot; the copy shares no backing
// arrays with the original, so it stays stable while the original keeps
// being refreshed.
func (s MetricsSnapshot) Clone() MetricsSnapshot {
	out := s
	out.ProjectStats = append([]ContentStat(nil), s.ProjectStats...)
	out.BlogStats = append([]ContentStat(nil), s.BlogStats...)
	out.PlaygroundStats = append([]ContentStat(nil), s.PlaygroundStats...)
	out.TrafficSources = append([]CategoryStat(nil), s.TrafficSources...)
	out.DeviceShare = append([]CategoryStat(nil), s.DeviceShare...)
	out.Engagement = append([]CategoryStat(nil), s.Engagement...)
	out.VisitorTrend = append([]TimeSeriesPoint(nil), s.VisitorTrend...)
	return out
}

// DashboardFilter carries the user-selected view parameters. Created with
// defaults per request; never persisted.
type DashboardFilter struct {
	Preset      DatePreset  `json:"preset"`
	StartDate   time.Time   `json:"startDate,omitempty"`
	EndDate     time.Time   `json:"endDate,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	Granularity Granularity `json:"granularity"`
}

// DefaultDashboardFilter returns the filter applied on first load.
func DefaultDashboardFilter() DashboardFilter {
	return DashboardFilter{
		Preset:      PresetLast30Days,
		Granularity: GranularityDay,
	}
}

// Resolve maps the preset to a concrete date range relative to now. Custom
// presets keep the explicit dates; start is clamped to end when inverted.
func (f DashboardFilter) Resolve(now time.Time) (start, end time.Time) {
	if f.Preset == PresetCustom {
		start, end = f.StartDate, f.EndDate
		if start.After(end) {
			start = end
		}
		return start, end
	}
	days := f.Preset.WindowDays()
	if days == 0 {
		days = 30
	}
	return now.AddDate(0, 0, -days), now
}

// ChangeType tags the direction of a metric card's change.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNeutral  ChangeType = "neutral"
)

// MetricCard is a display-ready derived summary. Recomputed from the
// snapshot and filter; not independently mutable.
type MetricCard struct {
	Title      string            `json:"title"`
	Value      string            `json:"value"` // Pre-formatted for display
	Change     float64           `json:"change"`
	ChangeType ChangeType        `json:"changeType"`
	Icon       string            `json:"icon"`
	Color      string            `json:"color"`
	Trend      []TimeSeriesPoint `json:"trend,omitempty"`
}

// GoalStatus classifies goal progress.
type GoalStatus string

const (
	GoalOnTrack   GoalStatus = "on-track"
	GoalAtRisk    GoalStatus = "at-risk"
	GoalBehind    GoalStatus = "behind"
	GoalCompleted GoalStatus = "completed"
)

// GoalProgress is a tracked target. Status is seed data, carried as stored
// rather than derived from current/target and the deadline.
type GoalProgress struct {
	Title    string     `json:"title"`
	Current  float64    `json:"current"`
	Target   float64    `json:"target"`
	Unit     string     `json:"unit"`
	Deadline time.Time  `json:"deadline"`
	Status   GoalStatus `json:"status"`
}

// AlertSeverity levels for threshold alerts.
type AlertSeverity string

const (
	AlertWarning AlertSeverity = "warning"
	AlertError   AlertSeverity = "error"
)

// Alert is emitted when a derived metric crosses a fixed threshold.
type Alert struct {
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	MetricKey string        `json:"metricKey"`
}

// TopContent is one entry of the ranked most-viewed content list.
type TopContent struct {
	Type       string  `json:"type"` // "project", "blog" or "playground"
	Title      string  `json:"title"`
	Views      int64   `json:"views"`
	Engagement float64 `json:"engagement"`
}
