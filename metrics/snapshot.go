// Package metrics owns the simulated analytics snapshot and everything
// derived from it: metric cards, the composite score, top-content ranking,
// threshold alerts and date-filtered views.
package metrics

import (
	"math/rand"
	"time"

	"portfolio-server/model"
)

const trendDays = 365

// Generate builds a deterministic snapshot for the given seed. Percentage
// fields stay within [0,100] and each category distribution sums to ~100.
func Generate(seed int64, now time.Time) *model.MetricsSnapshot {
	rng := rand.New(rand.NewSource(seed))

	s := &model.MetricsSnapshot{
		Visitors:            12000 + rng.Int63n(4000),
		PageViews:           38000 + rng.Int63n(12000),
		AvgSessionSeconds:   150 + rng.Float64()*120,
		BounceRate:          30 + rng.Float64()*15,
		ConversionRate:      2.5 + rng.Float64()*3,
		RetentionRate:       55 + rng.Float64()*25,
		PerformanceScore:    80 + rng.Float64()*18,
		PageLoadTime:        0.8 + rng.Float64()*1.6,
		ContactResponseRate: 88 + rng.Float64()*12,
		GeneratedAt:         now,
	}

	s.ProjectStats = []model.ContentStat{
		{Title: "E-commerce Platform", Views: 4200 + rng.Int63n(800), Engagement: 60 + rng.Float64()*25},
		{Title: "Task Manager", Views: 2900 + rng.Int63n(600), Engagement: 50 + rng.Float64()*25},
		{Title: "Weather App", Views: 1800 + rng.Int63n(400), Engagement: 40 + rng.Float64()*25},
	}
	s.BlogStats = []model.ContentStat{
		{Title: "Understanding React Hooks", Views: 3500 + rng.Int63n(700), Engagement: 55 + rng.Float64()*25},
		{Title: "Go Concurrency Patterns", Views: 2600 + rng.Int63n(500), Engagement: 50 + rng.Float64()*25},
		{Title: "CSS Grid in Practice", Views: 1400 + rng.Int63n(300), Engagement: 45 + rng.Float64()*20},
	}
	s.PlaygroundStats = []model.ContentStat{
		{Title: "Animated Counter", Views: 2100 + rng.Int63n(500), Engagement: 65 + rng.Float64()*20},
		{Title: "Todo List", Views: 1600 + rng.Int63n(400), Engagement: 55 + rng.Float64()*20},
		{Title: "Color Picker", Views: 900 + rng.Int63n(300), Engagement: 45 + rng.Float64()*20},
	}

	s.TrafficSources = distribution(rng, []namedColor{
		{"Organic Search", "#3b82f6"},
		{"Direct", "#10b981"},
		{"Social", "#f59e0b"},
		{"Referral", "#8b5cf6"},
	})
	s.DeviceShare = distribution(rng, []namedColor{
		{"Desktop", "#3b82f6"},
		{"Mobile", "#10b981"},
		{"Tablet", "#f59e0b"},
	})
	s.Engagement = distribution(rng, []namedColor{
		{"Projects", "#3b82f6"},
		{"Blog", "#10b981"},
		{"Playground", "#f59e0b"},
		{"Contact", "#ef4444"},
	})

	s.VisitorTrend = visitorTrend(rng, now)

	return s
}

type namedColor struct {
	name  string
	color string
}

// distribution produces a randomized category split normalized to sum to
// 100, with the last entry absorbing the rounding remainder.
func distribution(rng *rand.Rand, entries []namedColor) []model.CategoryStat {
	weights := make([]float64, len(entries))
	total := 0.0
	for i := range entries {
		weights[i] = 1 + rng.Float64()*4
		total += weights[i]
	}

	out := make([]model.CategoryStat, 0, len(entries))
	remaining := 100.0
	for i, e := range entries {
		value := roundTenth(weights[i] / total * 100)
		if i == len(entries)-1 {
			value = roundTenth(remaining)
		}
		remaining -= value
		out = append(out, model.CategoryStat{Name: e.name, Value: value, Color: e.color})
	}
	return out
}

// visitorTrend produces one daily data point per trailing day, oldest
// first, ending today.
func visitorTrend(rng *rand.Rand, now time.Time) []model.TimeSeriesPoint {
	points := make([]model.TimeSeriesPoint, 0, trendDays)
	base := 300.0
	for i := trendDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		// Weekly seasonality on top of a random walk
		weekday := now.AddDate(0, 0, -i).Weekday()
		seasonal := 1.0
		if weekday == time.Saturday || weekday == time.Sunday {
			seasonal = 0.7
		}
		base += rng.Float64()*20 - 10
		if base < 50 {
			base = 50
		}
		points = append(points, model.TimeSeriesPoint{
			Date:  date,
			Value: roundTenth(base * seasonal),
		})
	}
	return points
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
