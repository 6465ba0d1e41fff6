package metrics

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"portfolio-server/model"
)

// DashboardData is the full payload rendered by the dashboard view.
type DashboardData struct {
	Cards          []model.MetricCard      `json:"cards"`
	CompositeScore int                     `json:"compositeScore"`
	TopContent     []model.TopContent      `json:"topContent"`
	Alerts         []model.Alert           `json:"alerts"`
	Goals          []model.GoalProgress    `json:"goals"`
	Trend          []model.TimeSeriesPoint `json:"trend"`
	Filter         model.DashboardFilter   `json:"filter"`
	GeneratedAt    time.Time               `json:"generatedAt"`
}

// Service owns the simulated snapshot, its goal seeds and the auto-refresh
// loop. The snapshot is exclusive to the service instance; handlers read
// through it under the lock.
type Service struct {
	mu       sync.RWMutex
	snapshot *model.MetricsSnapshot
	goals    []model.GoalProgress
	rng      *rand.Rand

	refreshEvery time.Duration
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewService generates the base snapshot for the seed and prepares the
// refresh loop (not started).
func NewService(seed int64, refreshEvery time.Duration, now time.Time) *Service {
	return &Service{
		snapshot:     Generate(seed, now),
		goals:        seedGoals(now),
		rng:          rand.New(rand.NewSource(seed + 1)),
		refreshEvery: refreshEvery,
	}
}

// seedGoals returns the tracked targets. Status is seed data, carried as
// stored rather than derived from progress and deadline.
func seedGoals(now time.Time) []model.GoalProgress {
	return []model.GoalProgress{
		{Title: "Monthly visitors", Current: 12500, Target: 15000, Unit: "visitors", Deadline: now.AddDate(0, 1, 0), Status: model.GoalOnTrack},
		{Title: "Portfolio projects", Current: 8, Target: 10, Unit: "projects", Deadline: now.AddDate(0, 3, 0), Status: model.GoalOnTrack},
		{Title: "Blog posts", Current: 3, Target: 12, Unit: "posts", Deadline: now.AddDate(0, 6, 0), Status: model.GoalAtRisk},
		{Title: "Contact conversions", Current: 45, Target: 45, Unit: "messages", Deadline: now.AddDate(0, 0, 14), Status: model.GoalCompleted},
	}
}

// Snapshot returns a deep copy of the current snapshot, safe to read
// while the refresher keeps mutating the live one.
func (s *Service) Snapshot() model.MetricsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Refresh applies small pseudo-random increments to the running totals,
// simulating live traffic. Increments are strictly additive; counters never
// decrease.
func (s *Service) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Visitors += s.rng.Int63n(12)
	s.snapshot.PageViews += s.rng.Int63n(40)
	for i := range s.snapshot.ProjectStats {
		s.snapshot.ProjectStats[i].Views += s.rng.Int63n(5)
	}
	for i := range s.snapshot.BlogStats {
		s.snapshot.BlogStats[i].Views += s.rng.Int63n(4)
	}
	for i := range s.snapshot.PlaygroundStats {
		s.snapshot.PlaygroundStats[i].Views += s.rng.Int63n(3)
	}
	if n := len(s.snapshot.VisitorTrend); n > 0 {
		s.snapshot.VisitorTrend[n-1].Value += float64(s.rng.Intn(8))
	}
	s.snapshot.GeneratedAt = time.Now()
}

// StartAutoRefresh runs the periodic refresh until StopAutoRefresh is
// called or the context is cancelled. Stopping deregisters the tick without
// resetting already-applied deltas.
func (s *Service) StartAutoRefresh(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return // already running
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.refreshEvery)
		defer ticker.Stop()

		log.Info().Dur("period", s.refreshEvery).Msg("Metrics auto-refresh started")
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("Metrics auto-refresh stopped")
				return
			case <-ticker.C:
				s.Refresh()
			}
		}
	}()
}

// StopAutoRefresh cancels the refresh loop and waits for it to exit.
func (s *Service) StopAutoRefresh() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		s.wg.Wait()
	}
}

// Dashboard assembles the full dashboard payload for a filter.
func (s *Service) Dashboard(f model.DashboardFilter, now time.Time) DashboardData {
	s.mu.RLock()
	snapshot := s.snapshot.Clone()
	goals := s.goals
	s.mu.RUnlock()

	filtered := ApplyDateFilter(&snapshot, f, now)

	return DashboardData{
		Cards:          ComputeMetricCards(filtered),
		CompositeScore: ComputeCompositeScore(filtered),
		TopContent:     RankTopContent(filtered),
		Alerts:         DeriveAlerts(filtered),
		Goals:          goals,
		Trend:          filtered.VisitorTrend,
		Filter:         f,
		GeneratedAt:    filtered.GeneratedAt,
	}
}

// ExportJSON dumps the full metrics and filter state.
func (s *Service) ExportJSON(f model.DashboardFilter, now time.Time) ([]byte, error) {
	s.mu.RLock()
	snapshot := s.snapshot.Clone()
	s.mu.RUnlock()

	payload := struct {
		Snapshot  model.MetricsSnapshot `json:"snapshot"`
		Filter    model.DashboardFilter `json:"filter"`
		Dashboard DashboardData         `json:"dashboard"`
	}{
		Snapshot:  snapshot,
		Filter:    f,
		Dashboard: s.Dashboard(f, now),
	}
	return json.MarshalIndent(payload, "", "  ")
}

// ExportCSV emits the fixed six-row metric/value/change table.
func (s *Service) ExportCSV() ([]byte, error) {
	s.mu.RLock()
	snapshot := s.snapshot.Clone()
	s.mu.RUnlock()

	cards := ComputeMetricCards(&snapshot)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"metric", "value", "change"}); err != nil {
		return nil, err
	}
	for _, c := range cards {
		row := []string{c.Title, c.Value, fmt.Sprintf("%.1f%%", c.Change)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
