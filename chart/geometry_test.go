package chart

import (
	"math"
	"strings"
	"testing"
)

func TestEmptySeries(t *testing.T) {
	empty := Series{}

	t.Run("Line", func(t *testing.T) {
		g := Line(empty, 400, 200)
		if g.Path != "" || g.Points != nil {
			t.Errorf("Expected zero-value geometry, got %+v", g)
		}
	})

	t.Run("Bar", func(t *testing.T) {
		if bars := Bar(empty, 400, 200); bars != nil {
			t.Errorf("Expected nil bars, got %v", bars)
		}
	})

	t.Run("Pie", func(t *testing.T) {
		if slices := Pie(empty, 400, 200); slices != nil {
			t.Errorf("Expected nil slices, got %v", slices)
		}
	})

	t.Run("Area", func(t *testing.T) {
		g := Area(empty, 400, 200)
		if g.LinePath != "" || g.FillPath != "" {
			t.Errorf("Expected zero-value geometry, got %+v", g)
		}
	})
}

func TestLineGeometry(t *testing.T) {
	series := Series{
		{Label: "a", Value: 10},
		{Label: "b", Value: 30},
		{Label: "c", Value: 20},
	}

	g := Line(series, 400, 200)

	if g.YMin != 10 || g.YMax != 30 {
		t.Errorf("Expected range [10,30], got [%v,%v]", g.YMin, g.YMax)
	}
	if len(g.Points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(g.Points))
	}
	if !strings.HasPrefix(g.Path, "M ") {
		t.Errorf("Path should start with a move command: %q", g.Path)
	}

	// Highest value maps to the top padding, lowest to the bottom padding
	if g.Points[1].Y != 20 {
		t.Errorf("Max value should sit at y=20, got %v", g.Points[1].Y)
	}
	if g.Points[0].Y != 180 {
		t.Errorf("Min value should sit at y=180, got %v", g.Points[0].Y)
	}

	// X spacing is even across the padded width
	if g.Points[0].X != 20 || g.Points[1].X != 200 || g.Points[2].X != 380 {
		t.Errorf("Unexpected x positions: %v %v %v", g.Points[0].X, g.Points[1].X, g.Points[2].X)
	}
}

func TestLineGeometry_FlatSeries(t *testing.T) {
	series := Series{{Value: 5}, {Value: 5}, {Value: 5}}
	g := Line(series, 400, 200)

	for i, p := range g.Points {
		if p.Y != 100 {
			t.Errorf("Point %d: flat series should map to vertical center (100), got %v", i, p.Y)
		}
	}
}

func TestLineGeometry_SinglePoint(t *testing.T) {
	g := Line(Series{{Value: 7}}, 400, 200)

	if len(g.Points) != 1 {
		t.Fatalf("Expected 1 point, got %d", len(g.Points))
	}
	if g.Points[0].X != 200 {
		t.Errorf("Single point should be width-centered (200), got %v", g.Points[0].X)
	}
	if g.Points[0].Y != 100 {
		t.Errorf("Single point should be height-centered (100), got %v", g.Points[0].Y)
	}
}

func TestBarGeometry(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		check  func(t *testing.T, bars []BarRect)
	}{
		{
			name:   "Equal values give equal heights",
			series: Series{{Value: 10}, {Value: 10}, {Value: 10}, {Value: 10}},
			check: func(t *testing.T, bars []BarRect) {
				for i, b := range bars {
					if b.Height != bars[0].Height {
						t.Errorf("Bar %d height %v != %v", i, b.Height, bars[0].Height)
					}
					if b.Height != 160 {
						t.Errorf("Bar %d: expected full available height 160, got %v", i, b.Height)
					}
				}
			},
		},
		{
			name:   "Zero max gives zero heights",
			series: Series{{Value: 0}, {Value: 0}},
			check: func(t *testing.T, bars []BarRect) {
				for i, b := range bars {
					if b.Height != 0 {
						t.Errorf("Bar %d: expected height 0, got %v", i, b.Height)
					}
					if math.IsNaN(b.Y) || math.IsNaN(b.Height) {
						t.Errorf("Bar %d: NaN in geometry", i)
					}
				}
			},
		},
		{
			name:   "Proportional heights",
			series: Series{{Value: 50}, {Value: 100}},
			check: func(t *testing.T, bars []BarRect) {
				if bars[0].Height*2 != bars[1].Height {
					t.Errorf("Expected half height, got %v and %v", bars[0].Height, bars[1].Height)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars := Bar(tt.series, 400, 200)
			if len(bars) != len(tt.series) {
				t.Fatalf("Expected %d bars, got %d", len(tt.series), len(bars))
			}
			tt.check(t, bars)
		})
	}
}

func TestBarGeometry_SlotRatio(t *testing.T) {
	bars := Bar(Series{{Value: 1}, {Value: 2}, {Value: 4}, {Value: 8}}, 400, 200)

	slot := 100.0
	for i, b := range bars {
		if b.Width != 80 {
			t.Errorf("Bar %d: expected width 80 (80%% of slot), got %v", i, b.Width)
		}
		wantX := float64(i)*slot + 10
		if b.X != wantX {
			t.Errorf("Bar %d: expected x %v, got %v", i, wantX, b.X)
		}
	}
}

func TestPieGeometry(t *testing.T) {
	t.Run("Zero total returns empty", func(t *testing.T) {
		if slices := Pie(Series{{Value: 0}, {Value: 0}}, 300, 300); slices != nil {
			t.Errorf("Expected nil for zero total, got %v", slices)
		}
	})

	t.Run("Equal values give equal sweeps", func(t *testing.T) {
		slices := Pie(Series{{Value: 5}, {Value: 5}, {Value: 5}, {Value: 5}}, 300, 300)
		if len(slices) != 4 {
			t.Fatalf("Expected 4 slices, got %d", len(slices))
		}
		for i, s := range slices {
			if s.Percentage != 25 {
				t.Errorf("Slice %d: expected 25%%, got %v", i, s.Percentage)
			}
		}
	})

	t.Run("Percentages sum to 100", func(t *testing.T) {
		slices := Pie(Series{{Value: 1}, {Value: 2}, {Value: 4}, {Value: 3.3}}, 300, 300)
		sum := 0.0
		for _, s := range slices {
			sum += s.Percentage
		}
		if math.Abs(sum-100) > 1 {
			t.Errorf("Percentages sum to %v, want 100 +-1", sum)
		}
	})

	t.Run("Arc path form", func(t *testing.T) {
		slices := Pie(Series{{Value: 30}, {Value: 70}}, 300, 300)
		for i, s := range slices {
			if !strings.HasPrefix(s.Path, "M 150 150 L ") {
				t.Errorf("Slice %d: path should start at center: %q", i, s.Path)
			}
			if !strings.HasSuffix(s.Path, "Z") {
				t.Errorf("Slice %d: path should be closed: %q", i, s.Path)
			}
			if !strings.Contains(s.Path, " A ") {
				t.Errorf("Slice %d: path missing arc command: %q", i, s.Path)
			}
		}
	})

	t.Run("First slice starts at 12 o'clock", func(t *testing.T) {
		slices := Pie(Series{{Value: 1}, {Value: 1}}, 300, 300)
		// Radius is 110 on a 300x300 canvas; the first arc point sits
		// directly above the center.
		if !strings.Contains(slices[0].Path, "L 150 40 ") {
			t.Errorf("First slice should start at the top: %q", slices[0].Path)
		}
	})

	t.Run("Full circle splits into two arcs", func(t *testing.T) {
		slices := Pie(Series{{Label: "all", Value: 42}}, 300, 300)
		if len(slices) != 1 {
			t.Fatalf("Expected 1 slice, got %d", len(slices))
		}
		s := slices[0]
		if s.Percentage != 100 {
			t.Errorf("Expected 100%%, got %v", s.Percentage)
		}
		// One 360° arc starts and ends on the same point and renders as
		// nothing; the path must carry two half-circle arcs instead.
		if n := strings.Count(s.Path, " A "); n != 2 {
			t.Errorf("Expected 2 arc commands, got %d in %q", n, s.Path)
		}
		// Start at 12 o'clock, half circle lands at 6 o'clock, then back.
		if !strings.HasPrefix(s.Path, "M 150 150 L 150 40 ") {
			t.Errorf("Path should start at 12 o'clock: %q", s.Path)
		}
		if !strings.Contains(s.Path, " A 110 110 0 1 1 150 260 ") {
			t.Errorf("First arc should land at 6 o'clock: %q", s.Path)
		}
		if !strings.Contains(s.Path, " A 110 110 0 1 1 150 40 Z") {
			t.Errorf("Second arc should close back at 12 o'clock: %q", s.Path)
		}
	})

	t.Run("Majority slice uses large-arc flag", func(t *testing.T) {
		slices := Pie(Series{{Value: 90}, {Value: 10}}, 300, 300)
		if !strings.Contains(slices[0].Path, " 0 1 1 ") {
			t.Errorf("Slice over 180 degrees should set large-arc: %q", slices[0].Path)
		}
		if !strings.Contains(slices[1].Path, " 0 0 1 ") {
			t.Errorf("Slice under 180 degrees should not set large-arc: %q", slices[1].Path)
		}
	})
}

func TestAreaGeometry(t *testing.T) {
	series := Series{{Value: 10}, {Value: 30}, {Value: 20}}
	g := Area(series, 400, 200)

	line := Line(series, 400, 200)
	if g.LinePath != line.Path {
		t.Errorf("Area line path should match line geometry")
	}
	if !strings.HasSuffix(g.FillPath, "L 380 180 L 20 180 Z") {
		t.Errorf("Fill path should close down to the baseline: %q", g.FillPath)
	}
	if g.YMin != 10 || g.YMax != 30 {
		t.Errorf("Expected range [10,30], got [%v,%v]", g.YMin, g.YMax)
	}
}

func TestGeometryNeverNaN(t *testing.T) {
	degenerates := []Series{
		{},
		{{Value: 0}},
		{{Value: 0}, {Value: 0}},
		{{Value: 5}},
		{{Value: 5}, {Value: 5}},
		{{Value: -3}, {Value: 4}},
	}

	for _, series := range degenerates {
		g := Line(series, 400, 200)
		for _, p := range g.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Errorf("Line produced NaN for %v", series)
			}
		}
		for _, b := range Bar(series, 400, 200) {
			if math.IsNaN(b.X) || math.IsNaN(b.Y) || math.IsNaN(b.Height) {
				t.Errorf("Bar produced NaN for %v", series)
			}
		}
		for _, s := range Pie(series, 300, 300) {
			if math.IsNaN(s.Percentage) || math.IsNaN(s.LabelX) || math.IsNaN(s.LabelY) {
				t.Errorf("Pie produced NaN for %v", series)
			}
		}
		a := Area(series, 400, 200)
		if math.IsNaN(a.YMin) || math.IsNaN(a.YMax) {
			t.Errorf("Area produced NaN for %v", series)
		}
	}
}
