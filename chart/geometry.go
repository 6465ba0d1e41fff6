// Package chart maps labeled numeric series into 2-D SVG drawing
// primitives (line paths, bar rectangles, pie slices, area fills) for a
// given pixel canvas. All functions are pure and never panic: empty or
// degenerate input yields the documented zero-value sentinel instead.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is one entry of a chart series. Order is significant (x-axis /
// slice order); labels are not required to be unique.
type Point struct {
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Series is the uniform input to every geometry function.
type Series []Point

// padding is the fixed pixel inset on every canvas edge.
const padding = 20.0

// LinePoint is a plotted point of a line or area chart.
type LinePoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// LineGeometry is the drawing data for a line chart. An empty series
// yields the zero value (empty path, nil points).
type LineGeometry struct {
	Path   string      `json:"path"`
	Points []LinePoint `json:"points"`
	YMin   float64     `json:"yMin"`
	YMax   float64     `json:"yMax"`
}

// BarRect is one bar of a bar chart.
type BarRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Value  float64 `json:"value"`
	Label  string  `json:"label,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// PieSlice is one slice of a pie chart. LabelX/LabelY anchor the slice
// label on the bisecting angle, 20px outside the radius.
type PieSlice struct {
	Path       string  `json:"path"`
	Color      string  `json:"color,omitempty"`
	Percentage float64 `json:"percentage"`
	LabelX     float64 `json:"labelX"`
	LabelY     float64 `json:"labelY"`
}

// AreaGeometry is the drawing data for an area chart: the line path plus a
// closed fill region down to the bottom-padding baseline.
type AreaGeometry struct {
	LinePath string  `json:"linePath"`
	FillPath string  `json:"fillPath"`
	YMin     float64 `json:"yMin"`
	YMax     float64 `json:"yMax"`
}

// Line computes line-chart geometry. X coordinates are evenly spaced by
// index; values map linearly between YMin and YMax. When every value is
// equal the points sit on the vertical center, and a single-entry series
// is width-centered.
func Line(series Series, width, height float64) LineGeometry {
	if len(series) == 0 {
		return LineGeometry{}
	}

	yMin, yMax := valueRange(series)
	points := plotPoints(series, width, height, yMin, yMax)

	var path strings.Builder
	for i, p := range points {
		if i == 0 {
			path.WriteString("M ")
		} else {
			path.WriteString(" L ")
		}
		path.WriteString(coord(p.X))
		path.WriteByte(' ')
		path.WriteString(coord(p.Y))
	}

	return LineGeometry{
		Path:   path.String(),
		Points: points,
		YMin:   yMin,
		YMax:   yMax,
	}
}

// Bar computes bar-chart geometry. The available width is divided into one
// slot per entry with an 80% bar / 20% gap ratio; bar heights scale
// linearly against the series maximum. A zero maximum yields zero-height
// bars, never NaN.
func Bar(series Series, width, height float64) []BarRect {
	if len(series) == 0 {
		return nil
	}

	maxValue := 0.0
	for _, p := range series {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	slot := width / float64(len(series))
	barWidth := slot * 0.8
	available := height - 2*padding

	bars := make([]BarRect, 0, len(series))
	for i, p := range series {
		barHeight := 0.0
		if maxValue > 0 {
			barHeight = p.Value / maxValue * available
		}
		bars = append(bars, BarRect{
			X:      round2(float64(i)*slot + slot*0.1),
			Y:      round2(height - padding - barHeight),
			Width:  round2(barWidth),
			Height: round2(barHeight),
			Value:  p.Value,
			Label:  p.Label,
			Color:  p.Color,
		})
	}
	return bars
}

// Pie computes pie-chart geometry. Slices start at 12 o'clock and proceed
// clockwise, each sweeping an angle proportional to value/total. A zero
// total yields an empty slice list.
func Pie(series Series, width, height float64) []PieSlice {
	if len(series) == 0 {
		return nil
	}

	total := 0.0
	for _, p := range series {
		total += p.Value
	}
	if total <= 0 {
		return nil
	}

	cx := width / 2
	cy := height / 2
	radius := math.Min(width, height)/2 - 2*padding
	if radius < 0 {
		radius = 0
	}

	slices := make([]PieSlice, 0, len(series))
	angle := -90.0 // Degrees; 12 o'clock
	for _, p := range series {
		sweep := p.Value / total * 360
		start := angle
		end := angle + sweep
		angle = end

		x1, y1 := arcPoint(cx, cy, radius, start)
		x2, y2 := arcPoint(cx, cy, radius, end)

		var path string
		if sweep >= 360 {
			// A full sweep would start and end the arc on the same point,
			// which SVG renders as nothing. Split it into two half circles.
			xm, ym := arcPoint(cx, cy, radius, start+180)
			path = fmt.Sprintf("M %s %s L %s %s A %s %s 0 1 1 %s %s A %s %s 0 1 1 %s %s Z",
				coord(cx), coord(cy),
				coord(x1), coord(y1),
				coord(radius), coord(radius),
				coord(xm), coord(ym),
				coord(radius), coord(radius),
				coord(x1), coord(y1),
			)
		} else {
			largeArc := 0
			if sweep > 180 {
				largeArc = 1
			}

			path = fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
				coord(cx), coord(cy),
				coord(x1), coord(y1),
				coord(radius), coord(radius),
				largeArc,
				coord(x2), coord(y2),
			)
		}

		labelX, labelY := arcPoint(cx, cy, radius+padding, (start+end)/2)

		slices = append(slices, PieSlice{
			Path:       path,
			Color:      p.Color,
			Percentage: round1(p.Value / total * 100),
			LabelX:     round2(labelX),
			LabelY:     round2(labelY),
		})
	}
	return slices
}

// Area computes area-chart geometry: the same y-mapping as Line plus a
// fill path that closes down to the baseline and back to the first x.
func Area(series Series, width, height float64) AreaGeometry {
	if len(series) == 0 {
		return AreaGeometry{}
	}

	line := Line(series, width, height)
	baseline := height - padding
	first := line.Points[0]
	last := line.Points[len(line.Points)-1]

	fill := fmt.Sprintf("%s L %s %s L %s %s Z",
		line.Path,
		coord(last.X), coord(baseline),
		coord(first.X), coord(baseline),
	)

	return AreaGeometry{
		LinePath: line.Path,
		FillPath: fill,
		YMin:     line.YMin,
		YMax:     line.YMax,
	}
}

// valueRange returns the min and max values of a non-empty series.
func valueRange(series Series) (float64, float64) {
	min, max := series[0].Value, series[0].Value
	for _, p := range series[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	return min, max
}

// plotPoints maps series entries to canvas coordinates.
func plotPoints(series Series, width, height, yMin, yMax float64) []LinePoint {
	n := len(series)
	innerWidth := width - 2*padding
	innerHeight := height - 2*padding
	spread := yMax - yMin

	points := make([]LinePoint, 0, n)
	for i, p := range series {
		x := width / 2 // Single entry sits width-centered
		if n > 1 {
			x = padding + float64(i)*innerWidth/float64(n-1)
		}

		y := height / 2 // Flat series sits on the vertical center
		if spread > 0 {
			y = padding + (yMax-p.Value)/spread*innerHeight
		}

		points = append(points, LinePoint{
			X:     round2(x),
			Y:     round2(y),
			Value: p.Value,
			Label: p.Label,
		})
	}
	return points
}

// arcPoint converts a polar position (degrees) to canvas coordinates.
func arcPoint(cx, cy, radius, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return cx + radius*math.Cos(rad), cy + radius*math.Sin(rad)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func coord(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}
