package charts

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"spaceexplorer/internal/models"
)

// RenderPNG draws the K-index trend as a PNG image
func (cg *KpChartGenerator) RenderPNG(w io.Writer, points []models.KpPoint) error {
	points, err := validPoints(points)
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return fmt.Errorf("need at least two K-index readings for a trend, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.TimeTag
		yValues[i] = p.Kp
	}

	// One dot per reading, colored by activity level
	var coloredSeries []chart.Series
	for i, kValue := range yValues {
		color := kpZoneColor(kValue)
		coloredSeries = append(coloredSeries, chart.TimeSeries{
			Name: fmt.Sprintf("Kp=%.2f", kValue),
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 3,
				DotColor:    color,
				DotWidth:    6,
			},
			XValues: []time.Time{xValues[i]},
			YValues: []float64{kValue},
		})
	}

	mainSeries := chart.TimeSeries{
		Name: "Kp Trend",
		Style: chart.Style{
			StrokeColor: drawing.Color{R: 51, G: 102, B: 204, A: 255},
			StrokeWidth: 2,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title: "Planetary K-index",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   70,
				Right:  20,
				Bottom: 60,
			},
		},
		Height: cg.height,
		Width:  cg.width,
		XAxis: chart.XAxis{
			Name: "Time (UTC)",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 9,
			},
			Ticks: timeTicks(xValues),
		},
		YAxis: chart.YAxis{
			Name: "Kp",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 9.0,
			},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"},
				{Value: 2, Label: "2 (Quiet)"},
				{Value: 3, Label: "3"},
				{Value: 4, Label: "4 (Active)"},
				{Value: 5, Label: "5 (Storm)"},
				{Value: 7, Label: "7"},
				{Value: 9, Label: "9"},
			},
		},
		Series: append([]chart.Series{mainSeries}, coloredSeries...),
	}

	minTime := xValues[0]
	maxTime := xValues[len(xValues)-1]
	graph.Series = append(graph.Series,
		thresholdSeries("Unsettled (Kp>2)", minTime, maxTime, 2, drawing.Color{R: 0, G: 200, B: 0, A: 120}),
		thresholdSeries("Storm (Kp>=5)", minTime, maxTime, 5, drawing.Color{R: 255, G: 0, B: 0, A: 200}),
	)

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render K-index chart: %w", err)
	}
	return nil
}

func thresholdSeries(name string, from, to time.Time, kp float64, color drawing.Color) chart.TimeSeries {
	return chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor:     color,
			StrokeWidth:     1,
			StrokeDashArray: []float64{5, 5},
		},
		XValues: []time.Time{from, to},
		YValues: []float64{kp, kp},
	}
}

// timeTicks labels every reading; NOAA publishes one every three hours
func timeTicks(xValues []time.Time) []chart.Tick {
	step := 1
	if len(xValues) > 12 {
		step = len(xValues) / 12
	}

	var ticks []chart.Tick
	for i := 0; i < len(xValues); i += step {
		ticks = append(ticks, chart.Tick{
			Value: chart.TimeToFloat64(xValues[i]),
			Label: xValues[i].UTC().Format("15:04"),
		})
	}
	return ticks
}

// kpZoneColor matches the Quiet/Unsettled/Active/Storm classification
func kpZoneColor(kp float64) drawing.Color {
	switch {
	case kp >= 5:
		return drawing.Color{R: 128, G: 0, B: 128, A: 255}
	case kp > 3:
		return drawing.Color{R: 255, G: 0, B: 0, A: 255}
	case kp > 2:
		return drawing.Color{R: 255, G: 200, B: 0, A: 255}
	default:
		return drawing.Color{R: 0, G: 200, B: 0, A: 255}
	}
}
