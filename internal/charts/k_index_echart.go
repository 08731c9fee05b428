package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"spaceexplorer/internal/models"
)

// RenderInteractive writes a standalone HTML page with an interactive K-index line chart
func (cg *KpChartGenerator) RenderInteractive(w io.Writer, points []models.KpPoint) error {
	points, err := validPoints(points)
	if err != nil {
		return err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Planetary K-index",
			Theme:     types.ThemeWesteros,
			Width:     fmt.Sprintf("%dpx", cg.width+100),
			Height:    fmt.Sprintf("%dpx", cg.height+50),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Planetary K-index",
			Subtitle: "NOAA SWPC, 3-hour readings (UTC)",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Kp",
			Min:  0,
			Max:  9,
		}),
	)

	xAxis := make([]string, len(points))
	kpData := make([]opts.LineData, len(points))
	for i, p := range points {
		xAxis[i] = timeLabel(p.TimeTag)
		kpData[i] = opts.LineData{Value: p.Kp, Name: models.KpLevel(p.Kp)}
	}

	line.SetXAxis(xAxis).
		AddSeries("Kp", kpData)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render interactive K-index chart: %w", err)
	}
	return nil
}
