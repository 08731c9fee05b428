package charts

import (
	"fmt"
	"time"

	"spaceexplorer/internal/models"
)

// KpChartGenerator renders the planetary K-index trend in the formats the weather tab uses
type KpChartGenerator struct {
	width  int
	height int
}

// NewKpChartGenerator creates a chart generator with the default canvas size
func NewKpChartGenerator() *KpChartGenerator {
	return &KpChartGenerator{
		width:  700,
		height: 350,
	}
}

// validPoints drops readings without a timestamp and fails when nothing is left
func validPoints(points []models.KpPoint) ([]models.KpPoint, error) {
	var valid []models.KpPoint
	for _, p := range points {
		if !p.TimeTag.IsZero() {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no K-index readings to chart")
	}
	return valid, nil
}

// timeLabel formats a reading time for axis labels
func timeLabel(t time.Time) string {
	return t.UTC().Format("01-02 15:04")
}
