package fetchers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/models"

	"github.com/go-resty/resty/v2"
)

// DefaultLookbackDays is the DONKI query window
const DefaultLookbackDays = 7

// WeatherSources configures the Weather Reporter's upstreams
type WeatherSources struct {
	NotificationsURL string
	CMEURL           string
	KIndexURL        string
	APIKey           string
	LookbackDays     int
}

// WeatherReporter assembles a WeatherSnapshot from DONKI and NOAA
type WeatherReporter struct {
	donki        *DONKIFetcher
	noaa         *NOAAFetcher
	lookbackDays int
	now          func() time.Time
	log          *logger.Logger
}

// NewWeatherReporter creates a weather reporter sharing one HTTP client across its upstreams
func NewWeatherReporter(client *resty.Client, src WeatherSources) *WeatherReporter {
	days := src.LookbackDays
	if days <= 0 {
		days = DefaultLookbackDays
	}
	return &WeatherReporter{
		donki:        NewDONKIFetcher(client, src.NotificationsURL, src.CMEURL, src.APIKey),
		noaa:         NewNOAAFetcher(client, src.KIndexURL),
		lookbackDays: days,
		now:          time.Now,
		log:          logger.WithComponent("weather-reporter"),
	}
}

// Report fetches the latest snapshot. Upstreams are queried one after another;
// any failure fails the whole snapshot.
func (r *WeatherReporter) Report(ctx context.Context) (models.WeatherSnapshot, error) {
	now := r.now().UTC()
	start := now.AddDate(0, 0, -r.lookbackDays)

	notifications, err := r.donki.FetchNotifications(ctx, start, now)
	if err != nil {
		r.log.Error("DONKI notifications fetch failed", err)
		return models.WeatherSnapshot{}, err
	}

	cmes, err := r.donki.FetchCMEs(ctx, start, now)
	if err != nil {
		r.log.Error("DONKI CME fetch failed", err)
		return models.WeatherSnapshot{}, err
	}

	kIndex, err := r.noaa.FetchKIndex(ctx)
	if err != nil {
		r.log.Error("NOAA K-index fetch failed", err)
		return models.WeatherSnapshot{}, err
	}

	snapshot := buildSnapshot(notifications, cmes, kIndex, now)
	if !snapshot.Complete() {
		return models.WeatherSnapshot{}, networkError("weather", fmt.Errorf("incomplete snapshot"))
	}

	r.log.Info("Weather snapshot ready", map[string]interface{}{
		"notifications": len(notifications),
		"cmes":          len(cmes),
		"kp":            snapshot.KpIndex,
	})
	return snapshot, nil
}

// KpHistory returns the recent planetary K-index readings, oldest first
func (r *WeatherReporter) KpHistory(ctx context.Context) ([]models.KpPoint, error) {
	kIndex, err := r.noaa.FetchKIndex(ctx)
	if err != nil {
		r.log.Error("NOAA K-index fetch failed", err)
		return nil, err
	}

	points := make([]models.KpPoint, 0, len(kIndex))
	for _, k := range kIndex {
		t, err := parseTimeTag(k.TimeTag)
		if err != nil {
			continue
		}
		points = append(points, models.KpPoint{TimeTag: t, Kp: k.KpIndex})
	}
	return points, nil
}

func buildSnapshot(notifications []models.DONKINotification, cmes []models.DONKICME, kIndex []models.NOAAKIndexResponse, now time.Time) models.WeatherSnapshot {
	snapshot := models.WeatherSnapshot{Timestamp: now}

	body := ""
	if latest, ok := latestNotification(notifications); ok {
		body = latest.MessageBody
		snapshot.MessageType = latest.MessageType
		snapshot.Description = strings.TrimSpace(latest.MessageBody)
		snapshot.SolarStatus = solarStatus(latest)
	} else {
		snapshot.SolarStatus = "No notifications issued"
	}

	if latest, ok := latestCME(cmes); ok {
		snapshot.CMEActivity = cmeActivity(latest)
	} else {
		snapshot.CMEActivity = "No CMEs detected"
	}

	if len(kIndex) > 0 {
		latest := kIndex[len(kIndex)-1]
		snapshot.KpIndex = latest.KpIndex
		snapshot.AuroraForecast = fmt.Sprintf("Kp %.2f (%s)", latest.KpIndex, models.KpLevel(latest.KpIndex))
		if strings.Contains(strings.ToLower(body), "aurora") {
			snapshot.AuroraForecast += ", aurora mentioned in latest notification"
		}
	}

	return snapshot
}

func solarStatus(n models.DONKINotification) string {
	messageType := n.MessageType
	if messageType == "" {
		messageType = "Report"
	}
	if strings.Contains(strings.ToLower(n.MessageBody), "flare") {
		return messageType + ": flare activity reported"
	}
	return messageType + ": no flare activity reported"
}

func cmeActivity(c models.DONKICME) string {
	activity := c.ActivityID
	if activity == "" {
		activity = "CME"
	}
	if c.StartTime != "" {
		activity = fmt.Sprintf("%s (started %s)", activity, c.StartTime)
	}
	if note := strings.TrimSpace(c.Note); note != "" {
		activity += ": " + note
	}
	return activity
}
