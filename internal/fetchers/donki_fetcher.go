package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spaceexplorer/internal/models"

	"github.com/go-resty/resty/v2"
)

const sourceDONKI = "DONKI"

// DONKIFetcher handles the NASA DONKI space weather endpoints
type DONKIFetcher struct {
	client           *resty.Client
	notificationsURL string
	cmeURL           string
	apiKey           string
}

// NewDONKIFetcher creates a new DONKI fetcher
func NewDONKIFetcher(client *resty.Client, notificationsURL, cmeURL, apiKey string) *DONKIFetcher {
	if notificationsURL == "" {
		notificationsURL = "https://api.nasa.gov/DONKI/notifications"
	}
	if cmeURL == "" {
		cmeURL = "https://api.nasa.gov/DONKI/CME"
	}
	return &DONKIFetcher{
		client:           client,
		notificationsURL: notificationsURL,
		cmeURL:           cmeURL,
		apiKey:           apiKey,
	}
}

func (f *DONKIFetcher) window(start, end time.Time) map[string]string {
	return map[string]string{
		"api_key":   f.apiKey,
		"startDate": start.UTC().Format(models.DateLayout),
		"endDate":   end.UTC().Format(models.DateLayout),
	}
}

// FetchNotifications returns all notifications issued between start and end
func (f *DONKIFetcher) FetchNotifications(ctx context.Context, start, end time.Time) ([]models.DONKINotification, error) {
	params := f.window(start, end)
	params["type"] = "all"

	body, err := getBody(ctx, f.client, f.notificationsURL, params)
	if err != nil {
		return nil, networkError(sourceDONKI, fmt.Errorf("failed to fetch notifications: %w", err))
	}

	var data []models.DONKINotification
	if err := decodeDONKIList(body, &data); err != nil {
		return nil, networkError(sourceDONKI, fmt.Errorf("failed to parse notifications: %w", err))
	}
	return data, nil
}

// FetchCMEs returns the coronal mass ejections that started between start and end
func (f *DONKIFetcher) FetchCMEs(ctx context.Context, start, end time.Time) ([]models.DONKICME, error) {
	body, err := getBody(ctx, f.client, f.cmeURL, f.window(start, end))
	if err != nil {
		return nil, networkError(sourceDONKI, fmt.Errorf("failed to fetch CMEs: %w", err))
	}

	var data []models.DONKICME
	if err := decodeDONKIList(body, &data); err != nil {
		return nil, networkError(sourceDONKI, fmt.Errorf("failed to parse CMEs: %w", err))
	}
	return data, nil
}

// decodeDONKIList decodes a JSON array; DONKI answers an empty window with an empty body
func decodeDONKIList(body []byte, out interface{}) error {
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// latestNotification returns the most recently issued notification
func latestNotification(items []models.DONKINotification) (models.DONKINotification, bool) {
	var latest models.DONKINotification
	var latestTime time.Time
	found := false
	for _, item := range items {
		t := parseDONKITime(item.MessageIssueTime)
		if !found || t.After(latestTime) {
			latest, latestTime, found = item, t, true
		}
	}
	return latest, found
}

// latestCME returns the CME with the latest start time
func latestCME(items []models.DONKICME) (models.DONKICME, bool) {
	var latest models.DONKICME
	var latestTime time.Time
	found := false
	for _, item := range items {
		t := parseDONKITime(item.StartTime)
		if !found || t.After(latestTime) {
			latest, latestTime, found = item, t, true
		}
	}
	return latest, found
}

// parseDONKITime parses DONKI's minute-precision timestamps ("2025-02-09T12:34Z")
func parseDONKITime(s string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04Z", time.RFC3339, "2006-01-02T15:04:05Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
