package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"spaceexplorer/internal/models"

	"github.com/go-resty/resty/v2"
)

const (
	sourceNOAA = "NOAA SWPC"

	// KIndexHistoryHours is the number of hours of K-index history kept for the trend chart
	KIndexHistoryHours = 72
)

// NOAAFetcher handles fetching data from NOAA SWPC products
type NOAAFetcher struct {
	client *resty.Client
	url    string
}

// NewNOAAFetcher creates a new NOAA fetcher instance
func NewNOAAFetcher(client *resty.Client, url string) *NOAAFetcher {
	if url == "" {
		url = "https://services.swpc.noaa.gov/products/noaa-planetary-k-index.json"
	}
	return &NOAAFetcher{
		client: client,
		url:    url,
	}
}

// FetchKIndex fetches planetary K-index readings for the last 72 hours, oldest first
func (f *NOAAFetcher) FetchKIndex(ctx context.Context) ([]models.NOAAKIndexResponse, error) {
	body, err := getBody(ctx, f.client, f.url, nil)
	if err != nil {
		return nil, networkError(sourceNOAA, fmt.Errorf("failed to fetch NOAA K-index: %w", err))
	}

	data, err := parseKIndex(body)
	if err != nil {
		return nil, networkError(sourceNOAA, fmt.Errorf("failed to parse NOAA K-index response: %w", err))
	}
	if len(data) == 0 {
		return nil, networkError(sourceNOAA, fmt.Errorf("NOAA K-index response has no readings"))
	}

	return filterKIndexRecent(data), nil
}

// parseKIndex accepts both product layouts SWPC has served:
// a table with a header row ([["time_tag","Kp",...],["2025-08-27 00:00:00.000","1.33",...]])
// and a list of objects ([{"time_tag":"2025-08-27T00:00:00","Kp":1.33,...}]).
func parseKIndex(body []byte) ([]models.NOAAKIndexResponse, error) {
	var table [][]string
	if err := json.Unmarshal(body, &table); err == nil {
		return parseKIndexTable(table), nil
	}

	var rows []struct {
		TimeTag      string  `json:"time_tag"`
		Kp           float64 `json:"Kp"`
		ARunning     float64 `json:"a_running"`
		StationCount int     `json:"station_count"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, err
	}

	data := make([]models.NOAAKIndexResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, models.NOAAKIndexResponse{
			TimeTag:      normalizeTimeTag(row.TimeTag),
			KpIndex:      row.Kp,
			ARunning:     row.ARunning,
			StationCount: row.StationCount,
			Source:       sourceNOAA,
		})
	}
	return data, nil
}

func parseKIndexTable(table [][]string) []models.NOAAKIndexResponse {
	var data []models.NOAAKIndexResponse
	for i, row := range table {
		if len(row) < 2 {
			continue
		}
		// Skip the header row
		if i == 0 && strings.EqualFold(row[0], "time_tag") {
			continue
		}

		kp, err := parseFloat(row[1])
		if err != nil {
			continue
		}
		entry := models.NOAAKIndexResponse{
			TimeTag: normalizeTimeTag(row[0]),
			KpIndex: kp,
			Source:  sourceNOAA,
		}
		if len(row) > 2 {
			entry.ARunning, _ = parseFloat(row[2])
		}
		if len(row) > 3 {
			entry.StationCount, _ = strconv.Atoi(row[3])
		}
		data = append(data, entry)
	}
	return data
}

// normalizeTimeTag converts "2025-08-27 00:00:00.000" to "2025-08-27T00:00:00"
func normalizeTimeTag(timeTag string) string {
	timeTag = strings.Replace(timeTag, " ", "T", 1)
	if idx := strings.Index(timeTag, "."); idx != -1 {
		timeTag = timeTag[:idx]
	}
	return strings.TrimSuffix(timeTag, "Z")
}

// parseTimeTag parses a normalized time tag as UTC
func parseTimeTag(timeTag string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		time.RFC3339,
	}
	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, timeTag)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// filterKIndexRecent sorts readings by time and keeps the last 72 hours before the newest one
func filterKIndexRecent(data []models.NOAAKIndexResponse) []models.NOAAKIndexResponse {
	type timeEntry struct {
		time  time.Time
		entry models.NOAAKIndexResponse
	}

	var entries []timeEntry
	for _, entry := range data {
		if t, err := parseTimeTag(entry.TimeTag); err == nil {
			entries = append(entries, timeEntry{time: t, entry: entry})
		}
	}
	if len(entries) == 0 {
		return data
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].time.Before(entries[j].time)
	})

	cutoff := entries[len(entries)-1].time.Add(-KIndexHistoryHours * time.Hour)
	var filtered []models.NOAAKIndexResponse
	for _, e := range entries {
		if !e.time.Before(cutoff) {
			filtered = append(filtered, e.entry)
		}
	}
	return filtered
}

// parseFloat safely parses a string to float64
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}
	return strconv.ParseFloat(s, 64)
}
