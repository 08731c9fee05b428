package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"spaceexplorer/internal/models"

	"github.com/go-resty/resty/v2"
)

const sourceAPOD = "APOD"

// APODFetcher fetches NASA's Astronomy Picture of the Day
type APODFetcher struct {
	client *resty.Client
	url    string
	apiKey string
}

// NewAPODFetcher creates a new APOD fetcher
func NewAPODFetcher(client *resty.Client, url, apiKey string) *APODFetcher {
	if url == "" {
		url = "https://api.nasa.gov/planetary/apod"
	}
	return &APODFetcher{
		client: client,
		url:    url,
		apiKey: apiKey,
	}
}

// FetchToday returns today's picture
func (f *APODFetcher) FetchToday(ctx context.Context) (models.ImageResult, error) {
	body, err := getBody(ctx, f.client, f.url, map[string]string{"api_key": f.apiKey})
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return models.ImageResult{}, notFoundError(sourceAPOD, err)
		}
		return models.ImageResult{}, networkError(sourceAPOD, fmt.Errorf("failed to fetch APOD: %w", err))
	}

	var data models.APODResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return models.ImageResult{}, networkError(sourceAPOD, fmt.Errorf("failed to parse APOD response: %w", err))
	}

	return apodToResult(data)
}

func apodToResult(data models.APODResponse) (models.ImageResult, error) {
	if strings.TrimSpace(data.URL) == "" || strings.TrimSpace(data.Title) == "" {
		return models.ImageResult{}, notFoundError(sourceAPOD, fmt.Errorf("response has no url or title"))
	}

	result := models.ImageResult{
		URL:         data.URL,
		Title:       data.Title,
		Description: data.Explanation,
		MediaType:   data.MediaType,
		Source:      sourceAPOD,
	}
	if date, err := time.Parse(models.DateLayout, data.Date); err == nil {
		result.Date = date
	}
	return result, nil
}
