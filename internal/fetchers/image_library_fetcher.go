package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"spaceexplorer/internal/models"

	"github.com/go-resty/resty/v2"
)

const (
	sourceImageLibrary = "NASA Image Library"

	// DefaultSearchLimit is how many results a search returns
	DefaultSearchLimit = 5
)

// ImageLibraryFetcher searches the NASA Image and Video Library
type ImageLibraryFetcher struct {
	client *resty.Client
	url    string
	limit  int
}

// NewImageLibraryFetcher creates a new image library fetcher
func NewImageLibraryFetcher(client *resty.Client, url string, limit int) *ImageLibraryFetcher {
	if url == "" {
		url = "https://images-api.nasa.gov/search"
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &ImageLibraryFetcher{
		client: client,
		url:    url,
		limit:  limit,
	}
}

// Search queries the library for keyword and returns at most limit images.
// Images whose title contains the keyword come first.
func (f *ImageLibraryFetcher) Search(ctx context.Context, keyword string) ([]models.ImageResult, error) {
	params := map[string]string{
		"q":          keyword,
		"media_type": "image",
	}
	body, err := getBody(ctx, f.client, f.url, params)
	if err != nil {
		return nil, networkError(sourceImageLibrary, fmt.Errorf("failed to search images: %w", err))
	}

	var data models.ImageSearchResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, networkError(sourceImageLibrary, fmt.Errorf("failed to parse search response: %w", err))
	}

	results := rankByTitle(collectionToResults(data.Collection.Items), keyword)
	if len(results) == 0 {
		return nil, notFoundError(sourceImageLibrary, fmt.Errorf("no images for %q", keyword))
	}
	if len(results) > f.limit {
		results = results[:f.limit]
	}
	return results, nil
}

func collectionToResults(items []models.ImageSearchItem) []models.ImageResult {
	var results []models.ImageResult
	for _, item := range items {
		if len(item.Links) == 0 || item.Links[0].Href == "" {
			continue
		}

		result := models.ImageResult{
			URL:         item.Links[0].Href,
			Title:       "No title",
			Description: "No description",
			MediaType:   "image",
			Source:      sourceImageLibrary,
		}
		if len(item.Data) > 0 {
			meta := item.Data[0]
			if meta.Title != "" {
				result.Title = meta.Title
			}
			if meta.Description != "" {
				result.Description = meta.Description
			}
			if meta.MediaType != "" {
				result.MediaType = meta.MediaType
			}
			result.Date = parseLibraryDate(meta.DateCreated)
		}
		results = append(results, result)
	}
	return results
}

// rankByTitle moves title matches to the front, keeping upstream order within each group
func rankByTitle(results []models.ImageResult, keyword string) []models.ImageResult {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return results
	}

	ranked := make([]models.ImageResult, 0, len(results))
	var rest []models.ImageResult
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			ranked = append(ranked, r)
		} else {
			rest = append(rest, r)
		}
	}
	return append(ranked, rest...)
}

// parseLibraryDate truncates a date_created timestamp to its calendar day
func parseLibraryDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	if len(s) >= len(models.DateLayout) {
		if t, err := time.Parse(models.DateLayout, s[:len(models.DateLayout)]); err == nil {
			return t
		}
	}
	return time.Time{}
}
