package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"spaceexplorer/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

const (
	sourceIOTD = "NASA IOTD"

	// IOTDFeedLimit is how many feed items the gallery strip shows
	IOTDFeedLimit = 6
)

// IOTDFetcher reads the NASA Image of the Day RSS feed
type IOTDFetcher struct {
	client *resty.Client
	parser *gofeed.Parser
	url    string
}

// NewIOTDFetcher creates a new feed fetcher
func NewIOTDFetcher(client *resty.Client, url string) *IOTDFetcher {
	if url == "" {
		url = "https://www.nasa.gov/feeds/iotd-feed"
	}
	return &IOTDFetcher{
		client: client,
		parser: gofeed.NewParser(),
		url:    url,
	}
}

// FetchRecent returns the newest images of the feed
func (f *IOTDFetcher) FetchRecent(ctx context.Context) ([]models.ImageResult, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/rss+xml, application/xml, text/xml").
		Get(f.url)
	if err != nil {
		return nil, networkError(sourceIOTD, fmt.Errorf("failed to fetch IOTD feed: %w", err))
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, networkError(sourceIOTD, &StatusError{Code: resp.StatusCode()})
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, networkError(sourceIOTD, fmt.Errorf("failed to parse IOTD feed: %w", err))
	}

	var results []models.ImageResult
	for _, item := range feed.Items {
		url := feedImageURL(item)
		if url == "" {
			continue
		}
		result := models.ImageResult{
			URL:         url,
			Title:       item.Title,
			Description: strings.TrimSpace(item.Description),
			MediaType:   "image",
			Source:      sourceIOTD,
		}
		if item.PublishedParsed != nil {
			p := item.PublishedParsed.UTC()
			result.Date = time.Date(p.Year(), p.Month(), p.Day(), 0, 0, 0, 0, time.UTC)
		}
		results = append(results, result)
		if len(results) == IOTDFeedLimit {
			break
		}
	}

	if len(results) == 0 {
		return nil, notFoundError(sourceIOTD, fmt.Errorf("feed has no images"))
	}
	return results, nil
}

// feedImageURL prefers an image enclosure, then the item image
func feedImageURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" && (enc.Type == "" || strings.HasPrefix(enc.Type, "image/")) {
			return enc.URL
		}
	}
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	return ""
}
