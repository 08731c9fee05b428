package fetchers

import (
	"context"
	"fmt"
	"strings"

	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/models"

	"github.com/go-resty/resty/v2"
)

// ImageSources configures the Image Fetcher's upstreams
type ImageSources struct {
	APODURL     string
	SearchURL   string
	FeedURL     string
	APIKey      string
	SearchLimit int
}

// ImageFetcher answers "today's image" and keyword search requests
type ImageFetcher struct {
	apod    *APODFetcher
	library *ImageLibraryFetcher
	iotd    *IOTDFetcher
	log     *logger.Logger
}

// NewImageFetcher creates an image fetcher sharing one HTTP client across its upstreams
func NewImageFetcher(client *resty.Client, src ImageSources) *ImageFetcher {
	return &ImageFetcher{
		apod:    NewAPODFetcher(client, src.APODURL, src.APIKey),
		library: NewImageLibraryFetcher(client, src.SearchURL, src.SearchLimit),
		iotd:    NewIOTDFetcher(client, src.FeedURL),
		log:     logger.WithComponent("image-fetcher"),
	}
}

// Today returns the Astronomy Picture of the Day
func (f *ImageFetcher) Today(ctx context.Context) (models.ImageResult, error) {
	result, err := f.apod.FetchToday(ctx)
	if err != nil {
		f.log.Error("APOD fetch failed", err)
		return models.ImageResult{}, err
	}
	f.log.Info("Fetched APOD", map[string]interface{}{"title": result.Title, "date": result.DateString()})
	return result, nil
}

// Search returns library images for a keyword; a blank keyword is a NotFound
func (f *ImageFetcher) Search(ctx context.Context, keyword string) ([]models.ImageResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, notFoundError(sourceImageLibrary, fmt.Errorf("empty search keyword"))
	}

	results, err := f.library.Search(ctx, keyword)
	if err != nil {
		f.log.Error("Image search failed", err, map[string]interface{}{"keyword": keyword})
		return nil, err
	}
	f.log.Info("Image search completed", map[string]interface{}{"keyword": keyword, "count": len(results)})
	return results, nil
}

// Fetch maps an optional keyword to today's image (blank) or a search
func (f *ImageFetcher) Fetch(ctx context.Context, keyword string) ([]models.ImageResult, error) {
	if strings.TrimSpace(keyword) == "" {
		result, err := f.Today(ctx)
		if err != nil {
			return nil, err
		}
		return []models.ImageResult{result}, nil
	}
	return f.Search(ctx, keyword)
}

// Recent returns the latest Image of the Day feed items
func (f *ImageFetcher) Recent(ctx context.Context) ([]models.ImageResult, error) {
	results, err := f.iotd.FetchRecent(ctx)
	if err != nil {
		f.log.Warn("IOTD feed unavailable", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return results, nil
}
