package server

import (
	"fmt"

	"spaceexplorer/internal/config"
	"spaceexplorer/internal/fetchers"
	"spaceexplorer/internal/llm"
	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/mocks"
)

// Components are the three independent services behind the UI
type Components struct {
	Images  ImageSource
	Weather WeatherSource
	Chat    ChatSource
}

// NewComponents builds live components, or the embedded mock service in mockup mode.
// Each live component gets its own HTTP client.
func NewComponents(cfg *config.Config) (*Components, error) {
	if cfg.MockupMode {
		mock, err := mocks.NewMockService(cfg.SearchLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load mock data: %w", err)
		}
		logger.Info("Mockup mode enabled - serving embedded data")
		return &Components{Images: mock, Weather: mock, Chat: mock}, nil
	}

	images := fetchers.NewImageFetcher(fetchers.NewHTTPClient(cfg.HTTPTimeout), fetchers.ImageSources{
		APODURL:     cfg.APODURL,
		SearchURL:   cfg.ImageSearchURL,
		FeedURL:     cfg.IOTDFeedURL,
		APIKey:      cfg.NASAAPIKey,
		SearchLimit: cfg.SearchLimit,
	})

	weather := fetchers.NewWeatherReporter(fetchers.NewHTTPClient(cfg.HTTPTimeout), fetchers.WeatherSources{
		NotificationsURL: cfg.DONKINotificationsURL,
		CMEURL:           cfg.DONKICMEURL,
		KIndexURL:        cfg.NOAAKIndexURL,
		APIKey:           cfg.NASAAPIKey,
		LookbackDays:     cfg.WeatherLookbackDays,
	})

	chat := llm.NewChatResponder(llm.ChatConfig{
		APIKey:        cfg.LLMAPIKey,
		BaseURL:       cfg.LLMBaseURL,
		Model:         cfg.LLMModel,
		Timeout:       cfg.LLMTimeout,
		MaxInputChars: cfg.ChatMaxInputChars,
	})

	return &Components{Images: images, Weather: weather, Chat: chat}, nil
}
