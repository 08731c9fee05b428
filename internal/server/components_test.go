package server

import (
	"context"
	"testing"

	"spaceexplorer/internal/config"
	"spaceexplorer/internal/fetchers"
	"spaceexplorer/internal/llm"
	"spaceexplorer/internal/mocks"
)

func TestNewComponentsMockup(t *testing.T) {
	c, err := NewComponents(&config.Config{MockupMode: true, SearchLimit: 5})
	if err != nil {
		t.Fatalf("NewComponents failed: %v", err)
	}
	if _, ok := c.Images.(*mocks.MockService); !ok {
		t.Errorf("Expected mock image source, got %T", c.Images)
	}

	// Mockup mode must work without network access
	if _, err := c.Weather.Report(context.Background()); err != nil {
		t.Errorf("Mock weather failed: %v", err)
	}
}

func TestNewComponentsLive(t *testing.T) {
	c, err := NewComponents(&config.Config{
		LLMAPIKey:   "test-key",
		LLMModel:    "test-model",
		SearchLimit: 5,
	})
	if err != nil {
		t.Fatalf("NewComponents failed: %v", err)
	}
	if _, ok := c.Images.(*fetchers.ImageFetcher); !ok {
		t.Errorf("Expected live image fetcher, got %T", c.Images)
	}
	if _, ok := c.Weather.(*fetchers.WeatherReporter); !ok {
		t.Errorf("Expected live weather reporter, got %T", c.Weather)
	}
	if _, ok := c.Chat.(*llm.ChatResponder); !ok {
		t.Errorf("Expected live chat responder, got %T", c.Chat)
	}
}
