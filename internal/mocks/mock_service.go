package mocks

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"math/rand"
	"strings"
	"time"

	"spaceexplorer/internal/llm"
	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/models"

	"github.com/google/uuid"
)

const sourceMock = "mockup"

//go:embed data/*
var embeddedData embed.FS

// MockService serves canned images, weather and chat answers for offline demos.
// It satisfies the same interfaces as the live components.
type MockService struct {
	today      models.ImageResult
	library    []models.ImageResult
	recent     []models.ImageResult
	weather    models.WeatherSnapshot
	kpHistory  []models.KpPoint
	chatAnswer string
	knowledge  *llm.Knowledge
	limit      int
	pick       func(n int) int
	now        func() time.Time
	log        *logger.Logger
}

// NewMockService loads the embedded mock data
func NewMockService(searchLimit int) (*MockService, error) {
	data, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, err
	}
	return NewMockServiceFS(data, searchLimit)
}

// NewMockServiceFS loads mock data from fsys
func NewMockServiceFS(fsys fs.FS, searchLimit int) (*MockService, error) {
	if searchLimit <= 0 {
		searchLimit = 5
	}
	m := &MockService{
		knowledge: llm.DefaultKnowledge(),
		limit:     searchLimit,
		pick:      rand.Intn,
		now:       time.Now,
		log:       logger.WithComponent("mockup"),
	}

	files := []struct {
		name   string
		target interface{}
	}{
		{"today.json", &m.today},
		{"library.json", &m.library},
		{"recent.json", &m.recent},
		{"weather.json", &m.weather},
		{"kp_history.json", &m.kpHistory},
	}
	for _, f := range files {
		if err := loadJSONFile(fsys, f.name, f.target); err != nil {
			return nil, err
		}
	}

	answer, err := fs.ReadFile(fsys, "chat_response.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read mock chat response: %w", err)
	}
	m.chatAnswer = strings.TrimSpace(string(answer))

	if !m.weather.Complete() {
		return nil, fmt.Errorf("mock weather snapshot is incomplete")
	}

	m.log.Info("Mock data loaded", map[string]interface{}{
		"library_images": len(m.library),
		"kp_readings":    len(m.kpHistory),
	})
	return m, nil
}

// loadJSONFile decodes a JSON file from fsys into target
func loadJSONFile(fsys fs.FS, name string, target interface{}) error {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(content, target); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Today returns the canned picture of the day
func (m *MockService) Today(ctx context.Context) (models.ImageResult, error) {
	return m.today, nil
}

// Search matches the keyword against titles and descriptions, title matches first
func (m *MockService) Search(ctx context.Context, keyword string) ([]models.ImageResult, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil, models.NewFetchError(models.KindNotFound, sourceMock, fmt.Errorf("empty search keyword"))
	}

	var titled, described []models.ImageResult
	for _, img := range m.library {
		switch {
		case strings.Contains(strings.ToLower(img.Title), needle):
			titled = append(titled, img)
		case strings.Contains(strings.ToLower(img.Description), needle):
			described = append(described, img)
		}
	}

	results := append(titled, described...)
	if len(results) == 0 {
		return nil, models.NewFetchError(models.KindNotFound, sourceMock, fmt.Errorf("no images for %q", keyword))
	}
	if len(results) > m.limit {
		results = results[:m.limit]
	}
	return results, nil
}

// Fetch returns today's image for a blank keyword, otherwise a search
func (m *MockService) Fetch(ctx context.Context, keyword string) ([]models.ImageResult, error) {
	if strings.TrimSpace(keyword) == "" {
		today, err := m.Today(ctx)
		if err != nil {
			return nil, err
		}
		return []models.ImageResult{today}, nil
	}
	return m.Search(ctx, keyword)
}

// Recent returns the canned gallery strip
func (m *MockService) Recent(ctx context.Context) ([]models.ImageResult, error) {
	return m.recent, nil
}

// Report returns the canned weather snapshot stamped with the current time
func (m *MockService) Report(ctx context.Context) (models.WeatherSnapshot, error) {
	snapshot := m.weather
	snapshot.Timestamp = m.now().UTC()
	return snapshot, nil
}

// KpHistory returns the canned K-index readings
func (m *MockService) KpHistory(ctx context.Context) ([]models.KpPoint, error) {
	return m.kpHistory, nil
}

// Respond answers every question with the canned response and a fun fact
func (m *MockService) Respond(ctx context.Context, text string) (models.ChatTurn, error) {
	turn := models.ChatTurn{
		ID:        uuid.NewString(),
		UserText:  strings.TrimSpace(text),
		CreatedAt: m.now().UTC(),
	}
	if turn.UserText == "" {
		turn.ModelText = m.knowledge.Fallback
		turn.Fallback = true
		return turn, nil
	}

	turn.ModelText = m.chatAnswer
	turn.FunFact = m.knowledge.FunFacts[m.pick(len(m.knowledge.FunFacts))]
	return turn, nil
}

// UnavailableMessage mirrors the live responder's message
func (m *MockService) UnavailableMessage() string {
	return m.knowledge.Unavailable
}
