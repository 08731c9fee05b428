package llm

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/models"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
)

const (
	sourceLLM = "LLM"

	// DefaultTimeout bounds a single completion request
	DefaultTimeout = 60 * time.Second

	// DefaultMaxInputChars is the longest question forwarded to the model
	DefaultMaxInputChars = 2000
)

// ChatConfig configures the model endpoint
type ChatConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	Timeout       time.Duration
	MaxInputChars int
}

// ChatResponder forwards questions to an OpenAI-compatible chat completion endpoint
type ChatResponder struct {
	client        *openai.Client
	model         string
	timeout       time.Duration
	maxInputChars int
	knowledge     *Knowledge
	pick          func(n int) int
	now           func() time.Time
	log           *logger.Logger
}

// NewChatResponder creates a chat responder using the embedded knowledge file
func NewChatResponder(cfg ChatConfig) *ChatResponder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxInput := cfg.MaxInputChars
	if maxInput <= 0 {
		maxInput = DefaultMaxInputChars
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &ChatResponder{
		client:        openai.NewClientWithConfig(clientConfig),
		model:         cfg.Model,
		timeout:       timeout,
		maxInputChars: maxInput,
		knowledge:     DefaultKnowledge(),
		pick:          rand.Intn,
		now:           time.Now,
		log:           logger.WithComponent("chat-responder"),
	}
}

// Respond answers a question. Blank questions get the fallback message without a model call.
func (c *ChatResponder) Respond(ctx context.Context, text string) (models.ChatTurn, error) {
	turn := models.ChatTurn{
		ID:        uuid.NewString(),
		UserText:  strings.TrimSpace(text),
		CreatedAt: c.now().UTC(),
	}

	if turn.UserText == "" {
		turn.ModelText = c.knowledge.Fallback
		turn.Fallback = true
		return turn, nil
	}

	question := c.truncate(turn.UserText)
	if question != turn.UserText {
		c.log.Warn("Question truncated", map[string]interface{}{
			"id":    turn.ID,
			"chars": utf8.RuneCountInString(turn.UserText),
			"limit": c.maxInputChars,
		})
	}

	answer, err := c.complete(ctx, question)
	if err != nil {
		c.log.Error("Chat completion failed", err, map[string]interface{}{"id": turn.ID})
		return models.ChatTurn{}, models.NewFetchError(models.KindModelUnavailable, sourceLLM, err)
	}

	turn.ModelText = answer
	turn.FunFact = c.FunFact()
	c.log.Info("Chat answered", map[string]interface{}{
		"id":    turn.ID,
		"chars": len(answer),
		"model": c.model,
	})
	return turn, nil
}

// FunFact returns a random fact from the knowledge file
func (c *ChatResponder) FunFact() string {
	facts := c.knowledge.FunFacts
	return facts[c.pick(len(facts))]
}

// UnavailableMessage is shown to the user when the model cannot answer
func (c *ChatResponder) UnavailableMessage() string {
	return c.knowledge.Unavailable
}

func (c *ChatResponder) complete(ctx context.Context, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: c.knowledge.SystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: c.knowledge.UserPrompt(question),
				},
			},
			MaxTokens:   512,
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("empty answer in chat completion response")
	}
	return answer, nil
}

// truncate cuts text to maxInputChars runes
func (c *ChatResponder) truncate(text string) string {
	if utf8.RuneCountInString(text) <= c.maxInputChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:c.maxInputChars])
}
