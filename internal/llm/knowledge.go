package llm

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptsYAML []byte

// Knowledge holds the chat prompts and the fun fact pool
type Knowledge struct {
	SystemPrompt string   `yaml:"system_prompt"`
	UserTemplate string   `yaml:"user_template"`
	Fallback     string   `yaml:"fallback"`
	Unavailable  string   `yaml:"unavailable"`
	FunFacts     []string `yaml:"fun_facts"`
}

// ParseKnowledge decodes a knowledge file
func ParseKnowledge(data []byte) (*Knowledge, error) {
	var k Knowledge
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
	}
	if strings.TrimSpace(k.SystemPrompt) == "" {
		return nil, fmt.Errorf("knowledge file has no system_prompt")
	}
	if !strings.Contains(k.UserTemplate, "%s") {
		return nil, fmt.Errorf("knowledge file user_template must contain %%s")
	}
	if len(k.FunFacts) == 0 {
		return nil, fmt.Errorf("knowledge file has no fun_facts")
	}
	return &k, nil
}

// DefaultKnowledge returns the embedded knowledge file
func DefaultKnowledge() *Knowledge {
	k, err := ParseKnowledge(promptsYAML)
	if err != nil {
		panic(err)
	}
	return k
}

// UserPrompt wraps the user's text in the expert framing
func (k *Knowledge) UserPrompt(text string) string {
	return fmt.Sprintf(k.UserTemplate, text)
}
