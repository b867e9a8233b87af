package infrastructure

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const refineSystemPrompt = `You turn rough app ideas into one clear sentence describing the app.
Keep every concrete feature the user mentioned (login, search, uploads, comments, real-time updates, ...).
Name the kind of app explicitly (todo list, blog, online store, social network, dashboard, portfolio, calculator, weather app, notes app).
Reply with the sentence only: no quotes, no markdown, no explanation.`

const maxRefinedLength = 1000

// openAIClient refines ideas through the chat completions API.
type openAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI-backed IdeaRefiner.
func NewOpenAIClient(cfg AIConfig) (IdeaRefiner, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAIClient{client: openai.NewClientWithConfig(clientCfg), model: model}, nil
}

// Refine asks the model for a single-sentence restatement of idea.
func (c *openAIClient) Refine(ctx context.Context, idea string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: refineSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: idea},
		},
		Temperature: 0,
	})
	if err != nil {
		log.Printf("[OpenAI] CreateChatCompletion error: %+v", err)
		return "", fmt.Errorf("failed to refine idea: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("failed to refine idea: empty response")
	}

	refined := cleanCompletion(resp.Choices[0].Message.Content)
	if refined == "" {
		return "", fmt.Errorf("failed to refine idea: blank completion")
	}
	if len([]rune(refined)) > maxRefinedLength {
		refined = string([]rune(refined)[:maxRefinedLength])
	}
	return refined, nil
}

// cleanCompletion strips code fences and surrounding quotes and joins lines.
func cleanCompletion(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, "\"'")
}
