package generation

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
)

// systemPrompt is the fixed trainer persona sent alongside every request.
const systemPrompt = "You are an expert personal trainer. You design safe, effective weekly workout plans " +
	"and always answer with a single JSON object matching the requested schema, with no other text."

// Generator produces a validated WorkoutPlan from a prompt. The raw response
// text is returned alongside the plan so callers can archive it for
// diagnostics; on failure it is carried inside the typed Error.
type Generator interface {
	Generate(ctx context.Context, profile *domain.Profile, promptText string) (*domain.WorkoutPlan, string, error)
}

// Config for the chat-completion client.
type Config struct {
	APIKey      string
	BaseURL     string // optional, for OpenAI-compatible providers
	Model       string
	MaxTokens   int
	Temperature float32
}

// client implements Generator over an OpenAI-compatible chat completion API.
type client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewClient builds the generator. A missing API key fails fast with a
// configuration error so no request is ever attempted without a credential.
func NewClient(cfg Config) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, configurationError("generation API key is missing")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2500
	}

	return &client{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Generate sends the prompt and maps the response into a validated plan.
// Cancellation and deadlines come from ctx; the caller bounds the timeout.
func (c *client) Generate(ctx context.Context, profile *domain.Profile, promptText string) (*domain.WorkoutPlan, string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: promptText},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, "", upstreamError("generation timed out", err)
		}
		return nil, "", upstreamError("generation request failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, "", upstreamError("generation returned no choices", nil)
	}

	raw := resp.Choices[0].Message.Content
	plan, err := ParsePlan(raw, profile)
	if err != nil {
		return nil, raw, err
	}
	return plan, raw, nil
}
