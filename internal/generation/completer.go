package generation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Completer sends one system+user prompt pair to a text-generation
// provider and returns the raw reply.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

var errEmptyReply = errors.New("provider returned no choices")

// chatClient is the part of *openai.Client used here.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAICompleter calls the chat completions endpoint.
type OpenAICompleter struct {
	client    chatClient
	model     string
	maxTokens int
}

// OpenAIConfig configures NewOpenAICompleter. BaseURL is optional and
// allows OpenAI-compatible gateways.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	MaxTokens  int
	HTTPClient *http.Client
}

func NewOpenAICompleter(c OpenAIConfig) *OpenAICompleter {
	cfg := openai.DefaultConfig(c.APIKey)
	if c.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(c.BaseURL, "/")
	}
	if c.HTTPClient != nil {
		cfg.HTTPClient = c.HTTPClient
	} else {
		cfg.HTTPClient = &http.Client{Timeout: 2 * time.Minute}
	}
	model := c.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAICompleter{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: c.MaxTokens,
	}
}

func (o *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}
