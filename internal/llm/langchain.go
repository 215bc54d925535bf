package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LangChainCompleter calls Gemini through langchaingo.
type LangChainCompleter struct {
	Client llms.Model
	model  string
}

func NewLangChainCompleter(ctx context.Context, apiKey, model string) (*LangChainCompleter, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &LangChainCompleter{Client: client, model: model}, nil
}

func (c *LangChainCompleter) Name() string { return "langchain:" + c.model }

func (c *LangChainCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, c.Client, prompt)
	if err != nil {
		return "", fmt.Errorf("langchain completion: %w", err)
	}
	return resp, nil
}
