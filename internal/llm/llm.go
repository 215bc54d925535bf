// Package llm wraps the completion services the diagram pipeline can call.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownProvider = errors.New("llm: unknown provider")
	ErrMissingAPIKey   = errors.New("llm: missing API key")
	// ErrNoCandidates is returned when the service answers without any text.
	ErrNoCandidates = errors.New("llm: response has no candidates")
)

// Completer sends one prompt and returns the raw completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

const (
	ProviderLangChain = "langchain"
	ProviderGenAI     = "genai"
	ProviderStatic    = "static"

	DefaultModel = "gemini-2.5-flash"
)

// Options selects and configures a Completer.
type Options struct {
	Provider       string
	APIKey         string
	Model          string
	CacheSize      int
	StaticResponse string
}

// New builds the Completer named by opts.Provider, wrapped in an LRU cache
// when opts.CacheSize is positive.
func New(ctx context.Context, opts Options) (Completer, error) {
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	var (
		c   Completer
		err error
	)
	switch strings.ToLower(opts.Provider) {
	case "", ProviderLangChain:
		c, err = NewLangChainCompleter(ctx, opts.APIKey, model)
	case ProviderGenAI:
		c, err = NewGenAICompleter(ctx, opts.APIKey, model)
	case ProviderStatic:
		c = NewStaticCompleter(opts.StaticResponse)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, opts.Provider)
	}
	if err != nil {
		return nil, err
	}

	if opts.CacheSize > 0 {
		return NewCachedCompleter(c, opts.CacheSize)
	}
	return c, nil
}
