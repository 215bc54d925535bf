package llm

import "context"

// StaticCompleter answers every prompt with the same text. It is the offline
// provider: an empty response makes the pipeline use fallback content.
type StaticCompleter struct {
	Response string
	Err      error
}

func NewStaticCompleter(response string) *StaticCompleter {
	return &StaticCompleter{Response: response}
}

func (s *StaticCompleter) Name() string { return "static" }

func (s *StaticCompleter) Complete(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}
