package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justsurfingit/job-canvas/internal/canvas"
	"github.com/justsurfingit/job-canvas/internal/database"
	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/export"
	"github.com/justsurfingit/job-canvas/internal/intent"
	"github.com/justsurfingit/job-canvas/internal/layout"
	"github.com/justsurfingit/job-canvas/internal/llm"
	"github.com/justsurfingit/job-canvas/internal/models"
	"github.com/justsurfingit/job-canvas/internal/prompts"
)

var (
	// ErrUnsupportedKind is returned for intents the chat flow answers itself.
	ErrUnsupportedKind = errors.New("diagram kind is not generated")
	// ErrCompletionUnavailable wraps completion-service failures and timeouts.
	ErrCompletionUnavailable = errors.New("couldn't generate content")
	ErrDiagramNotFound       = errors.New("diagram not found")
)

const DefaultCompletionTimeout = 30 * time.Second

type DiagramOptions struct {
	Timeout      time.Duration
	FlowStrategy layout.Strategy
	// Grouping is passed to every canvas board; false simulates a surface
	// that cannot reparent shapes.
	Grouping bool
}

type DiagramService struct {
	Completer llm.Completer
	Runs      database.DiagramRepository
	Jobs      *JobService
	Logger    *zap.Logger
	Options   DiagramOptions
}

func NewDiagramService(completer llm.Completer, runs database.DiagramRepository, jobs *JobService, logger *zap.Logger, opts DiagramOptions) *DiagramService {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultCompletionTimeout
	}
	if opts.FlowStrategy == "" {
		opts.FlowStrategy = layout.StrategySequence
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiagramService{
		Completer: completer,
		Runs:      runs,
		Jobs:      jobs,
		Logger:    logger,
		Options:   opts,
	}
}

type GenerateRequest struct {
	Text           string
	JobID          *uint
	ProfileSummary string
	Facts          []string
	Anchor         diagram.Position
}

// Classify exposes the intent classifier together with the creation check.
func (s *DiagramService) Classify(text string) (diagram.Intent, bool) {
	return intent.Classify(text), intent.IsCreationRequest(text)
}

// Generate runs the full pipeline for one request and stores the run.
// Malformed completions are replaced by fallback content; only a failed
// completion call surfaces as ErrCompletionUnavailable.
func (s *DiagramService) Generate(ctx context.Context, req GenerateRequest) (*models.DiagramRun, error) {
	in := intent.Classify(req.Text)
	if !in.Kind.Generated() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, in.Kind)
	}
	log := s.Logger.With(zap.String("kind", string(in.Kind)), zap.String("topic", in.Topic))

	pctx := prompts.Context{ProfileSummary: req.ProfileSummary, Facts: req.Facts}
	if req.JobID != nil && s.Jobs != nil {
		summary, err := s.Jobs.JobSummary(ctx, *req.JobID)
		if err != nil {
			return nil, err
		}
		pctx.JobSummary = summary
	}
	prompt, err := buildPrompt(in, pctx)
	if err != nil {
		return nil, err
	}

	completion, err := s.complete(ctx, prompt)
	if err != nil {
		log.Error("Completion failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCompletionUnavailable, err)
	}

	content, outcome := ResolveContent(in, completion)
	if outcome.Fallback {
		log.Warn("Completion unusable, using fallback content", zap.Error(outcome.Cause))
	}

	runID := uuid.NewString()
	result := Materialize(content, req.Anchor, s.Options.FlowStrategy, runID[:8])
	if result.Dropped > 0 {
		log.Warn("Dropped unresolved connections", zap.Int("count", result.Dropped))
	}

	board := canvas.NewBoard(canvas.WithGrouping(s.Options.Grouping))
	ids, err := board.Apply(result.Primitives())
	if err != nil {
		return nil, fmt.Errorf("apply primitives: %w", err)
	}
	frameID := ids[result.Frame.ID]
	containment := mapIDs(ids, result.ContainmentIDs)
	viewportIDs := mapIDs(ids, result.ViewportFitIDs)

	grouped := true
	if err := board.Reparent(frameID, containment); err != nil {
		grouped = false
		log.Warn("Frame grouping failed, diagram left ungrouped", zap.Error(err))
	}

	run := &models.DiagramRun{
		ID:             runID,
		JobID:          req.JobID,
		RequestText:    req.Text,
		Kind:           in.Kind,
		Topic:          in.Topic,
		Confidence:     in.Confidence,
		Provider:       s.Completer.Name(),
		Prompt:         prompt,
		Completion:     completion,
		Fallback:       outcome.Fallback,
		Dropped:        result.Dropped,
		Content:        content,
		Primitives:     board.Shapes(),
		FrameID:        frameID,
		ContainmentIDs: containment,
		ViewportFitIDs: viewportIDs,
		Grouped:        grouped,
		Viewport:       board.FitViewport(viewportIDs),
	}
	if outcome.Cause != nil {
		run.FallbackReason = outcome.Cause.Error()
	}

	if err := s.Runs.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("save diagram run: %w", err)
	}
	if req.JobID != nil && s.Jobs != nil {
		if err := s.Jobs.RecordDiagram(ctx, *req.JobID, run.ID); err != nil {
			log.Warn("Failed to record job event", zap.Error(err))
		}
	}

	log.Info("Diagram generated",
		zap.String("run_id", run.ID),
		zap.Bool("fallback", run.Fallback),
		zap.Int("primitives", len(run.Primitives)),
	)
	return run, nil
}

// buildPrompt fails with ErrUnsupportedKind when no prompt exists for the kind.
func buildPrompt(in diagram.Intent, pctx prompts.Context) (string, error) {
	prompt, ok := prompts.Build(in, pctx)
	if !ok {
		return "", fmt.Errorf("%w: no prompt for %s", ErrUnsupportedKind, in.Kind)
	}
	return prompt, nil
}

func (s *DiagramService) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Options.Timeout)
	defer cancel()
	return s.Completer.Complete(ctx, prompt)
}

func mapIDs(ids map[string]string, local []string) []string {
	out := make([]string, 0, len(local))
	for _, id := range local {
		if mapped, ok := ids[id]; ok {
			out = append(out, mapped)
		}
	}
	return out
}

func (s *DiagramService) Get(ctx context.Context, id string) (*models.DiagramRun, error) {
	run, err := s.Runs.FindRun(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrDiagramNotFound
	}
	return run, err
}

func (s *DiagramService) List(ctx context.Context, limit int) ([]models.DiagramRun, error) {
	return s.Runs.ListRuns(ctx, limit)
}

// Preview writes a PNG of the run's primitives to w.
func (s *DiagramService) Preview(ctx context.Context, id string, w io.Writer) error {
	run, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return canvas.Render(w, run.Primitives)
}

func (s *DiagramService) Mermaid(ctx context.Context, id string) (string, error) {
	run, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return export.Mermaid(run.Content)
}
