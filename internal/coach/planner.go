package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/catalog"
	"github.com/branxiety/gameplan-ai/internal/llm"
)

// Generation parameters, fixed across shells.
const (
	planTemperature = 0.8
	planMaxTokens   = 900
	hintSize        = 3
)

// Plan is a generated workout plan plus its provenance.
type Plan struct {
	// Markdown is the model's answer, untouched.
	Markdown string
	// Focus is the catalog label the hint was sampled from.
	Focus string
	// Exercises is the hint embedded in the prompt.
	Exercises []string
	Model     string
	LatencyMs int64
}

// Service generates workout plans from user profiles.
type Service interface {
	GeneratePlan(ctx context.Context, p Profile) (*Plan, error)
}

// Planner wires the exercise catalog pipeline to a completion client.
type Planner struct {
	catalog  *catalog.Catalog
	detector *catalog.Detector
	sampler  *catalog.Sampler
	client   llm.CompletionClient
}

// NewPlanner builds the planning pipeline over cat.
func NewPlanner(cat *catalog.Catalog, det *catalog.Detector, smp *catalog.Sampler, client llm.CompletionClient) *Planner {
	return &Planner{catalog: cat, detector: det, sampler: smp, client: client}
}

// GeneratePlan validates p, assembles the prompts, and makes exactly one
// completion call. Invalid profiles, including blank requests, never reach
// the model.
func (s *Planner) GeneratePlan(ctx context.Context, p Profile) (*Plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	label := s.hintLabel(p)
	exercises := s.sampler.Sample(label, hintSize)

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   BuildUserPrompt(p, exercises),
		Temperature:  planTemperature,
		MaxTokens:    planMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}

	return &Plan{
		Markdown:  resp.Text,
		Focus:     label,
		Exercises: exercises,
		Model:     resp.Model,
		LatencyMs: resp.LatencyMs,
	}, nil
}

// hintLabel picks the sampling label. A sport detected in the free text wins
// over the selected focus area only when the catalog has an entry for it;
// otherwise the user's explicit choice stands. The prompt always shows the
// selected focus either way, detection only steers the hint.
func (s *Planner) hintLabel(p Profile) string {
	if sport, ok := s.detector.Detect(p.Request); ok && s.catalog.Has(sport) {
		return sport
	}
	return strings.ToLower(string(p.Focus))
}
