package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/ratiolab/ratiometer/internal/model"
)

// Explainer wraps a Provider and produces the optional LLMExplanation
// attached to reports. It runs strictly after scoring; a failed or
// disabled explainer never affects the coefficient.
type Explainer struct {
	provider Provider
	config   Config
	limiter  *rate.Limiter // nil = unthrottled
}

// NewExplainer creates an explainer from configuration. An empty
// provider name yields a disabled explainer, not an error.
func NewExplainer(config Config) (*Explainer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	return &Explainer{
		provider: provider,
		config:   config,
	}, nil
}

// SetRateLimit throttles API calls, mainly for batch runs where many
// passages request explanations back to back.
func (e *Explainer) SetRateLimit(requestsPerSecond float64, burst int) {
	if requestsPerSecond <= 0 {
		e.limiter = nil
		return
	}
	if burst <= 0 {
		burst = 1
	}
	e.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// IsEnabled reports whether a provider is configured.
func (e *Explainer) IsEnabled() bool {
	return e.provider != nil
}

// ProviderName returns the configured provider name, or "" if disabled.
func (e *Explainer) ProviderName() string {
	if e.provider == nil {
		return ""
	}
	return e.provider.Name()
}

// GenerateExplanation produces an explanation for a scored report.
// Returns (nil, nil) when disabled. Provider unavailability is reported
// through warnings rather than an error so a scan still succeeds.
func (e *Explainer) GenerateExplanation(ctx context.Context, report model.Report) (*model.LLMExplanation, error) {
	if e.provider == nil {
		return nil, nil
	}

	if !e.provider.IsAvailable(ctx) {
		return &model.LLMExplanation{
			Enabled:  false,
			Provider: e.provider.Name(),
			Warnings: []string{fmt.Sprintf("provider %s is not available", e.provider.Name())},
		}, nil
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	resp, err := e.provider.Explain(ctx, ExplainRequest{
		Report:    report,
		Model:     e.config.Model,
		MaxTokens: e.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate explanation: %w", err)
	}

	return &model.LLMExplanation{
		Enabled:       true,
		Provider:      e.provider.Name(),
		Model:         resp.Model,
		ExplanationMD: resp.Explanation,
	}, nil
}

// RenderSeparateMarkdown renders the explanation as a standalone
// Markdown document, clearly marked as advisory.
func RenderSeparateMarkdown(explanation *model.LLMExplanation) string {
	md := "# LLM Explanation\n\n"
	md += fmt.Sprintf("> Generated by %s/%s on %s.\n", explanation.Provider, explanation.Model,
		time.Now().UTC().Format("2006-01-02"))
	md += "> This text restates the deterministic scoring result and never influences it.\n\n"
	md += explanation.ExplanationMD + "\n"

	if len(explanation.Warnings) > 0 {
		md += "\n## Warnings\n\n"
		for _, w := range explanation.Warnings {
			md += fmt.Sprintf("- %s\n", w)
		}
	}

	return md
}
