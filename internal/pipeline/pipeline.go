package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ratiolab/ratiometer/internal/analyze"
	"github.com/ratiolab/ratiometer/internal/cache"
	"github.com/ratiolab/ratiometer/internal/llm"
	"github.com/ratiolab/ratiometer/internal/model"
)

// Pipeline orchestrates a complete analysis run: cache lookup, the
// deterministic scoring engine, the optional LLM explanation, and
// report rendering.
type Pipeline struct {
	analyzer  *analyze.Analyzer
	cache     cache.Cache // nil when caching disabled
	explainer *llm.Explainer
	renderer  *Renderer
	config    *model.Config
}

// NewPipeline creates a pipeline from configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
		}
	}

	var explainer *llm.Explainer
	if cfg.LLM.Provider != "" {
		e, err := llm.NewExplainer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			e.SetRateLimit(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
			explainer = e
		}
	}

	return &Pipeline{
		analyzer:  analyze.NewWithWeights(cfg.Weights),
		cache:     c,
		explainer: explainer,
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}
}

// AnalyzeText analyzes a single passage. The scoring itself is total
// and cannot fail; errors come only from the optional LLM explanation.
func (p *Pipeline) AnalyzeText(ctx context.Context, text string) (*model.Report, error) {
	// 1. Check the cache (analysis is a pure function of text + weights)
	key := cache.Key(text, p.config.Weights)
	report := p.cachedReport(key)

	// 2. Run the scoring engine on a miss and cache the result
	if report == nil {
		report = p.analyzer.Analyze(text)
		p.storeReport(key, report)
	}

	// 3. Generate the LLM explanation if enabled (AFTER scoring, never affects score)
	if p.explainer != nil && p.explainer.IsEnabled() {
		explanation, err := p.explainer.GenerateExplanation(ctx, *report)
		if err != nil {
			// The analysis stands on its own; just warn
			fmt.Fprintf(os.Stderr, "Warning: LLM explanation failed: %v\n", err)
		} else if explanation != nil {
			report.LLM = explanation
		}
	}

	return report, nil
}

// AnalyzeHTML strips markup from an HTML document and analyzes the
// visible text.
func (p *Pipeline) AnalyzeHTML(ctx context.Context, htmlContent string) (*model.Report, error) {
	text, err := VisibleText(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	return p.AnalyzeText(ctx, text)
}

// RenderReport renders the report to the configured outputs.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}

// Renderer exposes the pipeline's renderer for callers that manage
// their own output paths (batch mode).
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

func (p *Pipeline) cachedReport(key string) *model.Report {
	if p.cache == nil {
		return nil
	}

	raw, found := p.cache.Get(key)
	if !found {
		return nil
	}

	var report model.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		// Corrupt entry; drop it and recompute
		_ = p.cache.Delete(key)
		return nil
	}
	report.LLM = nil // Explanations are per-request, never cached
	return &report
}

func (p *Pipeline) storeReport(key string, report *model.Report) {
	if p.cache == nil {
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := p.cache.Set(key, raw, p.config.Cache.TTL); err != nil && p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
	}
}
