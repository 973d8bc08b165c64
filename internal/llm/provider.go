package llm

import (
	"context"
	"fmt"

	"github.com/ratiolab/ratiometer/internal/model"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Explain generates a prose explanation of a scored report
	Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ExplainRequest contains the input for verdict explanation.
type ExplainRequest struct {
	// Report is the scored report to explain. The explanation is
	// generated after scoring and can never change the coefficient.
	Report model.Report

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExplainResponse contains the LLM's explanation output.
type ExplainResponse struct {
	// Explanation is the generated explanation text
	Explanation string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration.
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 500,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:   mc.Provider,
		Model:      mc.Model,
		APIKey:     mc.APIKey,
		BaseURL:    mc.BaseURL,
		Timeout:    mc.Timeout,
		MaxTokens:  mc.MaxTokens,
		HTTPProxy:  mc.HTTPProxy,
		HTTPSProxy: mc.HTTPSProxy,
	}
}

// BuildPrompt constructs the default explanation prompt. The LLM is
// handed the finished numbers and asked to restate them; it is never
// asked to judge the text itself.
func BuildPrompt(report model.Report) string {
	prompt := fmt.Sprintf(`You are explaining the output of a deterministic lexical text analyzer. The analyzer counts emotional markers, logical connectors, and scientific terms, scores sentence structure, and combines them into a rationality coefficient. It does NOT understand the text.

CRITICAL RULES:
1. Explain only the numbers below. Do not re-analyze or re-score the text.
2. Do not claim the text is true, false, good, or bad.
3. If a count is zero, say so plainly.

Analysis:
- Subject: %s
- Rationality coefficient: %.2f/100
- Verdict: %s
- Emotional markers: %d
- Logical connectors: %d
- Scientific terms: %d
- Structure quality: %.1f

Key signals:
`, report.Subject, report.Score.Coefficient, report.Score.Verdict,
		report.Measurements.EmotionalMarkers,
		report.Measurements.LogicalConnectors,
		report.Measurements.ScientificTerms,
		report.Measurements.StructureQuality)

	for i, signal := range report.Score.Signals {
		if i >= 4 {
			break
		}
		prompt += fmt.Sprintf("- %s: %s\n", signal.Type, signal.Description)
	}

	prompt += "\nProvide a 3-4 sentence explanation of why the coefficient came out this way, in plain language."

	return prompt
}
