package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ratiolab/ratiometer/internal/llm"
	"github.com/ratiolab/ratiometer/internal/model"
)

// Renderer writes analysis reports as JSON, Markdown, and a terminal
// summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a Markdown document.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Rationality Report: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "Analyzed: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(&b, "## Score\n\n")
	fmt.Fprintf(&b, "**Rationality coefficient: %.2f/100**\n\n", report.Score.Coefficient)
	fmt.Fprintf(&b, "> %s\n\n", report.Score.Verdict)

	fmt.Fprintf(&b, "## Measurements\n\n")
	fmt.Fprintf(&b, "| Measurement | Value |\n")
	fmt.Fprintf(&b, "|---|---|\n")
	fmt.Fprintf(&b, "| Emotional markers | %d |\n", report.Measurements.EmotionalMarkers)
	fmt.Fprintf(&b, "| Logical connectors | %d |\n", report.Measurements.LogicalConnectors)
	fmt.Fprintf(&b, "| Scientific terms | %d |\n", report.Measurements.ScientificTerms)
	fmt.Fprintf(&b, "| Structure quality | %.1f |\n", report.Measurements.StructureQuality)
	fmt.Fprintf(&b, "| Sentences | %d |\n", report.Stats.Sentences)
	fmt.Fprintf(&b, "| Words | %d |\n\n", report.Stats.Words)

	if len(report.Score.Signals) > 0 {
		fmt.Fprintf(&b, "## Signals\n\n")
		for _, signal := range report.Score.Signals {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", signal.Type, signal.Severity, signal.Description)
		}
		fmt.Fprintf(&b, "\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\n")
		fmt.Fprintf(&b, "Generated by ratiometer. Scores are deterministic lexical heuristics, not judgments of truth or quality.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderLLMMarkdown writes the standalone LLM explanation document.
func (r *Renderer) RenderLLMMarkdown(explanation *model.LLMExplanation, path string) error {
	md := llm.RenderSeparateMarkdown(explanation)
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderSummary prints a short summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  %s\n", report.Subject)
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Rationality coefficient:  %.2f/100\n", report.Score.Coefficient)
	fmt.Printf("  Verdict:                  %s\n", report.Score.Verdict)
	fmt.Println()
	fmt.Printf("  Emotional markers:        %d\n", report.Measurements.EmotionalMarkers)
	fmt.Printf("  Logical connectors:       %d\n", report.Measurements.LogicalConnectors)
	fmt.Printf("  Scientific terms:         %d\n", report.Measurements.ScientificTerms)
	fmt.Printf("  Structure quality:        %.1f\n", report.Measurements.StructureQuality)
	fmt.Println()

	if report.LLM != nil && report.LLM.Enabled {
		fmt.Printf("  Explanation (%s/%s):\n", report.LLM.Provider, report.LLM.Model)
		for _, line := range strings.Split(report.LLM.ExplanationMD, "\n") {
			fmt.Printf("    %s\n", line)
		}
		fmt.Println()
	}
}
