package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ratiolab/ratiometer/internal/model"
	"github.com/ratiolab/ratiometer/internal/pipeline"
)

var (
	inFile      string
	htmlInput   bool
	outJSON     string
	outMD       string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze a passage and print its rationality coefficient",
	Long: `Analyze scores a single passage of text:
- Counts emotional markers, logical connectors, and scientific terms
- Scores sentence structure from average sentence length
- Combines the measurements into a rationality coefficient (0-100)
- Attaches a qualitative verdict and transparent diagnostic signals

The passage is taken from the argument, from --file, or from stdin.

Example:
  ratiometer analyze "Data analysis shows the hypothesis is confirmed."
  ratiometer analyze --file essay.txt --json report.json --md report.md
  cat page.html | ratiometer analyze --html
  ratiometer analyze --file essay.txt --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Input flags
	analyzeCmd.Flags().StringVarP(&inFile, "file", "f", "", "read the passage from a file")
	analyzeCmd.Flags().BoolVar(&htmlInput, "html", false, "treat input as HTML and analyze the visible text")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Behavior flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout (matters only with --llm)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM explanation of the verdict")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)

	var report *model.Report
	if htmlInput {
		report, err = p.AnalyzeHTML(ctx, text)
	} else {
		report, err = p.AnalyzeText(ctx, text)
	}
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Counted %d emotional markers\n", report.Measurements.EmotionalMarkers)
		fmt.Fprintf(os.Stderr, "✓ Counted %d logical connectors\n", report.Measurements.LogicalConnectors)
		fmt.Fprintf(os.Stderr, "✓ Counted %d scientific terms\n", report.Measurements.ScientificTerms)
		fmt.Fprintf(os.Stderr, "✓ Calculated coefficient: %.2f/100\n", report.Score.Coefficient)
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	// Write the LLM explanation next to the Markdown report
	if report.LLM != nil && report.LLM.Enabled && outMD != "" {
		llmPath := strings.TrimSuffix(outMD, ".md") + ".llm.md"
		if err := p.Renderer().RenderLLMMarkdown(report.LLM, llmPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write LLM explanation: %v\n", err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote LLM explanation: %s\n", llmPath)
		}
	}

	return nil
}

// readInput resolves the passage from argument, file, or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 1 && inFile != "" {
		return "", fmt.Errorf("pass the text as an argument or via --file, not both")
	}

	if len(args) == 1 {
		return args[0], nil
	}

	if inFile != "" {
		data, err := os.ReadFile(inFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// buildConfig assembles the effective configuration from defaults,
// viper, and command flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	applyViper(cfg)

	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	} else {
		cfg.LLM.Provider = ""
	}

	return cfg, nil
}
