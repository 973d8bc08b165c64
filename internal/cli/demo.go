package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ratiolab/ratiometer/internal/model"
	"github.com/ratiolab/ratiometer/internal/pipeline"
)

// Sample passages spanning the verdict range.
var demoTexts = []string{
	"Data analysis shows that the hypothesis is confirmed. The experiment was conducted over 30 days. Results demonstrate correlation between variables. Therefore, the conclusion can be considered reliable.",
	"I love this! I feel so much joy and excitement!",
	"I think the research is interesting, because the data looks solid, but I feel some anxiety about the method.",
}

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the analyzer over three built-in sample passages",
	Long: `Demo feeds three sample passages through the analyzer and prints the
coefficient, verdict, and counts for each. Useful as a quick smoke test
and as a reference for what the scores look like.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := model.DefaultConfig()
		cfg.Output.Verbose = verbose
		p := pipeline.NewPipeline(cfg)

		for _, text := range demoTexts {
			report, err := p.AnalyzeText(context.Background(), text)
			if err != nil {
				return fmt.Errorf("analyze failed: %w", err)
			}
			p.Renderer().RenderSummary(report)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
