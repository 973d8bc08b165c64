// Package analyze is the public entry point of the rationality engine.
//
// Analyze takes a passage of text and returns a Report with the
// rationality coefficient (0-100), the four underlying measurements,
// a qualitative verdict, and per-measurement diagnostic signals.
//
// The function is total over all string inputs, including empty and
// non-ASCII text, and never fails. Every call produces a fresh Report;
// the analyzer holds no mutable state, so a single Analyzer is safe for
// concurrent use by multiple goroutines.
package analyze

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ratiolab/ratiometer/internal/measure"
	"github.com/ratiolab/ratiometer/internal/model"
	"github.com/ratiolab/ratiometer/internal/score"
)

// Analyzer runs the measurement and scoring pipeline.
type Analyzer struct {
	scorer *score.Scorer
}

// New creates an analyzer with the reference scoring coefficients.
func New() *Analyzer {
	return &Analyzer{scorer: score.NewScorer()}
}

// NewWithWeights creates an analyzer with custom coefficients.
func NewWithWeights(w model.WeightsConfig) *Analyzer {
	return &Analyzer{scorer: score.NewScorerWithWeights(w)}
}

// Analyze measures the passage and combines the measurements into a
// scored report.
func (a *Analyzer) Analyze(text string) *model.Report {
	// 1. Take the four independent measurements
	measurements := model.Measurements{
		EmotionalMarkers:  measure.EmotionalMarkers(text),
		LogicalConnectors: measure.LogicalConnectors(text),
		ScientificTerms:   measure.ScientificTerms(text),
		StructureQuality:  measure.StructureQuality(text),
	}

	// 2. Combine into the rationality coefficient and verdict
	scoreResult := a.scorer.Calculate(measurements)

	// 3. Assemble the report
	return &model.Report{
		Subject:      model.Subject(text),
		AnalyzedAt:   time.Now().UTC(),
		Stats:        stats(text),
		Measurements: measurements,
		Score:        scoreResult,
	}
}

// Analyze runs a one-off analysis with the reference coefficients.
func Analyze(text string) *model.Report {
	return New().Analyze(text)
}

func stats(text string) model.TextStats {
	return model.TextStats{
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
		Sentences:  len(measure.Sentences(text)),
	}
}
