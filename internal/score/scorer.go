package score

import (
	"fmt"
	"math"

	"github.com/ratiolab/ratiometer/internal/model"
)

// Verdict strings, keyed by inclusive lower-bound thresholds.
const (
	VerdictHighlyRational = "Text is highly rational. Emotions are absent or minimal."
	VerdictMostlyRational = "Text is predominantly rational. Minor emotional elements present."
	VerdictModerate       = "Text contains moderate emotional content. Rationality is average."
	VerdictEmotional      = "Text is emotionally charged. Rationality is low."
	VerdictFullyEmotional = "Text is entirely emotional. Rationality is absent."
)

// Scorer combines the four measurements into the rationality
// coefficient and generates diagnostic signals.
type Scorer struct {
	weights model.WeightsConfig
}

// NewScorer creates a scorer with the reference coefficients.
func NewScorer() *Scorer {
	return &Scorer{weights: model.DefaultWeights()}
}

// NewScorerWithWeights creates a scorer with custom coefficients.
// Non-default weights produce scores incompatible with the reference
// formula.
func NewScorerWithWeights(w model.WeightsConfig) *Scorer {
	return &Scorer{weights: w}
}

// Calculate combines the measurements into a clamped, rounded score
// and generates one diagnostic signal per measurement.
func (s *Scorer) Calculate(m model.Measurements) model.Score {
	var signals []model.Signal

	// 1. Emotional markers (penalty)
	base := 100 - float64(m.EmotionalMarkers)*s.weights.EmotionalPenalty
	signals = append(signals, s.emotionalSignal(m.EmotionalMarkers))

	// 2. Logical connectors (bonus)
	logicalBonus := float64(m.LogicalConnectors) * s.weights.LogicalBonus
	signals = append(signals, s.logicalSignal(m.LogicalConnectors))

	// 3. Scientific terms (bonus)
	scientificBonus := float64(m.ScientificTerms) * s.weights.ScientificBonus
	signals = append(signals, s.scientificSignal(m.ScientificTerms))

	// 4. Structure quality (bonus)
	structureBonus := m.StructureQuality * s.weights.StructureBonus
	signals = append(signals, s.structureSignal(m.StructureQuality))

	raw := base + logicalBonus + scientificBonus + structureBonus
	coefficient := round2(clamp(raw, 0, 100))

	return model.Score{
		Coefficient: coefficient,
		Verdict:     Verdict(coefficient),
		Signals:     signals,
	}
}

// Verdict maps a coefficient to its qualitative verdict. Thresholds are
// strictly ordered, highest first, each inclusive of its lower bound.
func Verdict(coefficient float64) string {
	switch {
	case coefficient >= 80:
		return VerdictHighlyRational
	case coefficient >= 60:
		return VerdictMostlyRational
	case coefficient >= 40:
		return VerdictModerate
	case coefficient >= 20:
		return VerdictEmotional
	default:
		return VerdictFullyEmotional
	}
}

func (s *Scorer) emotionalSignal(count int) model.Signal {
	severity := model.SeverityInfo
	if count >= 8 {
		severity = model.SeverityCritical
	} else if count >= 3 {
		severity = model.SeverityWarning
	}

	return model.Signal{
		Type:        model.SignalEmotionalMarkers,
		Severity:    severity,
		Description: fmt.Sprintf("Emotional markers: %d (-%.0f points each)", count, s.weights.EmotionalPenalty),
		Data: map[string]interface{}{
			"count":   count,
			"penalty": s.weights.EmotionalPenalty,
			"formula": fmt.Sprintf("base = 100 - emotional_count * %g", s.weights.EmotionalPenalty),
		},
	}
}

func (s *Scorer) logicalSignal(count int) model.Signal {
	severity := model.SeverityInfo
	if count == 0 {
		severity = model.SeverityWarning
	}

	description := fmt.Sprintf("Logical connectors: %d (+%.0f points each)", count, s.weights.LogicalBonus)
	if count == 0 {
		description = "No logical connectors found"
	}

	return model.Signal{
		Type:        model.SignalLogicalConnectors,
		Severity:    severity,
		Description: description,
		Data: map[string]interface{}{
			"count":   count,
			"bonus":   s.weights.LogicalBonus,
			"formula": fmt.Sprintf("logical_count * %g", s.weights.LogicalBonus),
		},
	}
}

func (s *Scorer) scientificSignal(count int) model.Signal {
	return model.Signal{
		Type:        model.SignalScientificTerms,
		Severity:    model.SeverityInfo,
		Description: fmt.Sprintf("Scientific terms: %d (+%.0f points each)", count, s.weights.ScientificBonus),
		Data: map[string]interface{}{
			"count":   count,
			"bonus":   s.weights.ScientificBonus,
			"formula": fmt.Sprintf("scientific_count * %g", s.weights.ScientificBonus),
		},
	}
}

func (s *Scorer) structureSignal(quality float64) model.Signal {
	severity := model.SeverityInfo
	switch {
	case quality == 0:
		severity = model.SeverityCritical
	case quality < 1.0:
		severity = model.SeverityWarning
	}

	description := fmt.Sprintf("Structure quality: %.1f (x%.0f points)", quality, s.weights.StructureBonus)
	if quality == 0 {
		description = "No sentences found"
	}

	return model.Signal{
		Type:        model.SignalStructureQuality,
		Severity:    severity,
		Description: description,
		Data: map[string]interface{}{
			"quality": quality,
			"bonus":   s.weights.StructureBonus,
			"formula": fmt.Sprintf("structure_quality * %g", s.weights.StructureBonus),
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
