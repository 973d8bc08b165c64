package score

import (
	"testing"

	"github.com/ratiolab/ratiometer/internal/model"
)

func TestScorer_Calculate_Formula(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name string
		m    model.Measurements
		want float64
	}{
		// base = 100 - emotional*5; bonus = logical*3 + scientific*2 + structure*10
		{"all zero", model.Measurements{}, 100},
		{"structure only", model.Measurements{StructureQuality: 1.0}, 100},
		{"emotional penalty", model.Measurements{EmotionalMarkers: 4}, 80},
		{"emotional plus structure", model.Measurements{EmotionalMarkers: 4, StructureQuality: 0.7}, 87},
		{"mixed", model.Measurements{EmotionalMarkers: 10, LogicalConnectors: 2, ScientificTerms: 3, StructureQuality: 0.3}, 65},
		{"clamped high", model.Measurements{LogicalConnectors: 5, ScientificTerms: 5, StructureQuality: 1.0}, 100},
		{"clamped low", model.Measurements{EmotionalMarkers: 50}, 0},
		{"fractional structure", model.Measurements{EmotionalMarkers: 5, StructureQuality: 0.7}, 82},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Calculate(tt.m)
			if result.Coefficient != tt.want {
				t.Errorf("expected coefficient %.2f, got %.2f", tt.want, result.Coefficient)
			}
		})
	}
}

func TestScorer_Calculate_ClampInvariant(t *testing.T) {
	scorer := NewScorer()

	extremes := []model.Measurements{
		{},
		{EmotionalMarkers: 1000},
		{LogicalConnectors: 1000, ScientificTerms: 1000, StructureQuality: 1.0},
		{EmotionalMarkers: 19, LogicalConnectors: 1, StructureQuality: 0.3},
	}

	for _, m := range extremes {
		result := scorer.Calculate(m)
		if result.Coefficient < 0 || result.Coefficient > 100 {
			t.Errorf("coefficient %v out of [0,100] for %+v", result.Coefficient, m)
		}
	}
}

func TestScorer_Calculate_Monotonicity(t *testing.T) {
	// With logical, scientific, and structure fixed, more emotional
	// markers never raise the score.
	scorer := NewScorer()

	prev := 101.0
	for markers := 0; markers <= 30; markers++ {
		result := scorer.Calculate(model.Measurements{
			EmotionalMarkers:  markers,
			LogicalConnectors: 2,
			ScientificTerms:   1,
			StructureQuality:  0.7,
		})
		if result.Coefficient > prev {
			t.Errorf("coefficient increased from %.2f to %.2f at %d markers", prev, result.Coefficient, markers)
		}
		prev = result.Coefficient
	}
}

func TestScorer_Calculate_Signals(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Calculate(model.Measurements{
		EmotionalMarkers:  4,
		LogicalConnectors: 0,
		ScientificTerms:   2,
		StructureQuality:  0.7,
	})

	if len(result.Signals) != 4 {
		t.Fatalf("expected 4 signals (one per measurement), got %d", len(result.Signals))
	}

	byType := make(map[model.SignalType]model.Signal)
	for _, s := range result.Signals {
		byType[s.Type] = s
	}

	if s, ok := byType[model.SignalEmotionalMarkers]; !ok {
		t.Error("missing emotional markers signal")
	} else if s.Severity != model.SeverityWarning {
		t.Errorf("expected warning severity for 4 emotional markers, got %s", s.Severity)
	}

	if s, ok := byType[model.SignalLogicalConnectors]; !ok {
		t.Error("missing logical connectors signal")
	} else if s.Severity != model.SeverityWarning {
		t.Errorf("expected warning severity for zero connectors, got %s", s.Severity)
	}

	if s, ok := byType[model.SignalStructureQuality]; !ok {
		t.Error("missing structure quality signal")
	} else if s.Severity != model.SeverityWarning {
		t.Errorf("expected warning severity for quality 0.7, got %s", s.Severity)
	}

	for _, s := range result.Signals {
		if s.Data["formula"] == "" {
			t.Errorf("signal %s has no formula in data", s.Type)
		}
	}
}

func TestScorer_Calculate_NoSentencesSignal(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Calculate(model.Measurements{StructureQuality: 0})
	for _, s := range result.Signals {
		if s.Type == model.SignalStructureQuality && s.Severity != model.SeverityCritical {
			t.Errorf("expected critical severity for zero structure quality, got %s", s.Severity)
		}
	}
}

func TestScorer_CustomWeights(t *testing.T) {
	scorer := NewScorerWithWeights(model.WeightsConfig{
		EmotionalPenalty: 10,
		LogicalBonus:     1,
		ScientificBonus:  1,
		StructureBonus:   0,
	})

	result := scorer.Calculate(model.Measurements{EmotionalMarkers: 3, LogicalConnectors: 2, ScientificTerms: 4})
	// 100 - 30 + 2 + 4 = 76
	if result.Coefficient != 76 {
		t.Errorf("expected 76 with custom weights, got %.2f", result.Coefficient)
	}
}

func TestVerdict_Thresholds(t *testing.T) {
	tests := []struct {
		coefficient float64
		want        string
	}{
		{100, VerdictHighlyRational},
		{80, VerdictHighlyRational},
		{79.99, VerdictMostlyRational},
		{60, VerdictMostlyRational},
		{59.99, VerdictModerate},
		{40, VerdictModerate},
		{39.99, VerdictEmotional},
		{20, VerdictEmotional},
		{19.99, VerdictFullyEmotional},
		{0, VerdictFullyEmotional},
	}

	for _, tt := range tests {
		if got := Verdict(tt.coefficient); got != tt.want {
			t.Errorf("Verdict(%.2f) = %q, expected %q", tt.coefficient, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{87.0, 87.0},
		{87.125, 87.13}, // half away from zero; .125 is exact in binary
		{87.1234, 87.12},
		{99.999, 100.0},
	}

	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
