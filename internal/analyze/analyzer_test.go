package analyze

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ratiolab/ratiometer/internal/model"
	"github.com/ratiolab/ratiometer/internal/score"
)

func TestAnalyze_ScientificPassage(t *testing.T) {
	text := "Data analysis shows that the hypothesis is confirmed. " +
		"The experiment was conducted over 30 days. " +
		"Results demonstrate correlation between variables. " +
		"Therefore, the conclusion can be considered reliable."

	report := Analyze(text)

	m := report.Measurements
	if m.EmotionalMarkers != 0 {
		t.Errorf("expected 0 emotional markers, got %d", m.EmotionalMarkers)
	}
	if m.LogicalConnectors != 1 {
		t.Errorf("expected 1 logical connector (therefore), got %d", m.LogicalConnectors)
	}
	// data, analysis, hypothesis, experiment, conclusion, plus "result"
	// matching inside "Results" via substring matching
	if m.ScientificTerms != 6 {
		t.Errorf("expected 6 scientific terms, got %d", m.ScientificTerms)
	}
	if m.StructureQuality != 0.7 {
		t.Errorf("expected structure quality 0.7 (average 6.75 words), got %v", m.StructureQuality)
	}
	if report.Stats.Sentences != 4 {
		t.Errorf("expected 4 sentences, got %d", report.Stats.Sentences)
	}

	// 100 + 3 + 12 + 7 = 122, clamped to 100
	if report.Score.Coefficient != 100.00 {
		t.Errorf("expected coefficient 100.00, got %.2f", report.Score.Coefficient)
	}
	if report.Score.Verdict != score.VerdictHighlyRational {
		t.Errorf("expected highly rational verdict, got %q", report.Score.Verdict)
	}
}

func TestAnalyze_EmotionalPassage(t *testing.T) {
	text := "I love this! I feel so much joy and excitement!"

	report := Analyze(text)

	m := report.Measurements
	// "love", "joy", "excitement" plus the subjective phrase "i feel"
	if m.EmotionalMarkers != 4 {
		t.Errorf("expected 4 emotional markers, got %d", m.EmotionalMarkers)
	}
	if m.LogicalConnectors != 0 {
		t.Errorf("expected 0 logical connectors, got %d", m.LogicalConnectors)
	}
	if m.ScientificTerms != 0 {
		t.Errorf("expected 0 scientific terms, got %d", m.ScientificTerms)
	}
	// Sentences of 3 and 7 words average 5.0
	if m.StructureQuality != 0.7 {
		t.Errorf("expected structure quality 0.7, got %v", m.StructureQuality)
	}

	// 100 - 4*5 + 0.7*10 = 87
	if report.Score.Coefficient != 87.00 {
		t.Errorf("expected coefficient 87.00, got %.2f", report.Score.Coefficient)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		report := Analyze(text)

		m := report.Measurements
		if m.EmotionalMarkers != 0 || m.LogicalConnectors != 0 || m.ScientificTerms != 0 {
			t.Errorf("expected zero counts for %q, got %+v", text, m)
		}
		if m.StructureQuality != 0 {
			t.Errorf("expected structure quality 0 for %q, got %v", text, m.StructureQuality)
		}
		// base 100, no bonus, clamp(100) = 100
		if report.Score.Coefficient != 100.00 {
			t.Errorf("expected coefficient 100.00 for %q, got %.2f", text, report.Score.Coefficient)
		}
		if report.Score.Verdict != score.VerdictHighlyRational {
			t.Errorf("expected highly rational verdict for %q, got %q", text, report.Score.Verdict)
		}
	}
}

func TestAnalyze_Totality(t *testing.T) {
	// Any string input must produce a bounded score without panicking.
	inputs := []string{
		"",
		"....!!??",
		"ünïcödé ѣ 感情 🎉",
		strings.Repeat("a", 10000),
		"\x00\x01\x02",
		strings.Repeat("fear! ", 500),
	}

	for _, text := range inputs {
		report := Analyze(text)
		if report.Score.Coefficient < 0 || report.Score.Coefficient > 100 {
			t.Errorf("coefficient %v out of range for input %q", report.Score.Coefficient, model.Subject(text))
		}
		if report.Score.Verdict == "" {
			t.Errorf("empty verdict for input %q", model.Subject(text))
		}
	}
}

func TestAnalyze_Idempotence(t *testing.T) {
	text := "I believe the research is sound, because the data is clear. Therefore I hope the theory holds."

	a := Analyze(text)
	b := Analyze(text)

	if !reflect.DeepEqual(a.Measurements, b.Measurements) {
		t.Errorf("measurements differ across calls: %+v vs %+v", a.Measurements, b.Measurements)
	}
	if a.Score.Coefficient != b.Score.Coefficient {
		t.Errorf("coefficient differs across calls: %v vs %v", a.Score.Coefficient, b.Score.Coefficient)
	}
	if a.Score.Verdict != b.Score.Verdict {
		t.Errorf("verdict differs across calls")
	}
}

func TestAnalyze_MonotoneInEmotionalMarkers(t *testing.T) {
	// Swap a neutral filler word for a marker word so the sentence
	// layout (and thus structure quality) stays identical.
	neutral := "The cat sat on the mat near the stone wall today."
	loaded := "The cat sat on the mat near the anger wall today."

	a := Analyze(neutral)
	b := Analyze(loaded)

	if a.Measurements.StructureQuality != b.Measurements.StructureQuality {
		t.Fatalf("structure quality changed: %v vs %v", a.Measurements.StructureQuality, b.Measurements.StructureQuality)
	}
	if b.Measurements.EmotionalMarkers != a.Measurements.EmotionalMarkers+1 {
		t.Fatalf("expected exactly one more marker, got %d vs %d",
			b.Measurements.EmotionalMarkers, a.Measurements.EmotionalMarkers)
	}
	if b.Score.Coefficient > a.Score.Coefficient {
		t.Errorf("score increased with more emotional markers: %.2f > %.2f",
			b.Score.Coefficient, a.Score.Coefficient)
	}
}

func TestAnalyze_FreshReportPerCall(t *testing.T) {
	analyzer := New()

	a := analyzer.Analyze("Joy and fear.")
	b := analyzer.Analyze("Joy and fear.")

	if a == b {
		t.Error("expected a fresh report per call, got the same pointer")
	}

	// Mutating one report must not leak into the other.
	a.Score.Signals[0].Description = "mutated"
	if b.Score.Signals[0].Description == "mutated" {
		t.Error("reports share signal storage")
	}
}

func TestNewWithWeights(t *testing.T) {
	analyzer := NewWithWeights(model.WeightsConfig{EmotionalPenalty: 50})

	report := analyzer.Analyze("pure joy and pure love")
	// 100 - 2*50 = 0; all bonus weights are zero
	if report.Score.Coefficient != 0 {
		t.Errorf("expected coefficient 0 with heavy penalty, got %.2f", report.Score.Coefficient)
	}
}

func TestSubject(t *testing.T) {
	if got := model.Subject(""); got != "(empty)" {
		t.Errorf("expected (empty) subject, got %q", got)
	}
	if got := model.Subject("short text"); got != "short text" {
		t.Errorf("expected unmodified subject, got %q", got)
	}
	long := strings.Repeat("word ", 30)
	if got := model.Subject(long); len([]rune(got)) != 63 { // 60 + "..."
		t.Errorf("expected truncated subject of 63 runes, got %d", len([]rune(got)))
	}
	if got := model.Subject("line\nbreak"); got != "line break" {
		t.Errorf("expected collapsed line break, got %q", got)
	}
}
