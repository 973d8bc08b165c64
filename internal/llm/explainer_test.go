package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ratiolab/ratiometer/internal/model"
)

// MockProvider implements the Provider interface
type MockProvider struct {
	name      string
	available bool
	response  *ExplainResponse
	err       error
	lastReq   ExplainRequest
}

func (m *MockProvider) Name() string { return m.name }

func (m *MockProvider) Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool { return m.available }

func testReport() model.Report {
	return model.Report{
		Subject: "Data analysis shows...",
		Measurements: model.Measurements{
			ScientificTerms:  3,
			StructureQuality: 1.0,
		},
		Score: model.Score{
			Coefficient: 95.00,
			Verdict:     "Text is highly rational. Emotions are absent or minimal.",
			Signals: []model.Signal{
				{Type: model.SignalScientificTerms, Severity: model.SeverityInfo, Description: "3 scientific terms found"},
			},
		},
	}
}

func TestExplainer_Disabled(t *testing.T) {
	explainer, err := NewExplainer(Config{Provider: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if explainer.IsEnabled() {
		t.Error("expected disabled explainer for empty provider")
	}
	if explainer.ProviderName() != "" {
		t.Errorf("expected empty provider name, got %q", explainer.ProviderName())
	}

	explanation, err := explainer.GenerateExplanation(context.Background(), testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if explanation != nil {
		t.Error("expected nil explanation when disabled")
	}
}

func TestExplainer_UnknownProvider(t *testing.T) {
	if _, err := NewExplainer(Config{Provider: "bogus"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestExplainer_ProviderUnavailable(t *testing.T) {
	explainer := &Explainer{
		provider: &MockProvider{name: "mock", available: false},
	}

	explanation, err := explainer.GenerateExplanation(context.Background(), testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if explanation == nil {
		t.Fatal("expected explanation with warnings, got nil")
	}
	if explanation.Enabled {
		t.Error("expected Enabled=false for unavailable provider")
	}
	if len(explanation.Warnings) == 0 || !strings.Contains(explanation.Warnings[0], "not available") {
		t.Errorf("expected 'not available' warning, got %v", explanation.Warnings)
	}
}

func TestExplainer_Success(t *testing.T) {
	mock := &MockProvider{
		name:      "mock",
		available: true,
		response: &ExplainResponse{
			Explanation: "The coefficient is high because scientific terms dominate.",
			Model:       "mock-model",
			TokensUsed:  42,
		},
	}
	explainer := &Explainer{
		provider: mock,
		config:   Config{Model: "mock-model", MaxTokens: 500},
	}

	explanation, err := explainer.GenerateExplanation(context.Background(), testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !explanation.Enabled {
		t.Error("expected Enabled=true")
	}
	if explanation.Provider != "mock" {
		t.Errorf("expected provider 'mock', got %q", explanation.Provider)
	}
	if explanation.Model != "mock-model" {
		t.Errorf("expected model 'mock-model', got %q", explanation.Model)
	}
	if !strings.Contains(explanation.ExplanationMD, "coefficient is high") {
		t.Errorf("unexpected explanation text: %q", explanation.ExplanationMD)
	}

	if mock.lastReq.MaxTokens != 500 {
		t.Errorf("expected max tokens 500 passed through, got %d", mock.lastReq.MaxTokens)
	}
}

func TestExplainer_ProviderError(t *testing.T) {
	explainer := &Explainer{
		provider: &MockProvider{name: "mock", available: true, err: errors.New("api down")},
	}

	if _, err := explainer.GenerateExplanation(context.Background(), testReport()); err == nil {
		t.Error("expected error when provider fails")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testReport())

	for _, want := range []string{
		"95.00/100",
		"Text is highly rational",
		"Do not re-analyze",
		"3 scientific terms found",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRenderSeparateMarkdown(t *testing.T) {
	md := RenderSeparateMarkdown(&model.LLMExplanation{
		Enabled:       true,
		Provider:      "mock",
		Model:         "mock-model",
		ExplanationMD: "Plain restatement of the numbers.",
		Warnings:      []string{"first warning"},
	})

	if !strings.Contains(md, "mock/mock-model") {
		t.Error("missing provider/model attribution")
	}
	if !strings.Contains(md, "never influences") {
		t.Error("missing advisory note")
	}
	if !strings.Contains(md, "first warning") {
		t.Error("missing warnings section")
	}
}
