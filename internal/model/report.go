package model

import "time"

// Report represents the complete rationality analysis of a single passage.
// A fresh Report is created on every call to the analyzer and is owned
// solely by the caller; nothing mutates it after creation.
type Report struct {
	Subject    string    `json:"subject"`     // Leading words of the passage
	AnalyzedAt time.Time `json:"analyzed_at"` // When the analysis ran

	Stats        TextStats    `json:"stats"`        // Raw text statistics
	Measurements Measurements `json:"measurements"` // The four lexical measurements
	Score        Score        `json:"score"`        // Coefficient, verdict, and scoring breakdown

	LLM *LLMExplanation `json:"llm,omitempty"` // Optional LLM explanation (separate, never affects score)
}

// TextStats holds basic statistics about the analyzed passage.
type TextStats struct {
	Characters int `json:"characters"` // Runes in the passage
	Words      int `json:"words"`      // Whitespace-delimited words
	Sentences  int `json:"sentences"`  // Non-empty sentences after terminator splitting
}

// Measurements are the four independent measurements taken from the text.
// The counts are raw substring occurrence counts, not token matches.
type Measurements struct {
	EmotionalMarkers  int     `json:"emotional_markers"`  // Occurrences of emotional lexicon terms
	LogicalConnectors int     `json:"logical_connectors"` // Occurrences of logical connector terms
	ScientificTerms   int     `json:"scientific_terms"`   // Occurrences of scientific register terms
	StructureQuality  float64 `json:"structure_quality"`  // 0, 0.3, 0.7, or 1.0
}

// Score represents the transparent scoring breakdown.
type Score struct {
	Coefficient float64  `json:"coefficient"` // Rationality coefficient (0-100, 2 decimals)
	Verdict     string   `json:"verdict"`     // Qualitative verdict for the coefficient
	Signals     []Signal `json:"signals"`     // Diagnostic signals with transparent data
}

// Signal represents a diagnostic signal with transparent scoring data.
type Signal struct {
	Type        SignalType             `json:"type"`           // Signal classification
	Severity    SignalSeverity         `json:"severity"`       // info, warning, critical
	Description string                 `json:"description"`    // Human-readable description
	Data        map[string]interface{} `json:"data,omitempty"` // Transparent scoring data (formulas, inputs)
}

// SignalType classifies the type of diagnostic signal.
type SignalType string

const (
	SignalEmotionalMarkers  SignalType = "emotional_markers"  // Emotional lexicon density
	SignalLogicalConnectors SignalType = "logical_connectors" // Inferential structure
	SignalScientificTerms   SignalType = "scientific_terms"   // Analytical register
	SignalStructureQuality  SignalType = "structure_quality"  // Sentence length quality
)

// SignalSeverity indicates the importance of the signal.
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// LLMExplanation contains an optional LLM-generated explanation of the
// verdict. It is generated after scoring and never feeds back into it.
type LLMExplanation struct {
	Enabled       bool     `json:"enabled"`
	Provider      string   `json:"provider,omitempty"`       // openai, anthropic, ollama
	Model         string   `json:"model,omitempty"`          // Model name
	ExplanationMD string   `json:"explanation_md,omitempty"` // Markdown explanation
	Warnings      []string `json:"warnings,omitempty"`       // Any issues encountered
}

// Subject derives a short report subject from the leading characters of
// a passage, collapsing line breaks.
func Subject(text string) string {
	const maxLen = 60

	runes := make([]rune, 0, maxLen)
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		runes = append(runes, r)
		if len(runes) == maxLen {
			return string(runes) + "..."
		}
	}
	if len(runes) == 0 {
		return "(empty)"
	}
	return string(runes)
}
