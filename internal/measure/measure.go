// Package measure implements the four independent measurements the
// scorer combines: three lexicon occurrence counts and a sentence
// structure quality. All functions are pure and total over any string.
package measure

import (
	"strings"

	"github.com/ratiolab/ratiometer/internal/lexicon"
)

// Structure quality levels produced by StructureQuality.
const (
	QualityGood = 1.0 // Average sentence length in [10,25] words
	QualityFair = 0.7 // Average in [5,10) or (25,40]
	QualityPoor = 0.3 // Everything else
	QualityNone = 0.0 // No sentences at all
)

// countTerms sums non-overlapping substring occurrences of every term
// in the lowercased text. The text is lowercased once; terms are
// already lowercase by the lexicon invariant.
func countTerms(text string, terms []string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, term := range terms {
		total += strings.Count(lower, term)
	}
	return total
}

// EmotionalMarkers counts occurrences of every emotional lexicon term
// (positive, negative, and subjective phrases, flattened).
func EmotionalMarkers(text string) int {
	return countTerms(text, lexicon.Emotional)
}

// LogicalConnectors counts occurrences of logical connector terms.
func LogicalConnectors(text string) int {
	return countTerms(text, lexicon.Logical)
}

// ScientificTerms counts occurrences of scientific register terms.
func ScientificTerms(text string) int {
	return countTerms(text, lexicon.Scientific)
}

// Sentences splits the original-case text on runs of '.', '!' and '?',
// trims whitespace from each piece, and drops empty pieces.
func Sentences(text string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := pieces[:0]
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// AverageSentenceLength returns the true average word count per
// sentence, or 0 when there are no sentences.
func AverageSentenceLength(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	words := 0
	for _, s := range sentences {
		words += len(strings.Fields(s))
	}
	return float64(words) / float64(len(sentences))
}

// StructureQuality scores sentence-length quality on a fixed
// three-level scale. Empty or whitespace-only input has no sentences
// and scores QualityNone.
func StructureQuality(text string) float64 {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return QualityNone
	}

	avg := AverageSentenceLength(sentences)
	switch {
	case avg >= 10 && avg <= 25:
		return QualityGood
	case (avg >= 5 && avg < 10) || (avg > 25 && avg <= 40):
		return QualityFair
	default:
		return QualityPoor
	}
}
