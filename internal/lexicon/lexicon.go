// Package lexicon holds the fixed term lists the analyzer counts.
//
// All terms are lowercase and matched case-insensitively as raw
// substrings, without word boundaries: a term occurring inside a larger
// word still counts ("result" matches "Results"). That is the documented
// matching contract, not an accident; tightening it to token matching
// would silently change every score.
//
// The lists are populated at package init and never mutated afterwards,
// so they are safe to share across concurrent analyses without locking.
package lexicon

// Emotional markers, split by subcategory. The analyzer counts them as
// one flattened aggregate; the split exists for reporting.
var (
	Positive = []string{
		"joy", "happiness", "love", "excitement",
		"passion", "hope", "pride", "satisfaction",
	}

	Negative = []string{
		"anger", "fear", "sadness", "anxiety", "disappointment",
		"hate", "irritation", "resentment", "annoyance",
	}

	Subjective = []string{
		"i think", "i feel", "in my opinion",
		"it seems to me", "i believe", "i hope",
	}
)

// Logical connectors signal inferential structure and raise the score.
var Logical = []string{
	"therefore", "thus", "consequently", "as a result", "if...then",
	"since", "because", "due to", "as a consequence", "in conclusion",
}

// Scientific terms signal analytical register and raise the score.
var Scientific = []string{
	"analysis", "research", "data", "result", "method",
	"hypothesis", "theory", "experiment", "observation", "conclusion",
}

// Emotional is the flattened aggregate of all three emotional
// subcategories, in subcategory order.
var Emotional = flatten(Positive, Negative, Subjective)

func flatten(lists ...[]string) []string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
