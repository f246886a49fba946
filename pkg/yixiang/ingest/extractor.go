package ingest

import (
	"sort"
	"strings"

	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
)

// Extractor counts lexicon imagery terms in text.
type Extractor struct {
	lex *lexicon.Lexicon
}

// NewExtractor creates an extractor over the given lexicon.
func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract counts every lexicon term as a literal substring of text.
//
// Matches are non-overlapping per term, but terms are counted
// independently: with both "江" and "江南" in the lexicon, "江南" adds one
// to each. Only terms with a non-zero count are returned, ordered by count
// descending; ties keep lexicon order.
func (e *Extractor) Extract(text string) []ImageryCount {
	result := []ImageryCount{}
	if text == "" {
		return result
	}

	for _, term := range e.lex.Terms() {
		if n := strings.Count(text, term); n > 0 {
			result = append(result, ImageryCount{Word: term, Count: n})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}
