package ingest

import (
	"unicode/utf8"

	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
)

// Segment is a run of text that is either plain or one imagery term.
type Segment struct {
	Text    string `json:"text"`
	Imagery bool   `json:"imagery"`
}

// Highlighter marks imagery terms in text for display.
//
// It applies greedy longest match, so "银河" is one segment rather than
// "银" + "河". Statistics never use it: the Extractor counts every term
// independently.
type Highlighter struct {
	terms  map[string]struct{}
	maxLen int // longest term in runes
}

// NewHighlighter creates a highlighter for the lexicon's terms.
func NewHighlighter(lex *lexicon.Lexicon) *Highlighter {
	terms := make(map[string]struct{}, lex.Len())
	maxLen := 1
	for _, t := range lex.Terms() {
		terms[t] = struct{}{}
		if l := utf8.RuneCountInString(t); l > maxLen {
			maxLen = l
		}
	}
	return &Highlighter{terms: terms, maxLen: maxLen}
}

// Segments splits text into alternating plain and imagery segments.
func (h *Highlighter) Segments(text string) []Segment {
	runes := []rune(text)
	var result []Segment
	plainStart := 0
	i := 0

	for i < len(runes) {
		matchLen := 0

		// Try matching from longest term to a single character
		maxTerm := h.maxLen
		if remaining := len(runes) - i; maxTerm > remaining {
			maxTerm = remaining
		}
		for n := maxTerm; n >= 1; n-- {
			if _, ok := h.terms[string(runes[i:i+n])]; ok {
				matchLen = n
				break
			}
		}

		if matchLen == 0 {
			i++
			continue
		}

		if plainStart < i {
			result = append(result, Segment{Text: string(runes[plainStart:i])})
		}
		result = append(result, Segment{Text: string(runes[i : i+matchLen]), Imagery: true})
		i += matchLen
		plainStart = i
	}

	if plainStart < len(runes) {
		result = append(result, Segment{Text: string(runes[plainStart:])})
	}
	return result
}

// Mark renders text with every imagery segment wrapped in left and right.
func (h *Highlighter) Mark(text, left, right string) string {
	var out []byte
	for _, seg := range h.Segments(text) {
		if seg.Imagery {
			out = append(out, left...)
			out = append(out, seg.Text...)
			out = append(out, right...)
			continue
		}
		out = append(out, seg.Text...)
	}
	return string(out)
}
