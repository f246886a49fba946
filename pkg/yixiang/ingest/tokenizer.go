package ingest

import (
	"strings"
	"unicode"
)

// Two segmentations are used on purpose. Sentences end at 。！？ or a line
// break and scope per-poem word relationships. Clauses additionally break
// at ，；： and any whitespace and drive corpus-wide associations.
const (
	sentenceTerminators = "。！？\n"
	clauseSeparators    = "，。！？；："
)

// SplitSentences splits text at 。！？ and line breaks, dropping pieces
// that are blank. Pieces are returned untrimmed.
func SplitSentences(text string) []string {
	return splitKeepNonBlank(text, func(r rune) bool {
		return strings.ContainsRune(sentenceTerminators, r)
	})
}

// SplitClauses splits text at ，。！？；： and whitespace, dropping empty
// pieces.
func SplitClauses(text string) []string {
	return splitKeepNonBlank(text, isClauseSeparator)
}

func isClauseSeparator(r rune) bool {
	return strings.ContainsRune(clauseSeparators, r) || IsBlank(r)
}

func splitKeepNonBlank(text string, sep func(rune) bool) []string {
	var out []string
	start := 0
	for i, r := range text {
		if !sep(r) {
			continue
		}
		if piece := text[start:i]; strings.TrimFunc(piece, IsBlank) != "" {
			out = append(out, piece)
		}
		start = i + len(string(r))
	}
	if piece := text[start:]; strings.TrimFunc(piece, IsBlank) != "" {
		out = append(out, piece)
	}
	return out
}

// UniqueChars returns the distinct characters of s in first-seen order.
// Each character is treated as one token.
func UniqueChars(s string) []string {
	seen := make(map[rune]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, string(r))
	}
	return out
}

// IsBlank reports whether r is whitespace, including the byte order mark.
func IsBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// IsBlankString reports whether s consists only of blank characters.
func IsBlankString(s string) bool {
	return strings.TrimFunc(s, IsBlank) == ""
}
